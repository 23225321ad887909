package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jcpao-csu/staff-directory-api/internal/dto"
	"github.com/jcpao-csu/staff-directory-api/internal/service"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
	"github.com/jcpao-csu/staff-directory-api/pkg/export"
	"github.com/jcpao-csu/staff-directory-api/pkg/response"
)

type exportService interface {
	Generate(ctx context.Context, req service.ExportRequest) (*service.ExportResult, error)
	Open(token string) (*service.ExportFile, error)
}

// ExportHandler creates directory exports and serves signed downloads.
type ExportHandler struct {
	service  exportService
	validate *validator.Validate
}

func NewExportHandler(service exportService, validate *validator.Validate) *ExportHandler {
	if validate == nil {
		validate = NewValidator()
	}
	return &ExportHandler{service: service, validate: validate}
}

// Create godoc
// @Summary Export the filtered directory
// @Tags Exports
// @Accept json
// @Produce json
// @Param payload body dto.ExportRequest true "Export request"
// @Success 201 {object} response.Envelope
// @Router /directory/exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, validationError(err))
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), service.ExportRequest{
		Format: format,
		Filter: req.Filter.Filter(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, dto.ExportResponse{
		ID:        result.ID,
		Format:    string(result.Format),
		Rows:      result.Rows,
		URL:       result.URL,
		ExpiresAt: result.ExpiresAt,
	}, nil)
}

// Download godoc
// @Summary Download a stored export
// @Tags Exports
// @Produce octet-stream
// @Param token path string true "Signed token"
// @Success 200 {file} file
// @Failure 410 {object} response.Envelope
// @Router /export/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	file, err := h.service.Open(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Content.Close()
	response.Attachment(c, file.Name, file.ContentType, file.ModTime, file.Content)
}
