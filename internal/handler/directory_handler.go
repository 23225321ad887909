package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jcpao-csu/staff-directory-api/internal/dto"
	"github.com/jcpao-csu/staff-directory-api/internal/middleware"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
	"github.com/jcpao-csu/staff-directory-api/pkg/response"
)

const defaultPageSize = 50

type directoryService interface {
	Filter(ctx context.Context, spec models.FilterSpec) ([]models.DirectoryRow, error)
	Birthdays(ctx context.Context, month int) ([]models.BirthdayEntry, error)
	Profile(ctx context.Context, email string) (models.Profile, error)
	InvalidateAndRebuild(ctx context.Context) (models.DirectorySnapshot, error)
}

// DirectoryHandler serves the staff directory listing, birthdays and profiles.
type DirectoryHandler struct {
	service  directoryService
	validate *validator.Validate
	now      func() time.Time
}

func NewDirectoryHandler(service directoryService, validate *validator.Validate) *DirectoryHandler {
	if validate == nil {
		validate = NewValidator()
	}
	return &DirectoryHandler{service: service, validate: validate, now: time.Now}
}

// List godoc
// @Summary Filtered staff directory
// @Tags Directory
// @Produce json
// @Param position query string false "Position code or All"
// @Param unit query string false "Unit code or All"
// @Param office query string false "Office location or All"
// @Param month query string false "Birth month 1-12 or All"
// @Param search query string false "Free text search"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /directory [get]
func (h *DirectoryHandler) List(c *gin.Context) {
	var query dto.DirectoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid query parameters"))
		return
	}
	if err := h.validate.Struct(query); err != nil {
		response.Error(c, validationError(err))
		return
	}

	rows, err := h.service.Filter(c.Request.Context(), query.Filter())
	if err != nil {
		response.Error(c, err)
		return
	}

	var pagination *models.Pagination
	if query.Page > 0 {
		rows, pagination = paginate(rows, query.Page, query.PageSize)
	}
	middleware.SetMeta(c, "count", len(rows))
	response.JSON(c, http.StatusOK, dto.NewDirectoryEntries(rows), pagination, middleware.ExtractMeta(c))
}

// Options godoc
// @Summary Selectable values for the directory filters
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /directory/options [get]
func (h *DirectoryHandler) Options(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.NewFilterOptions(), nil)
}

// Birthdays godoc
// @Summary Birthdays in a month
// @Tags Directory
// @Produce json
// @Param month query string false "Month 1-12, 0 or All for every month. Defaults to the current month"
// @Success 200 {object} response.Envelope
// @Router /directory/birthdays [get]
func (h *DirectoryHandler) Birthdays(c *gin.Context) {
	month := int(h.now().Month())
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		if raw == models.FilterAll {
			month = 0
		} else {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 || parsed > 12 {
				response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month must be between 0 and 12"))
				return
			}
			month = parsed
		}
	}

	entries, err := h.service.Birthdays(c.Request.Context(), month)
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.BirthdayResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.BirthdayResponse{DirectoryEntry: dto.NewDirectoryEntry(e.Row), Label: e.Label}
	}
	response.JSON(c, http.StatusOK, out, nil, map[string]interface{}{"month": month})
}

// Profile godoc
// @Summary Employee profile with service context
// @Tags Directory
// @Produce json
// @Param email query string true "Work email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /directory/profile [get]
func (h *DirectoryHandler) Profile(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "email is required"))
		return
	}
	profile, err := h.service.Profile(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ProfileResponse{
		Entry:   dto.NewDirectoryEntry(profile.Row),
		Service: profile.Service,
	}, nil)
}

// Refresh godoc
// @Summary Invalidate caches and rebuild the directory
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /directory/refresh [post]
func (h *DirectoryHandler) Refresh(c *gin.Context) {
	snap, err := h.service.InvalidateAndRebuild(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.RefreshResponse{
		Rows:      len(snap.Rows),
		Employees: snap.EmployeeCount,
		Pets:      snap.PetCount,
		BuiltAt:   snap.BuiltAt,
	}, nil)
}

func paginate(rows []models.DirectoryRow, page, size int) ([]models.DirectoryRow, *models.Pagination) {
	if size <= 0 {
		size = defaultPageSize
	}
	total := len(rows)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return rows[start:end], &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}
