package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jcpao-csu/staff-directory-api/internal/dto"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
	"github.com/jcpao-csu/staff-directory-api/pkg/response"
)

type activityLogger interface {
	Log(ctx context.Context, identifier string, kind models.ActivityKind)
}

// ActivityHandler accepts user activity for the audit log.
type ActivityHandler struct {
	service  activityLogger
	validate *validator.Validate
}

func NewActivityHandler(service activityLogger, validate *validator.Validate) *ActivityHandler {
	if validate == nil {
		validate = NewValidator()
	}
	return &ActivityHandler{service: service, validate: validate}
}

// Log godoc
// @Summary Record a user activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body dto.ActivityRequest true "Activity"
// @Success 202 {object} response.Envelope
// @Router /activity [post]
func (h *ActivityHandler) Log(c *gin.Context) {
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, validationError(err))
		return
	}
	kind, _ := models.ParseActivityKind(req.Activity)
	// detached: the write outlives the request
	h.service.Log(context.WithoutCancel(c.Request.Context()), req.Identifier, kind)
	response.Accepted(c, gin.H{"status": "queued"})
}
