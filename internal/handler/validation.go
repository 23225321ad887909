package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jcpao-csu/staff-directory-api/internal/dto"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
)

// NewValidator returns a validator with the directory request rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("month_filter", func(fl validator.FieldLevel) bool {
		return dto.ValidMonthFilter(fl.Field().String())
	})
	_ = v.RegisterValidation("activity_kind", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseActivityKind(fl.Field().String())
		return ok
	})
	return v
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return appErrors.Clone(appErrors.ErrValidation, strings.Join(msgs, "; "))
}
