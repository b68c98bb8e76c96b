package http

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/healthsecure/medichain-service/model"
	"github.com/labstack/echo/v4"
)

// respondError maps service errors onto the API error contract: validation
// failures become a field-to-messages map, everything else a single-key body.
func respondError(c echo.Context, err error) error {
	var fieldErrors model.FieldErrors
	switch {
	case errors.As(err, &fieldErrors):
		return c.JSON(http.StatusBadRequest, fieldErrors)
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrResourceNotAllowed):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

// validationFieldErrors flattens validator output into the same map shape the
// services use, keyed by the snake_case field name.
func validationFieldErrors(err error) model.FieldErrors {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return model.FieldErrors{"non_field_errors": {err.Error()}}
	}

	fieldErrors := model.FieldErrors{}
	for _, fieldError := range validationErrors {
		field := toSnakeCase(fieldError.Field())
		fieldErrors[field] = append(fieldErrors[field], "This field is invalid ("+fieldError.Tag()+").")
	}
	return fieldErrors
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
