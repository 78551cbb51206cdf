package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// getClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then the peer address
func getClientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}

// fieldErrors flattens validation errors into "field: tag" details and reports
// whether any of them is a missing required field
func fieldErrors(err error) (details []string, missingRequired bool, ok bool) {
	validationErrs, isValidation := err.(validator.ValidationErrors)
	if !isValidation {
		return nil, false, false
	}

	details = make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fe.Field()+": "+fe.Tag())
		if fe.Tag() == "required" {
			missingRequired = true
		}
	}
	return details, missingRequired, true
}

// hasFieldError reports whether validation failed on field with tag
func hasFieldError(err error, field, tag string) bool {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range validationErrs {
		if fe.Field() == field && fe.Tag() == tag {
			return true
		}
	}
	return false
}
