package validation

import (
	"reflect"
	"regexp"
	"strings"

	"avoqado-web/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("chat_role", validateChatRole)
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("business_type", validateBusinessType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ()\-.]{6,19}$`)

// validatePhone accepts local and international numbers with common separators.
// At least 7 digits are required.
func validatePhone(fl validator.FieldLevel) bool {
	phone := strings.TrimSpace(fl.Field().String())
	if !phonePattern.MatchString(phone) {
		return false
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

// validateChatRole only allows roles a browser may send back in history
func validateChatRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.ChatRoleUser, models.ChatRoleAssistant:
		return true
	default:
		return false
	}
}

func validateBusinessType(fl validator.FieldLevel) bool {
	return models.IsValidBusinessType(fl.Field().String())
}
