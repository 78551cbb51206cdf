package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_006"
)

// Pricing error codes (PRICING_*)
const (
	PricingBusinessTypeNotFound ErrorCode = "PRICING_001"
	PricingPlanTierNotFound     ErrorCode = "PRICING_002"
)

// Chat error codes (CHAT_*)
const (
	ChatMessageRequired     ErrorCode = "CHAT_001"
	ChatMessageTooLong      ErrorCode = "CHAT_002"
	ChatProviderUnavailable ErrorCode = "CHAT_003"
)

// Contact form error codes (CONTACT_*)
const (
	ContactTooManyRequests ErrorCode = "CONTACT_001"
	ContactLeadNotFound    ErrorCode = "CONTACT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to the messages shown on the site
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Datos inválidos",
	ValidationRequiredField: "Todos los campos son requeridos",
	ValidationInvalidFormat: "Formato de campo inválido",
	ValidationOutOfRange:    "El valor excede el límite permitido",
	ValidationInvalidEmail:  "Correo electrónico inválido",
	ValidationInvalidPhone:  "Número de teléfono inválido",

	PricingBusinessTypeNotFound: "Tipo de negocio no encontrado",
	PricingPlanTierNotFound:     "Plan no encontrado",

	ChatMessageRequired:     "Mensaje requerido",
	ChatMessageTooLong:      "El mensaje es demasiado largo",
	ChatProviderUnavailable: "El asistente no está disponible en este momento",

	ContactTooManyRequests: "Ya recibimos tu solicitud. Te contactaremos pronto",
	ContactLeadNotFound:    "Solicitud no encontrada",

	SystemInternalError:      "Error interno del servidor",
	SystemDatabaseError:      "Error de base de datos",
	SystemServiceUnavailable: "Servicio no disponible temporalmente",
	SystemConfigurationError: "Error de configuración del servidor",
	SystemUnexpectedError:    "Ocurrió un error inesperado",
	SystemRateLimitExceeded:  "Demasiadas solicitudes. Intenta de nuevo más tarde",
	SystemNotFound:           "Recurso no encontrado",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Ocurrió un error"
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
