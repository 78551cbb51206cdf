package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidEmail, ValidationInvalidPhone,
		PricingBusinessTypeNotFound, PricingPlanTierNotFound,
		ChatMessageRequired, ChatMessageTooLong, ChatProviderUnavailable,
		ContactTooManyRequests, ContactLeadNotFound,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemConfigurationError, SystemUnexpectedError, SystemRateLimitExceeded,
		SystemNotFound,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{ValidationRequiredField, "Todos los campos son requeridos"},
		{ChatMessageRequired, "Mensaje requerido"},
		{PricingBusinessTypeNotFound, "Tipo de negocio no encontrado"},
		{SystemInternalError, "Error interno del servidor"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("Ocurrió un error", GetErrorMessage("NOPE_001"))
	s.False(IsValidErrorCode("NOPE_001"))
}

func (s *CodesTestSuite) TestAllCodesRegisteredAndUnique() {
	format := regexp.MustCompile(`^(VALIDATION|PRICING|CHAT|CONTACT|SYSTEM)_\d{3}$`)
	seen := make(map[ErrorCode]bool)

	for _, code := range allCodes() {
		s.False(seen[code], "duplicate code %s", code)
		seen[code] = true
		s.True(IsValidErrorCode(code), "code %s has no message", code)
		s.Regexp(format, string(code))
	}

	s.Len(errorMessages, len(allCodes()))
}
