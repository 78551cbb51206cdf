package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "avoqado-web/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) context() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	var resp apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.context()

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	resp := s.decode(rec)
	s.Equal(string(apperrors.SystemNotFound), resp.Error.Code)
	s.Equal("test-trace-id", resp.Error.TraceID)
	s.Equal([]string{"Not Found"}, resp.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestBodyTooLarge() {
	c, rec := s.context()

	CustomHTTPErrorHandler(echo.ErrStatusRequestEntityTooLarge, c)

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal(string(apperrors.ValidationOutOfRange), s.decode(rec).Error.Code)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesDetails() {
	c, rec := s.context()

	CustomHTTPErrorHandler(errors.New("dial tcp 10.0.0.3:5432: connection refused"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decode(rec)
	s.Equal(string(apperrors.SystemInternalError), resp.Error.Code)
	s.NotContains(rec.Body.String(), "10.0.0.3")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type form struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := validator.New().Struct(form{})
	c, rec := s.context()

	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decode(rec)
	s.Equal(string(apperrors.ValidationGeneral), resp.Error.Code)
	s.Equal([]string{"Email: es requerido"}, resp.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	c, rec := s.context()
	s.Require().NoError(c.String(http.StatusOK, "done"))

	CustomHTTPErrorHandler(errors.New("late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	c, _ := s.context()
	c.SetPath("/api/chat")
	counter := apiErrorsTotal.WithLabelValues(string(apperrors.SystemRateLimitExceeded), "/api/chat", "429")
	before := testutil.ToFloat64(counter)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusTooManyRequests), c)

	s.Equal(before+1, testutil.ToFloat64(counter))
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := map[int]apperrors.ErrorCode{
		http.StatusBadRequest:          apperrors.ValidationGeneral,
		http.StatusMethodNotAllowed:    apperrors.ValidationGeneral,
		http.StatusNotFound:            apperrors.SystemNotFound,
		http.StatusTooManyRequests:     apperrors.SystemRateLimitExceeded,
		http.StatusServiceUnavailable:  apperrors.SystemServiceUnavailable,
		http.StatusInternalServerError: apperrors.SystemInternalError,
		http.StatusTeapot:              apperrors.SystemUnexpectedError,
	}

	for status, code := range testCases {
		s.Equal(code, mapHTTPStatusToErrorCode(status), "status %d", status)
	}
}
