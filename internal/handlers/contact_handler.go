package handlers

import (
	stderrors "errors"
	"net/http"

	"avoqado-web/internal/dto"
	"avoqado-web/internal/errors"
	"avoqado-web/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contactSuccessMessage = "Demo solicitada exitosamente"

// ContactHandler receives demo requests from the contact form
type ContactHandler struct {
	leadService services.LeadServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(leadService services.LeadServiceInterface) *ContactHandler {
	return &ContactHandler{leadService: leadService}
}

// SubmitContact stores a demo request
// @Summary Request a demo
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact form"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing required fields"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid email"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid phone"
// @Failure 429 {object} errors.ErrorResponse "CONTACT_001 - Too many requests for this email"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/contact [post]
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return sendMissingFields(c)
	}

	if err := c.Validate(&req); err != nil {
		details, missingRequired, ok := fieldErrors(err)
		switch {
		case !ok:
			return SendSystemError(c, err)
		case missingRequired:
			return sendMissingFields(c, details...)
		case hasFieldError(err, "email", "email"):
			return SendError(c, errors.ValidationInvalidEmail)
		case hasFieldError(err, "phone", "phone"):
			return SendError(c, errors.ValidationInvalidPhone)
		default:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
		}
	}

	lead, err := h.leadService.CaptureLead(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	switch {
	case stderrors.Is(err, services.ErrInvalidLead):
		return sendMissingFields(c)
	case stderrors.Is(err, services.ErrTooManyLeads):
		return SendError(c, errors.ContactTooManyRequests)
	case err != nil:
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ContactResponse{
		Success: true,
		Message: contactSuccessMessage,
		LeadID:  lead.ID.String(),
	})
}

func sendMissingFields(c echo.Context, details ...string) error {
	return SendError(c, errors.ValidationGeneral,
		errors.WithMessage(errors.GetErrorMessage(errors.ValidationRequiredField)),
		errors.WithDetails(details...),
	)
}

// GetContactStatus reports whether a demo request was received and followed up
// @Summary Demo request status
// @Tags Contact
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.LeadStatusResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid lead ID"
// @Failure 404 {object} errors.ErrorResponse "CONTACT_002 - Lead not found"
// @Router /api/contact/{id} [get]
func (h *ContactHandler) GetContactStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id"))
	}

	lead, err := h.leadService.GetLead(c.Request().Context(), id)
	switch {
	case stderrors.Is(err, services.ErrLeadNotFound):
		return SendError(c, errors.ContactLeadNotFound)
	case err != nil:
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewLeadStatusResponse(lead))
}
