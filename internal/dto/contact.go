package dto

import (
	"time"

	"avoqado-web/internal/models"
)

// ContactRequest contains the demo request form fields
type ContactRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,phone"`
	Email       string `json:"email" validate:"required,email,max=255"`
	CompanyName string `json:"companyName" validate:"required,max=255"`
	Employees   string `json:"employees" validate:"max=50"`
	Revenue     string `json:"revenue" validate:"max=50"`
}

// ContactResponse acknowledges a demo request
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"leadId,omitempty"`
}

// ToModel builds an unsaved lead from the form
func (r *ContactRequest) ToModel() *models.Lead {
	return &models.Lead{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Email:       r.Email,
		CompanyName: r.CompanyName,
		Employees:   r.Employees,
		Revenue:     r.Revenue,
	}
}

// LeadStatusResponse reports the progress of a demo request without contact details
type LeadStatusResponse struct {
	LeadID    string    `json:"leadId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLeadStatusResponse converts a stored lead
func NewLeadStatusResponse(lead *models.Lead) LeadStatusResponse {
	return LeadStatusResponse{
		LeadID:    lead.ID.String(),
		Status:    lead.Status,
		CreatedAt: lead.CreatedAt,
	}
}
