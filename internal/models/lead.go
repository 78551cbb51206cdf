package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const LeadStatusReceived = "received"

const LeadSourceContactForm = "contact_form"

// Lead is a sales contact request submitted from the website
type Lead struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email       string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone       string    `gorm:"type:varchar(30);not null" json:"phone"`
	CompanyName string    `gorm:"type:varchar(255);not null" json:"company_name"`
	Employees   string    `gorm:"type:varchar(50)" json:"employees,omitempty"`
	Revenue     string    `gorm:"type:varchar(50)" json:"revenue,omitempty"`
	Source      string    `gorm:"type:varchar(50);not null" json:"source"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	IPAddress   string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent   string    `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l *Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	if l.Status == "" {
		l.Status = LeadStatusReceived
	}

	if l.Source == "" {
		l.Source = LeadSourceContactForm
	}
	return nil
}

