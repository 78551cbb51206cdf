package repositories

import (
	"time"

	"avoqado-web/internal/models"

	"github.com/google/uuid"
)

// LeadRepositoryInterface defines the interface for lead persistence
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	CountByEmailSince(email string, since time.Time) (int64, error)
}
