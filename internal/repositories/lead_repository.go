package repositories

import (
	"errors"
	"fmt"
	"time"

	"avoqado-web/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository handles database operations for demo requests
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) LeadRepositoryInterface {
	return &LeadRepository{
		db: db,
	}
}

// Create stores a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	if lead == nil {
		return errors.New("lead cannot be nil")
	}

	if err := r.db.Create(lead).Error; err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

// GetByID retrieves a lead by its ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	lead := &models.Lead{}
	if err := r.db.Where("id = ?", id).First(lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead by ID: %w", err)
	}

	return lead, nil
}

// CountByEmailSince counts leads submitted with the given email after since
func (r *LeadRepository) CountByEmailSince(email string, since time.Time) (int64, error) {
	var count int64

	err := r.db.Model(&models.Lead{}).
		Where("email = ? AND created_at > ?", email, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count leads by email: %w", err)
	}

	return count, nil
}

