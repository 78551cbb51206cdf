package services

import (
	"context"
	"time"

	"avoqado-web/internal/dto"
	"avoqado-web/internal/models"

	"github.com/google/uuid"
)

// RateServiceInterface resolves free-text business descriptions to rate categories
type RateServiceInterface interface {
	// Resolve maps a business description to a category and its marked-up rates
	Resolve(text string) *models.LookupResult

	// Suggest returns up to five synonym keys for autocomplete
	Suggest(input string) []string

	// Categories returns every rate category in table order
	Categories() []models.RateCategory

	// Category returns a single category by its exact name
	Category(name string) (models.RateCategory, bool)

	// Synonyms returns the synonym table in table order
	Synonyms() []models.Synonym
}

// PlanServiceInterface builds the per-business-type plan tiers
type PlanServiceInterface interface {
	ListBusinessPricing() []models.BusinessPricing
	GetBusinessPricing(businessType string) (*models.BusinessPricing, error)
	TransactionFee(businessType string, tier models.PlanTier) (string, error)
}

// ChatServiceInterface answers visitor questions from local knowledge or an AI provider
type ChatServiceInterface interface {
	Answer(ctx context.Context, message string, history []models.ChatMessage) (*models.ChatAnswer, error)
}

// AIClientInterface is a chat completion provider
type AIClientInterface interface {
	Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error)
	Provider() string
}

// LeadServiceInterface captures demo requests from the contact form
type LeadServiceInterface interface {
	CaptureLead(ctx context.Context, req *dto.ContactRequest, ipAddress, userAgent string) (*models.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (*models.Lead, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
