package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"avoqado-web/internal/config"
	"avoqado-web/internal/dto"
	"avoqado-web/internal/models"
	"avoqado-web/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidLead  = errors.New("invalid lead")
	ErrTooManyLeads = errors.New("too many demo requests for this email")
	ErrLeadNotFound = errors.New("lead not found")
)

// LeadService stores demo requests submitted from the contact form
type LeadService struct {
	repo    repositories.LeadRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	cfg     config.ContactConfig
	now     func() time.Time
}

// NewLeadService creates a new lead service. metrics may be nil.
func NewLeadService(repo repositories.LeadRepositoryInterface, metrics MetricsRecorderInterface, cfg config.ContactConfig, logger *slog.Logger) LeadServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeadService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}
}

// CaptureLead normalizes and stores a demo request
func (s *LeadService) CaptureLead(ctx context.Context, req *dto.ContactRequest, ipAddress, userAgent string) (*models.Lead, error) {
	if req == nil {
		return nil, ErrInvalidLead
	}

	lead := req.ToModel()
	lead.FirstName = strings.TrimSpace(lead.FirstName)
	lead.LastName = strings.TrimSpace(lead.LastName)
	lead.Phone = strings.TrimSpace(lead.Phone)
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	lead.CompanyName = strings.TrimSpace(lead.CompanyName)
	lead.IPAddress = ipAddress
	lead.UserAgent = userAgent

	if lead.FirstName == "" || lead.LastName == "" || lead.Phone == "" || lead.Email == "" || lead.CompanyName == "" {
		return nil, ErrInvalidLead
	}

	if s.cfg.MaxLeadsPerWindow > 0 {
		count, err := s.repo.CountByEmailSince(lead.Email, s.now().Add(-s.cfg.DuplicateWindow))
		if err != nil {
			s.fail("failed to check recent demo requests", lead, err)
			return nil, fmt.Errorf("failed to check recent leads: %w", err)
		}
		if count >= int64(s.cfg.MaxLeadsPerWindow) {
			s.logger.WarnContext(ctx, "demo request limit reached",
				"email", maskEmail(lead.Email),
				"count", count,
				"ip_address", ipAddress,
			)
			return nil, ErrTooManyLeads
		}
	}

	if err := s.repo.Create(lead); err != nil {
		s.fail("failed to store demo request", lead, err)
		return nil, fmt.Errorf("failed to capture lead: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("lead_captured", nil)
	}
	s.logger.InfoContext(ctx, "demo request captured",
		"lead_id", lead.ID,
		"company", lead.CompanyName,
		"email", maskEmail(lead.Email),
	)

	return lead, nil
}

// GetLead retrieves a stored demo request
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidLead
	}

	lead, err := s.repo.GetByID(id)
	if errors.Is(err, repositories.ErrLeadNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

func (s *LeadService) fail(msg string, lead *models.Lead, err error) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("lead_capture_failed", nil)
	}
	s.logger.Error(msg,
		"email", maskEmail(lead.Email),
		"error", err,
	)
}

// maskEmail keeps the first character of the local part: "ana@example.com" -> "a***@example.com"
func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
