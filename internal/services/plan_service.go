package services

import (
	"errors"
	"fmt"

	"avoqado-web/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownBusinessType = errors.New("unknown business type")
	ErrUnknownPlanTier     = errors.New("unknown plan tier")
	ErrCategoryMissing     = errors.New("rate category missing from catalog")
)

type planService struct {
	rateService RateServiceInterface
	businesses  []businessDefinition
}

// NewPlanService creates a plan service that prices every tier off the shared rate catalog
func NewPlanService(rateService RateServiceInterface) PlanServiceInterface {
	return &planService{
		rateService: rateService,
		businesses:  initBusinessDefinitions(),
	}
}

func (s *planService) ListBusinessPricing() []models.BusinessPricing {
	result := make([]models.BusinessPricing, 0, len(s.businesses))
	for _, business := range s.businesses {
		pricing, err := s.build(business)
		if err != nil {
			continue
		}
		result = append(result, *pricing)
	}
	return result
}

func (s *planService) GetBusinessPricing(businessType string) (*models.BusinessPricing, error) {
	business, err := s.find(businessType)
	if err != nil {
		return nil, err
	}
	return s.build(business)
}

// TransactionFee returns the "desde X.XX% + $3" label for a tier, or the negotiable sentinel
func (s *planService) TransactionFee(businessType string, tier models.PlanTier) (string, error) {
	business, err := s.find(businessType)
	if err != nil {
		return "", err
	}
	return s.fee(business.familia, tier)
}

func (s *planService) find(businessType string) (businessDefinition, error) {
	for _, business := range s.businesses {
		if business.businessType == businessType {
			return business, nil
		}
	}
	return businessDefinition{}, fmt.Errorf("%w: %s", ErrUnknownBusinessType, businessType)
}

func (s *planService) build(business businessDefinition) (*models.BusinessPricing, error) {
	plans := make([]models.PricingPlan, 0, len(business.plans))
	for _, plan := range business.plans {
		fee, err := s.fee(business.familia, plan.tier)
		if err != nil {
			return nil, err
		}

		features := make([]string, len(plan.features))
		copy(features, plan.features)

		plans = append(plans, models.PricingPlan{
			Name:           plan.name,
			Price:          plan.price,
			Period:         plan.period,
			Description:    plan.description,
			Features:       features,
			CTA:            plan.cta,
			Highlighted:    plan.highlighted,
			Tier:           plan.tier,
			TransactionFee: fee,
		})
	}

	return &models.BusinessPricing{
		BusinessType: business.businessType,
		Label:        business.label,
		Title:        business.title,
		Subtitle:     business.subtitle,
		Familia:      business.familia,
		Plans:        plans,
	}, nil
}

func (s *planService) fee(familia string, tier models.PlanTier) (string, error) {
	var discount decimal.Decimal
	switch tier {
	case models.PlanTierEnterprise:
		return models.NegotiableFee, nil
	case models.PlanTierStandard:
		discount = decimal.Zero
	case models.PlanTierPro:
		discount = ProDiscount
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPlanTier, tier)
	}

	category, exists := s.rateService.Category(familia)
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrCategoryMissing, familia)
	}

	debito := category.Base.Debito.Add(MarginDebito).Sub(discount)
	return fmt.Sprintf("desde %s%% + $3", debito.StringFixed(2)), nil
}
