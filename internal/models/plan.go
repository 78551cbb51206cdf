package models

// Business types offered on the plans page
const (
	BusinessTypeRestaurants = "restaurants"
	BusinessTypeRetail      = "retail"
	BusinessTypeServices    = "services"
	BusinessTypeBeauty      = "beauty"
)

// AllBusinessTypes returns the business types in display order
func AllBusinessTypes() []string {
	return []string{
		BusinessTypeRestaurants,
		BusinessTypeRetail,
		BusinessTypeServices,
		BusinessTypeBeauty,
	}
}

// IsValidBusinessType checks if a business type string is valid
func IsValidBusinessType(businessType string) bool {
	for _, valid := range AllBusinessTypes() {
		if businessType == valid {
			return true
		}
	}
	return false
}

// PlanTier identifies the discount applied to the base debit rate of a plan
type PlanTier string

const (
	PlanTierStandard   PlanTier = "standard"
	PlanTierPro        PlanTier = "pro"
	PlanTierEnterprise PlanTier = "enterprise"
)

// NegotiableFee is shown instead of a rate for negotiated tiers
const NegotiableFee = "Negociable"

// PricingPlan is one card on the plans page
type PricingPlan struct {
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	Period         string   `json:"period"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	CTA            string   `json:"cta"`
	Highlighted    bool     `json:"highlighted"`
	Tier           PlanTier `json:"tier"`
	TransactionFee string   `json:"transaction_fee"`
}

// BusinessPricing groups the plans offered to one business type
type BusinessPricing struct {
	BusinessType string        `json:"business_type"`
	Label        string        `json:"label"`
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Familia      string        `json:"familia"`
	Plans        []PricingPlan `json:"plans"`
}
