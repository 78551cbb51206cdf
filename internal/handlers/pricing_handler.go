package handlers

import (
	stderrors "errors"
	"net/http"

	"avoqado-web/internal/dto"
	"avoqado-web/internal/errors"
	"avoqado-web/internal/models"
	"avoqado-web/internal/services"

	"github.com/labstack/echo/v4"
)

// PricingHandler serves rate lookups, autocomplete and plan tiers
type PricingHandler struct {
	rateService services.RateServiceInterface
	planService services.PlanServiceInterface
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(rateService services.RateServiceInterface, planService services.PlanServiceInterface) *PricingHandler {
	return &PricingHandler{
		rateService: rateService,
		planService: planService,
	}
}

// LookupRates resolves a free-text business description to its fees
// @Summary Look up rates for a business
// @Description Resolves a business description to a rate category. Unmatched input returns the general category with found=false.
// @Tags Pricing
// @Produce json
// @Param q query string true "Business description, e.g. 'restaurante'"
// @Success 200 {object} dto.RateLookupResponse
// @Router /api/v1/pricing/rates [get]
func (h *PricingHandler) LookupRates(c echo.Context) error {
	query := c.QueryParam("q")
	result := h.rateService.Resolve(query)
	return c.JSON(http.StatusOK, dto.NewRateLookupResponse(query, result))
}

// GetSuggestions returns autocomplete keys for a partial description
// @Summary Autocomplete business types
// @Tags Pricing
// @Produce json
// @Param q query string true "Partial input"
// @Success 200 {object} dto.SuggestionsResponse
// @Router /api/v1/pricing/suggestions [get]
func (h *PricingHandler) GetSuggestions(c echo.Context) error {
	query := c.QueryParam("q")
	return c.JSON(http.StatusOK, dto.SuggestionsResponse{
		Query:       query,
		Suggestions: h.rateService.Suggest(query),
	})
}

// ListCategories returns every rate category with base and customer rates
// @Summary List rate categories
// @Tags Pricing
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.CategoryResponse}
// @Router /api/v1/pricing/categories [get]
func (h *PricingHandler) ListCategories(c echo.Context) error {
	categories := h.rateService.Categories()
	data := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		data[i] = dto.NewCategoryResponse(category, services.ApplyMargin(category.Base))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: map[string]int{"total": len(data)},
	})
}

// ListPlans returns the plan tiers for every business type
// @Summary List plans
// @Tags Pricing
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.BusinessPricing}
// @Router /api/v1/pricing/plans [get]
func (h *PricingHandler) ListPlans(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.planService.ListBusinessPricing()})
}

// GetPlans returns the plan tiers for one business type
// @Summary Plans for a business type
// @Tags Pricing
// @Produce json
// @Param businessType path string true "restaurants, retail, services or beauty"
// @Success 200 {object} SuccessResponse{data=models.BusinessPricing}
// @Failure 404 {object} errors.ErrorResponse "PRICING_001 - Unknown business type"
// @Router /api/v1/pricing/plans/{businessType} [get]
func (h *PricingHandler) GetPlans(c echo.Context) error {
	businessType := c.Param("businessType")
	if !models.IsValidBusinessType(businessType) {
		return SendError(c, errors.PricingBusinessTypeNotFound, errors.WithDetails(businessType))
	}

	pricing, err := h.planService.GetBusinessPricing(businessType)
	if stderrors.Is(err, services.ErrUnknownBusinessType) {
		return SendError(c, errors.PricingBusinessTypeNotFound, errors.WithDetails(businessType))
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: pricing})
}
