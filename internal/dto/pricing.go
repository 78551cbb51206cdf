package dto

import (
	"avoqado-web/internal/models"

	"github.com/shopspring/decimal"
)

// RateValue is a percentage fee with its display form ("2.50%")
type RateValue struct {
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
}

// RatesResponse holds the four payment rail fees
type RatesResponse struct {
	Credito       RateValue `json:"credito"`
	Debito        RateValue `json:"debito"`
	Internacional RateValue `json:"internacional"`
	Amex          RateValue `json:"amex"`
}

// RateLookupResponse is the outcome of resolving a business description
type RateLookupResponse struct {
	Query      string         `json:"query"`
	Found      bool           `json:"found"`
	Familia    string         `json:"familia,omitempty"`
	Nota       string         `json:"nota,omitempty"`
	Confidence int            `json:"confidence"`
	Method     string         `json:"method"`
	Rates      *RatesResponse `json:"rates,omitempty"`
}

// SuggestionsResponse lists autocomplete candidates for a partial query
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// CategoryResponse is a rate category with its base and marked-up fees
type CategoryResponse struct {
	Name      string        `json:"name"`
	BaseRates RatesResponse `json:"baseRates"`
	Rates     RatesResponse `json:"rates"`
}

// NewRatesResponse formats rates with two decimal places
func NewRatesResponse(r models.Rates) RatesResponse {
	return RatesResponse{
		Credito:       newRateValue(r.Credito),
		Debito:        newRateValue(r.Debito),
		Internacional: newRateValue(r.Internacional),
		Amex:          newRateValue(r.Amex),
	}
}

// NewRateLookupResponse converts a lookup result for the API
func NewRateLookupResponse(query string, result *models.LookupResult) RateLookupResponse {
	resp := RateLookupResponse{
		Query:      query,
		Found:      result.Found,
		Familia:    result.Familia,
		Nota:       result.Nota,
		Confidence: result.Confidence,
		Method:     result.Method,
	}
	if result.Rates != nil {
		rates := NewRatesResponse(*result.Rates)
		resp.Rates = &rates
	}
	return resp
}

func newRateValue(d decimal.Decimal) RateValue {
	return RateValue{Value: d, Display: d.StringFixed(2) + "%"}
}

// NewCategoryResponse pairs a category's base rates with the marked-up rates customers pay
func NewCategoryResponse(category models.RateCategory, rates models.Rates) CategoryResponse {
	return CategoryResponse{
		Name:      category.Name,
		BaseRates: NewRatesResponse(category.Base),
		Rates:     NewRatesResponse(rates),
	}
}
