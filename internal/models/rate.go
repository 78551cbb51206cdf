package models

import "github.com/shopspring/decimal"

// Resolution methods, in the order the resolver tries them
const (
	LookupMethodTooShort      = "too_short"
	LookupMethodExactCategory = "exact_category"
	LookupMethodExactSynonym  = "exact_synonym"
	LookupMethodWordSynonym   = "word_synonym"
	LookupMethodFuzzy         = "fuzzy"
	LookupMethodFallback      = "fallback"
)

// Confidence scores reported with a lookup
const (
	ConfidenceExact = 100
	ConfidenceWord  = 85
	ConfidenceFuzzy = 70
	ConfidenceNone  = 0
)

const (
	// DefaultFamilia is the category every unmatched query resolves to
	DefaultFamilia = "Otros"
	// DefaultNota is the label shown for the default category
	DefaultNota = "Categoria general"
)

// Rates holds percentage fees for the four payment rails
type Rates struct {
	Credito       decimal.Decimal `json:"credito"`
	Debito        decimal.Decimal `json:"debito"`
	Internacional decimal.Decimal `json:"internacional"`
	Amex          decimal.Decimal `json:"amex"`
}

// WithMargin returns a copy of the rates with the given margins added.
// Internacional is never marked up.
func (r Rates) WithMargin(credito, debito, amex decimal.Decimal) Rates {
	return Rates{
		Credito:       r.Credito.Add(credito),
		Debito:        r.Debito.Add(debito),
		Internacional: r.Internacional,
		Amex:          r.Amex.Add(amex),
	}
}

// RateCategory is a named bucket of business types sharing one fee schedule
type RateCategory struct {
	Name string `json:"name"`
	Base Rates  `json:"base_rates"`
}

// Synonym maps a normalized free-text key to a rate category
type Synonym struct {
	Key     string `json:"key"`
	Familia string `json:"familia"`
	Nota    string `json:"nota"`
}

// LookupResult is the outcome of resolving a business description
type LookupResult struct {
	Found      bool   `json:"found"`
	Familia    string `json:"familia,omitempty"`
	Rates      *Rates `json:"rates,omitempty"`
	Nota       string `json:"nota,omitempty"`
	Confidence int    `json:"confidence"`
	Method     string `json:"method"`
}

// HasCategory reports whether the lookup produced a category, including the default one
func (r *LookupResult) HasCategory() bool {
	return r != nil && r.Familia != ""
}
