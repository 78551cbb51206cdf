package services

import (
	"strings"

	"avoqado-web/internal/models"
)

const (
	minLookupLength = 2
	minWordLength   = 3
	maxSuggestions  = 5
)

type rateService struct {
	categories      []models.RateCategory
	categoryByName  map[string]models.RateCategory
	normalizedNames []string
	synonyms        []models.Synonym
	synonymByKey    map[string]models.Synonym
	metrics         MetricsRecorderInterface
}

// NewRateService creates a new RateServiceInterface backed by the built-in rate tables.
// metrics may be nil.
func NewRateService(metrics MetricsRecorderInterface) RateServiceInterface {
	categories := initRateCategories()
	synonyms := initSynonyms()

	service := &rateService{
		categories:      categories,
		categoryByName:  make(map[string]models.RateCategory, len(categories)),
		normalizedNames: make([]string, len(categories)),
		synonyms:        synonyms,
		synonymByKey:    make(map[string]models.Synonym, len(synonyms)),
		metrics:         metrics,
	}

	for i, category := range categories {
		service.categoryByName[category.Name] = category
		service.normalizedNames[i] = NormalizeText(category.Name)
	}

	for _, synonym := range synonyms {
		if _, exists := service.synonymByKey[synonym.Key]; !exists {
			service.synonymByKey[synonym.Key] = synonym
		}
	}

	return service
}

// Resolve maps a free-text business description to a category and its marked-up rates.
// It never fails: unmatched input resolves to the default category with found=false.
func (s *rateService) Resolve(text string) *models.LookupResult {
	result := s.resolve(NormalizeText(text))
	s.recordLookup(result.Method)
	return result
}

func (s *rateService) resolve(normalized string) *models.LookupResult {
	if len(normalized) < minLookupLength {
		return &models.LookupResult{
			Found:      false,
			Confidence: models.ConfidenceNone,
			Method:     models.LookupMethodTooShort,
		}
	}

	if result := s.matchCategory(normalized); result != nil {
		return result
	}

	if result := s.matchSynonym(normalized); result != nil {
		return result
	}

	if result := s.matchWord(normalized); result != nil {
		return result
	}

	if result := s.matchFuzzy(normalized); result != nil {
		return result
	}

	return s.fallback()
}

func (s *rateService) matchCategory(normalized string) *models.LookupResult {
	for i, name := range s.normalizedNames {
		if name == normalized {
			category := s.categories[i]
			return s.found(category, category.Name, models.ConfidenceExact, models.LookupMethodExactCategory)
		}
	}
	return nil
}

func (s *rateService) matchSynonym(normalized string) *models.LookupResult {
	synonym, exists := s.synonymByKey[normalized]
	if !exists {
		return nil
	}
	return s.fromSynonym(synonym, models.ConfidenceExact, models.LookupMethodExactSynonym)
}

func (s *rateService) matchWord(normalized string) *models.LookupResult {
	for _, word := range strings.Split(normalized, " ") {
		if len(word) < minWordLength {
			continue
		}
		if synonym, exists := s.synonymByKey[word]; exists {
			if result := s.fromSynonym(synonym, models.ConfidenceWord, models.LookupMethodWordSynonym); result != nil {
				return result
			}
		}
	}
	return nil
}

func (s *rateService) matchFuzzy(normalized string) *models.LookupResult {
	for _, synonym := range s.synonyms {
		if strings.Contains(normalized, synonym.Key) || strings.Contains(synonym.Key, normalized) {
			if result := s.fromSynonym(synonym, models.ConfidenceFuzzy, models.LookupMethodFuzzy); result != nil {
				return result
			}
		}
	}
	return nil
}

func (s *rateService) fallback() *models.LookupResult {
	category := s.categoryByName[models.DefaultFamilia]
	rates := ApplyMargin(category.Base)
	return &models.LookupResult{
		Found:      false,
		Familia:    category.Name,
		Rates:      &rates,
		Nota:       models.DefaultNota,
		Confidence: models.ConfidenceNone,
		Method:     models.LookupMethodFallback,
	}
}

// fromSynonym returns nil when the synonym points at a category missing from the table
func (s *rateService) fromSynonym(synonym models.Synonym, confidence int, method string) *models.LookupResult {
	category, exists := s.categoryByName[synonym.Familia]
	if !exists {
		return nil
	}
	return s.found(category, synonym.Nota, confidence, method)
}

func (s *rateService) found(category models.RateCategory, nota string, confidence int, method string) *models.LookupResult {
	rates := ApplyMargin(category.Base)
	return &models.LookupResult{
		Found:      true,
		Familia:    category.Name,
		Rates:      &rates,
		Nota:       nota,
		Confidence: confidence,
		Method:     method,
	}
}

// Suggest returns up to five synonym keys related to a partial input, in table order
func (s *rateService) Suggest(input string) []string {
	normalized := NormalizeText(input)
	if len(normalized) < minLookupLength {
		return []string{}
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, synonym := range s.synonyms {
		if strings.Contains(synonym.Key, normalized) || strings.Contains(normalized, synonym.Key) {
			suggestions = append(suggestions, synonym.Key)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("rate_suggestions", nil)
	}

	return suggestions
}

// Categories returns a copy of the rate categories in table order
func (s *rateService) Categories() []models.RateCategory {
	categories := make([]models.RateCategory, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// Category returns a category by its exact name
func (s *rateService) Category(name string) (models.RateCategory, bool) {
	category, exists := s.categoryByName[name]
	return category, exists
}

// Synonyms returns a copy of the synonym table in table order
func (s *rateService) Synonyms() []models.Synonym {
	synonyms := make([]models.Synonym, len(s.synonyms))
	copy(synonyms, s.synonyms)
	return synonyms
}

func (s *rateService) recordLookup(method string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("rate_lookup", map[string]string{"method": method})
}

// ApplyMargin returns the rates shown to customers for a category's base rates
func ApplyMargin(base models.Rates) models.Rates {
	return base.WithMargin(MarginCredito, MarginDebito, MarginAmex)
}
