package services

import (
	"sync"
	"testing"

	"avoqado-web/internal/models"
	"avoqado-web/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	service *rateService
}

func TestRateServiceSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

func (s *RateServiceTestSuite) SetupTest() {
	s.service = NewRateService(nil).(*rateService)
}

func (s *RateServiceTestSuite) requireRates(result *models.LookupResult, debito, credito, amex string) {
	s.Require().NotNil(result.Rates)
	s.True(decimal.RequireFromString(debito).Equal(result.Rates.Debito), "debito %s", result.Rates.Debito)
	s.True(decimal.RequireFromString(credito).Equal(result.Rates.Credito), "credito %s", result.Rates.Credito)
	s.True(decimal.RequireFromString(amex).Equal(result.Rates.Amex), "amex %s", result.Rates.Amex)
}

// Table integrity

func (s *RateServiceTestSuite) TestTables_Sizes() {
	s.Len(s.service.Categories(), 29)
	s.Len(s.service.Synonyms(), 53)
}

func (s *RateServiceTestSuite) TestTables_EverySynonymPointsAtACategory() {
	for _, synonym := range s.service.Synonyms() {
		_, exists := s.service.Category(synonym.Familia)
		s.True(exists, "synonym %q points at unknown category %q", synonym.Key, synonym.Familia)
	}
}

func (s *RateServiceTestSuite) TestTables_SynonymKeysAreNormalized() {
	for _, synonym := range s.service.Synonyms() {
		s.Equal(NormalizeText(synonym.Key), synonym.Key)
	}
}

func (s *RateServiceTestSuite) TestTables_DefaultCategoryExists() {
	category, exists := s.service.Category(models.DefaultFamilia)
	s.True(exists)
	s.Equal(models.DefaultFamilia, category.Name)
}

func (s *RateServiceTestSuite) TestTables_AccessorsReturnCopies() {
	categories := s.service.Categories()
	categories[0].Name = "mutated"
	synonyms := s.service.Synonyms()
	synonyms[0].Key = "mutated"

	s.Equal("Beneficiencia", s.service.Categories()[0].Name)
	s.Equal("gimnasio", s.service.Synonyms()[0].Key)
}

// Exact matches

func (s *RateServiceTestSuite) TestResolve_EveryCategoryName() {
	for _, category := range s.service.Categories() {
		s.Run(category.Name, func() {
			result := s.service.Resolve(category.Name)
			s.True(result.Found)
			s.Equal(models.ConfidenceExact, result.Confidence)
			s.Equal(category.Name, result.Familia)
			s.Equal(category.Name, result.Nota)
			s.Equal(models.LookupMethodExactCategory, result.Method)
		})
	}
}

func (s *RateServiceTestSuite) TestResolve_EverySynonymKey() {
	categoryByNormalizedName := map[string]string{}
	for _, category := range s.service.Categories() {
		categoryByNormalizedName[NormalizeText(category.Name)] = category.Name
	}

	for _, synonym := range s.service.Synonyms() {
		s.Run(synonym.Key, func() {
			result := s.service.Resolve(synonym.Key)
			s.True(result.Found)
			s.Equal(models.ConfidenceExact, result.Confidence)
			s.Equal(synonym.Familia, result.Familia)

			// a key spelling out a category name is answered by the category step
			if name, isCategory := categoryByNormalizedName[synonym.Key]; isCategory {
				s.Equal(name, result.Nota)
				s.Equal(models.LookupMethodExactCategory, result.Method)
				return
			}
			s.Equal(synonym.Nota, result.Nota)
			s.Equal(models.LookupMethodExactSynonym, result.Method)
		})
	}
}

func (s *RateServiceTestSuite) TestResolve_CategoryNameBeatsSynonym() {
	result := s.service.Resolve("comida rapida")

	s.True(result.Found)
	s.Equal("Comida rápida", result.Familia)
	s.Equal("Comida rápida", result.Nota)
	s.Equal(models.LookupMethodExactCategory, result.Method)

	// the synonym with the same normalized key carries a different note
	synonymNota := ""
	for _, synonym := range s.service.Synonyms() {
		if synonym.Key == "comida rapida" {
			synonymNota = synonym.Nota
		}
	}
	s.Equal("Fast food", synonymNota)
}

func (s *RateServiceTestSuite) TestResolve_AssistantSectorKeys() {
	testCases := []struct {
		input    string
		expected string
		debito   string
		credito  string
		amex     string
	}{
		{"belleza", "Salones de belleza", "1.20", "1.20", "3.30"},
		{"servicios", "Otros", "1.88", "2.25", "3.30"},
		{"consultorio", "Médicos y dentistas", "1.20", "1.20", "3.30"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			result := s.service.Resolve(tc.input)
			s.True(result.Found)
			s.Equal(tc.expected, result.Familia)
			s.Equal(models.LookupMethodExactSynonym, result.Method)
			s.requireRates(result, tc.debito, tc.credito, tc.amex)
		})
	}
}

func (s *RateServiceTestSuite) TestResolve_Restaurante() {
	result := s.service.Resolve("restaurante")

	s.True(result.Found)
	s.Equal("Restaurantes", result.Familia)
	s.Equal(models.ConfidenceExact, result.Confidence)
	s.Equal(models.LookupMethodExactSynonym, result.Method)
	s.requireRates(result, "1.88", "2.50", "3.30")
	s.True(decimal.RequireFromString("3.30").Equal(result.Rates.Internacional))
}

func (s *RateServiceTestSuite) TestResolve_Gimnasio() {
	result := s.service.Resolve("gimnasio")

	s.True(result.Found)
	s.Equal("Entretenimiento", result.Familia)
	s.Equal("Clubes deportivos", result.Nota)
	s.Equal(models.ConfidenceExact, result.Confidence)
}

func (s *RateServiceTestSuite) TestResolve_CaseAndAccentInsensitive() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  RESTAURANTE  ", "Restaurantes"},
		{"Cafetería", "Restaurantes"},
		{"Médicos y Dentistas", "Médicos y dentistas"},
		{"TRANSPORTE AÉREO", "Transporte Aéreo"},
		{"ventas al detalle (retail)", "Ventas al detalle (Retail)"},
		{"Peluquería", "Salones de belleza"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			result := s.service.Resolve(tc.input)
			s.True(result.Found)
			s.Equal(tc.expected, result.Familia)
			s.Equal(models.ConfidenceExact, result.Confidence)
		})
	}
}

// Partial matches

func (s *RateServiceTestSuite) TestResolve_WordSynonym() {
	testCases := []struct {
		input    string
		expected string
		nota     string
	}{
		{"tienda de ropa", "Ventas al detalle (Retail)", "Tiendas"},
		{"mi gimnasio local", "Entretenimiento", "Clubes deportivos"},
		{"el mejor sushi", "Restaurantes", "Restaurantes de sushi"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			result := s.service.Resolve(tc.input)
			s.True(result.Found)
			s.Equal(tc.expected, result.Familia)
			s.Equal(tc.nota, result.Nota)
			s.Equal(models.ConfidenceWord, result.Confidence)
			s.Equal(models.LookupMethodWordSynonym, result.Method)
		})
	}
}

func (s *RateServiceTestSuite) TestResolve_WordSynonymFirstWordWins() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"hotel y restaurante", "Hoteles"},
		{"restaurante y hotel", "Restaurantes"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			result := s.service.Resolve(tc.input)
			s.True(result.Found)
			s.Equal(tc.expected, result.Familia)
			s.Equal(models.ConfidenceWord, result.Confidence)
			s.Equal(models.LookupMethodWordSynonym, result.Method)
		})
	}
}

func (s *RateServiceTestSuite) TestResolve_WordSynonymSkipsShortWords() {
	// "bar" is a key but sits inside a longer word here, so only the fuzzy pass sees it
	result := s.service.Resolve("un barecito")
	s.Equal(models.LookupMethodFuzzy, result.Method)
	s.Equal(models.ConfidenceFuzzy, result.Confidence)
}

func (s *RateServiceTestSuite) TestResolve_Fuzzy() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"taquerias", "Restaurantes"},
		{"pizzerias", "Restaurantes"},
		{"gimnasios", "Entretenimiento"},
		{"veterinarias", "Médicos y dentistas"},
		{"farm", "Farmacias"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			result := s.service.Resolve(tc.input)
			s.True(result.Found)
			s.Equal(tc.expected, result.Familia)
			s.Equal(models.ConfidenceFuzzy, result.Confidence)
			s.Equal(models.LookupMethodFuzzy, result.Method)
		})
	}
}

func (s *RateServiceTestSuite) TestResolve_FuzzyFollowsTableOrder() {
	// "barberias" contains "bar", which precedes "barberia" in the table
	result := s.service.Resolve("barberias")
	s.Equal("Restaurantes", result.Familia)
	s.Equal(models.ConfidenceFuzzy, result.Confidence)
}

// Fallback and floor

func (s *RateServiceTestSuite) TestResolve_NoMatchFallsBackToDefault() {
	result := s.service.Resolve("xyzabc123")

	s.False(result.Found)
	s.Equal(models.DefaultFamilia, result.Familia)
	s.Equal(models.DefaultNota, result.Nota)
	s.Equal(models.ConfidenceNone, result.Confidence)
	s.Equal(models.LookupMethodFallback, result.Method)
	s.requireRates(result, "1.88", "2.25", "3.30")
	s.True(result.HasCategory())
}

func (s *RateServiceTestSuite) TestResolve_TooShort() {
	inputs := []string{"", "a", " ", "  b  ", "é", "!!", "-"}

	for _, input := range inputs {
		result := s.service.Resolve(input)
		s.False(result.Found, "input %q", input)
		s.Equal(models.ConfidenceNone, result.Confidence)
		s.Empty(result.Familia)
		s.Nil(result.Rates)
		s.Empty(result.Nota)
		s.Equal(models.LookupMethodTooShort, result.Method)
		s.False(result.HasCategory())
	}
}

func (s *RateServiceTestSuite) TestResolve_TwoCharacterInputIsSearched() {
	result := s.service.Resolve("zq")
	s.Equal(models.LookupMethodFallback, result.Method)
	s.Equal(models.DefaultFamilia, result.Familia)
}

// Invariants

func (s *RateServiceTestSuite) TestResolve_MarginInvariant() {
	inputs := []string{"restaurante", "hotel", "tienda de ropa", "taquerias", "xyzabc123", "Gobierno"}

	for _, input := range inputs {
		result := s.service.Resolve(input)
		s.Require().NotNil(result.Rates, "input %q", input)

		category, exists := s.service.Category(result.Familia)
		s.Require().True(exists)

		s.True(category.Base.Credito.Add(MarginCredito).Equal(result.Rates.Credito))
		s.True(category.Base.Debito.Add(MarginDebito).Equal(result.Rates.Debito))
		s.True(category.Base.Amex.Add(MarginAmex).Equal(result.Rates.Amex))
		s.True(category.Base.Internacional.Equal(result.Rates.Internacional))
	}
}

func (s *RateServiceTestSuite) TestResolve_DoesNotMutateBaseRates() {
	before, _ := s.service.Category("Restaurantes")
	s.service.Resolve("restaurante")
	s.service.Resolve("restaurante")
	after, _ := s.service.Category("Restaurantes")

	s.True(before.Base.Credito.Equal(after.Base.Credito))
	s.True(decimal.RequireFromString("2.30").Equal(after.Base.Credito))
}

func (s *RateServiceTestSuite) TestResolve_Idempotent() {
	for _, input := range []string{"restaurante", "tienda de ropa", "xyzabc123", "a"} {
		s.Equal(s.service.Resolve(input), s.service.Resolve(input))
	}
}

func (s *RateServiceTestSuite) TestResolve_ConcurrentCalls() {
	var wg sync.WaitGroup
	results := make([]*models.LookupResult, 50)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.service.Resolve("cafeteria")
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		s.Equal("Restaurantes", result.Familia)
		s.Equal(models.ConfidenceExact, result.Confidence)
	}
}

// Suggestions

func (s *RateServiceTestSuite) TestSuggest_Partial() {
	s.Equal([]string{"cafeteria", "cafe"}, s.service.Suggest("caf"))
}

func (s *RateServiceTestSuite) TestSuggest_InputContainsKey() {
	s.Equal([]string{"gym"}, s.service.Suggest("mi gym favorito"))
}

func (s *RateServiceTestSuite) TestSuggest_TruncatesToFive() {
	suggestions := s.service.Suggest("er")
	s.Equal([]string{"cafeteria", "taqueria", "pizzeria", "peluqueria", "barberia"}, suggestions)
}

func (s *RateServiceTestSuite) TestSuggest_TooShort() {
	s.Empty(s.service.Suggest("a"))
	s.Empty(s.service.Suggest(""))
	s.NotNil(s.service.Suggest("a"))
}

func (s *RateServiceTestSuite) TestSuggest_NoMatch() {
	s.Empty(s.service.Suggest("xyzabc"))
}

// Metrics

func (s *RateServiceTestSuite) TestResolve_RecordsLookupMethod() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().IncrementCounter("rate_lookup", map[string]string{"method": models.LookupMethodExactSynonym})
	metrics.EXPECT().IncrementCounter("rate_lookup", map[string]string{"method": models.LookupMethodTooShort})
	metrics.EXPECT().IncrementCounter("rate_suggestions", gomock.Nil())

	service := NewRateService(metrics)
	service.Resolve("restaurante")
	service.Resolve("a")
	service.Suggest("caf")
}
