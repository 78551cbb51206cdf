package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"avoqado-web/internal/config"
	"avoqado-web/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the real pricing and chat services; contact is left to the mocked suite
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	rateService := services.NewRateService(nil)
	chatService := services.NewChatService(rateService, nil, nil, nil, config.ChatConfig{HistoryWindow: 6, PricingContextWindow: 4})

	e := newTestEcho()
	RegisterRoutes(e, Handlers{
		Health:  NewHealthCheckHandler(stubPinger{}, ""),
		Pricing: NewPricingHandler(rateService, services.NewPlanService(rateService)),
		Chat:    NewChatHandler(chatService, 1000),
		Contact: NewContactHandler(nil),
	})
	return e
}

func TestRegisterRoutes(t *testing.T) {
	e := newTestServer(t)

	registered := map[string]bool{}
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /api/v1/pricing/rates",
		"GET /api/v1/pricing/suggestions",
		"GET /api/v1/pricing/categories",
		"GET /api/v1/pricing/plans",
		"GET /api/v1/pricing/plans/:businessType",
		"POST /api/chat",
		"POST /api/contact",
		"GET /api/contact/:id",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestRoutes_EndToEnd(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		status   int
		contains []string
	}{
		{
			name:     "word match",
			method:   http.MethodGet,
			target:   "/api/v1/pricing/rates?q=tienda%20de%20ropa",
			status:   http.StatusOK,
			contains: []string{`"familia":"Ventas al detalle (Retail)"`, `"confidence":85`},
		},
		{
			name:     "unmatched input falls back to the general category",
			method:   http.MethodGet,
			target:   "/api/v1/pricing/rates?q=xyzzy",
			status:   http.StatusOK,
			contains: []string{`"found":false`, `"familia":"Otros"`},
		},
		{
			name:     "suggestions",
			method:   http.MethodGet,
			target:   "/api/v1/pricing/suggestions?q=caf",
			status:   http.StatusOK,
			contains: []string{`"suggestions":["cafeteria","cafe"]`},
		},
		{
			name:     "plans",
			method:   http.MethodGet,
			target:   "/api/v1/pricing/plans/restaurants",
			status:   http.StatusOK,
			contains: []string{"desde 1.78% + $3", "Negociable"},
		},
		{
			name:     "unknown plan",
			method:   http.MethodGet,
			target:   "/api/v1/pricing/plans/gyms",
			status:   http.StatusNotFound,
			contains: []string{"PRICING_001"},
		},
		{
			name:     "chat greeting",
			method:   http.MethodPost,
			target:   "/api/chat",
			body:     `{"message":"hola"}`,
			status:   http.StatusOK,
			contains: []string{`"success":true`, `"source":"local"`},
		},
		{
			name:     "chat fallback without provider",
			method:   http.MethodPost,
			target:   "/api/chat",
			body:     `{"message":"quiero vender nachos en la luna"}`,
			status:   http.StatusOK,
			contains: []string{`"source":"fallback"`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			} else {
				req = httptest.NewRequest(tc.method, tc.target, nil)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			for _, want := range tc.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
