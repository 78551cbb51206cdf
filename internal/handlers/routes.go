package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler served by the API
type Handlers struct {
	Health  *HealthCheckHandler
	Pricing *PricingHandler
	Chat    *ChatHandler
	Contact *ContactHandler
}

// RegisterRoutes mounts the public API. Middleware passed in apiMiddleware only applies under /api.
func RegisterRoutes(e *echo.Echo, h Handlers, apiMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api", apiMiddleware...)

	pricing := api.Group("/v1/pricing")
	pricing.GET("/rates", h.Pricing.LookupRates)
	pricing.GET("/suggestions", h.Pricing.GetSuggestions)
	pricing.GET("/categories", h.Pricing.ListCategories)
	pricing.GET("/plans", h.Pricing.ListPlans)
	pricing.GET("/plans/:businessType", h.Pricing.GetPlans)

	api.POST("/chat", h.Chat.Chat)

	api.POST("/contact", h.Contact.SubmitContact)
	api.GET("/contact/:id", h.Contact.GetContactStatus)
}
