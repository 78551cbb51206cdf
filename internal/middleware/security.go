package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses. Pricing reads may be cached
// briefly; everything else is marked no-store.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if c.Request().Method == http.MethodGet && isCacheable(c.Path()) {
				h.Set("Cache-Control", "public, max-age=300")
			} else {
				h.Set("Cache-Control", "no-store")
			}

			return next(c)
		}
	}
}

func isCacheable(path string) bool {
	switch path {
	case "/api/v1/pricing/categories",
		"/api/v1/pricing/plans",
		"/api/v1/pricing/plans/:businessType":
		return true
	default:
		return false
	}
}
