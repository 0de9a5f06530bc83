package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig returns CORS middleware restricted to the configured frontend
// domain. Without one, local frontend dev servers are allowed so the upload
// form can talk to the backend directly.
func CORSConfig(domain string) echo.MiddlewareFunc {
	if domain == "" {
		return middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
			AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			// The upload form reads the suggested filename and the batch
			// statistics off the response.
			ExposeHeaders: []string{echo.HeaderContentDisposition, "X-Recognized-Files", "X-Unrecognized-Files"},
			MaxAge:        86400,
		})
	}

	allowedOrigins := []string{"https://" + domain}
	if strings.Contains(domain, "localhost") || strings.Contains(domain, "127.0.0.1") {
		allowedOrigins = append(allowedOrigins, "http://"+domain)
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{echo.HeaderContentDisposition, "X-Recognized-Files", "X-Unrecognized-Files"},
		MaxAge:        86400,
	})
}

// SecurityHeaders adds security headers to all responses.
func SecurityHeaders(domain string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-Content-Type-Options", "nosniff")
			c.Response().Header().Set("X-Frame-Options", "SAMEORIGIN")
			c.Response().Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// API-only service: deny everything except being framed by the
			// configured frontend.
			csp := "default-src 'none'; frame-ancestors 'self'"
			if domain != "" && !strings.Contains(domain, "localhost") {
				csp = "default-src 'none'; frame-ancestors https://" + domain
			}
			c.Response().Header().Set("Content-Security-Policy", csp)

			// HSTS only when the request actually arrived over HTTPS.
			if c.Request().Header.Get("X-Forwarded-Proto") == "https" {
				c.Response().Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			return next(c)
		}
	}
}
