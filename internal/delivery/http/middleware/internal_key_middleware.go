package middleware

import (
	"crypto/subtle"

	"snsbridge/config"
	"snsbridge/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HeaderInternalAPIKey carries the shared secret the host application sends
// on server-to-server calls.
const HeaderInternalAPIKey = "X-Internal-Api-Key"

// InternalKeyMiddleware guards endpoints only the host application may call.
type InternalKeyMiddleware struct {
	cfg *config.Config
}

// NewInternalKeyMiddleware is the constructor for InternalKeyMiddleware.
func NewInternalKeyMiddleware(cfg *config.Config) *InternalKeyMiddleware {
	return &InternalKeyMiddleware{cfg: cfg}
}

// Require rejects requests that do not present the configured internal key.
func (m *InternalKeyMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		expected := m.cfg.Auth.InternalAPIKey
		if expected == "" {
			return response.Forbidden(c, "invalid_access", "Internal API key is not configured")
		}

		provided := c.Request().Header.Get(HeaderInternalAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			return response.Forbidden(c, "invalid_access", "Invalid internal API key")
		}

		return next(c)
	}
}
