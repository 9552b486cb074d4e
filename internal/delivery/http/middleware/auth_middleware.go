package middleware

import (
	"strings"

	"snsbridge/config"
	"snsbridge/internal/delivery/http/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const userIDContextKey = "userID"

// AuthMiddleware validates the bearer tokens the host application mints for
// its logged-in users.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "invalid_access", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "invalid_access", "Invalid token format, must be Bearer token")
		}

		token, err := m.validateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "invalid_access", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "invalid_access", "Failed to parse token claims")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "invalid_access", "User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, "invalid_access", "Invalid user ID format in token")
		}

		c.Set(userIDContextKey, userID)

		return next(c)
	}
}

func (m *AuthMiddleware) validateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	return token, nil
}

// GetUserID extracts the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDContextKey).(uuid.UUID)

	return userID, ok
}
