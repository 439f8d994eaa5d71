package middleware

import (
	"context"
	"strings"

	"driftline/internal/models"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

// AuthContextKey is used to store auth info in context
type AuthContextKey string

const (
	UserKey       AuthContextKey = "user"
	UserKeyFiber  string         = "User"  // Fiber context key (string)
	TokenKeyFiber string         = "Token" // raw bearer token, needed for logout revocation
)

// RequireAuth validates the bearer token, rejects revoked tokens, and loads
// the account it names. Every failure mode answers 401 with the same body so
// callers cannot probe which accounts exist.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.New("middleware").TraceFromContext(c.Context()).Function("RequireAuth")

		token := bearerToken(c)
		if token == "" {
			log.Info("missing or malformed authorization header")
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrInvalidCredentials)
		}

		email, err := m.tokenService.ValidateToken(token)
		if err != nil {
			log.Info("token validation failed", "error", err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrInvalidCredentials)
		}

		if m.sessionService.IsTokenRevoked(c.Context(), token) {
			log.Info("revoked token presented", "email", email)
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrInvalidCredentials)
		}

		user, err := m.userRepo.GetByEmail(c.Context(), email)
		if err != nil || user == nil {
			log.Info("token subject has no account", "email", email)
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrInvalidCredentials)
		}

		// Store user in Fiber context
		c.Locals(UserKeyFiber, user)
		c.Locals(TokenKeyFiber, token)

		// Add to Go context for services (preserve trace ID from TraceID middleware)
		ctx := context.WithValue(c.UserContext(), UserKey, user)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// RequireActive rejects disabled accounts. It must run after RequireAuth.
func (m *Middleware) RequireActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrInvalidCredentials)
		}

		if !user.IsActive {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrInactiveUser)
		}

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "bearer") {
		return ""
	}

	return tokenParts[1]
}

// GetUser extracts user from Fiber context
func GetUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(UserKeyFiber).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetToken extracts the raw bearer token from Fiber context
func GetToken(c *fiber.Ctx) string {
	token, ok := c.Locals(TokenKeyFiber).(string)
	if !ok {
		return ""
	}
	return token
}
