package handlers

import (
	"errors"
	"time"

	"driftline/internal/app"
	"driftline/internal/handlers/middleware"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	HealthHandler(router)
	NewAuthHandler(*app, router).Register()
	NewStorageHandler(*app, router).Register()

	api := router.Group("/api")
	NewBookingHandler(*app, api).Register()
	NewLocationHandler(*app, api).Register()
	NewFeedbackHandler(*app, api).Register()

	return nil
}

// statusFor maps a failure kind to its HTTP status. The mapping is part of
// the public API contract.
func statusFor(kind types.ErrorKind) int {
	switch kind {
	case types.ErrorKindNotFound:
		return fiber.StatusNotFound
	case types.ErrorKindForbidden:
		return fiber.StatusForbidden
	case types.ErrorKindUnauthenticated, types.ErrorKindUpstreamAuth:
		return fiber.StatusUnauthorized
	case types.ErrorKindConflict, types.ErrorKindInactiveAccount:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError renders a controller failure as {"message": ...} with the
// status its kind dictates. Errors outside the taxonomy become an opaque 500.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		return c.Status(statusFor(appErr.Kind)).JSON(appErr)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

// parseDateDay reads the date_day query parameter as a calendar day,
// defaulting to the moment the request is served.
func parseDateDay(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date_day")
	if raw == "" {
		return time.Now(), nil
	}

	return time.Parse("2006-01-02", raw)
}
