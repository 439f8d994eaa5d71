package handlers

import (
	"driftline/internal/app"
	locationController "driftline/internal/controllers/locations"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	Handler
	locationController locationController.LocationControllerInterface
}

func NewLocationHandler(app app.App, router fiber.Router) *LocationHandler {
	log := logger.New("handlers").File("location_handler")
	return &LocationHandler{
		locationController: app.Controllers.Location,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *LocationHandler) Register() {
	locations := h.router.Group("/locations")

	locations.Get("", h.getLocations)
	locations.Get("/:id", h.getLocation)
}

// getLocations lists every cleanup location with its cleanliness score for
// the requested day.
func (h *LocationHandler) getLocations(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("location_handler").Function("getLocations")

	date, err := parseDateDay(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid date_day, expected YYYY-MM-DD",
		})
	}

	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	locations, err := h.locationController.GetLocations(c.Context(), date, skip, limit)
	if err != nil {
		_ = log.Err("Failed to retrieve locations", err)
		return respondError(c, err)
	}

	return c.JSON(locations)
}

func (h *LocationHandler) getLocation(c *fiber.Ctx) error {
	locationID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid location ID",
		})
	}

	date, err := parseDateDay(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid date_day, expected YYYY-MM-DD",
		})
	}

	location, err := h.locationController.GetLocation(c.Context(), locationID, date)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(location)
}
