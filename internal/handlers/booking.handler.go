package handlers

import (
	"driftline/internal/app"
	bookingController "driftline/internal/controllers/bookings"
	feedbackController "driftline/internal/controllers/feedback"
	"driftline/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Handler
	bookingController  bookingController.BookingControllerInterface
	feedbackController feedbackController.FeedbackControllerInterface
}

func NewBookingHandler(app app.App, router fiber.Router) *BookingHandler {
	log := logger.New("handlers").File("booking_handler")
	return &BookingHandler{
		bookingController:  app.Controllers.Booking,
		feedbackController: app.Controllers.Feedback,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *BookingHandler) Register() {
	bookings := h.router.Group("/bookings")

	// Public endpoints
	bookings.Get("/public", h.getPublicBookings)
	bookings.Get("/public/:id", h.getPublicBooking)
	bookings.Post("/:id/feedback", h.createFeedback)
	bookings.Put("/:id/attendance", h.incrementAttendance)

	// Protected endpoints - require a valid bearer token
	bookings.Get("", h.middleware.RequireAuth(), h.getUserBookings)
	bookings.Post("", h.middleware.RequireAuth(), h.createBooking)
	bookings.Put("/:id", h.middleware.RequireAuth(), h.updateBooking)
	bookings.Delete("/:id", h.middleware.RequireAuth(), h.deleteBooking)
}

func (h *BookingHandler) getPublicBookings(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("booking_handler").Function("getPublicBookings")

	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	bookings, err := h.bookingController.GetPublicBookings(c.Context(), skip, limit)
	if err != nil {
		_ = log.Err("Failed to retrieve bookings", err)
		return respondError(c, err)
	}

	return c.JSON(bookings)
}

func (h *BookingHandler) getPublicBooking(c *fiber.Ctx) error {
	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}

	booking, err := h.bookingController.GetPublicBooking(c.Context(), bookingID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(booking)
}

func (h *BookingHandler) getUserBookings(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("booking_handler").Function("getUserBookings")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Could not validate credentials",
		})
	}

	bookings, err := h.bookingController.GetUserBookings(c.Context(), user)
	if err != nil {
		_ = log.Err("Failed to retrieve user bookings", err, "userID", user.ID)
		return respondError(c, err)
	}

	return c.JSON(bookings)
}

func (h *BookingHandler) createBooking(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("booking_handler").Function("createBooking")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Could not validate credentials",
		})
	}

	var req bookingController.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	booking, err := h.bookingController.CreateBooking(c.Context(), user, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(booking)
}

func (h *BookingHandler) updateBooking(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("booking_handler").Function("updateBooking")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Could not validate credentials",
		})
	}

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}

	var req bookingController.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "bookingID", bookingID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	booking, err := h.bookingController.UpdateBooking(c.Context(), user, bookingID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(booking)
}

func (h *BookingHandler) deleteBooking(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Could not validate credentials",
		})
	}

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}

	if err := h.bookingController.DeleteBooking(c.Context(), user, bookingID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Booking deleted successfully",
	})
}

// createFeedback records volunteer feedback against a booking. No
// authentication is required; anyone who attended can report back.
func (h *BookingHandler) createFeedback(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("booking_handler").Function("createFeedback")

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}

	var req feedbackController.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err, "bookingID", bookingID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	feedback, err := h.feedbackController.CreateFeedback(c.Context(), bookingID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feedback)
}

func (h *BookingHandler) incrementAttendance(c *fiber.Ctx) error {
	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}

	booking, err := h.bookingController.IncrementAttendance(c.Context(), bookingID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(booking)
}
