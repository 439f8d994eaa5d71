package handlers

import (
	"driftline/internal/app"
	feedbackController "driftline/internal/controllers/feedback"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	Handler
	feedbackController feedbackController.FeedbackControllerInterface
}

func NewFeedbackHandler(app app.App, router fiber.Router) *FeedbackHandler {
	log := logger.New("handlers").File("feedback_handler")
	return &FeedbackHandler{
		feedbackController: app.Controllers.Feedback,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *FeedbackHandler) Register() {
	feedback := h.router.Group("/feedback")

	feedback.Get("", h.getFeedback)
}

// getFeedback lists feedback for a location inside the relevance window
// around a day, defaulting to today.
func (h *FeedbackHandler) getFeedback(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("feedback_handler").Function("getFeedback")

	locationID := c.QueryInt("location_id", 0)
	if locationID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "location_id is required",
		})
	}

	date, err := parseDateDay(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid date_day, expected YYYY-MM-DD",
		})
	}

	feedback, err := h.feedbackController.GetFeedbackForLocation(c.Context(), locationID, date)
	if err != nil {
		_ = log.Err("Failed to retrieve feedback", err, "locationID", locationID)
		return respondError(c, err)
	}

	return c.JSON(feedback)
}
