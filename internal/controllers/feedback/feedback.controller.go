package feedbackController

import (
	"context"
	"errors"
	"time"

	"driftline/internal/database"
	. "driftline/internal/models"
	"driftline/internal/repositories"
	"driftline/internal/types"
	"driftline/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedbackWindowBefore and FeedbackWindowAfter bound how far from a given
// day feedback is considered relevant when listing by location.
const (
	FeedbackWindowBefore = 30 * 24 * time.Hour
	FeedbackWindowAfter  = 24 * time.Hour
)

// FeedbackPolicy decides whether feedback may still be submitted for a
// booking at the given time. A nil policy allows it always.
type FeedbackPolicy func(booking *Booking, now time.Time) error

type FeedbackController struct {
	feedbackRepo   repositories.FeedbackRepository
	bookingRepo    repositories.BookingRepository
	feedbackPolicy FeedbackPolicy
	db             database.DB
	log            logger.Logger
}

type FeedbackControllerInterface interface {
	CreateFeedback(ctx context.Context, bookingID int, request *CreateFeedbackRequest) (*Feedback, error)
	GetFeedbackForLocation(ctx context.Context, locationID int, date time.Time) ([]*Feedback, error)
}

type CreateFeedbackRequest struct {
	Title    string         `json:"title"     validate:"required"`
	Comment  *string        `json:"comment"`
	ImageURL *string        `json:"image_url"`
	Coords   datatypes.JSON `json:"coords"`
}

func New(
	repos repositories.Repository,
	db database.DB,
) FeedbackControllerInterface {
	return &FeedbackController{
		feedbackRepo: repos.Feedback,
		bookingRepo:  repos.Booking,
		db:           db,
		log:          logger.New("feedbackController"),
	}
}

// CreateFeedback records feedback against a booking. The location is taken
// from the booking, never from the caller, and the submission time is
// stamped server side. No authentication is required.
func (c *FeedbackController) CreateFeedback(
	ctx context.Context,
	bookingID int,
	request *CreateFeedbackRequest,
) (*Feedback, error) {
	log := c.log.Function("CreateFeedback")

	booking, err := c.bookingRepo.GetByID(ctx, c.db.SQL, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrBookingNotFound
		}
		return nil, log.Err("failed to get booking", err, "bookingID", bookingID)
	}

	if c.feedbackPolicy != nil {
		if err := c.feedbackPolicy(booking, time.Now()); err != nil {
			return nil, err
		}
	}

	title, titleModified := utils.CleanUTF8(request.Title)
	feedback := &Feedback{
		Title:      title,
		ImageURL:   request.ImageURL,
		Coords:     request.Coords,
		BookingID:  bookingID,
		LocationID: booking.LocationID,
	}
	commentModified := false
	if request.Comment != nil {
		comment, modified := utils.CleanUTF8(*request.Comment)
		feedback.Comment = &comment
		commentModified = modified
	}
	if titleModified || commentModified {
		log.Warn("stripped invalid bytes from feedback text", "bookingID", bookingID)
	}

	if err := c.feedbackRepo.Create(ctx, c.db.SQL, feedback); err != nil {
		return nil, log.Err("failed to create feedback", err, "bookingID", bookingID)
	}

	return feedback, nil
}

// GetFeedbackForLocation lists feedback for a location submitted inside the
// window around the given day: thirty days back through one day forward,
// both ends inclusive, so feedback posted the morning after a cleanup still
// counts.
func (c *FeedbackController) GetFeedbackForLocation(
	ctx context.Context,
	locationID int,
	date time.Time,
) ([]*Feedback, error) {
	log := c.log.Function("GetFeedbackForLocation")

	from := date.Add(-FeedbackWindowBefore)
	to := date.Add(FeedbackWindowAfter)

	feedback, err := c.feedbackRepo.GetByLocationWindow(ctx, c.db.SQL, locationID, from, to)
	if err != nil {
		return nil, log.Err("failed to get feedback", err, "locationID", locationID)
	}

	return feedback, nil
}
