package feedbackController

import (
	"context"
	"errors"
	"testing"
	"time"

	"driftline/internal/database"
	. "driftline/internal/models"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeBookingRepo struct {
	bookings map[int]*Booking
}

func (f *fakeBookingRepo) GetAll(
	ctx context.Context,
	tx *gorm.DB,
	skip int,
	limit int,
) ([]*Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(
	ctx context.Context,
	tx *gorm.DB,
	userID int,
) ([]*Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	return nil
}

func (f *fakeBookingRepo) IncrementAttendance(ctx context.Context, tx *gorm.DB, id int) error {
	return nil
}

type fakeFeedbackRepo struct {
	created    []*Feedback
	windowFrom time.Time
	windowTo   time.Time
	stored     []*Feedback
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, tx *gorm.DB, feedback *Feedback) error {
	f.created = append(f.created, feedback)
	return nil
}

func (f *fakeFeedbackRepo) GetByLocationWindow(
	ctx context.Context,
	tx *gorm.DB,
	locationID int,
	from time.Time,
	to time.Time,
) ([]*Feedback, error) {
	f.windowFrom = from
	f.windowTo = to
	return f.stored, nil
}

func newFeedbackTestController() (*FeedbackController, *fakeBookingRepo, *fakeFeedbackRepo) {
	bookingRepo := &fakeBookingRepo{bookings: make(map[int]*Booking)}
	feedbackRepo := &fakeFeedbackRepo{}

	controller := &FeedbackController{
		feedbackRepo: feedbackRepo,
		bookingRepo:  bookingRepo,
		db:           database.DB{},
		log:          logger.New("feedbackController"),
	}

	return controller, bookingRepo, feedbackRepo
}

func TestCreateFeedback(t *testing.T) {
	controller, bookingRepo, feedbackRepo := newFeedbackTestController()
	bookingRepo.bookings[7] = &Booking{
		BaseModel:  BaseModel{ID: 7},
		LocationID: 3,
	}

	comment := "Lots of rope fragments"
	feedback, err := controller.CreateFeedback(context.Background(), 7, &CreateFeedbackRequest{
		Title:   "Busy morning",
		Comment: &comment,
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, feedback.BookingID)
	assert.Equal(t, 3, feedback.LocationID)
	assert.Equal(t, "Busy morning", feedback.Title)
	assert.Len(t, feedbackRepo.created, 1)
}

func TestCreateFeedback_UnknownBooking(t *testing.T) {
	controller, _, _ := newFeedbackTestController()

	_, err := controller.CreateFeedback(context.Background(), 42, &CreateFeedbackRequest{
		Title: "Busy morning",
	})

	assert.ErrorIs(t, err, types.ErrBookingNotFound)
}

func TestCreateFeedback_StripsInvalidBytes(t *testing.T) {
	controller, bookingRepo, _ := newFeedbackTestController()
	bookingRepo.bookings[7] = &Booking{
		BaseModel:  BaseModel{ID: 7},
		LocationID: 3,
	}

	comment := "plastic\x00bottles"
	feedback, err := controller.CreateFeedback(context.Background(), 7, &CreateFeedbackRequest{
		Title:   "debris\x00report",
		Comment: &comment,
	})

	assert.NoError(t, err)
	assert.Equal(t, "debrisreport", feedback.Title)
	if assert.NotNil(t, feedback.Comment) {
		assert.Equal(t, "plasticbottles", *feedback.Comment)
	}
}

func TestCreateFeedback_PolicyDenied(t *testing.T) {
	controller, bookingRepo, feedbackRepo := newFeedbackTestController()
	bookingRepo.bookings[7] = &Booking{
		BaseModel:  BaseModel{ID: 7},
		LocationID: 3,
	}

	policyErr := errors.New("feedback window closed")
	controller.feedbackPolicy = func(booking *Booking, now time.Time) error {
		return policyErr
	}

	_, err := controller.CreateFeedback(context.Background(), 7, &CreateFeedbackRequest{
		Title: "Busy morning",
	})

	assert.ErrorIs(t, err, policyErr)
	assert.Empty(t, feedbackRepo.created)
}

func TestGetFeedbackForLocation_Window(t *testing.T) {
	controller, _, feedbackRepo := newFeedbackTestController()
	feedbackRepo.stored = []*Feedback{
		{BaseModel: BaseModel{ID: 1}, LocationID: 3, Title: "Busy morning"},
	}

	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	feedback, err := controller.GetFeedbackForLocation(context.Background(), 3, date)

	assert.NoError(t, err)
	assert.Len(t, feedback, 1)
	assert.True(t, feedbackRepo.windowFrom.Equal(time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)))
	assert.True(t, feedbackRepo.windowTo.Equal(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)))
}
