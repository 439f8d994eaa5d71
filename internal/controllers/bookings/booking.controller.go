package bookingController

import (
	"context"
	"errors"
	"time"

	"driftline/internal/database"
	. "driftline/internal/models"
	"driftline/internal/repositories"
	"driftline/internal/services"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AttendancePolicy decides whether attendance may still be recorded for a
// booking at the given time. A nil policy allows it always.
type AttendancePolicy func(booking *Booking, now time.Time) error

type BookingController struct {
	bookingRepo        repositories.BookingRepository
	locationRepo       repositories.LocationRepository
	transactionService *services.TransactionService
	attendancePolicy   AttendancePolicy
	db                 database.DB
	log                logger.Logger
}

type BookingControllerInterface interface {
	GetPublicBookings(ctx context.Context, skip, limit int) ([]*Booking, error)
	GetPublicBooking(ctx context.Context, bookingID int) (*Booking, error)
	GetUserBookings(ctx context.Context, user *User) ([]*Booking, error)
	CreateBooking(ctx context.Context, user *User, request *CreateBookingRequest) (*Booking, error)
	UpdateBooking(ctx context.Context, user *User, bookingID int, request *UpdateBookingRequest) (*Booking, error)
	DeleteBooking(ctx context.Context, user *User, bookingID int) error
	IncrementAttendance(ctx context.Context, bookingID int) (*Booking, error)
}

// CreateBookingRequest carries the fields a volunteer submits for a new
// booking. Status is never accepted at creation; new bookings start
// scheduled.
type CreateBookingRequest struct {
	Date          time.Time `json:"date"           validate:"required"`
	StartTime     string    `json:"start_time"     validate:"required"`
	EndTime       string    `json:"end_time"       validate:"required"`
	EstVolunteers string    `json:"est_volunteers"`
	NumVolunteers int       `json:"num_volunteers"`
	LocationID    int       `json:"location_id"    validate:"required"`
}

// UpdateBookingRequest replaces the booking's schedule fields and status
// wholesale. CollectedWeight is only written when supplied.
type UpdateBookingRequest struct {
	Date            time.Time        `json:"date"`
	StartTime       string           `json:"start_time"`
	EndTime         string           `json:"end_time"`
	EstVolunteers   string           `json:"est_volunteers"`
	NumVolunteers   int              `json:"num_volunteers"`
	Status          string           `json:"status"`
	CollectedWeight *decimal.Decimal `json:"collected_weight,omitempty"`
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) BookingControllerInterface {
	return &BookingController{
		bookingRepo:        repos.Booking,
		locationRepo:       repos.Location,
		transactionService: services.Transaction,
		db:                 db,
		log:                logger.New("bookingController"),
	}
}

func (c *BookingController) GetPublicBookings(
	ctx context.Context,
	skip, limit int,
) ([]*Booking, error) {
	log := c.log.Function("GetPublicBookings")

	bookings, err := c.bookingRepo.GetAll(ctx, c.db.SQL, skip, limit)
	if err != nil {
		return nil, log.Err("failed to get bookings", err)
	}

	return bookings, nil
}

func (c *BookingController) GetPublicBooking(
	ctx context.Context,
	bookingID int,
) (*Booking, error) {
	log := c.log.Function("GetPublicBooking")

	booking, err := c.bookingRepo.GetByID(ctx, c.db.SQL, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrBookingNotFound
		}
		return nil, log.Err("failed to get booking", err, "bookingID", bookingID)
	}

	return booking, nil
}

func (c *BookingController) GetUserBookings(
	ctx context.Context,
	user *User,
) ([]*Booking, error) {
	log := c.log.Function("GetUserBookings")

	bookings, err := c.bookingRepo.GetByUserID(ctx, c.db.SQL, user.ID)
	if err != nil {
		return nil, log.Err("failed to get user bookings", err, "userID", user.ID)
	}

	return bookings, nil
}

// CreateBooking books a cleanup slot for the user. The target location must
// exist.
func (c *BookingController) CreateBooking(
	ctx context.Context,
	user *User,
	request *CreateBookingRequest,
) (*Booking, error) {
	log := c.log.Function("CreateBooking")

	if _, err := c.locationRepo.GetByID(ctx, request.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrLocationNotFound
		}
		return nil, log.Err("failed to check location", err, "locationID", request.LocationID)
	}

	booking := &Booking{
		Date:          request.Date,
		StartTime:     request.StartTime,
		EndTime:       request.EndTime,
		EstVolunteers: request.EstVolunteers,
		NumVolunteers: request.NumVolunteers,
		LocationID:    request.LocationID,
		UserID:        &user.ID,
		External:      false,
	}

	if err := c.bookingRepo.Create(ctx, c.db.SQL, booking); err != nil {
		return nil, log.Err("failed to create booking", err, "userID", user.ID)
	}

	log.Info("Booking created", "bookingID", booking.ID, "userID", user.ID)

	return c.bookingRepo.GetByID(ctx, c.db.SQL, booking.ID)
}

// UpdateBooking rewrites the booking's schedule fields and status. Only the
// booking's owner may update it; the ownership check and the write run in
// one transaction.
func (c *BookingController) UpdateBooking(
	ctx context.Context,
	user *User,
	bookingID int,
	request *UpdateBookingRequest,
) (*Booking, error) {
	log := c.log.Function("UpdateBooking")

	updates := make(map[string]interface{})
	updates["date"] = request.Date
	updates["start_time"] = request.StartTime
	updates["end_time"] = request.EndTime
	updates["est_volunteers"] = request.EstVolunteers
	updates["num_volunteers"] = request.NumVolunteers
	updates["status"] = request.Status

	if request.CollectedWeight != nil {
		updates["collected_weight"] = request.CollectedWeight
	}

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		booking, err := c.bookingRepo.GetByID(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrBookingNotFound
			}
			return err
		}

		if !booking.OwnedBy(user.ID) {
			return types.ErrBookingModifyForbidden
		}

		return c.bookingRepo.Update(ctx, tx, bookingID, updates)
	})
	if err != nil {
		var appErr *types.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, log.Err("failed to update booking", err, "bookingID", bookingID, "userID", user.ID)
	}

	log.Info("Booking updated", "bookingID", bookingID, "userID", user.ID)

	return c.bookingRepo.GetByID(ctx, c.db.SQL, bookingID)
}

// DeleteBooking removes a booking and its feedback. Only the owner may
// delete it.
func (c *BookingController) DeleteBooking(
	ctx context.Context,
	user *User,
	bookingID int,
) error {
	log := c.log.Function("DeleteBooking")

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		booking, err := c.bookingRepo.GetByID(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrBookingNotFound
			}
			return err
		}

		if !booking.OwnedBy(user.ID) {
			return types.ErrBookingModifyForbidden
		}

		return c.bookingRepo.Delete(ctx, tx, bookingID)
	})
	if err != nil {
		var appErr *types.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return log.Err("failed to delete booking", err, "bookingID", bookingID, "userID", user.ID)
	}

	log.Info("Booking deleted", "bookingID", bookingID, "userID", user.ID)

	return nil
}

// IncrementAttendance adds exactly one to the booking's attendance counter.
// The write is a single atomic UPDATE, so concurrent calls never lose
// increments. No authentication is required.
func (c *BookingController) IncrementAttendance(
	ctx context.Context,
	bookingID int,
) (*Booking, error) {
	log := c.log.Function("IncrementAttendance")

	if c.attendancePolicy != nil {
		booking, err := c.bookingRepo.GetByID(ctx, c.db.SQL, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, types.ErrBookingNotFound
			}
			return nil, log.Err("failed to get booking", err, "bookingID", bookingID)
		}
		if err := c.attendancePolicy(booking, time.Now()); err != nil {
			return nil, err
		}
	}

	if err := c.bookingRepo.IncrementAttendance(ctx, c.db.SQL, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrBookingNotFound
		}
		return nil, log.Err("failed to increment attendance", err, "bookingID", bookingID)
	}

	return c.bookingRepo.GetByID(ctx, c.db.SQL, bookingID)
}
