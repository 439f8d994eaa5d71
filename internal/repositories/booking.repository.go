package repositories

import (
	"context"
	. "driftline/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type BookingRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB, skip int, limit int) ([]*Booking, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Booking, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID int) ([]*Booking, error)
	Create(ctx context.Context, tx *gorm.DB, booking *Booking) error
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
	IncrementAttendance(ctx context.Context, tx *gorm.DB, id int) error
}

type bookingRepository struct {
	log logger.Logger
}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{
		log: logger.New("bookingRepository"),
	}
}

func (r *bookingRepository) GetAll(
	ctx context.Context,
	tx *gorm.DB,
	skip int,
	limit int,
) ([]*Booking, error) {
	log := r.log.Function("GetAll")

	var bookings []*Booking
	if err := tx.WithContext(ctx).
		Preload("Location").
		Preload("User").
		Preload("Feedback").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, log.Err("failed to get bookings", err, "skip", skip, "limit", limit)
	}

	return bookings, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Booking, error) {
	log := r.log.Function("GetByID")

	var booking Booking
	if err := tx.WithContext(ctx).
		Preload("Location").
		Preload("User").
		Preload("Feedback").
		First(&booking, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get booking by id", err, "id", id)
	}

	return &booking, nil
}

func (r *bookingRepository) GetByUserID(
	ctx context.Context,
	tx *gorm.DB,
	userID int,
) ([]*Booking, error) {
	log := r.log.Function("GetByUserID")

	var bookings []*Booking
	if err := tx.WithContext(ctx).
		Preload("Location").
		Preload("Feedback").
		Where("user_id = ?", userID).
		Order("id").
		Find(&bookings).Error; err != nil {
		return nil, log.Err("failed to get bookings for user", err, "userID", userID)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *Booking) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(booking).Error; err != nil {
		return log.Err(
			"failed to create booking",
			err,
			"locationID",
			booking.LocationID,
			"userID",
			booking.UserID,
		)
	}

	return nil
}

func (r *bookingRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := r.log.Function("Update")

	result := tx.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return log.Err("failed to update booking", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return log.Err("booking not found during update", gorm.ErrRecordNotFound, "id", id)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&Booking{}, "id = ?", id)

	if result.Error != nil {
		return log.Err("failed to delete booking", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return log.Err("booking not found during delete", gorm.ErrRecordNotFound, "id", id)
	}

	return nil
}

// IncrementAttendance adds exactly one to the attendance counter with a single
// atomic UPDATE. Concurrent calls never lose increments.
func (r *bookingRepository) IncrementAttendance(ctx context.Context, tx *gorm.DB, id int) error {
	log := r.log.Function("IncrementAttendance")

	result := tx.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		UpdateColumn("attendance", gorm.Expr("attendance + ?", 1))

	if result.Error != nil {
		return log.Err("failed to increment attendance", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return log.Err("booking not found during attendance increment", gorm.ErrRecordNotFound, "id", id)
	}

	return nil
}
