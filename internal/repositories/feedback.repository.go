package repositories

import (
	"context"
	. "driftline/internal/models"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, tx *gorm.DB, feedback *Feedback) error
	GetByLocationWindow(
		ctx context.Context,
		tx *gorm.DB,
		locationID int,
		from time.Time,
		to time.Time,
	) ([]*Feedback, error)
}

type feedbackRepository struct {
	log logger.Logger
}

func NewFeedbackRepository() FeedbackRepository {
	return &feedbackRepository{
		log: logger.New("feedbackRepository"),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, tx *gorm.DB, feedback *Feedback) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(feedback).Error; err != nil {
		return log.Err("failed to create feedback", err, "bookingID", feedback.BookingID)
	}

	return nil
}

// GetByLocationWindow returns feedback for a location with a submission time
// inside [from, to]. Both bounds are inclusive.
func (r *feedbackRepository) GetByLocationWindow(
	ctx context.Context,
	tx *gorm.DB,
	locationID int,
	from time.Time,
	to time.Time,
) ([]*Feedback, error) {
	log := r.log.Function("GetByLocationWindow")

	var feedback []*Feedback
	if err := tx.WithContext(ctx).
		Where("location_id = ? AND datetime >= ? AND datetime <= ?", locationID, from, to).
		Order("datetime").
		Find(&feedback).Error; err != nil {
		return nil, log.Err(
			"failed to get feedback for location",
			err,
			"locationID",
			locationID,
			"from",
			from,
			"to",
			to,
		)
	}

	return feedback, nil
}
