package repositories

import (
	"context"
	"driftline/internal/database"
	. "driftline/internal/models"
	"errors"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type FlotsamRepository interface {
	GetByLocationAndMonth(
		ctx context.Context,
		locationID int,
		month int,
	) (*HistoricalMonthlyFlotsam, error)
}

type flotsamRepository struct {
	db  database.DB
	log logger.Logger
}

func NewFlotsamRepository(db database.DB) FlotsamRepository {
	return &flotsamRepository{
		db:  db,
		log: logger.New("flotsamRepository"),
	}
}

// GetByLocationAndMonth returns the aggregate sample for the pair, or nil when
// no sample exists. Absence is a routine outcome for the score computation,
// not an error.
func (r *flotsamRepository) GetByLocationAndMonth(
	ctx context.Context,
	locationID int,
	month int,
) (*HistoricalMonthlyFlotsam, error) {
	log := r.log.Function("GetByLocationAndMonth")

	var record HistoricalMonthlyFlotsam
	err := r.db.SQLWithContext(ctx).
		First(&record, "location_id = ? AND month = ?", locationID, month).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err(
			"failed to get flotsam record",
			err,
			"locationID",
			locationID,
			"month",
			month,
		)
	}

	return &record, nil
}
