package repositories

import (
	"context"
	"driftline/internal/database"
	. "driftline/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

type LocationRepository interface {
	GetAll(ctx context.Context, skip int, limit int) ([]*Location, error)
	GetByID(ctx context.Context, id int) (*Location, error)
}

type locationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewLocationRepository(db database.DB) LocationRepository {
	return &locationRepository{
		db:  db,
		log: logger.New("locationRepository"),
	}
}

func (r *locationRepository) GetAll(ctx context.Context, skip int, limit int) ([]*Location, error) {
	log := r.log.Function("GetAll")

	var locations []*Location
	if err := r.db.SQLWithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&locations).Error; err != nil {
		return nil, log.Err("failed to get locations", err, "skip", skip, "limit", limit)
	}

	return locations, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int) (*Location, error) {
	log := r.log.Function("GetByID")

	var location Location
	if err := r.db.SQLWithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get location by id", err, "id", id)
	}

	return &location, nil
}
