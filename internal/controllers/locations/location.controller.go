package locationController

import (
	"context"
	"errors"
	"time"

	. "driftline/internal/models"
	"driftline/internal/repositories"
	"driftline/internal/services"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type LocationController struct {
	locationRepo repositories.LocationRepository
	scoreService *services.ScoreService
	log          logger.Logger
}

type LocationControllerInterface interface {
	GetLocations(ctx context.Context, date time.Time, skip, limit int) ([]*Location, error)
	GetLocation(ctx context.Context, locationID int, date time.Time) (*Location, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
) LocationControllerInterface {
	return &LocationController{
		locationRepo: repos.Location,
		scoreService: services.Score,
		log:          logger.New("locationController"),
	}
}

// GetLocations returns every cleanup location with its cleanliness score
// evaluated for the given date. Locations without enough flotsam history
// carry the unavailable sentinel score.
func (c *LocationController) GetLocations(
	ctx context.Context,
	date time.Time,
	skip, limit int,
) ([]*Location, error) {
	log := c.log.Function("GetLocations")

	locations, err := c.locationRepo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, log.Err("failed to get locations", err)
	}

	for _, location := range locations {
		score, err := c.scoreService.ForLocation(ctx, location.ID, date)
		if err != nil {
			return nil, log.Err("failed to score location", err, "locationID", location.ID)
		}
		location.CleanlinessScore = score
	}

	return locations, nil
}

func (c *LocationController) GetLocation(
	ctx context.Context,
	locationID int,
	date time.Time,
) (*Location, error) {
	log := c.log.Function("GetLocation")

	location, err := c.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrLocationNotFound
		}
		return nil, log.Err("failed to get location", err, "locationID", locationID)
	}

	score, err := c.scoreService.ForLocation(ctx, locationID, date)
	if err != nil {
		return nil, log.Err("failed to score location", err, "locationID", locationID)
	}
	location.CleanlinessScore = score

	return location, nil
}
