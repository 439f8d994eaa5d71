package locationController

import (
	"context"
	"testing"
	"time"

	. "driftline/internal/models"
	"driftline/internal/repositories"
	"driftline/internal/services"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLocationRepo struct {
	locations []*Location
}

func (f *fakeLocationRepo) GetAll(ctx context.Context, skip int, limit int) ([]*Location, error) {
	return f.locations, nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id int) (*Location, error) {
	for _, location := range f.locations {
		if location.ID == id {
			return location, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeFlotsamRepo struct {
	weights map[int]map[int]float64
}

func (f *fakeFlotsamRepo) GetByLocationAndMonth(
	ctx context.Context,
	locationID int,
	month int,
) (*HistoricalMonthlyFlotsam, error) {
	weight, ok := f.weights[locationID][month]
	if !ok {
		return nil, nil
	}
	return &HistoricalMonthlyFlotsam{
		Month:      month,
		Weight:     weight,
		LocationID: locationID,
	}, nil
}

func newLocationTestController(
	locations []*Location,
	weights map[int]map[int]float64,
) *LocationController {
	return &LocationController{
		locationRepo: &fakeLocationRepo{locations: locations},
		scoreService: services.NewScoreService(repositories.Repository{
			Flotsam: &fakeFlotsamRepo{weights: weights},
		}),
		log: logger.New("locationController"),
	}
}

func TestGetLocations(t *testing.T) {
	locations := []*Location{
		{BaseModel: BaseModel{ID: 1}, Name: "North Beach"},
		{BaseModel: BaseModel{ID: 2}, Name: "South Cove"},
	}
	weights := map[int]map[int]float64{
		1: {5: 2.0, 6: 4.0},
	}
	controller := newLocationTestController(locations, weights)

	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	result, err := controller.GetLocations(context.Background(), date, 0, 100)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	// June 15th: 15 days remain of 30, May has 31 days.
	expected := (15.0/31.0)*2.0 + (15.0/30.0)*4.0
	assert.InDelta(t, expected, result[0].CleanlinessScore, 1e-9)

	// No flotsam history recorded for the second location.
	assert.Equal(t, services.ScoreUnavailable, result[1].CleanlinessScore)
}

func TestGetLocation(t *testing.T) {
	locations := []*Location{
		{BaseModel: BaseModel{ID: 1}, Name: "North Beach"},
	}
	weights := map[int]map[int]float64{
		1: {12: 1.0, 1: 3.0},
	}
	controller := newLocationTestController(locations, weights)

	// January 10th interpolates against December of the prior year.
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	location, err := controller.GetLocation(context.Background(), 1, date)

	assert.NoError(t, err)
	expected := (21.0/31.0)*1.0 + (10.0/31.0)*3.0
	assert.InDelta(t, expected, location.CleanlinessScore, 1e-9)
}

func TestGetLocation_NotFound(t *testing.T) {
	controller := newLocationTestController(nil, nil)

	_, err := controller.GetLocation(context.Background(), 99, time.Now())

	assert.ErrorIs(t, err, types.ErrLocationNotFound)
}

func TestGetLocation_ScoreUnavailable(t *testing.T) {
	locations := []*Location{
		{BaseModel: BaseModel{ID: 1}, Name: "North Beach"},
	}
	controller := newLocationTestController(locations, nil)

	location, err := controller.GetLocation(context.Background(), 1, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, services.ScoreUnavailable, location.CleanlinessScore)
}
