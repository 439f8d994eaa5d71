package services

import (
	"context"
	"time"

	"driftline/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

// ScoreUnavailable is the cleanliness score reported when a location is
// missing one of the two monthly flotsam samples the interpolation needs.
const ScoreUnavailable = -1.0

// daysInMonth fixes the length of each calendar month for interpolation.
// February stays at 28 in every year so a date maps to the same score
// weighting regardless of leap years. Index 0 is unused.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ScoreService derives a cleanliness score for a location on a given date
// by blending its historical monthly flotsam weights.
type ScoreService struct {
	flotsamRepo repositories.FlotsamRepository
	log         logger.Logger
}

func NewScoreService(repos repositories.Repository) *ScoreService {
	return &ScoreService{
		flotsamRepo: repos.Flotsam,
		log:         logger.New("scoreService"),
	}
}

// PrecedingMonth returns the calendar month before m, wrapping January
// back to December.
func PrecedingMonth(m int) int {
	return (m+10)%12 + 1
}

// InterpolateScore blends the preceding and current monthly flotsam weights
// for the given date. The preceding month's weight is scaled by the days
// remaining in the current month over the preceding month's length, and the
// current month's weight by how far into the month the date falls.
func InterpolateScore(previousWeight, currentWeight float64, date time.Time) float64 {
	month := int(date.Month())
	day := date.Day()
	preceding := PrecedingMonth(month)

	remaining := float64(daysInMonth[month] - day)
	return (remaining/float64(daysInMonth[preceding]))*previousWeight +
		(float64(day)/float64(daysInMonth[month]))*currentWeight
}

// ForLocation computes the location's cleanliness score for the given date.
// It returns ScoreUnavailable with a nil error when either monthly sample is
// missing, and ScoreUnavailable with the underlying error when the store
// lookup itself fails.
func (s *ScoreService) ForLocation(
	ctx context.Context,
	locationID int,
	date time.Time,
) (float64, error) {
	log := s.log.Function("ForLocation")

	month := int(date.Month())
	current, err := s.flotsamRepo.GetByLocationAndMonth(ctx, locationID, month)
	if err != nil {
		return ScoreUnavailable, log.Err(
			"failed to load current month flotsam",
			err,
			"locationID", locationID,
			"month", month,
		)
	}

	preceding := PrecedingMonth(month)
	previous, err := s.flotsamRepo.GetByLocationAndMonth(ctx, locationID, preceding)
	if err != nil {
		return ScoreUnavailable, log.Err(
			"failed to load preceding month flotsam",
			err,
			"locationID", locationID,
			"month", preceding,
		)
	}

	if current == nil || previous == nil {
		return ScoreUnavailable, nil
	}

	return InterpolateScore(previous.Weight, current.Weight, date), nil
}
