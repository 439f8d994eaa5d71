package repositories

import (
	"driftline/internal/database"
)

type Repository struct {
	User     UserRepository
	Location LocationRepository
	Booking  BookingRepository
	Feedback FeedbackRepository
	Flotsam  FlotsamRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:     NewUserRepository(db), // User repo needs cache for caching
		Location: NewLocationRepository(db),
		Booking:  NewBookingRepository(),
		Feedback: NewFeedbackRepository(),
		Flotsam:  NewFlotsamRepository(db),
	}
}
