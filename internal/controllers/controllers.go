package controllers

import (
	"driftline/internal/database"
	"driftline/internal/repositories"
	"driftline/internal/services"

	authController "driftline/internal/controllers/auth"
	bookingController "driftline/internal/controllers/bookings"
	feedbackController "driftline/internal/controllers/feedback"
	locationController "driftline/internal/controllers/locations"
	storageController "driftline/internal/controllers/storage"
)

type Controllers struct {
	Auth     authController.AuthControllerInterface
	Booking  bookingController.BookingControllerInterface
	Location locationController.LocationControllerInterface
	Feedback feedbackController.FeedbackControllerInterface
	Storage  storageController.StorageControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:     authController.New(services, repos),
		Booking:  bookingController.New(repos, services, db),
		Location: locationController.New(repos, services),
		Feedback: feedbackController.New(repos, db),
		Storage:  storageController.New(services),
	}
}
