package seed

import (
	"time"

	"driftline/config"

	logger "github.com/Bparsons0904/goLogger"

	. "driftline/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	users, err := seedUsers(db, log)
	if err != nil {
		return err
	}

	bookings, err := seedBookings(db, users, log)
	if err != nil {
		return err
	}

	if err := seedFeedback(db, bookings, log); err != nil {
		return err
	}

	return nil
}

func seedUsers(db *gorm.DB, log logger.Logger) ([]User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, log.Err("failed to hash seed password", err)
	}
	hashed := string(hash)

	users := []User{
		{
			Email:          "sam@example.com",
			HashedPassword: &hashed,
			Name:           stringPtr("Sam Okafor"),
			Number:         stringPtr("+1 503 555 0117"),
		},
		{
			Email:          "rowan@example.com",
			HashedPassword: &hashed,
			Name:           stringPtr("Rowan Voss"),
		},
		{
			Email:            "marina@example.com",
			Name:             stringPtr("Marina Deleu"),
			ExternalProvider: true,
		},
	}

	seeded := make([]User, 0, len(users))
	for _, user := range users {
		var existingUser User
		if err := db.First(&existingUser, "email = ?", user.Email).Error; err == nil {
			log.Debug("User already exists", "email", user.Email)
			seeded = append(seeded, existingUser)
			continue
		}
		log.Info("Seeding user", "email", user.Email)
		if err := db.Create(&user).Error; err != nil {
			return nil, log.Err("failed to create user", err, "email", user.Email)
		}
		seeded = append(seeded, user)
	}

	// GORM skips zero values for columns with defaults, so the inactive flag
	// has to be flipped with an explicit update after the insert.
	var dormant User
	if err := db.First(&dormant, "email = ?", "dormant@example.com").Error; err != nil {
		dormant = User{
			Email:          "dormant@example.com",
			HashedPassword: &hashed,
			Name:           stringPtr("Dormant Account"),
		}
		log.Info("Seeding user", "email", dormant.Email)
		if err := db.Create(&dormant).Error; err != nil {
			return nil, log.Err("failed to create user", err, "email", dormant.Email)
		}
		if err := db.Model(&dormant).Update("is_active", false).Error; err != nil {
			return nil, log.Err("failed to deactivate user", err, "email", dormant.Email)
		}
	}

	return seeded, nil
}

func seedBookings(db *gorm.DB, users []User, log logger.Logger) ([]Booking, error) {
	var existingBooking Booking
	if err := db.First(&existingBooking).Error; err == nil {
		log.Debug("Bookings already seeded")
		var bookings []Booking
		if err := db.Order("id").Find(&bookings).Error; err != nil {
			return nil, log.Err("failed to load bookings", err)
		}
		return bookings, nil
	}

	var locations []Location
	if err := db.Order("id").Find(&locations).Error; err != nil {
		return nil, log.Err("failed to load locations", err)
	}
	if len(locations) == 0 || len(users) < 2 {
		log.Warn("Skipping booking seed, locations or users missing")
		return nil, nil
	}

	collected := decimal.NewFromFloat(23.8)
	bookings := []Booking{
		{
			Date:          dateFromNow(14),
			StartTime:     "09:00",
			EndTime:       "12:00",
			EstVolunteers: "10-15",
			Status:        BookingStatusScheduled,
			UserID:        intPtr(users[0].ID),
			LocationID:    locations[0].ID,
		},
		{
			Date:            dateFromNow(-10),
			StartTime:       "08:30",
			EndTime:         "11:30",
			EstVolunteers:   "10-15",
			NumVolunteers:   12,
			Status:          BookingStatusCompleted,
			CollectedWeight: &collected,
			Attendance:      9,
			UserID:          intPtr(users[0].ID),
			LocationID:      locations[1%len(locations)].ID,
		},
		{
			Date:          dateFromNow(30),
			StartTime:     "10:00",
			EndTime:       "13:00",
			EstVolunteers: "5-10",
			Status:        BookingStatusPending,
			UserID:        intPtr(users[1].ID),
			LocationID:    locations[0].ID,
		},
		{
			Date:          dateFromNow(-45),
			StartTime:     "07:00",
			EndTime:       "10:00",
			EstVolunteers: "20+",
			Status:        BookingStatusMissed,
			External:      true,
			LocationID:    locations[2%len(locations)].ID,
		},
	}

	for i := range bookings {
		log.Info(
			"Seeding booking",
			"date", bookings[i].Date.Format("2006-01-02"),
			"status", bookings[i].Status,
		)
		if err := db.Create(&bookings[i]).Error; err != nil {
			return nil, log.Err("failed to create booking", err, "status", bookings[i].Status)
		}
	}

	return bookings, nil
}

func seedFeedback(db *gorm.DB, bookings []Booking, log logger.Logger) error {
	var completed *Booking
	for i := range bookings {
		if bookings[i].Status == BookingStatusCompleted {
			completed = &bookings[i]
			break
		}
	}
	if completed == nil {
		log.Warn("Skipping feedback seed, no completed booking")
		return nil
	}

	var existingFeedback Feedback
	if err := db.First(&existingFeedback, "booking_id = ?", completed.ID).Error; err == nil {
		log.Debug("Feedback already seeded")
		return nil
	}

	feedback := []Feedback{
		{
			Datetime:   completed.Date.Add(13 * time.Hour),
			Title:      "Sharp debris near the tide pools",
			Comment:    stringPtr("Lots of broken glass on the north end, bring thicker gloves next time."),
			Coords:     datatypes.JSON([]byte(`{"type":"Point","coordinates":[-124.104,44.889]}`)),
			LocationID: completed.LocationID,
			BookingID:  completed.ID,
		},
		{
			Datetime:   completed.Date.Add(15 * time.Hour),
			Title:      "Netting tangled in the driftwood",
			ImageURL:   stringPtr("https://storage.example.com/uploads/netting.jpg"),
			LocationID: completed.LocationID,
			BookingID:  completed.ID,
		},
	}

	for i := range feedback {
		log.Info("Seeding feedback", "title", feedback[i].Title)
		if err := db.Create(&feedback[i]).Error; err != nil {
			return log.Err("failed to create feedback", err, "title", feedback[i].Title)
		}
	}

	return nil
}

func dateFromNow(days int) time.Time {
	t := time.Now().AddDate(0, 0, days)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
