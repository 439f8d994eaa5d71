package bookingController

import (
	"context"
	"errors"
	"testing"
	"time"

	"driftline/internal/database"
	. "driftline/internal/models"
	"driftline/internal/services"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeBookingRepo struct {
	bookings    map[int]*Booking
	lastUpdates map[string]any
	deletedIDs  []int
	nextID      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int]*Booking), nextID: 1}
}

func (f *fakeBookingRepo) GetAll(
	ctx context.Context,
	tx *gorm.DB,
	skip int,
	limit int,
) ([]*Booking, error) {
	var bookings []*Booking
	for _, booking := range f.bookings {
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(
	ctx context.Context,
	tx *gorm.DB,
	userID int,
) ([]*Booking, error) {
	var bookings []*Booking
	for _, booking := range f.bookings {
		if booking.UserID != nil && *booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *Booking) error {
	booking.ID = f.nextID
	f.nextID++
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	f.lastUpdates = updates
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) IncrementAttendance(ctx context.Context, tx *gorm.DB, id int) error {
	booking, ok := f.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	booking.Attendance++
	return nil
}

type fakeLocationRepo struct {
	locations map[int]*Location
}

func (f *fakeLocationRepo) GetAll(ctx context.Context, skip int, limit int) ([]*Location, error) {
	var locations []*Location
	for _, location := range f.locations {
		locations = append(locations, location)
	}
	return locations, nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id int) (*Location, error) {
	location, ok := f.locations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return location, nil
}

func newTestController(
	t *testing.T,
) (*BookingController, *fakeBookingRepo, *fakeLocationRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	dbWrapper := database.DB{SQL: gormDB}
	bookingRepo := newFakeBookingRepo()
	locationRepo := &fakeLocationRepo{locations: make(map[int]*Location)}

	controller := &BookingController{
		bookingRepo:        bookingRepo,
		locationRepo:       locationRepo,
		transactionService: services.NewTransactionService(dbWrapper),
		db:                 dbWrapper,
		log:                logger.New("bookingController"),
	}

	return controller, bookingRepo, locationRepo, mock
}

func testUser(id int) *User {
	return &User{
		BaseModel: BaseModel{ID: id},
		Email:     "volunteer@example.com",
		IsActive:  true,
	}
}

func TestCreateBooking_UnknownLocation(t *testing.T) {
	controller, bookingRepo, _, _ := newTestController(t)

	request := &CreateBookingRequest{
		Date:       time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "12:00",
		LocationID: 99,
	}

	_, err := controller.CreateBooking(context.Background(), testUser(1), request)

	assert.ErrorIs(t, err, types.ErrLocationNotFound)
	assert.Empty(t, bookingRepo.bookings)
}

func TestCreateBooking_Success(t *testing.T) {
	controller, bookingRepo, locationRepo, _ := newTestController(t)
	locationRepo.locations[5] = &Location{BaseModel: BaseModel{ID: 5}, Name: "North Beach"}

	request := &CreateBookingRequest{
		Date:          time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		EndTime:       "12:00",
		EstVolunteers: "5-10",
		NumVolunteers: 7,
		LocationID:    5,
	}

	booking, err := controller.CreateBooking(context.Background(), testUser(3), request)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, 5, booking.LocationID)
	assert.Equal(t, "09:00", booking.StartTime)
	assert.False(t, booking.External)
	if assert.NotNil(t, booking.UserID) {
		assert.Equal(t, 3, *booking.UserID)
	}
	assert.Len(t, bookingRepo.bookings, 1)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	controller, _, _, mock := newTestController(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := controller.UpdateBooking(context.Background(), testUser(1), 42, &UpdateBookingRequest{})

	assert.ErrorIs(t, err, types.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBooking_NotOwner(t *testing.T) {
	controller, bookingRepo, _, mock := newTestController(t)
	ownerID := 2
	bookingRepo.bookings[7] = &Booking{
		BaseModel: BaseModel{ID: 7},
		UserID:    &ownerID,
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := controller.UpdateBooking(context.Background(), testUser(1), 7, &UpdateBookingRequest{})

	assert.ErrorIs(t, err, types.ErrBookingModifyForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBooking_ExternalBookingHasNoOwner(t *testing.T) {
	controller, bookingRepo, _, mock := newTestController(t)
	bookingRepo.bookings[7] = &Booking{
		BaseModel: BaseModel{ID: 7},
		External:  true,
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := controller.UpdateBooking(context.Background(), testUser(1), 7, &UpdateBookingRequest{})

	assert.ErrorIs(t, err, types.ErrBookingModifyForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBooking_Owner(t *testing.T) {
	controller, bookingRepo, _, mock := newTestController(t)
	ownerID := 1
	bookingRepo.bookings[7] = &Booking{
		BaseModel: BaseModel{ID: 7},
		UserID:    &ownerID,
		Status:    BookingStatusScheduled,
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	request := &UpdateBookingRequest{
		Date:          time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "13:00",
		EstVolunteers: "10-20",
		NumVolunteers: 12,
		Status:        BookingStatusCompleted,
	}

	_, err := controller.UpdateBooking(context.Background(), testUser(1), 7, request)

	assert.NoError(t, err)
	assert.Equal(t, BookingStatusCompleted, bookingRepo.lastUpdates["status"])
	assert.Equal(t, "10:00", bookingRepo.lastUpdates["start_time"])
	assert.NotContains(t, bookingRepo.lastUpdates, "collected_weight")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBooking_CollectedWeight(t *testing.T) {
	controller, bookingRepo, _, mock := newTestController(t)
	ownerID := 1
	bookingRepo.bookings[7] = &Booking{
		BaseModel: BaseModel{ID: 7},
		UserID:    &ownerID,
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	weight := decimal.NewFromFloat(14.5)
	request := &UpdateBookingRequest{
		Status:          BookingStatusCompleted,
		CollectedWeight: &weight,
	}

	_, err := controller.UpdateBooking(context.Background(), testUser(1), 7, request)

	assert.NoError(t, err)
	assert.Contains(t, bookingRepo.lastUpdates, "collected_weight")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBooking(t *testing.T) {
	controller, bookingRepo, _, mock := newTestController(t)
	ownerID := 1
	bookingRepo.bookings[7] = &Booking{
		BaseModel: BaseModel{ID: 7},
		UserID:    &ownerID,
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := controller.DeleteBooking(context.Background(), testUser(1), 7)

	assert.NoError(t, err)
	assert.Equal(t, []int{7}, bookingRepo.deletedIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBooking_NotOwner(t *testing.T) {
	controller, bookingRepo, _, mock := newTestController(t)
	ownerID := 2
	bookingRepo.bookings[7] = &Booking{
		BaseModel: BaseModel{ID: 7},
		UserID:    &ownerID,
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := controller.DeleteBooking(context.Background(), testUser(1), 7)

	assert.ErrorIs(t, err, types.ErrBookingModifyForbidden)
	assert.Empty(t, bookingRepo.deletedIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementAttendance(t *testing.T) {
	controller, bookingRepo, _, _ := newTestController(t)
	bookingRepo.bookings[7] = &Booking{
		BaseModel:  BaseModel{ID: 7},
		Attendance: 3,
	}

	booking, err := controller.IncrementAttendance(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 4, booking.Attendance)
}

func TestIncrementAttendance_NotFound(t *testing.T) {
	controller, _, _, _ := newTestController(t)

	_, err := controller.IncrementAttendance(context.Background(), 42)

	assert.ErrorIs(t, err, types.ErrBookingNotFound)
}

func TestIncrementAttendance_PolicyDenied(t *testing.T) {
	controller, bookingRepo, _, _ := newTestController(t)
	bookingRepo.bookings[7] = &Booking{
		BaseModel:  BaseModel{ID: 7},
		Attendance: 3,
	}

	policyErr := errors.New("booking window closed")
	controller.attendancePolicy = func(booking *Booking, now time.Time) error {
		return policyErr
	}

	_, err := controller.IncrementAttendance(context.Background(), 7)

	assert.ErrorIs(t, err, policyErr)
	assert.Equal(t, 3, bookingRepo.bookings[7].Attendance)
}

func TestIncrementAttendance_PolicyAllowed(t *testing.T) {
	controller, bookingRepo, _, _ := newTestController(t)
	bookingRepo.bookings[7] = &Booking{
		BaseModel: BaseModel{ID: 7},
	}

	controller.attendancePolicy = func(booking *Booking, now time.Time) error {
		return nil
	}

	booking, err := controller.IncrementAttendance(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 1, booking.Attendance)
	assert.Equal(t, 1, bookingRepo.bookings[7].Attendance)
}
