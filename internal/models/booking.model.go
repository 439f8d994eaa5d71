package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Conventional booking status values. Status is stored as free text and no
// transition graph is enforced.
const (
	BookingStatusScheduled = "scheduled"
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
	BookingStatusMissed    = "missed"
)

type Booking struct {
	BaseModel
	Date            time.Time        `gorm:"type:date;not null"                  json:"date"`
	StartTime       string           `gorm:"type:text;not null"                  json:"start_time"`
	EndTime         string           `gorm:"type:text;not null"                  json:"end_time"`
	EstVolunteers   string           `gorm:"type:text"                           json:"est_volunteers"`
	NumVolunteers   int              `gorm:"type:int"                            json:"num_volunteers"`
	Status          string           `gorm:"type:text;default:'scheduled';not null" json:"status"`
	CollectedWeight *decimal.Decimal `gorm:"type:decimal(10,2)"                  json:"collected_weight,omitempty"`
	Attendance      int              `gorm:"type:int;default:0;not null"         json:"attendance"`
	External        bool             `gorm:"type:bool;default:false"             json:"external"`
	UserID          *int             `gorm:"type:int;index"                      json:"user_id,omitempty"`
	LocationID      int              `gorm:"type:int;not null;index"             json:"location_id"`

	User     *User      `gorm:"foreignKey:UserID"                               json:"user,omitempty"`
	Location *Location  `gorm:"foreignKey:LocationID"                           json:"location,omitempty"`
	Feedback []Feedback `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.LocationID == 0 {
		return gorm.ErrInvalidValue
	}
	if b.Status == "" {
		b.Status = BookingStatusScheduled
	}
	return nil
}

// OwnedBy reports whether the booking belongs to the given user. External
// bookings have no owner and are never owned by anyone.
func (b *Booking) OwnedBy(userID int) bool {
	return b.UserID != nil && *b.UserID == userID
}
