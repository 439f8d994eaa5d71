package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Feedback struct {
	BaseModel
	Datetime   time.Time      `gorm:"column:datetime;type:timestamp;not null" json:"datetime"`
	Title      string         `gorm:"type:text"               json:"title"`
	Comment    *string        `gorm:"type:text"               json:"comment,omitempty"`
	ImageURL   *string        `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Coords     datatypes.JSON `gorm:"type:jsonb"              json:"coords,omitempty"`
	LocationID int            `gorm:"type:int;index"          json:"location_id"`
	BookingID  int            `gorm:"type:int;not null;index" json:"booking_id"`
}

func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.BookingID == 0 {
		return gorm.ErrInvalidValue
	}
	if f.Datetime.IsZero() {
		f.Datetime = time.Now()
	}
	return nil
}
