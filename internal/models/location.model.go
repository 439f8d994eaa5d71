package models

import (
	"gorm.io/datatypes"
)

type Location struct {
	BaseModel
	Name string `gorm:"type:text;not null" json:"name"`
	// CleanlinessScore is derived at read time from flotsam history; the
	// stored column is never read back.
	CleanlinessScore float64        `gorm:"type:float" json:"cleanliness_score"`
	Geojson          datatypes.JSON `gorm:"type:jsonb" json:"geojson"`

	Bookings       []Booking                  `gorm:"foreignKey:LocationID" json:"bookings,omitempty"`
	FlotsamHistory []HistoricalMonthlyFlotsam `gorm:"foreignKey:LocationID" json:"-"`
}

// LocationSummary is the nested shape embedded in booking responses.
type LocationSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (l *Location) ToSummary() LocationSummary {
	return LocationSummary{
		ID:   l.ID,
		Name: l.Name,
	}
}
