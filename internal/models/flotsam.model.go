package models

import (
	"gorm.io/gorm"
)

// HistoricalMonthlyFlotsam is one aggregate debris-weight sample per
// (location, calendar month). At most one row may exist per pair; the score
// interpolation depends on it.
type HistoricalMonthlyFlotsam struct {
	BaseModel
	Month      int     `gorm:"type:int;not null;uniqueIndex:idx_flotsam_location_month"  json:"month"`
	Weight     float64 `gorm:"type:float;not null"                                       json:"weight"`
	LocationID int     `gorm:"type:int;not null;uniqueIndex:idx_flotsam_location_month" json:"location_id"`
}

func (HistoricalMonthlyFlotsam) TableName() string {
	return "historical_monthly_flotsam"
}

func (h *HistoricalMonthlyFlotsam) BeforeCreate(tx *gorm.DB) error {
	if h.Month < 1 || h.Month > 12 {
		return gorm.ErrInvalidValue
	}
	if h.LocationID == 0 {
		return gorm.ErrInvalidValue
	}
	return nil
}
