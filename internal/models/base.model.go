package models

import (
	"time"
)

type BaseModel struct {
	ID        int       `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                    json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                    json:"updated_at"`
}
