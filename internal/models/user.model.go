package models

type User struct {
	BaseModel
	Email            string  `gorm:"type:text;uniqueIndex;not null"      json:"email"`
	HashedPassword   *string `gorm:"column:hashed_pwd;type:text"         json:"-"`
	Number           *string `gorm:"type:text"                           json:"number,omitempty"`
	Name             *string `gorm:"type:text"                           json:"name,omitempty"`
	ExternalProvider bool    `gorm:"type:bool;default:false"             json:"external_provider"`
	IsActive         bool    `gorm:"type:bool;default:true"              json:"is_active"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}

// UserSummary is the nested shape embedded in booking responses.
type UserSummary struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Email: u.Email,
	}
}

// HasLocalCredentials reports whether the account can authenticate with a
// password. External-provider accounts never store one.
func (u *User) HasLocalCredentials() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
