package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName       string     `gorm:"type:varchar(100)" json:"firstName"`
	LastName        string     `gorm:"type:varchar(100)" json:"lastName"`
	ProfileImageURL string     `gorm:"type:varchar(500)" json:"profileImageUrl"`
	Gender          string     `gorm:"type:varchar(20)" json:"gender"`
	Age             *int       `json:"age"`
	MBTI            string     `gorm:"type:varchar(8)" json:"mbti"`
	Budget          string     `gorm:"type:varchar(50)" json:"budget"`
	TimeAvailability string    `gorm:"type:varchar(50)" json:"timeAvailability"`
	NetworkingPreference  bool `gorm:"default:false" json:"networkingPreference"`
	UniqueHobbyPreference bool `gorm:"default:false" json:"uniqueHobbyPreference"`
	BlacklistedHobbies StringList `gorm:"type:text" json:"blacklistedHobbies"`
	WhitelistedHobbies StringList `gorm:"type:text" json:"whitelistedHobbies"`
	Bio             string     `gorm:"type:text" json:"bio"`
	Location        string     `gorm:"type:varchar(255)" json:"location"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	FCMToken        string     `gorm:"type:varchar(512)" json:"-"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
