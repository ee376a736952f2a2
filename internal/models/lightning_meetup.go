package models

import "time"

type LightningMeetup struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title               string    `gorm:"type:varchar(255);not null" json:"title"`
	Description         string    `gorm:"type:text" json:"description"`
	Category            string    `gorm:"type:varchar(100)" json:"category"`
	Location            string    `gorm:"type:varchar(255)" json:"location"`
	MeetingTime         time.Time `gorm:"not null" json:"meetingTime"`
	MaxParticipants     int       `gorm:"not null" json:"maxParticipants"`
	CurrentParticipants int       `gorm:"not null;default:0" json:"currentParticipants"`
	OrganizerID         string    `gorm:"type:varchar(36);not null;index" json:"organizerId"`
	IsActive            bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`

	Organizer User `gorm:"foreignKey:OrganizerID" json:"-"`
}

type LightningMeetupParticipant struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetupID uint      `gorm:"not null;uniqueIndex:idx_meetup_user,priority:1" json:"meetupId"`
	UserID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_meetup_user,priority:2" json:"userId"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Meetup LightningMeetup `gorm:"foreignKey:MeetupID" json:"-"`
	User   User            `gorm:"foreignKey:UserID" json:"-"`
}
