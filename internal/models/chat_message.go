package models

import "time"

// ChatMessage rows are append-only, ordered by CreatedAt.
type ChatMessage struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CommunityID uint      `gorm:"not null;index" json:"communityId"`
	UserID      string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"createdAt"`

	Community Community `gorm:"foreignKey:CommunityID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
