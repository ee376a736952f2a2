package models

import "time"

const (
	RoleLeader = "leader"
	RoleMember = "member"
)

type Community struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Category         string    `gorm:"type:varchar(100);not null" json:"category"`
	MaxMembers       int       `gorm:"not null" json:"maxMembers"`
	CurrentMembers   int       `gorm:"not null;default:0" json:"currentMembers"`
	MeetingFrequency string    `gorm:"type:varchar(100)" json:"meetingFrequency"`
	LeaderID         string    `gorm:"type:varchar(36);not null;index" json:"leaderId"`
	OpenChatLink     string    `gorm:"type:varchar(500)" json:"openChatLink"`
	Location         string    `gorm:"type:varchar(255)" json:"location"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	Leader User `gorm:"foreignKey:LeaderID" json:"-"`
}

type CommunityMember struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CommunityID uint      `gorm:"not null;uniqueIndex:idx_community_user,priority:1" json:"communityId"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_community_user,priority:2" json:"userId"`
	Role        string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Community Community `gorm:"foreignKey:CommunityID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
