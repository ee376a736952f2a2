package models

import "time"

// HobbyRecommendation is immutable once created; generation calls
// accumulate rows rather than replacing earlier ones.
type HobbyRecommendation struct {
	ID                  uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              string     `gorm:"type:varchar(36);not null;index" json:"userId"`
	Name                string     `gorm:"type:varchar(255);not null" json:"name"`
	Description         string     `gorm:"type:text" json:"description"`
	RecommendationScore int        `json:"recommendationScore"`
	Reasons             StringList `gorm:"type:text" json:"reasons"`
	EstimatedCost       string     `gorm:"type:varchar(100)" json:"estimatedCost"`
	TimeCommitment      string     `gorm:"type:varchar(100)" json:"timeCommitment"`
	SkillLevel          string     `gorm:"type:varchar(100)" json:"skillLevel"`
	SocialAspect        string     `gorm:"type:varchar(100)" json:"socialAspect"`
	CreatedAt           time.Time  `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
