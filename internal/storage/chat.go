package storage

import "github.com/hobbyconnect/server/internal/models"

// GetChatMessages returns the oldest-first history snapshot for a
// community, capped at limit.
func (s *Storage) GetChatMessages(communityID uint, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.db.
		Where("community_id = ?", communityID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (s *Storage) CreateChatMessage(communityID uint, userID, content string) (*models.ChatMessage, error) {
	message := models.ChatMessage{
		CommunityID: communityID,
		UserID:      userID,
		Content:     content,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}
