package storage

import "github.com/hobbyconnect/server/internal/models"

func (s *Storage) CreateRecommendation(rec *models.HobbyRecommendation) error {
	return s.db.Create(rec).Error
}

func (s *Storage) GetUserRecommendations(userID string) ([]models.HobbyRecommendation, error) {
	var recs []models.HobbyRecommendation
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}
