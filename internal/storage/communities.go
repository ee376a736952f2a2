package storage

import (
	"errors"

	"github.com/hobbyconnect/server/internal/location"
	"github.com/hobbyconnect/server/internal/models"

	"gorm.io/gorm"
)

// CreateCommunity persists the community with its leader membership
// row in one transaction. The leader counts as the first member.
func (s *Storage) CreateCommunity(community *models.Community) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		community.CurrentMembers = 1
		if err := tx.Create(community).Error; err != nil {
			return err
		}
		member := models.CommunityMember{
			CommunityID: community.ID,
			UserID:      community.LeaderID,
			Role:        models.RoleLeader,
		}
		return tx.Create(&member).Error
	})
}

func (s *Storage) GetCommunities(limit, offset int) ([]models.Community, error) {
	var communities []models.Community
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&communities).Error
	return communities, err
}

func (s *Storage) GetCommunity(id uint) (*models.Community, error) {
	var community models.Community
	if err := s.db.First(&community, id).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

// GetCommunitiesNearby filters communities whose location text
// contains the district token of the user's location, excluding
// communities the user leads. No token yields an empty result.
func (s *Storage) GetCommunitiesNearby(userLocation, excludeUserID string, limit, offset int) ([]models.Community, error) {
	district, ok := location.District(userLocation)
	if !ok {
		return nil, nil
	}

	var communities []models.Community
	err := s.db.
		Where("leader_id <> ? AND location LIKE ?", excludeUserID, "%"+district+"%").
		Limit(limit).Offset(offset).
		Find(&communities).Error
	return communities, err
}

func (s *Storage) JoinCommunity(communityID uint, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var community models.Community
		if err := tx.First(&community, communityID).Error; err != nil {
			return err
		}

		var existing models.CommunityMember
		err := tx.Where("community_id = ? AND user_id = ?", communityID, userID).First(&existing).Error
		if err == nil {
			return ErrAlreadyJoined
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if community.CurrentMembers >= community.MaxMembers {
			return ErrCapacityFull
		}

		member := models.CommunityMember{
			CommunityID: communityID,
			UserID:      userID,
			Role:        models.RoleMember,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		return tx.Model(&models.Community{}).Where("id = ?", communityID).
			UpdateColumn("current_members", gorm.Expr("current_members + ?", 1)).Error
	})
}

func (s *Storage) LeaveCommunity(communityID uint, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var member models.CommunityMember
		err := tx.Where("community_id = ? AND user_id = ?", communityID, userID).First(&member).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotJoined
		}
		if err != nil {
			return err
		}
		if member.Role == models.RoleLeader {
			return ErrLeaderCannotLeave
		}

		if err := tx.Delete(&member).Error; err != nil {
			return err
		}

		return tx.Model(&models.Community{}).Where("id = ?", communityID).
			UpdateColumn("current_members", gorm.Expr("current_members - ?", 1)).Error
	})
}

func (s *Storage) GetUserCommunities(userID string) ([]models.Community, error) {
	var communities []models.Community
	err := s.db.
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Order("community_members.joined_at DESC").
		Find(&communities).Error
	return communities, err
}
