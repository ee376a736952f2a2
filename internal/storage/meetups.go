package storage

import (
	"errors"

	"github.com/hobbyconnect/server/internal/models"

	"gorm.io/gorm"
)

// CreateMeetup persists a new active meetup. The organizer is not
// enrolled as a participant automatically; they join like anyone else.
func (s *Storage) CreateMeetup(meetup *models.LightningMeetup) error {
	meetup.IsActive = true
	meetup.CurrentParticipants = 0
	return s.db.Create(meetup).Error
}

func (s *Storage) GetMeetups(limit, offset int) ([]models.LightningMeetup, error) {
	var meetups []models.LightningMeetup
	err := s.db.
		Where("is_active = ?", true).
		Order("meeting_time ASC").
		Limit(limit).Offset(offset).
		Find(&meetups).Error
	return meetups, err
}

func (s *Storage) GetMeetup(id uint) (*models.LightningMeetup, error) {
	var meetup models.LightningMeetup
	if err := s.db.First(&meetup, id).Error; err != nil {
		return nil, err
	}
	return &meetup, nil
}

func (s *Storage) JoinMeetup(meetupID uint, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var meetup models.LightningMeetup
		if err := tx.First(&meetup, meetupID).Error; err != nil {
			return err
		}

		var existing models.LightningMeetupParticipant
		err := tx.Where("meetup_id = ? AND user_id = ?", meetupID, userID).First(&existing).Error
		if err == nil {
			return ErrAlreadyJoined
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if meetup.CurrentParticipants >= meetup.MaxParticipants {
			return ErrCapacityFull
		}

		participant := models.LightningMeetupParticipant{
			MeetupID: meetupID,
			UserID:   userID,
		}
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}

		return tx.Model(&models.LightningMeetup{}).Where("id = ?", meetupID).
			UpdateColumn("current_participants", gorm.Expr("current_participants + ?", 1)).Error
	})
}

func (s *Storage) LeaveMeetup(meetupID uint, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var participant models.LightningMeetupParticipant
		err := tx.Where("meetup_id = ? AND user_id = ?", meetupID, userID).First(&participant).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotJoined
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&participant).Error; err != nil {
			return err
		}

		return tx.Model(&models.LightningMeetup{}).Where("id = ?", meetupID).
			UpdateColumn("current_participants", gorm.Expr("current_participants - ?", 1)).Error
	})
}

func (s *Storage) GetUserMeetups(userID string) ([]models.LightningMeetup, error) {
	var meetups []models.LightningMeetup
	err := s.db.
		Joins("JOIN lightning_meetup_participants ON lightning_meetup_participants.meetup_id = lightning_meetups.id").
		Where("lightning_meetup_participants.user_id = ?", userID).
		Order("lightning_meetups.meeting_time ASC").
		Find(&meetups).Error
	return meetups, err
}
