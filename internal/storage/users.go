package storage

import (
	"github.com/hobbyconnect/server/internal/location"
	"github.com/hobbyconnect/server/internal/models"
)

func (s *Storage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *Storage) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries a partial profile patch. Nil fields are left
// untouched.
type ProfileUpdate struct {
	FirstName             *string
	LastName              *string
	ProfileImageURL       *string
	Gender                *string
	Age                   *int
	MBTI                  *string
	Budget                *string
	TimeAvailability      *string
	NetworkingPreference  *bool
	UniqueHobbyPreference *bool
	BlacklistedHobbies    *models.StringList
	WhitelistedHobbies    *models.StringList
	Bio                   *string
	Location              *string
	Latitude              *float64
	Longitude             *float64
}

func (p ProfileUpdate) columns() map[string]interface{} {
	set := map[string]interface{}{}
	if p.FirstName != nil {
		set["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		set["last_name"] = *p.LastName
	}
	if p.ProfileImageURL != nil {
		set["profile_image_url"] = *p.ProfileImageURL
	}
	if p.Gender != nil {
		set["gender"] = *p.Gender
	}
	if p.Age != nil {
		set["age"] = *p.Age
	}
	if p.MBTI != nil {
		set["mbti"] = *p.MBTI
	}
	if p.Budget != nil {
		set["budget"] = *p.Budget
	}
	if p.TimeAvailability != nil {
		set["time_availability"] = *p.TimeAvailability
	}
	if p.NetworkingPreference != nil {
		set["networking_preference"] = *p.NetworkingPreference
	}
	if p.UniqueHobbyPreference != nil {
		set["unique_hobby_preference"] = *p.UniqueHobbyPreference
	}
	if p.BlacklistedHobbies != nil {
		set["blacklisted_hobbies"] = *p.BlacklistedHobbies
	}
	if p.WhitelistedHobbies != nil {
		set["whitelisted_hobbies"] = *p.WhitelistedHobbies
	}
	if p.Bio != nil {
		set["bio"] = *p.Bio
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Latitude != nil {
		set["latitude"] = *p.Latitude
	}
	if p.Longitude != nil {
		set["longitude"] = *p.Longitude
	}
	return set
}

func (s *Storage) UpdateUserProfile(id string, patch ProfileUpdate) (*models.User, error) {
	set := patch.columns()
	if len(set) > 0 {
		if err := s.db.Model(&models.User{}).Where("id = ?", id).Updates(set).Error; err != nil {
			return nil, err
		}
	}
	return s.GetUser(id)
}

func (s *Storage) UpdateUserFCMToken(id, token string) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).Update("fcm_token", token).Error
}

// GetUsersInDistrict returns all users whose stored location contains
// the district token of the given location string. No district token
// means no matches.
func (s *Storage) GetUsersInDistrict(loc string) ([]models.User, error) {
	district, ok := location.District(loc)
	if !ok {
		return nil, nil
	}

	var users []models.User
	if err := s.db.Where("location LIKE ?", "%"+district+"%").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
