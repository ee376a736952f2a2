package recommend

import (
	"context"
	"log/slog"

	"github.com/hobbyconnect/server/internal/models"
	"github.com/hobbyconnect/server/internal/storage"
)

// Service runs a generation for a user and persists each returned
// item. Rows are written one by one; a write failure aborts the call
// and is surfaced to the caller.
type Service struct {
	generator Generator
	store     *storage.Storage
}

func NewService(generator Generator, store *storage.Storage) *Service {
	return &Service{generator: generator, store: store}
}

// ProfileFromUser maps the stored user onto the generator input.
func ProfileFromUser(user *models.User) Profile {
	return Profile{
		Gender:                user.Gender,
		Age:                   user.Age,
		MBTI:                  user.MBTI,
		Budget:                user.Budget,
		TimeAvailability:      user.TimeAvailability,
		NetworkingPreference:  user.NetworkingPreference,
		UniqueHobbyPreference: user.UniqueHobbyPreference,
		BlacklistedHobbies:    user.BlacklistedHobbies,
		WhitelistedHobbies:    user.WhitelistedHobbies,
	}
}

func (s *Service) GenerateForUser(ctx context.Context, user *models.User) ([]models.HobbyRecommendation, error) {
	hobbies, err := s.generator.Generate(ctx, ProfileFromUser(user))
	if err != nil {
		return nil, err
	}

	records := make([]models.HobbyRecommendation, 0, len(hobbies))
	for _, hobby := range hobbies {
		rec := models.HobbyRecommendation{
			UserID:              user.ID,
			Name:                hobby.Name,
			Description:         hobby.Description,
			RecommendationScore: hobby.Score(),
			Reasons:             models.StringList(hobby.Reasons),
			EstimatedCost:       hobby.EstimatedCost,
			TimeCommitment:      hobby.TimeCommitment,
			SkillLevel:          hobby.SkillLevel,
			SocialAspect:        hobby.SocialAspect,
		}
		if err := s.store.CreateRecommendation(&rec); err != nil {
			slog.Default().Error("persist recommendation failed", "user_id", user.ID, "hobby", hobby.Name, "error", err)
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
