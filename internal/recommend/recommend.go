package recommend

import (
	"context"
	"errors"
)

var ErrGenerationFailed = errors.New("hobby recommendation generation failed")

// Profile is the slice of a user profile the generator looks at.
// Empty fields are rendered as unspecified in the prompt.
type Profile struct {
	Gender                string
	Age                   *int
	MBTI                  string
	Budget                string
	TimeAvailability      string
	NetworkingPreference  bool
	UniqueHobbyPreference bool
	BlacklistedHobbies    []string
	WhitelistedHobbies    []string
}

// Hobby is one generated suggestion as returned by the model.
type Hobby struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	RecommendationScore float64  `json:"recommendationScore"`
	Reasons             []string `json:"reasons"`
	EstimatedCost       string   `json:"estimatedCost"`
	TimeCommitment      string   `json:"timeCommitment"`
	SkillLevel          string   `json:"skillLevel"`
	SocialAspect        string   `json:"socialAspect"`
}

// Score returns the recommendation score clamped to the 1-100 range
// the response schema asks for.
func (h Hobby) Score() int {
	score := int(h.RecommendationScore + 0.5)
	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}

// Generator produces a ranked list of hobby suggestions for a profile.
// Implementations either return the full list or an error; partial
// results are never returned.
type Generator interface {
	Generate(ctx context.Context, profile Profile) ([]Hobby, error)
}
