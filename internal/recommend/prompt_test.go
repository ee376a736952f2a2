package recommend

import (
	"strings"
	"testing"
)

func TestBuildUserPromptRendersProfile(t *testing.T) {
	age := 29
	prompt := buildUserPrompt(Profile{
		Gender:             "여성",
		Age:                &age,
		MBTI:               "INFP",
		Budget:             "월 10만원",
		TimeAvailability:   "주말",
		BlacklistedHobbies: []string{"골프", "등산"},
		WhitelistedHobbies: []string{"그림"},
	})

	for _, want := range []string{"여성", "29", "INFP", "월 10만원", "주말", "골프, 등산", "그림"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(prompt, "언어 요구사항") {
		t.Fatalf("prompt missing language requirements block")
	}
}

func TestBuildUserPromptEmptyFieldsUnspecified(t *testing.T) {
	prompt := buildUserPrompt(Profile{})

	if !strings.Contains(prompt, "미지정") {
		t.Fatalf("empty fields should render as 미지정:\n%s", prompt)
	}
	if !strings.Contains(prompt, "없음") {
		t.Fatalf("empty hobby lists should render as 없음:\n%s", prompt)
	}
}

func TestUniqueHobbySeedsOnlyWhenOptedIn(t *testing.T) {
	withSeeds := buildUserPrompt(Profile{UniqueHobbyPreference: true})
	if !strings.Contains(withSeeds, "독특한 취미 특별 추천 목록") {
		t.Fatalf("expected seed list for unique hobby preference")
	}

	withoutSeeds := buildUserPrompt(Profile{UniqueHobbyPreference: false})
	if strings.Contains(withoutSeeds, "독특한 취미 특별 추천 목록") {
		t.Fatalf("seed list must not appear without the preference")
	}
}

func TestScoreClampsToSchemaRange(t *testing.T) {
	cases := []struct {
		raw  float64
		want int
	}{
		{-3, 1},
		{0, 1},
		{42.4, 42},
		{42.6, 43},
		{100, 100},
		{250, 100},
	}
	for _, c := range cases {
		got := Hobby{RecommendationScore: c.raw}.Score()
		if got != c.want {
			t.Fatalf("Score(%v) = %d, want %d", c.raw, got, c.want)
		}
	}
}
