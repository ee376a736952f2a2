package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/hobbyconnect/server/internal/config"
	"github.com/hobbyconnect/server/internal/database"
	"github.com/hobbyconnect/server/internal/models"
	"github.com/hobbyconnect/server/internal/storage"
)

type fakeGenerator struct {
	hobbies []Hobby
	err     error
	got     Profile
}

func (f *fakeGenerator) Generate(ctx context.Context, profile Profile) ([]Hobby, error) {
	f.got = profile
	return f.hobbies, f.err
}

func newTestStore(t *testing.T) *storage.Storage {
	t.Helper()
	db, err := database.Initialize(config.DBConfig{SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return storage.New(db)
}

func TestGenerateForUserPersistsResults(t *testing.T) {
	store := newTestStore(t)
	user := &models.User{Email: "user@example.com", PasswordHash: "x", MBTI: "ENFP"}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	generator := &fakeGenerator{hobbies: []Hobby{
		{Name: "라떼아트 화가", RecommendationScore: 92.4, Reasons: []string{"창의적"}},
		{Name: "미니어처 건축가", RecommendationScore: 85, Reasons: []string{"섬세함"}},
	}}
	service := NewService(generator, store)

	records, err := service.GenerateForUser(context.Background(), user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if generator.got.MBTI != "ENFP" {
		t.Fatalf("profile not mapped from user, got %+v", generator.got)
	}
	if records[0].RecommendationScore != 92 {
		t.Fatalf("expected rounded score 92, got %d", records[0].RecommendationScore)
	}

	stored, err := store.GetUserRecommendations(user.ID)
	if err != nil {
		t.Fatalf("load recommendations: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", len(stored))
	}
}

func TestGenerateForUserPropagatesFailure(t *testing.T) {
	store := newTestStore(t)
	user := &models.User{Email: "user@example.com", PasswordHash: "x"}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	generator := &fakeGenerator{err: ErrGenerationFailed}
	service := NewService(generator, store)

	if _, err := service.GenerateForUser(context.Background(), user); !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}

	stored, _ := store.GetUserRecommendations(user.ID)
	if len(stored) != 0 {
		t.Fatalf("failed generation must not persist rows, got %d", len(stored))
	}
}
