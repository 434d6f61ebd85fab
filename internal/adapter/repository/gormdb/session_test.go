package gormdb

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "peerlend-gateway/internal/domain/session"
	"peerlend-gateway/pkg/id"
)

func openTestRepo(t *testing.T) *SessionRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo, err := NewSessionRepository(db)
	if err != nil {
		t.Fatalf("NewSessionRepository: %v", err)
	}
	return repo
}

func TestSessionRepository_SaveFindDelete(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	tok := id.NewID32()
	s := &domain.Session{
		Token:      tok,
		Credential: "upstream-token",
		Profile:    []byte(`{"id":"u1"}`),
	}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Find(ctx, tok)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Credential != "upstream-token" || string(got.Profile) != `{"id":"u1"}` {
		t.Fatalf("got %+v", got)
	}

	if err := repo.Delete(ctx, tok); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Find(ctx, tok); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("after delete err = %v, want ErrNotFound", err)
	}
}

func TestSessionRepository_SaveOverwritesProfile(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	tok := id.NewID32()
	s := &domain.Session{Token: tok, Credential: "c", Profile: []byte(`{"id":"u1"}`)}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Profile = []byte(`{"id":"u1","firstName":"Asha"}`)
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("re-Save: %v", err)
	}

	got, err := repo.Find(ctx, tok)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if string(got.Profile) != `{"id":"u1","firstName":"Asha"}` {
		t.Fatalf("profile = %s", got.Profile)
	}
}

func TestSessionRepository_DeleteMissingIsNoop(t *testing.T) {
	repo := openTestRepo(t)
	if err := repo.Delete(context.Background(), id.NewID32()); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}
