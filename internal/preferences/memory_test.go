package preferences_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	nav "github.com/goliatone/go-admin-nav/nav"

	"github.com/goliatone/go-admin-nav/internal/preferences"
)

func newPreference(userID uuid.UUID) *preferences.NavPreference {
	now := time.Now().UTC()
	return &preferences.NavPreference{
		ID:     uuid.New(),
		UserID: userID,
		Layout: nav.NavLayout{
			Groups: []nav.NavGroup{
				{ID: "collections", Title: nav.Label("Collections"), Items: []nav.NavItem{
					{ID: "posts", Href: "/admin/collections/posts", Label: nav.Label("Posts"), Icon: "newspaper"},
				}},
			},
			Version: nav.LayoutVersion,
		},
		Version:   nav.LayoutVersion,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := preferences.NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	created, err := repo.Create(ctx, newPreference(userID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != userID {
		t.Fatalf("unexpected user id %s", created.UserID)
	}

	fetched, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(fetched.Layout.Groups) != 1 || fetched.Layout.Groups[0].ID != "collections" {
		t.Fatalf("unexpected stored layout: %+v", fetched.Layout.Groups)
	}
}

func TestMemoryRepository_GetMissingUser(t *testing.T) {
	repo := preferences.NewMemoryRepository()

	_, err := repo.GetByUser(context.Background(), uuid.New())
	if !preferences.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestMemoryRepository_DuplicateCreate(t *testing.T) {
	repo := preferences.NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	if _, err := repo.Create(ctx, newPreference(userID)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(ctx, newPreference(userID))
	if !errors.Is(err, preferences.ErrPreferenceExists) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := preferences.NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	created, err := repo.Create(ctx, newPreference(userID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Layout = nav.NavLayout{Groups: []nav.NavGroup{}, Version: nav.LayoutVersion}
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	fetched, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Layout.Groups == nil || len(fetched.Layout.Groups) != 0 {
		t.Fatalf("expected empty layout stored, got %+v", fetched.Layout.Groups)
	}
}

func TestMemoryRepository_UpdateMissingUser(t *testing.T) {
	repo := preferences.NewMemoryRepository()

	_, err := repo.Update(context.Background(), newPreference(uuid.New()))
	if !preferences.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := preferences.NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	if _, err := repo.Create(ctx, newPreference(userID)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.DeleteByUser(ctx, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByUser(ctx, userID); !preferences.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
	if err := repo.DeleteByUser(ctx, userID); !preferences.IsNotFound(err) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := preferences.NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	source := newPreference(userID)
	if _, err := repo.Create(ctx, source); err != nil {
		t.Fatalf("create: %v", err)
	}
	source.Layout.Groups[0].ID = "mutated"

	fetched, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Layout.Groups[0].ID != "collections" {
		t.Fatal("repository must store a copy of the preference")
	}

	fetched.Layout.Groups[0].ID = "also-mutated"
	again, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Layout.Groups[0].ID != "collections" {
		t.Fatal("repository must return a copy of the preference")
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &preferences.NotFoundError{Resource: "nav_preference", Key: "abc"}
	if got := err.Error(); got != `nav_preference "abc" not found` {
		t.Fatalf("unexpected message %q", got)
	}
	bare := &preferences.NotFoundError{Resource: "nav_preference"}
	if got := bare.Error(); got != "nav_preference not found" {
		t.Fatalf("unexpected message %q", got)
	}
	if preferences.IsNotFound(errors.New("other")) {
		t.Fatal("unrelated errors must not look like not-found")
	}
}
