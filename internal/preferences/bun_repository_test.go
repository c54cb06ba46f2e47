package preferences_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	nav "github.com/goliatone/go-admin-nav/nav"

	"github.com/goliatone/go-admin-nav/internal/preferences"
	"github.com/goliatone/go-admin-nav/pkg/testsupport"
)

func newBunTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if _, err := bunDB.NewCreateTable().
		Model((*preferences.NavPreference)(nil)).
		IfNotExists().
		Exec(context.Background()); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return bunDB
}

func TestBunRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := preferences.NewBunRepository(newBunTestDB(t))
	userID := uuid.New()

	created, err := repo.Create(ctx, newPreference(userID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a persisted id")
	}

	fetched, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.UserID != userID {
		t.Fatalf("unexpected user id %s", fetched.UserID)
	}
	if len(fetched.Layout.Groups) != 1 || fetched.Layout.Groups[0].ID != "collections" {
		t.Fatalf("layout did not round-trip: %+v", fetched.Layout.Groups)
	}
	if fetched.Layout.Groups[0].Items[0].Icon != "newspaper" {
		t.Fatalf("item did not round-trip: %+v", fetched.Layout.Groups[0].Items)
	}
}

func TestBunRepository_GetMissingUser(t *testing.T) {
	repo := preferences.NewBunRepository(newBunTestDB(t))

	_, err := repo.GetByUser(context.Background(), uuid.New())
	if !preferences.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestBunRepository_DuplicateUserRejected(t *testing.T) {
	ctx := context.Background()
	repo := preferences.NewBunRepository(newBunTestDB(t))
	userID := uuid.New()

	if _, err := repo.Create(ctx, newPreference(userID)); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := newPreference(userID)
	second.ID = uuid.New()
	_, err := repo.Create(ctx, second)
	if !errors.Is(err, preferences.ErrPreferenceExists) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestBunRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := preferences.NewBunRepository(newBunTestDB(t))
	userID := uuid.New()

	created, err := repo.Create(ctx, newPreference(userID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Layout = nav.NavLayout{
		Groups:  []nav.NavGroup{{ID: "mine", Title: nav.Label("Mine"), Items: []nav.NavItem{}}},
		Version: nav.LayoutVersion,
	}
	created.UpdatedAt = time.Now().UTC()
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	fetched, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(fetched.Layout.Groups) != 1 || fetched.Layout.Groups[0].ID != "mine" {
		t.Fatalf("expected the updated layout, got %+v", fetched.Layout.Groups)
	}
}

func TestBunRepository_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	repo := preferences.NewBunRepository(newBunTestDB(t))
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
		t.Fatalf("expected not-found on repeated delete, got %v", err)
	}
}

func TestBunRepository_WithCache(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunTestDB(t)

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	repo := preferences.NewBunRepositoryWithCache(bunDB, cacheService, keySerializer)
	userID := uuid.New()

	if _, err := repo.Create(ctx, newPreference(userID)); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, err := repo.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if first.UserID != second.UserID || len(first.Layout.Groups) != len(second.Layout.Groups) {
		t.Fatal("cached read must match the stored preference")
	}

	if err := repo.DeleteByUser(ctx, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByUser(ctx, userID); !preferences.IsNotFound(err) {
		t.Fatalf("expected not-found after cached delete, got %v", err)
	}
}
