package nav_test

import (
	"testing"

	"github.com/google/uuid"

	adminnav "github.com/goliatone/go-admin-nav/nav"

	"github.com/goliatone/go-admin-nav/internal/nav"
)

func TestLayoutCache_RoundTrip(t *testing.T) {
	cache := nav.NewLayoutCache()
	userID := uuid.New()

	if _, _, ok := cache.Get(userID); ok {
		t.Fatal("expected a miss for an unknown user")
	}

	cache.Put(userID, sampleGroups(), true)
	groups, isCustom, ok := cache.Get(userID)
	if !ok || !isCustom {
		t.Fatalf("expected a custom hit, got ok=%v custom=%v", ok, isCustom)
	}
	if len(groups) != 2 {
		t.Fatalf("unexpected cached layout: %+v", groups)
	}
}

func TestLayoutCache_CopiesEntries(t *testing.T) {
	cache := nav.NewLayoutCache()
	userID := uuid.New()

	source := sampleGroups()
	cache.Put(userID, source, false)
	source[0].ID = "mutated"

	groups, _, _ := cache.Get(userID)
	if groups[0].ID != "collections" {
		t.Fatal("cache must copy layouts on the way in")
	}

	groups[0].ID = "also-mutated"
	again, _, _ := cache.Get(userID)
	if again[0].ID != "collections" {
		t.Fatal("cache must copy layouts on the way out")
	}
}

func TestLayoutCache_ClearAndReset(t *testing.T) {
	cache := nav.NewLayoutCache()
	first, second := uuid.New(), uuid.New()
	cache.Put(first, sampleGroups(), false)
	cache.Put(second, sampleGroups(), true)

	cache.Clear(first)
	if _, _, ok := cache.Get(first); ok {
		t.Fatal("expected cleared entry to miss")
	}
	if _, _, ok := cache.Get(second); !ok {
		t.Fatal("expected the other entry to survive")
	}

	cache.Reset()
	if _, _, ok := cache.Get(second); ok {
		t.Fatal("expected reset to drop everything")
	}
}

func TestLayoutCache_NilReceiverIsSafe(t *testing.T) {
	var cache *nav.LayoutCache
	cache.Put(uuid.New(), []adminnav.NavGroup{}, false)
	cache.Clear(uuid.New())
	cache.Reset()
	if _, _, ok := cache.Get(uuid.New()); ok {
		t.Fatal("nil cache must always miss")
	}
}
