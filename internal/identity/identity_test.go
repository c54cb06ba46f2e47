package identity_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-admin-nav/internal/identity"
)

func TestUUID_Deterministic(t *testing.T) {
	first := identity.UUID("go-admin-nav:preference:abc")
	second := identity.UUID("go-admin-nav:preference:abc")
	if first == uuid.Nil {
		t.Fatal("expected a non-nil id")
	}
	if first != second {
		t.Fatalf("expected stable ids, got %s and %s", first, second)
	}

	other := identity.UUID("go-admin-nav:preference:def")
	if other == first {
		t.Fatal("different keys must derive different ids")
	}
}

func TestUUID_EmptyKey(t *testing.T) {
	if identity.UUID("") != uuid.Nil {
		t.Fatal("empty key must map to the nil id")
	}
	if identity.UUID("   ") != uuid.Nil {
		t.Fatal("blank key must map to the nil id")
	}
}

func TestPreferenceUUID_StablePerUser(t *testing.T) {
	userID := uuid.New()

	first := identity.PreferenceUUID(userID)
	second := identity.PreferenceUUID(userID)
	if first != second {
		t.Fatal("re-saving must never mint a second row id for the same user")
	}
	if identity.PreferenceUUID(uuid.New()) == first {
		t.Fatal("different users must get different row ids")
	}
}

func TestUserContext_RoundTrip(t *testing.T) {
	userID := uuid.New()
	ctx := identity.WithUser(context.Background(), userID)

	got, ok := identity.UserFromContext(ctx)
	if !ok || got != userID {
		t.Fatalf("expected %s, got %s (ok=%v)", userID, got, ok)
	}
}

func TestUserContext_Missing(t *testing.T) {
	if _, ok := identity.UserFromContext(context.Background()); ok {
		t.Fatal("expected no user on a bare context")
	}
	if _, ok := identity.UserFromContext(identity.WithUser(context.Background(), uuid.Nil)); ok {
		t.Fatal("nil user id must not authenticate")
	}
}
