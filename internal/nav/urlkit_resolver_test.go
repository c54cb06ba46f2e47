package nav_test

import (
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-admin-nav/internal/nav"
)

func adminRouteManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name: "admin",
				Paths: map[string]string{
					"collection": "/admin/collections/:slug",
					"global":     "/admin/globals/:slug",
					"view":       "/admin/:path",
				},
			},
		},
	})
}

func TestURLKitResolver_BuildsRoutes(t *testing.T) {
	resolver := nav.NewURLKitResolver(nav.URLKitResolverOptions{
		Manager: adminRouteManager(),
	})

	if got := resolver.CollectionPath("posts"); got != "/admin/collections/posts" {
		t.Fatalf("unexpected collection path %q", got)
	}
	if got := resolver.GlobalPath("header"); got != "/admin/globals/header" {
		t.Fatalf("unexpected global path %q", got)
	}
	if got := resolver.ViewPath("/analytics"); got != "/admin/analytics" {
		t.Fatalf("unexpected view path %q", got)
	}
}

func TestURLKitResolver_FallsBackWithoutManager(t *testing.T) {
	resolver := nav.NewURLKitResolver(nav.URLKitResolverOptions{})

	if got := resolver.CollectionPath("posts"); got != "/admin/collections/posts" {
		t.Fatalf("expected fallback collection path, got %q", got)
	}
	if got := resolver.ViewPath("analytics"); got != "/admin/analytics" {
		t.Fatalf("expected fallback view path, got %q", got)
	}
}

func TestURLKitResolver_FallsBackOnUnknownRoute(t *testing.T) {
	resolver := nav.NewURLKitResolver(nav.URLKitResolverOptions{
		Manager:         adminRouteManager(),
		CollectionRoute: "missing-route",
		Fallback:        nav.NewDefaultPathResolver("/panel"),
	})

	if got := resolver.CollectionPath("posts"); got != "/panel/collections/posts" {
		t.Fatalf("expected fallback for unknown route, got %q", got)
	}
	// Other routes still resolve through urlkit.
	if got := resolver.GlobalPath("header"); got != "/admin/globals/header" {
		t.Fatalf("expected urlkit global path, got %q", got)
	}
}

func TestURLKitResolver_FallsBackOnUnknownGroup(t *testing.T) {
	resolver := nav.NewURLKitResolver(nav.URLKitResolverOptions{
		Manager: adminRouteManager(),
		Group:   "missing-group",
	})

	if got := resolver.CollectionPath("posts"); got != "/admin/collections/posts" {
		t.Fatalf("expected fallback path, got %q", got)
	}
}
