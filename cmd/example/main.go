package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"

	adminnav "github.com/goliatone/go-admin-nav"
	"github.com/goliatone/go-admin-nav/nav"
)

// Demo host schema. A real host would assemble this from its own collection
// registry.
func schemaSnapshot(context.Context) (nav.SchemaSnapshot, error) {
	return nav.SchemaSnapshot{
		Collections: []nav.CollectionSpec{
			{Slug: "pages", LabelPlural: nav.Label("Pages")},
			{Slug: "posts", LabelPlural: nav.Label("Posts")},
			{Slug: "media", LabelPlural: nav.Label("Media")},
			{Slug: "tickets", Group: "Support"},
			{Slug: "users", Group: "Support"},
		},
		Globals: []nav.GlobalSpec{
			{Slug: "header"},
			{Slug: "footer"},
			{Slug: "site-settings", Label: nav.Label("Site Settings")},
		},
		Views: []nav.ViewSpec{
			{Key: "analytics", Path: "/analytics"},
			{Key: "email-logs", Path: "/email-logs"},
		},
	}, nil
}

func main() {
	ctx := context.Background()

	cfg := adminnav.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "debug"

	cfg.Navigation.AfterNav = []string{"views"}
	cfg.Navigation.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "admin",
				BaseURL: "",
				Paths: map[string]string{
					"collection": "/admin/collections/:slug",
					"global":     "/admin/globals/:slug",
					"view":       "/admin/:path",
				},
			},
		},
	}
	cfg.Navigation.URLKit = adminnav.URLKitResolverConfig{
		Group:           "admin",
		CollectionRoute: "collection",
		GlobalRoute:     "global",
		ViewRoute:       "view",
		SlugParam:       "slug",
		PathParam:       "path",
	}

	module, err := adminnav.New(cfg, adminnav.WithSchemaProvider(adminnav.SchemaProviderFunc(schemaSnapshot)))
	if err != nil {
		log.Fatalf("initialise admin nav: %v", err)
	}

	userID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

	// Walk an editing session: customize the layout, then persist it.
	session := module.NewSession(userID)
	if err := session.Init(ctx); err != nil {
		log.Fatalf("init session: %v", err)
	}

	if err := session.MoveGroup(1, 0); err != nil {
		log.Fatalf("move group: %v", err)
	}
	if _, err := session.CreateGroup(adminnav.CreateGroupInput{Title: nav.Label("My Links")}); err != nil {
		log.Fatalf("create group: %v", err)
	}
	if _, err := session.CreateItem("my-links", adminnav.ItemInput{
		Href:  "/admin/collections/posts?status=draft",
		Label: nav.Label("My Drafts"),
	}); err != nil {
		log.Fatalf("create item: %v", err)
	}
	if err := session.Save(ctx); err != nil {
		log.Fatalf("save session: %v", err)
	}

	result, err := module.Layouts().Load(ctx, userID)
	if err != nil {
		log.Fatalf("load layout: %v", err)
	}
	dumpJSON("reconciled layout", map[string]any{
		"isCustom": result.IsCustom,
		"groups":   result.Groups,
	})

	mux := http.NewServeMux()
	if err := module.RegisterRoutes(mux); err != nil {
		log.Fatalf("register routes: %v", err)
	}

	// Demo auth: every request runs as the seeded user.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, adminnav.WithUser(r, userID))
	})

	addr := ":8080"
	if fromEnv := os.Getenv("ADMIN_NAV_ADDR"); fromEnv != "" {
		addr = fromEnv
	}
	fmt.Printf("serving %s/default-nav and %s/preferences on %s\n",
		module.API().BasePath(), module.API().BasePath(), addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func dumpJSON(label string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", label, err)
	}
	fmt.Printf("%s:\n%s\n", label, data)
}
