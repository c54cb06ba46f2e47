package nav_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	adminnav "github.com/goliatone/go-admin-nav/nav"

	"github.com/goliatone/go-admin-nav/internal/nav"
)

type stubLayoutService struct {
	loadResult nav.LoadResult
	loadErr    error
	saveErr    error
	resetErr   error

	saved     [][]adminnav.NavGroup
	resets    int
	loadCalls int
}

func (s *stubLayoutService) Load(context.Context, uuid.UUID) (nav.LoadResult, error) {
	s.loadCalls++
	if s.loadErr != nil {
		return nav.LoadResult{}, s.loadErr
	}
	return nav.LoadResult{
		Groups:   adminnav.CloneGroups(s.loadResult.Groups),
		IsCustom: s.loadResult.IsCustom,
		Version:  s.loadResult.Version,
	}, nil
}

func (s *stubLayoutService) Save(_ context.Context, _ uuid.UUID, groups []adminnav.NavGroup) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, adminnav.CloneGroups(groups))
	return nil
}

func (s *stubLayoutService) Reset(context.Context, uuid.UUID) error {
	if s.resetErr != nil {
		return s.resetErr
	}
	s.resets++
	return nil
}

func (s *stubLayoutService) Preference(context.Context, uuid.UUID) (*adminnav.NavLayout, error) {
	return nil, nil
}

func (s *stubLayoutService) Defaults(context.Context) ([]adminnav.NavGroup, error) {
	return adminnav.CloneGroups(s.loadResult.Groups), nil
}

func sampleGroups() []adminnav.NavGroup {
	return []adminnav.NavGroup{
		{
			ID:    "collections",
			Title: adminnav.Label("Collections"),
			Items: []adminnav.NavItem{
				{ID: "posts", Href: "/admin/collections/posts", Label: adminnav.Label("Posts"), Icon: "newspaper", MatchPrefix: true},
				{ID: "pages", Href: "/admin/collections/pages", Label: adminnav.Label("Pages"), Icon: "file-text", MatchPrefix: true},
				{ID: "media", Href: "/admin/collections/media", Label: adminnav.Label("Media"), Icon: "image", MatchPrefix: true},
			},
		},
		{
			ID:    "configuration",
			Title: adminnav.Label("Configuration"),
			Items: []adminnav.NavItem{
				{ID: "global-header", Href: "/admin/globals/header", Label: adminnav.Label("Header"), Icon: "panel-top"},
			},
		},
	}
}

func newEditingSession(t *testing.T, svc *stubLayoutService) *nav.Session {
	t.Helper()
	session := nav.NewSession(svc, uuid.New())
	if err := session.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return session
}

func TestSession_RequiresInit(t *testing.T) {
	session := nav.NewSession(&stubLayoutService{}, uuid.New())

	if got := session.State(); got != nav.SessionUninitialized {
		t.Fatalf("expected uninitialized state, got %q", got)
	}
	if err := session.MoveGroup(0, 1); !errors.Is(err, nav.ErrSessionNotReady) {
		t.Fatalf("expected not-ready error, got %v", err)
	}
	if err := session.Save(context.Background()); !errors.Is(err, nav.ErrSessionNotReady) {
		t.Fatalf("expected not-ready error on save, got %v", err)
	}
}

func TestSession_InitLoadsWorkingCopy(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if got := session.State(); got != nav.SessionEditing {
		t.Fatalf("expected editing state, got %q", got)
	}
	if session.IsDirty() {
		t.Fatal("freshly initialized session must be clean")
	}

	groups := session.Groups()
	if len(groups) != 2 || groups[0].ID != "collections" {
		t.Fatalf("unexpected working copy: %+v", groups)
	}

	// Mutating the returned copy must not leak into the session.
	groups[0].Items[0].ID = "mutated"
	if session.Groups()[0].Items[0].ID != "posts" {
		t.Fatal("Groups must return an independent copy")
	}
}

func TestSession_MoveGroup(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.MoveGroup(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	groups := session.Groups()
	if groups[0].ID != "configuration" || groups[1].ID != "collections" {
		t.Fatalf("unexpected order after move: %q, %q", groups[0].ID, groups[1].ID)
	}
	if !session.IsDirty() {
		t.Fatal("reorder must mark the session dirty")
	}

	if err := session.MoveGroup(0, 5); !errors.Is(err, nav.ErrIndexOutOfRange) {
		t.Fatalf("expected index error, got %v", err)
	}
}

func TestSession_MoveItemKeepsMembership(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.MoveItem("collections", 0, 2); err != nil {
		t.Fatalf("move: %v", err)
	}

	items := session.Groups()[0].Items
	wantOrder := []string{"pages", "media", "posts"}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, items[i].ID)
		}
	}

	if err := session.MoveItem("missing", 0, 1); !errors.Is(err, nav.ErrGroupNotFound) {
		t.Fatalf("expected group-not-found, got %v", err)
	}
}

func TestSession_MoveItemToGroup(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.MoveItemToGroup("posts", "collections", "configuration", "global-header"); err != nil {
		t.Fatalf("move: %v", err)
	}

	groups := session.Groups()
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected source group to shrink, got %d items", len(groups[0].Items))
	}
	target := groups[1].Items
	if len(target) != 2 || target[0].ID != "posts" || target[1].ID != "global-header" {
		t.Fatalf("expected insertion before the target item, got %+v", target)
	}
	if target[0].Href != "/admin/collections/posts" {
		t.Fatal("moved item must be unchanged")
	}
}

func TestSession_MoveItemToGroupAppendsWithoutTarget(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.MoveItemToGroup("pages", "collections", "configuration", ""); err != nil {
		t.Fatalf("move: %v", err)
	}

	target := session.Groups()[1].Items
	if len(target) != 2 || target[1].ID != "pages" {
		t.Fatalf("expected append at the end, got %+v", target)
	}
}

func TestSession_ToggleVisibilityIsTriState(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.ToggleItemVisibility("collections", "posts"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	item := session.Groups()[0].Items[0]
	if item.Visible == nil || *item.Visible != false {
		t.Fatalf("expected explicit false after first toggle, got %v", item.Visible)
	}

	if err := session.ToggleItemVisibility("collections", "posts"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	item = session.Groups()[0].Items[0]
	if item.Visible == nil || *item.Visible != true {
		t.Fatalf("expected explicit true after second toggle, got %v", item.Visible)
	}

	if err := session.ToggleGroupVisibility("configuration"); err != nil {
		t.Fatalf("toggle group: %v", err)
	}
	group := session.Groups()[1]
	if group.Visible == nil || *group.Visible != false {
		t.Fatalf("expected hidden group, got %v", group.Visible)
	}
}

func TestSession_CreateGroup(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	created, err := session.CreateGroup(nav.CreateGroupInput{Title: adminnav.Label("My Links")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "my-links" {
		t.Fatalf("expected slugified id, got %q", created.ID)
	}
	if created.Visible == nil || !*created.Visible {
		t.Fatal("new groups must start explicitly visible")
	}
	if created.Items == nil || len(created.Items) != 0 {
		t.Fatalf("new groups must start with an empty item list, got %v", created.Items)
	}

	if _, err := session.CreateGroup(nav.CreateGroupInput{Title: adminnav.Label("My Links")}); !errors.Is(err, nav.ErrGroupExists) {
		t.Fatalf("expected duplicate id rejection, got %v", err)
	}
	if _, err := session.CreateGroup(nav.CreateGroupInput{}); !errors.Is(err, nav.ErrGroupTitleRequired) {
		t.Fatalf("expected title requirement, got %v", err)
	}
}

func TestSession_UpdateGroupKeepsID(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	updated, err := session.UpdateGroup(nav.UpdateGroupInput{
		ID:               "collections",
		Title:            adminnav.Label("Content"),
		DefaultCollapsed: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != "collections" {
		t.Fatalf("group id must be immutable, got %q", updated.ID)
	}
	if got := updated.Title.Resolve("", ""); got != "Content" {
		t.Fatalf("expected new title, got %q", got)
	}
	if !updated.DefaultCollapsed {
		t.Fatal("expected collapse default to update")
	}

	if _, err := session.UpdateGroup(nav.UpdateGroupInput{ID: "missing", Title: adminnav.Label("X")}); !errors.Is(err, nav.ErrGroupNotFound) {
		t.Fatalf("expected group-not-found, got %v", err)
	}
}

func TestSession_DeleteGroupRequiresConfirmation(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	err := session.DeleteGroup(nav.DeleteGroupRequest{ID: "collections"})
	if !errors.Is(err, nav.ErrDeleteNotConfirmed) {
		t.Fatalf("expected confirmation requirement, got %v", err)
	}
	if len(session.Groups()) != 2 {
		t.Fatal("unconfirmed delete must not remove the group")
	}

	if err := session.DeleteGroup(nav.DeleteGroupRequest{ID: "collections", Confirmed: true}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	groups := session.Groups()
	if len(groups) != 1 || groups[0].ID != "configuration" {
		t.Fatalf("expected the group and its items gone, got %+v", groups)
	}
}

func TestSession_CreateItem(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := nav.NewSession(svc, uuid.New(), nav.WithItemIDGenerator(func() string { return "item-fixed" }))
	if err := session.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	created, err := session.CreateItem("collections", nav.ItemInput{
		Href:  "/admin/custom",
		Label: adminnav.Label("Custom"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "item-fixed" {
		t.Fatalf("expected generated id, got %q", created.ID)
	}
	if created.Icon != nav.DefaultItemIcon {
		t.Fatalf("expected default icon, got %q", created.Icon)
	}
	if created.Visible == nil || !*created.Visible {
		t.Fatal("new items must start explicitly visible")
	}

	if _, err := session.CreateItem("collections", nav.ItemInput{Href: "/x"}); !errors.Is(err, nav.ErrItemInvalid) {
		t.Fatalf("expected label requirement, got %v", err)
	}
	if _, err := session.CreateItem("collections", nav.ItemInput{Label: adminnav.Label("X")}); !errors.Is(err, nav.ErrItemInvalid) {
		t.Fatalf("expected href requirement, got %v", err)
	}
}

func TestSession_UpdateItemKeepsIconWhenUnset(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	updated, err := session.UpdateItem("collections", nav.ItemInput{
		ID:    "posts",
		Href:  "/admin/collections/posts",
		Label: adminnav.Label("All Posts"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Icon != "newspaper" {
		t.Fatalf("expected icon to survive an empty input, got %q", updated.Icon)
	}
	if got := updated.Label.Resolve("", ""); got != "All Posts" {
		t.Fatalf("expected new label, got %q", got)
	}

	items := session.Groups()[0].Items
	if items[0].ID != "posts" {
		t.Fatal("update must keep the item position")
	}
}

func TestSession_DeleteItem(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.DeleteItem("collections", "pages"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items := session.Groups()[0].Items
	if len(items) != 2 || items[0].ID != "posts" || items[1].ID != "media" {
		t.Fatalf("unexpected items after delete: %+v", items)
	}

	if err := session.DeleteItem("collections", "pages"); !errors.Is(err, nav.ErrItemNotFound) {
		t.Fatalf("expected item-not-found, got %v", err)
	}
}

func TestSession_ApplyChildren(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	children := []adminnav.NavItem{
		{ID: "drafts", Href: "/admin/collections/posts?status=draft", Label: adminnav.Label("Drafts"), Icon: "#888888"},
	}
	if err := session.ApplyChildren("collections", "posts", children); err != nil {
		t.Fatalf("apply: %v", err)
	}

	got := session.Groups()[0].Items[0].Children
	if len(got) != 1 || got[0].ID != "drafts" {
		t.Fatalf("unexpected children: %+v", got)
	}

	// The session must hold its own copy.
	children[0].Href = "/mutated"
	if session.Groups()[0].Items[0].Children[0].Href != "/admin/collections/posts?status=draft" {
		t.Fatal("applied children must be copied")
	}
}

func TestSession_SaveAdvancesBaseline(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.MoveGroup(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(svc.saved) != 1 {
		t.Fatalf("expected one persisted layout, got %d", len(svc.saved))
	}
	if svc.saved[0][0].ID != "configuration" {
		t.Fatalf("expected the reordered layout to persist, got %q first", svc.saved[0][0].ID)
	}
	if session.IsDirty() {
		t.Fatal("successful save must clear the dirty flag")
	}
	if got := session.State(); got != nav.SessionEditing {
		t.Fatalf("expected editing state after save, got %q", got)
	}
}

func TestSession_SaveFailureRetainsWorkingCopy(t *testing.T) {
	svc := &stubLayoutService{
		loadResult: nav.LoadResult{Groups: sampleGroups()},
		saveErr:    errors.New("storage offline"),
	}
	session := newEditingSession(t, svc)

	if err := session.MoveGroup(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := session.Save(context.Background()); err == nil {
		t.Fatal("expected save to fail")
	}

	groups := session.Groups()
	if groups[0].ID != "configuration" {
		t.Fatal("failed save must keep the user's edits")
	}
	if !session.IsDirty() {
		t.Fatal("failed save must leave the session dirty")
	}
	if got := session.State(); got != nav.SessionEditing {
		t.Fatalf("expected session back in editing, got %q", got)
	}
}

func TestSession_ResetReloadsDefaults(t *testing.T) {
	svc := &stubLayoutService{loadResult: nav.LoadResult{Groups: sampleGroups()}}
	session := newEditingSession(t, svc)

	if err := session.DeleteGroup(nav.DeleteGroupRequest{ID: "collections", Confirmed: true}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := session.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if svc.resets != 1 {
		t.Fatalf("expected one reset call, got %d", svc.resets)
	}
	if svc.loadCalls != 2 {
		t.Fatalf("expected a reload after reset, got %d loads", svc.loadCalls)
	}
	groups := session.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected defaults restored, got %+v", groups)
	}
	if session.IsDirty() {
		t.Fatal("reset session must be clean")
	}
	if got := session.State(); got != nav.SessionEditing {
		t.Fatalf("expected editing state after reset, got %q", got)
	}
}

func TestSession_ResetFailureKeepsWorkingCopy(t *testing.T) {
	svc := &stubLayoutService{
		loadResult: nav.LoadResult{Groups: sampleGroups()},
		resetErr:   errors.New("storage offline"),
	}
	session := newEditingSession(t, svc)

	if err := session.MoveGroup(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := session.Reset(context.Background()); err == nil {
		t.Fatal("expected reset to fail")
	}
	if session.Groups()[0].ID != "configuration" {
		t.Fatal("failed reset must keep the working copy")
	}
	if got := session.State(); got != nav.SessionEditing {
		t.Fatalf("expected editing state after failed reset, got %q", got)
	}
}
