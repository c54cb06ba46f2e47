package nav

import (
	"strings"
	"unicode"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-admin-nav/internal/logging"
	adminnav "github.com/goliatone/go-admin-nav/nav"
	"github.com/goliatone/go-admin-nav/pkg/interfaces"
)

const (
	// DefaultPreferencesSlug is the collection slug reserved for stored
	// layouts; discovery always skips it.
	DefaultPreferencesSlug = "admin-nav-preferences"

	// CustomizerViewKey identifies the module's own admin view, excluded
	// from discovered navigation.
	CustomizerViewKey = "nav-customizer"

	defaultCollectionsGroup = "Collections"
	defaultGlobalsGroup     = "Configuration"
	viewsGroupName          = "Views"

	fallbackIcon = "box"
)

type iconRule struct {
	key  string
	icon string
}

// iconRules maps well-known slugs to registry icons. Declaration order is the
// tie-breaker for substring matches, so more specific keys come first within
// each block.
var iconRules = []iconRule{
	// Content
	{"pages", "file-text"},
	{"posts", "newspaper"},
	{"articles", "newspaper"},
	{"blog", "newspaper"},
	{"media", "image"},
	{"images", "image"},
	{"files", "file-up"},
	{"categories", "tag"},
	{"tags", "tag"},
	// Users
	{"users", "user-cog"},
	{"members", "users"},
	{"authors", "users"},
	// Forms
	{"forms", "clipboard-list"},
	{"form-submissions", "clipboard-list"},
	// Support
	{"tickets", "ticket"},
	{"comments", "message-square"},
	{"messages", "message-square"},
	{"chat-messages", "message-square"},
	// Projects
	{"projects", "folder-kanban"},
	// Commerce
	{"products", "box"},
	{"orders", "receipt"},
	// SEO
	{"redirects", "shuffle"},
	{"custom-redirects", "shuffle"},
	{"search", "search"},
	{"seo-logs", "search-check"},
	{"analytics", "bar-chart-3"},
	// Configuration
	{"header", "panel-top"},
	{"footer", "panel-bottom"},
	{"settings", "settings"},
	{"navigation", "link"},
	{"menus", "link"},
	// Misc
	{"emails", "mail"},
	{"email-logs", "mail-search"},
	{"auth-logs", "shield-check"},
	{"notifications", "activity"},
	{"admin-notifications", "activity"},
	{"logs", "activity"},
}

// GuessIcon picks a registry icon for a slug: an exact table hit wins, then
// the first table entry whose key is a substring of the slug, then a generic
// fallback. Cosmetic, best effort.
func GuessIcon(value string) string {
	for _, rule := range iconRules {
		if rule.key == value {
			return rule.icon
		}
	}
	for _, rule := range iconRules {
		if strings.Contains(value, rule.key) {
			return rule.icon
		}
	}
	return fallbackIcon
}

// TitleizeSlug renders a slug as a display label: split on hyphens, first
// letter of each word upper-cased, joined with spaces.
func TitleizeSlug(value string) string {
	words := strings.Split(value, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// SlugifyGroupName derives a group id from a display name: lower-case with
// non-alphanumeric runs collapsed to single hyphens and boundary hyphens
// stripped.
func SlugifyGroupName(name string) string {
	if normalized, err := slug.Normalize(name); err == nil && normalized != "" {
		return normalized
	}
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Discoverer generates a default navigation layout from a host schema
// snapshot when no static layout is configured.
type Discoverer struct {
	paths           AdminPathResolver
	preferencesSlug string
	logger          interfaces.Logger
}

// DiscoverOption mutates the Discoverer configuration.
type DiscoverOption func(*Discoverer)

// WithPathResolver overrides the admin URL resolver used for hrefs.
func WithPathResolver(resolver AdminPathResolver) DiscoverOption {
	return func(d *Discoverer) {
		if d != nil && resolver != nil {
			d.paths = resolver
		}
	}
}

// WithPreferencesSlug overrides the preferences collection slug skipped
// during discovery.
func WithPreferencesSlug(value string) DiscoverOption {
	return func(d *Discoverer) {
		if d == nil {
			return
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			d.preferencesSlug = trimmed
		}
	}
}

// WithDiscoverLogger overrides the discovery logger.
func WithDiscoverLogger(logger interfaces.Logger) DiscoverOption {
	return func(d *Discoverer) {
		if d != nil && logger != nil {
			d.logger = logger
		}
	}
}

// NewDiscoverer constructs a discoverer with default admin paths.
func NewDiscoverer(opts ...DiscoverOption) *Discoverer {
	d := &Discoverer{
		paths:           NewDefaultPathResolver(DefaultAdminBasePath),
		preferencesSlug: DefaultPreferencesSlug,
		logger:          logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

type groupAccumulator struct {
	order []string
	items map[string][]NavItem
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{items: make(map[string][]NavItem)}
}

func (a *groupAccumulator) add(groupName string, item NavItem) {
	if _, seen := a.items[groupName]; !seen {
		a.order = append(a.order, groupName)
	}
	a.items[groupName] = append(a.items[groupName], item)
}

// Discover walks collections, then globals, then custom views, grouping items
// by admin group name in first-seen order. Output is deterministic for a
// fixed snapshot; it is not alphabetical.
func (d *Discoverer) Discover(snapshot SchemaSnapshot) []NavGroup {
	groups := newGroupAccumulator()

	for _, collection := range snapshot.Collections {
		if collection.Hidden || collection.Slug == d.preferencesSlug {
			continue
		}
		groupName := collection.Group
		if groupName == "" {
			groupName = defaultCollectionsGroup
		}
		groups.add(groupName, NavItem{
			ID:          collection.Slug,
			Href:        d.paths.CollectionPath(collection.Slug),
			Label:       collectionLabel(collection),
			Icon:        GuessIcon(collection.Slug),
			MatchPrefix: true,
		})
	}

	for _, global := range snapshot.Globals {
		if global.Hidden {
			continue
		}
		groupName := global.Group
		if groupName == "" {
			groupName = defaultGlobalsGroup
		}
		label := global.Label
		if !label.IsSet() {
			label = adminnav.Label(TitleizeSlug(global.Slug))
		}
		groups.add(groupName, NavItem{
			ID:    "global-" + global.Slug,
			Href:  d.paths.GlobalPath(global.Slug),
			Label: label,
			Icon:  GuessIcon(global.Slug),
		})
	}

	for _, view := range snapshot.Views {
		if view.Hidden || view.Path == "" || view.Key == CustomizerViewKey {
			continue
		}
		groups.add(viewsGroupName, NavItem{
			ID:    "view-" + view.Key,
			Href:  d.paths.ViewPath(view.Path),
			Label: adminnav.Label(TitleizeSlug(view.Key)),
			Icon:  GuessIcon(view.Key),
		})
	}

	result := make([]NavGroup, 0, len(groups.order))
	items := 0
	for _, name := range groups.order {
		result = append(result, NavGroup{
			ID:    SlugifyGroupName(name),
			Title: adminnav.Label(name),
			Items: groups.items[name],
		})
		items += len(groups.items[name])
	}
	d.logger.Debug("discovered default navigation", "groups", len(result), "items", items)
	return result
}

func collectionLabel(collection CollectionSpec) LocalizedString {
	if collection.LabelPlural.IsSet() {
		return collection.LabelPlural
	}
	if collection.LabelSingular.IsSet() {
		return collection.LabelSingular
	}
	return adminnav.Label(TitleizeSlug(collection.Slug))
}
