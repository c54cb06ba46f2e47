package nav

// LayoutVersion is the schema tag written on every persisted layout.
const LayoutVersion = 1

// NavItem is a single sidebar entry. Children nest one level only; a child
// never carries its own children.
type NavItem struct {
	ID          string          `json:"id"`
	Href        string          `json:"href"`
	Label       LocalizedString `json:"label"`
	Icon        string          `json:"icon"`
	MatchPrefix bool            `json:"matchPrefix,omitempty"`
	Children    []NavItem       `json:"children,omitempty"`
	// Visible is tri-state: nil means visible; once toggled it stays an
	// explicit true or false and never reverts to nil. Default-vs-custom
	// diffing depends on field presence, so the asymmetry is intentional.
	Visible *bool `json:"visible,omitempty"`
}

// NavGroup is a titled section of sidebar entries. The ID doubles as a slug
// for URL-independent identification.
type NavGroup struct {
	ID               string          `json:"id"`
	Title            LocalizedString `json:"title"`
	Items            []NavItem       `json:"items"`
	Visible          *bool           `json:"visible,omitempty"`
	DefaultCollapsed bool            `json:"defaultCollapsed,omitempty"`
}

// NavLayout is the full per-user navigation document.
type NavLayout struct {
	Groups  []NavGroup `json:"groups"`
	Version int        `json:"version"`
}

// IsVisible treats an absent visibility flag as visible.
func (i NavItem) IsVisible() bool {
	return i.Visible == nil || *i.Visible
}

// IsVisible treats an absent visibility flag as visible.
func (g NavGroup) IsVisible() bool {
	return g.Visible == nil || *g.Visible
}

// ToggleVisible flips a tri-state visibility flag. Absent counts as visible,
// so the first toggle produces an explicit false; subsequent toggles swing
// between explicit true and explicit false.
func ToggleVisible(current *bool) *bool {
	next := !(current == nil || *current)
	return &next
}

// Clone deep-copies the item, including children.
func (i NavItem) Clone() NavItem {
	cloned := i
	if i.Visible != nil {
		visible := *i.Visible
		cloned.Visible = &visible
	}
	cloned.Children = CloneItems(i.Children)
	return cloned
}

// Clone deep-copies the group and its items.
func (g NavGroup) Clone() NavGroup {
	cloned := g
	if g.Visible != nil {
		visible := *g.Visible
		cloned.Visible = &visible
	}
	cloned.Items = CloneItems(g.Items)
	return cloned
}

// Clone deep-copies the layout.
func (l NavLayout) Clone() NavLayout {
	return NavLayout{Groups: CloneGroups(l.Groups), Version: l.Version}
}

// CloneItems deep-copies a list of items, preserving nil.
func CloneItems(items []NavItem) []NavItem {
	if items == nil {
		return nil
	}
	cloned := make([]NavItem, len(items))
	for i, item := range items {
		cloned[i] = item.Clone()
	}
	return cloned
}

// CloneGroups deep-copies a list of groups, preserving nil.
func CloneGroups(groups []NavGroup) []NavGroup {
	if groups == nil {
		return nil
	}
	cloned := make([]NavGroup, len(groups))
	for i, group := range groups {
		cloned[i] = group.Clone()
	}
	return cloned
}
