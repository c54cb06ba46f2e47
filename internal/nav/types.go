package nav

import adminnav "github.com/goliatone/go-admin-nav/nav"

type (
	LocalizedString = adminnav.LocalizedString
	LabelEntry      = adminnav.LabelEntry
	NavItem         = adminnav.NavItem
	NavGroup        = adminnav.NavGroup
	NavLayout       = adminnav.NavLayout
	SchemaSnapshot  = adminnav.SchemaSnapshot
	CollectionSpec  = adminnav.CollectionSpec
	GlobalSpec      = adminnav.GlobalSpec
	ViewSpec        = adminnav.ViewSpec
)

// LayoutVersion mirrors the public schema tag.
const LayoutVersion = adminnav.LayoutVersion

// Clone helpers from the public model package, bound here so internal code
// can call them unqualified alongside the aliased types.
var (
	CloneGroups = adminnav.CloneGroups
	CloneItems  = adminnav.CloneItems
)
