package nav

// SchemaSnapshot is a read-only view of the host application's schema used by
// auto-discovery. Hosts assemble one from their own configuration; the module
// never introspects the host directly.
type SchemaSnapshot struct {
	Collections []CollectionSpec `json:"collections,omitempty"`
	Globals     []GlobalSpec     `json:"globals,omitempty"`
	Views       []ViewSpec       `json:"views,omitempty"`
}

// CollectionSpec describes one host collection.
type CollectionSpec struct {
	Slug          string          `json:"slug"`
	Hidden        bool            `json:"hidden,omitempty"`
	Group         string          `json:"group,omitempty"`
	LabelSingular LocalizedString `json:"labelSingular,omitempty"`
	LabelPlural   LocalizedString `json:"labelPlural,omitempty"`
}

// GlobalSpec describes one host global document.
type GlobalSpec struct {
	Slug   string          `json:"slug"`
	Hidden bool            `json:"hidden,omitempty"`
	Group  string          `json:"group,omitempty"`
	Label  LocalizedString `json:"label,omitempty"`
}

// ViewSpec describes one custom admin view.
type ViewSpec struct {
	Key    string `json:"key"`
	Path   string `json:"path"`
	Hidden bool   `json:"hidden,omitempty"`
}
