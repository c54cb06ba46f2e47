package nav

import "context"

// SchemaProvider supplies the host schema snapshot consumed by discovery.
// Hosts implement this against their own collection registry.
type SchemaProvider interface {
	SchemaSnapshot(ctx context.Context) (SchemaSnapshot, error)
}

// SchemaProviderFunc adapts a function to SchemaProvider.
type SchemaProviderFunc func(ctx context.Context) (SchemaSnapshot, error)

func (f SchemaProviderFunc) SchemaSnapshot(ctx context.Context) (SchemaSnapshot, error) {
	return f(ctx)
}

// DiscoveredDefaults builds a DefaultProvider that regenerates the layout
// from the host schema on every call, so schema changes show up without a
// restart.
func DiscoveredDefaults(provider SchemaProvider, discoverer *Discoverer) DefaultProvider {
	if discoverer == nil {
		discoverer = NewDiscoverer()
	}
	return DefaultProviderFunc(func(ctx context.Context) ([]NavGroup, error) {
		if provider == nil {
			return []NavGroup{}, nil
		}
		snapshot, err := provider.SchemaSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		return discoverer.Discover(snapshot), nil
	})
}
