package nav

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLKitResolverOptions configures the go-urlkit backed path resolver.
type URLKitResolverOptions struct {
	Manager         *urlkit.RouteManager
	Group           string
	CollectionRoute string
	GlobalRoute     string
	ViewRoute       string
	SlugParam       string
	PathParam       string
	Fallback        AdminPathResolver
}

// URLKitResolver resolves admin hrefs through a go-urlkit RouteManager. Any
// lookup or build failure falls back to the plain path resolver so discovery
// never produces empty hrefs.
type URLKitResolver struct {
	manager *urlkit.RouteManager

	groupPath       string
	collectionRoute string
	globalRoute     string
	viewRoute       string
	slugParam       string
	pathParam       string

	fallback AdminPathResolver

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.Group == "" {
		opts.Group = "admin"
	}
	if opts.CollectionRoute == "" {
		opts.CollectionRoute = "collection"
	}
	if opts.GlobalRoute == "" {
		opts.GlobalRoute = "global"
	}
	if opts.ViewRoute == "" {
		opts.ViewRoute = "view"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	if opts.PathParam == "" {
		opts.PathParam = "path"
	}
	if opts.Fallback == nil {
		opts.Fallback = NewDefaultPathResolver(DefaultAdminBasePath)
	}

	return &URLKitResolver{
		manager: opts.Manager,

		groupPath:       strings.TrimSpace(opts.Group),
		collectionRoute: opts.CollectionRoute,
		globalRoute:     opts.GlobalRoute,
		viewRoute:       opts.ViewRoute,
		slugParam:       opts.SlugParam,
		pathParam:       opts.PathParam,

		fallback: opts.Fallback,

		groupCache: make(map[string]*urlkit.Group),
	}
}

// CollectionPath resolves the admin URL for a collection slug.
func (r *URLKitResolver) CollectionPath(slug string) string {
	if url, err := r.build(r.collectionRoute, r.slugParam, slug); err == nil && url != "" {
		return url
	}
	return r.fallback.CollectionPath(slug)
}

// GlobalPath resolves the admin URL for a global slug.
func (r *URLKitResolver) GlobalPath(slug string) string {
	if url, err := r.build(r.globalRoute, r.slugParam, slug); err == nil && url != "" {
		return url
	}
	return r.fallback.GlobalPath(slug)
}

// ViewPath resolves the admin URL for a custom view path.
func (r *URLKitResolver) ViewPath(path string) string {
	if url, err := r.build(r.viewRoute, r.pathParam, strings.TrimLeft(path, "/")); err == nil && url != "" {
		return url
	}
	return r.fallback.ViewPath(path)
}

func (r *URLKitResolver) build(route, param, value string) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("nav: route manager not configured")
	}

	group, err := r.groupForPath(r.groupPath)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil || builder == nil {
		return "", err
	}
	builder.WithParam(param, value)

	url, err := builder.Build()
	if err != nil {
		return "", err
	}
	return url, nil
}

func (r *URLKitResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return nil, fmt.Errorf("nav: invalid route group path %q", path)
	}

	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (*urlkit.Builder, error) {
	if group == nil {
		return nil, fmt.Errorf("nav: urlkit group is nil")
	}
	var (
		builder *urlkit.Builder
		err     error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("nav: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (*urlkit.Group, error) {
	if manager == nil {
		return nil, fmt.Errorf("nav: route manager not configured")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("nav: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (*urlkit.Group, error) {
	if parent == nil {
		return nil, fmt.Errorf("nav: parent group is nil")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("nav: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
