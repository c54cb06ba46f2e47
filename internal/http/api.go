package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	nav "github.com/goliatone/go-admin-nav/internal/nav"
	"github.com/goliatone/go-admin-nav/internal/identity"
	"github.com/goliatone/go-admin-nav/internal/logging"
	"github.com/goliatone/go-admin-nav/pkg/interfaces"
)

// UserResolver extracts the authenticated user from a request. Returning
// false means the request is anonymous.
type UserResolver func(r *http.Request) (uuid.UUID, bool)

// NavAPI registers the navigation endpoints.
type NavAPI struct {
	basePath string
	layouts  nav.Service
	afterNav []string
	resolver UserResolver
	logger   interfaces.Logger
}

// NavOption mutates the NavAPI configuration.
type NavOption func(*NavAPI)

// NewNavAPI constructs a NavAPI instance.
func NewNavAPI(opts ...NavOption) *NavAPI {
	api := &NavAPI{
		basePath: "/admin-nav",
		resolver: func(r *http.Request) (uuid.UUID, bool) {
			return identity.UserFromContext(r.Context())
		},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin-nav").
func WithBasePath(path string) NavOption {
	return func(api *NavAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithLayoutService wires the layout reconciliation service.
func WithLayoutService(service nav.Service) NavOption {
	return func(api *NavAPI) {
		if api != nil {
			api.layouts = service
		}
	}
}

// WithAfterNav sets the group ids pinned after user-managed groups when the
// sidebar renders.
func WithAfterNav(groupIDs []string) NavOption {
	return func(api *NavAPI) {
		if api != nil {
			api.afterNav = append([]string(nil), groupIDs...)
		}
	}
}

// WithUserResolver overrides how the authenticated user is extracted.
func WithUserResolver(resolver UserResolver) NavOption {
	return func(api *NavAPI) {
		if api != nil && resolver != nil {
			api.resolver = resolver
		}
	}
}

// WithLogger overrides the API logger.
func WithLogger(logger interfaces.Logger) NavOption {
	return func(api *NavAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// BasePath returns the configured mount path.
func (api *NavAPI) BasePath() string {
	return api.basePath
}

// Register attaches the navigation endpoints to the provided mux.
func (api *NavAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: nav api is nil")
	}

	base := joinPath(api.basePath, "")

	mux.HandleFunc("GET "+joinPath(base, "default-nav"), api.handleDefaultNav)
	mux.HandleFunc("GET "+joinPath(base, "preferences"), api.handlePreferencesGet)
	mux.HandleFunc("PATCH "+joinPath(base, "preferences"), api.handlePreferencesSave)
	mux.HandleFunc("DELETE "+joinPath(base, "preferences"), api.handlePreferencesReset)

	return nil
}
