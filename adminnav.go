package adminnav

import (
	"net/http"

	"github.com/google/uuid"

	adminhttp "github.com/goliatone/go-admin-nav/internal/http"
	"github.com/goliatone/go-admin-nav/internal/di"
	nav "github.com/goliatone/go-admin-nav/internal/nav"
	"github.com/goliatone/go-admin-nav/internal/identity"
	"github.com/goliatone/go-admin-nav/internal/logging"
	"github.com/goliatone/go-admin-nav/internal/preferences"
	"github.com/goliatone/go-admin-nav/pkg/interfaces"
)

// LayoutService exports the layout reconciliation contract for consumers of
// the adminnav package.
type LayoutService = nav.Service

// LoadResult exports the reconciled layout returned by LayoutService.Load.
type LoadResult = nav.LoadResult

// DefaultProvider exports the default layout source contract.
type DefaultProvider = nav.DefaultProvider

// DefaultProviderFunc adapts a function to DefaultProvider.
type DefaultProviderFunc = nav.DefaultProviderFunc

// SchemaProvider exports the host schema source consumed by auto-discovery.
type SchemaProvider = nav.SchemaProvider

// SchemaProviderFunc adapts a function to SchemaProvider.
type SchemaProviderFunc = nav.SchemaProviderFunc

// Session exports the per-user editing session.
type Session = nav.Session

// ChildEditor exports the child list editor used inside item editing.
type ChildEditor = nav.ChildEditor

// ChildDraft exports the draft values held by a ChildEditor.
type ChildDraft = nav.ChildDraft

// Loader exports the last-request-wins load coordinator.
type Loader = nav.Loader

// PreferenceRepository exports the persistence contract for stored layouts.
type PreferenceRepository = preferences.Repository

// NavPreference exports the stored layout record.
type NavPreference = preferences.NavPreference

// Logger re-exports the logging contract accepted by the module.
type Logger = interfaces.Logger

// LoggerProvider re-exports the named logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// Session input types.
type (
	CreateGroupInput   = nav.CreateGroupInput
	UpdateGroupInput   = nav.UpdateGroupInput
	DeleteGroupRequest = nav.DeleteGroupRequest
	ItemInput          = nav.ItemInput
)

// Sentinel errors surfaced by the editing session and layout service.
var (
	ErrUserRequired       = nav.ErrUserRequired
	ErrSessionNotReady    = nav.ErrSessionNotReady
	ErrSessionBusy        = nav.ErrSessionBusy
	ErrGroupNotFound      = nav.ErrGroupNotFound
	ErrItemNotFound       = nav.ErrItemNotFound
	ErrGroupTitleRequired = nav.ErrGroupTitleRequired
	ErrGroupExists        = nav.ErrGroupExists
	ErrItemInvalid        = nav.ErrItemInvalid
	ErrDeleteNotConfirmed = nav.ErrDeleteNotConfirmed
	ErrPreferenceExists   = preferences.ErrPreferenceExists
)

// Module represents the top level admin navigation runtime facade.
type Module struct {
	container *di.Container
}

// Option re-exports the DI container option type so hosts can inject
// dependencies at construction time.
type Option = di.Option

// Re-exported container options.
var (
	WithBunDB                = di.WithBunDB
	WithCache                = di.WithCache
	WithLoggerProvider       = di.WithLoggerProvider
	WithPreferenceRepository = di.WithPreferenceRepository
	WithSchemaProvider       = di.WithSchemaProvider
	WithDefaultProvider      = di.WithDefaultProvider
	WithPathResolver         = di.WithPathResolver
	WithLayoutService        = di.WithLayoutService
)

// New constructs an admin navigation module using the provided configuration
// and optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Layouts returns the configured layout service.
func (m *Module) Layouts() LayoutService {
	return m.container.LayoutService()
}

// Preferences returns the configured preference repository.
func (m *Module) Preferences() PreferenceRepository {
	return m.container.PreferenceRepository()
}

// NewSession starts an editing session for the given user. The session is
// uninitialized until Init loads the reconciled layout.
func (m *Module) NewSession(userID uuid.UUID) *Session {
	return nav.NewSession(
		m.container.LayoutService(),
		userID,
		nav.WithSessionLogger(logging.SessionLogger(m.container.LoggerProvider())),
	)
}

// NewLoader builds a load coordinator that drops superseded results.
func (m *Module) NewLoader(apply func(LoadResult, error)) *Loader {
	return nav.NewLoader(m.container.LayoutService(), apply)
}

// RegisterRoutes attaches the module's HTTP endpoints to the provided mux.
func (m *Module) RegisterRoutes(mux *http.ServeMux) error {
	return m.container.API().Register(mux)
}

// API exposes the HTTP surface for hosts that need to customise registration.
func (m *Module) API() *adminhttp.NavAPI {
	return m.container.API()
}

// WithUser attaches an authenticated user id to a request context so the
// module's handlers can identify the caller. Hosts call this from their
// authentication middleware.
func WithUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(identity.WithUser(r.Context(), userID))
}
