package di

import (
	"fmt"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	adminhttp "github.com/goliatone/go-admin-nav/internal/http"
	"github.com/goliatone/go-admin-nav/internal/logging"
	"github.com/goliatone/go-admin-nav/internal/logging/console"
	"github.com/goliatone/go-admin-nav/internal/logging/gologger"
	nav "github.com/goliatone/go-admin-nav/internal/nav"
	"github.com/goliatone/go-admin-nav/internal/preferences"
	"github.com/goliatone/go-admin-nav/internal/runtimeconfig"
	"github.com/goliatone/go-admin-nav/pkg/interfaces"
)

// Container wires module dependencies from configuration plus optional
// overrides.
type Container struct {
	Config runtimeconfig.Config

	db              *bun.DB
	cacheService    repocache.CacheService
	cacheSerializer repocache.KeySerializer
	cacheTTL        time.Duration

	logProvider interfaces.LoggerProvider

	prefRepo       preferences.Repository
	schemaProvider nav.SchemaProvider
	defaults       nav.DefaultProvider
	pathResolver   nav.AdminPathResolver
	layoutCache    *nav.LayoutCache
	layoutSvc      nav.Service

	api *adminhttp.NavAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB installs the database handle used by the bun storage provider.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.db = db
	}
}

// WithCache overrides the default cache provider.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.cacheSerializer = serializer
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.logProvider = provider
	}
}

// WithPreferenceRepository overrides the default preference repository.
func WithPreferenceRepository(repo preferences.Repository) Option {
	return func(c *Container) {
		c.prefRepo = repo
	}
}

// WithSchemaProvider wires the host schema source for auto-discovery.
func WithSchemaProvider(provider nav.SchemaProvider) Option {
	return func(c *Container) {
		c.schemaProvider = provider
	}
}

// WithDefaultProvider overrides the default layout source entirely.
func WithDefaultProvider(provider nav.DefaultProvider) Option {
	return func(c *Container) {
		c.defaults = provider
	}
}

// WithPathResolver overrides the admin href resolver used by discovery.
func WithPathResolver(resolver nav.AdminPathResolver) Option {
	return func(c *Container) {
		c.pathResolver = resolver
	}
}

// WithLayoutService overrides the default layout service binding.
func WithLayoutService(svc nav.Service) Option {
	return func(c *Container) {
		c.layoutSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	if err := c.configureRepositories(); err != nil {
		return nil, err
	}
	c.configureNavigation()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.logProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "", "console":
		level := consoleLevel(c.Config.Logging.Level)
		c.logProvider = console.NewProvider(console.Options{MinLevel: &level})
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.logProvider = provider
	default:
		return fmt.Errorf("di: unsupported logging provider %q", c.Config.Logging.Provider)
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Features.AdvancedCache {
		return
	}
	if c.cacheService != nil && c.cacheSerializer != nil {
		return
	}

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = c.cacheTTL
	service, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		logging.ModuleLogger(c.logProvider, "adminnav").
			Warn("advanced cache unavailable, continuing without it", "error", err)
		return
	}
	c.cacheService = service
	c.cacheSerializer = repocache.NewDefaultKeySerializer()
}

func (c *Container) configureRepositories() error {
	if c.prefRepo != nil {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider)) {
	case "", "memory":
		c.prefRepo = preferences.NewMemoryRepository()
	case "bun":
		if c.db == nil {
			return fmt.Errorf("di: bun storage requires a database handle")
		}
		if c.cacheService != nil && c.cacheSerializer != nil {
			c.prefRepo = preferences.NewBunRepositoryWithCache(c.db, c.cacheService, c.cacheSerializer)
		} else {
			c.prefRepo = preferences.NewBunRepository(c.db)
		}
	default:
		return fmt.Errorf("di: unsupported storage provider %q", c.Config.Storage.Provider)
	}
	return nil
}

func (c *Container) configureNavigation() {
	navCfg := c.Config.Navigation

	if c.pathResolver == nil {
		if navCfg.RouteConfig != nil {
			c.pathResolver = nav.NewURLKitResolver(nav.URLKitResolverOptions{
				Manager:         urlkit.NewRouteManager(navCfg.RouteConfig),
				Group:           navCfg.URLKit.Group,
				CollectionRoute: navCfg.URLKit.CollectionRoute,
				GlobalRoute:     navCfg.URLKit.GlobalRoute,
				ViewRoute:       navCfg.URLKit.ViewRoute,
				SlugParam:       navCfg.URLKit.SlugParam,
				PathParam:       navCfg.URLKit.PathParam,
				Fallback:        nav.NewDefaultPathResolver(navCfg.AdminBasePath),
			})
		} else {
			c.pathResolver = nav.NewDefaultPathResolver(navCfg.AdminBasePath)
		}
	}

	if c.defaults == nil {
		if len(navCfg.DefaultNav) > 0 {
			c.defaults = nav.StaticDefaults(navCfg.DefaultNav)
		} else {
			discoverer := nav.NewDiscoverer(
				nav.WithPathResolver(c.pathResolver),
				nav.WithPreferencesSlug(navCfg.PreferencesSlug),
				nav.WithDiscoverLogger(logging.DiscoveryLogger(c.logProvider)),
			)
			c.defaults = nav.DiscoveredDefaults(c.schemaProvider, discoverer)
		}
	}

	if c.Config.Cache.Enabled && c.layoutCache == nil {
		c.layoutCache = nav.NewLayoutCache()
	}

	if c.layoutSvc == nil {
		svcOpts := []nav.ServiceOption{
			nav.WithLogger(logging.LayoutLogger(c.logProvider)),
		}
		if c.layoutCache != nil {
			svcOpts = append(svcOpts, nav.WithCache(c.layoutCache))
		}
		c.layoutSvc = nav.NewService(c.prefRepo, c.defaults, svcOpts...)
	}

	c.api = adminhttp.NewNavAPI(
		adminhttp.WithBasePath(navCfg.BasePath),
		adminhttp.WithLayoutService(c.layoutSvc),
		adminhttp.WithAfterNav(navCfg.AfterNav),
		adminhttp.WithLogger(logging.HTTPLogger(c.logProvider)),
	)
}

// API returns the HTTP surface for mounting on a host mux.
func (c *Container) API() *adminhttp.NavAPI {
	return c.api
}

// LayoutService returns the configured layout service.
func (c *Container) LayoutService() nav.Service {
	return c.layoutSvc
}

// PreferenceRepository exposes the configured preference repository.
func (c *Container) PreferenceRepository() preferences.Repository {
	return c.prefRepo
}

// LayoutCache exposes the per-user layout cache, when enabled.
func (c *Container) LayoutCache() *nav.LayoutCache {
	return c.layoutCache
}

// LoggerProvider exposes the configured logger provider, which may be nil
// when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.logProvider
}

// PathResolver exposes the admin href resolver used by discovery.
func (c *Container) PathResolver() nav.AdminPathResolver {
	return c.pathResolver
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "", "info":
		return console.LevelInfo
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
