package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-admin-nav/nav"
)

var ErrStorageProviderUnknown = errors.New("adminnav config: storage provider is invalid")
var ErrAdvancedCacheRequiresEnabledCache = errors.New("adminnav config: advanced cache feature requires cache to be enabled")
var ErrBasePathRequired = errors.New("adminnav config: navigation base path is required")
var ErrAdminBasePathRequired = errors.New("adminnav config: admin base path is required")
var ErrDefaultLocaleRequired = errors.New("adminnav config: default locale is required")
var ErrLoggingProviderRequired = errors.New("adminnav config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("adminnav config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("adminnav config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("adminnav config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the navigation
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled        bool
	DefaultLocale  string
	FallbackLocale string
	Navigation     NavigationConfig
	Storage        StorageConfig
	Cache          CacheConfig
	Logging        LoggingConfig
	Features       Features
}

// NavigationConfig captures the navigation surface and URL resolution setup.
type NavigationConfig struct {
	// BasePath is where the module's own API mounts.
	BasePath string
	// AdminBasePath prefixes generated admin hrefs.
	AdminBasePath string
	// PreferencesSlug is the reserved collection slug skipped by discovery.
	PreferencesSlug string
	// DefaultNav is a static default layout. When empty the layout is
	// auto-discovered from the host schema.
	DefaultNav []nav.NavGroup
	// AfterNav lists group ids pinned after user-managed groups.
	AfterNav []string
	// RouteConfig enables go-urlkit backed href resolution.
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based resolver.
type URLKitResolverConfig struct {
	Group           string
	CollectionRoute string
	GlobalRoute     string
	ViewRoute       string
	SlugParam       string
	PathParam       string
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Logger        bool
	AdvancedCache bool
}

// DefaultConfig returns opinionated defaults: in-memory storage, memory
// layout cache, console logging.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		DefaultLocale:  "en",
		FallbackLocale: "en",
		Navigation: NavigationConfig{
			BasePath:        "/admin-nav",
			AdminBasePath:   "/admin",
			PreferencesSlug: "admin-nav-preferences",
		},
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if strings.TrimSpace(cfg.Navigation.BasePath) == "" {
		return ErrBasePathRequired
	}
	if strings.TrimSpace(cfg.Navigation.AdminBasePath) == "" {
		return ErrAdminBasePathRequired
	}
	switch normalizeProvider(cfg.Storage.Provider) {
	case "", "memory", "bun":
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
