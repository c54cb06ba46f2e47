package nav

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-admin-nav/internal/identity"
	"github.com/goliatone/go-admin-nav/internal/logging"
	"github.com/goliatone/go-admin-nav/internal/preferences"
	"github.com/goliatone/go-admin-nav/pkg/interfaces"
)

var (
	// ErrUserRequired is returned when an operation runs without a user id.
	ErrUserRequired = errors.New("nav: user id required")

	// ErrDefaultsRequired is returned when no default layout provider is
	// configured.
	ErrDefaultsRequired = errors.New("nav: default layout provider required")
)

// DefaultProvider supplies the default navigation layout.
type DefaultProvider interface {
	DefaultNav(ctx context.Context) ([]NavGroup, error)
}

// DefaultProviderFunc adapts a function to DefaultProvider.
type DefaultProviderFunc func(ctx context.Context) ([]NavGroup, error)

func (f DefaultProviderFunc) DefaultNav(ctx context.Context) ([]NavGroup, error) {
	return f(ctx)
}

// StaticDefaults wraps a fixed layout as a DefaultProvider.
func StaticDefaults(groups []NavGroup) DefaultProvider {
	return DefaultProviderFunc(func(context.Context) ([]NavGroup, error) {
		return CloneGroups(groups), nil
	})
}

// LoadResult is the reconciled navigation for one user.
type LoadResult struct {
	Groups   []NavGroup
	IsCustom bool
	Version  int
}

// Service reconciles default and per-user navigation layouts.
type Service interface {
	Load(ctx context.Context, userID uuid.UUID) (LoadResult, error)
	Save(ctx context.Context, userID uuid.UUID, groups []NavGroup) error
	Reset(ctx context.Context, userID uuid.UUID) error
	Preference(ctx context.Context, userID uuid.UUID) (*NavLayout, error)
	Defaults(ctx context.Context) ([]NavGroup, error)
}

// ServiceOption configures the layout service.
type ServiceOption func(*service)

// WithCache installs a per-user layout cache.
func WithCache(cache *LayoutCache) ServiceOption {
	return func(s *service) {
		s.cache = cache
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	repo     preferences.Repository
	defaults DefaultProvider
	cache    *LayoutCache
	logger   interfaces.Logger
	now      func() time.Time
}

// NewService constructs a layout service instance.
func NewService(repo preferences.Repository, defaults DefaultProvider, opts ...ServiceOption) Service {
	s := &service{
		repo:     repo,
		defaults: defaults,
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the default layout and the stored preference concurrently and
// reconciles them. A stored layout wins whenever its groups field is present,
// including an explicit empty list. A missing preference row is the normal
// fresh-user case, not an error.
func (s *service) Load(ctx context.Context, userID uuid.UUID) (LoadResult, error) {
	if userID == uuid.Nil {
		return LoadResult{}, ErrUserRequired
	}
	if s.defaults == nil {
		return LoadResult{}, ErrDefaultsRequired
	}

	if s.cache != nil {
		if groups, isCustom, ok := s.cache.Get(userID); ok {
			return LoadResult{Groups: groups, IsCustom: isCustom, Version: LayoutVersion}, nil
		}
	}

	type prefResult struct {
		pref *preferences.NavPreference
		err  error
	}
	prefCh := make(chan prefResult, 1)
	go func() {
		pref, err := s.repo.GetByUser(ctx, userID)
		if err != nil && preferences.IsNotFound(err) {
			pref, err = nil, nil
		}
		prefCh <- prefResult{pref: pref, err: err}
	}()

	defaultGroups, defaultErr := s.defaults.DefaultNav(ctx)
	fetched := <-prefCh

	if defaultErr != nil {
		return LoadResult{}, fmt.Errorf("nav: load default layout: %w", defaultErr)
	}
	if fetched.err != nil {
		return LoadResult{}, fmt.Errorf("nav: load preference: %w", fetched.err)
	}

	result := LoadResult{Groups: defaultGroups, Version: LayoutVersion}
	if fetched.pref != nil && fetched.pref.Layout.Groups != nil {
		result.Groups = CloneGroups(fetched.pref.Layout.Groups)
		result.IsCustom = true
		if fetched.pref.Layout.Version != 0 {
			result.Version = fetched.pref.Layout.Version
		}
	}

	if s.cache != nil {
		s.cache.Put(userID, result.Groups, result.IsCustom)
	}
	return result, nil
}

// Save persists the working layout as the user's stored preference. An empty
// list is a valid custom layout and is kept distinct from "no preference".
// When a row appears between the existence check and the insert, the write
// retries as an update.
func (s *service) Save(ctx context.Context, userID uuid.UUID, groups []NavGroup) error {
	if userID == uuid.Nil {
		return ErrUserRequired
	}

	if groups == nil {
		groups = []NavGroup{}
	}
	layout := NavLayout{Groups: CloneGroups(groups), Version: LayoutVersion}

	existing, err := s.repo.GetByUser(ctx, userID)
	if err != nil && !preferences.IsNotFound(err) {
		return fmt.Errorf("nav: save preference: %w", err)
	}

	now := s.now()
	if existing != nil {
		existing.Layout = layout
		existing.Version = LayoutVersion
		existing.UpdatedAt = now
		if _, err := s.repo.Update(ctx, existing); err != nil {
			return fmt.Errorf("nav: save preference: %w", err)
		}
	} else {
		pref := &preferences.NavPreference{
			ID:        identity.PreferenceUUID(userID),
			UserID:    userID,
			Layout:    layout,
			Version:   LayoutVersion,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := s.repo.Create(ctx, pref); err != nil {
			if !errors.Is(err, preferences.ErrPreferenceExists) {
				return fmt.Errorf("nav: save preference: %w", err)
			}
			current, getErr := s.repo.GetByUser(ctx, userID)
			if getErr != nil {
				return fmt.Errorf("nav: save preference: %w", getErr)
			}
			current.Layout = layout
			current.Version = LayoutVersion
			current.UpdatedAt = now
			if _, err := s.repo.Update(ctx, current); err != nil {
				return fmt.Errorf("nav: save preference: %w", err)
			}
		}
	}

	if s.cache != nil {
		s.cache.Put(userID, layout.Groups, true)
	}
	s.logger.Debug("nav layout saved", "user_id", userID.String(), "groups", len(layout.Groups))
	return nil
}

// Reset removes the stored preference so the user falls back to the default
// layout. Deleting an absent preference succeeds.
func (s *service) Reset(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUserRequired
	}

	if err := s.repo.DeleteByUser(ctx, userID); err != nil && !preferences.IsNotFound(err) {
		return fmt.Errorf("nav: reset preference: %w", err)
	}

	if s.cache != nil {
		s.cache.Clear(userID)
	}
	s.logger.Debug("nav layout reset", "user_id", userID.String())
	return nil
}

// Preference returns the raw stored layout, or nil when the user has none.
func (s *service) Preference(ctx context.Context, userID uuid.UUID) (*NavLayout, error) {
	if userID == uuid.Nil {
		return nil, ErrUserRequired
	}

	pref, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if preferences.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("nav: get preference: %w", err)
	}
	layout := pref.Layout.Clone()
	if layout.Version == 0 {
		layout.Version = pref.Version
	}
	return &layout, nil
}

// Defaults returns the default layout without user reconciliation.
func (s *service) Defaults(ctx context.Context) ([]NavGroup, error) {
	if s.defaults == nil {
		return nil, ErrDefaultsRequired
	}
	return s.defaults.DefaultNav(ctx)
}
