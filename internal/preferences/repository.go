package preferences

import (
	"context"
	"errors"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrPreferenceExists reports a create against a user that already has a
// stored layout. Callers retry the write as an update.
var ErrPreferenceExists = errors.New("preferences: preference already exists")

// Repository exposes persistence operations for stored layouts.
type Repository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*NavPreference, error)
	Create(ctx context.Context, pref *NavPreference) (*NavPreference, error)
	Update(ctx context.Context, pref *NavPreference) (*NavPreference, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// NotFoundError is returned when a stored layout cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// NewNavPreferenceRepository creates a repository for NavPreference entities.
func NewNavPreferenceRepository(db *bun.DB) repository.Repository[*NavPreference] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*NavPreference]{
		NewRecord: func() *NavPreference { return &NavPreference{} },
		GetID: func(pref *NavPreference) uuid.UUID {
			return pref.ID
		},
		SetID: func(pref *NavPreference, id uuid.UUID) {
			pref.ID = id
		},
		GetIdentifier: func() string {
			return "user_id"
		},
		GetIdentifierValue: func(pref *NavPreference) string {
			return pref.UserID.String()
		},
	})
}
