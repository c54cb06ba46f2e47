package preferences

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-admin-nav/nav"
)

// NavPreference is the stored per-user navigation layout. One row per user,
// enforced by a unique index on user_id.
type NavPreference struct {
	bun.BaseModel `bun:"table:admin_nav_preferences,alias:anp"`

	ID        uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	UserID    uuid.UUID     `bun:"user_id,notnull,unique,type:uuid" json:"user_id"`
	Layout    nav.NavLayout `bun:"layout,type:jsonb,notnull" json:"layout"`
	Version   int           `bun:"version,notnull,default:1" json:"version"`
	CreatedAt time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func clonePreference(pref *NavPreference) *NavPreference {
	if pref == nil {
		return nil
	}
	cloned := *pref
	cloned.Layout = pref.Layout.Clone()
	return &cloned
}
