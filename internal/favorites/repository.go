// Package favorites persists saved designs across two stores: an indexed
// sqlite database holding the full records, and a flat mirror entry in the
// key-value store holding ordered projections. The primary store is
// authoritative; the mirror exists for lightweight reads and survives primary
// initialization failures. Collections are scoped per user, like the credit
// counters.
package favorites

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"roomlift-backend/internal/kvstore"
)

// mirrorKey scopes the flat mirror entry to one user, the same way the credit
// counters are keyed.
func mirrorKey(userID string) string {
	return "favorites:" + userID
}

type Repository struct {
	mu      sync.Mutex
	primary *sqliteStore // nil when the database failed to open
	kv      *kvstore.Store
	lastID  int64
}

// NewRepository opens the primary store and wires the mirror. A primary open
// failure degrades the repository to mirror-only operation instead of
// propagating the error.
func NewRepository(dbPath string, kv *kvstore.Store) *Repository {
	repo := &Repository{kv: kv}

	primary, err := openSQLite(dbPath)
	if err != nil {
		log.Printf("Warning: favorites database unavailable, running mirror-only: %v", err)
	} else {
		repo.primary = primary
	}
	return repo
}

// Add writes the full record to the primary store first, then prepends the
// projection to the mirror. A crash between the two leaves the mirror behind,
// never pointing at a record the primary does not have.
func (r *Repository) Add(ctx context.Context, userID, imageURL, roomTypeLabel, styleLabel string) (Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := NewFavorite(imageURL, roomTypeLabel, styleLabel, time.Now())
	if f.ID <= r.lastID {
		// Two saves inside one millisecond; keep ids unique and monotonic.
		f.ID = r.lastID + 1
	}
	r.lastID = f.ID

	if r.primary != nil {
		if err := r.primary.Insert(ctx, userID, f); err != nil {
			return Favorite{}, err
		}
	}

	if err := r.prependMirror(userID, f.projection()); err != nil {
		// The primary write already succeeded; the mirror catches up on the
		// next rewrite.
		log.Printf("Warning: failed to update favorites mirror: %v", err)
	}

	return f, nil
}

// Remove deletes from the primary store and then rebuilds the mirror from the
// now-current primary contents, rather than point-deleting, to avoid drift.
func (r *Repository) Remove(ctx context.Context, userID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.primary == nil {
		return r.removeFromMirror(userID, id)
	}

	if err := r.primary.Delete(ctx, userID, id); err != nil {
		return err
	}

	current, err := r.primary.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to rebuild mirror: %w", err)
	}
	projections := make([]Projection, len(current))
	for i, f := range current {
		projections[i] = f.projection()
	}
	return r.kv.Set(mirrorKey(userID), projections)
}

// List prefers the primary store. When the primary is unavailable or empty it
// reconstructs minimal entries from the mirror, trading thumbnails for not
// presenting an empty collection. It always returns a usable slice.
func (r *Repository) List(ctx context.Context, userID string) []Favorite {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.primary != nil {
		favorites, err := r.primary.List(ctx, userID)
		if err != nil {
			log.Printf("Warning: favorites primary read failed, using mirror: %v", err)
		} else if len(favorites) > 0 {
			return favorites
		}
	}

	return r.listFromMirror(userID)
}

// IsFavorite reports whether any saved design carries the given label pair and
// returns the id of the first (newest) match. Two favorites sharing a
// room/style combination are indistinguishable here; the first match wins.
func (r *Repository) IsFavorite(ctx context.Context, userID, roomTypeLabel, styleLabel string) (bool, int64) {
	for _, f := range r.List(ctx, userID) {
		if f.RoomType == roomTypeLabel && f.Style == styleLabel {
			return true, f.ID
		}
	}
	return false, 0
}

func (r *Repository) Close() error {
	if r.primary != nil {
		return r.primary.Close()
	}
	return nil
}

func (r *Repository) readMirror(userID string) []Projection {
	var projections []Projection
	if _, err := r.kv.Get(mirrorKey(userID), &projections); err != nil {
		log.Printf("Warning: failed to read favorites mirror: %v", err)
		return nil
	}
	return projections
}

func (r *Repository) prependMirror(userID string, p Projection) error {
	projections := append([]Projection{p}, r.readMirror(userID)...)
	return r.kv.Set(mirrorKey(userID), projections)
}

func (r *Repository) removeFromMirror(userID string, id int64) error {
	current := r.readMirror(userID)
	kept := current[:0]
	for _, p := range current {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.kv.Set(mirrorKey(userID), kept)
}

func (r *Repository) listFromMirror(userID string) []Favorite {
	projections := r.readMirror(userID)
	favorites := make([]Favorite, len(projections))
	for i, p := range projections {
		favorites[i] = Favorite{
			ID:       p.ID,
			RoomType: p.RoomType,
			Style:    p.Style,
			Date:     p.Date,
		}
	}
	return favorites
}
