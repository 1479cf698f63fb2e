package catalog

import (
	"context"
	"sync/atomic"

	"streamhub/pkg/models"
)

// Loader is the source boundary: anything that can hand over the raw record
// list (internal/source ships the JSON file and sqlite implementations).
type Loader interface {
	Name() string
	Load(ctx context.Context) ([]models.EpisodeRecord, error)
}

// Store publishes the current Catalog behind an atomic pointer. Readers grab
// a snapshot without locking; Reload builds a complete replacement off to the
// side and swaps it in one step, so no request ever sees a half-built index.
type Store struct {
	loader  Loader
	current atomic.Pointer[Catalog]
	loaded  atomic.Bool
}

// NewStore returns a Store serving an empty catalog until the first
// successful Reload.
func NewStore(loader Loader) *Store {
	s := &Store{loader: loader}
	s.current.Store(Build(nil))
	return s
}

// Snapshot returns the currently published catalog. The result is shared and
// read-only; callers must not modify it.
func (s *Store) Snapshot() *Catalog {
	return s.current.Load()
}

// Loaded reports whether any build has been published since startup.
func (s *Store) Loaded() bool {
	return s.loaded.Load()
}

// Reload reads the source and swaps in a freshly built catalog. On any load
// error the previous catalog stays published untouched.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	cat := Build(records)
	s.current.Store(cat)
	s.loaded.Store(true)
	return cat, nil
}

// SourceName identifies the configured loader, for health reporting.
func (s *Store) SourceName() string {
	return s.loader.Name()
}
