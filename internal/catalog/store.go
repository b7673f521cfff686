package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/albie-bot/albie/internal/logger"
)

// ErrNoFetcher is returned when a rebuild is needed but the store was
// created without a dump fetcher.
var ErrNoFetcher = errors.New("catalog store has no fetcher")

// Fetcher supplies the raw item dump. Implemented by aodata.Client.
type Fetcher interface {
	FetchItemDump(ctx context.Context) ([]RawItem, error)
}

// Store owns the on-disk copy of the enriched catalog. The catalog is built
// once and treated as an immutable snapshot: Refresh swaps in a whole new
// slice instead of mutating the one previously handed out, so in-flight
// matches keep reading a consistent catalog.
type Store struct {
	mu      sync.RWMutex
	path    string
	fetcher Fetcher
	items   []Item
}

// NewStore creates a store persisting the enriched catalog at path.
func NewStore(path string, fetcher Fetcher) *Store {
	return &Store{path: path, fetcher: fetcher}
}

// Load returns the enriched catalog, reading the cache file when present and
// rebuilding it from the raw dump otherwise. Call once before serving
// queries; subsequent calls return the in-memory snapshot.
func (s *Store) Load(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	if s.items != nil {
		items := s.items
		s.mu.RUnlock()
		return items, nil
	}
	s.mu.RUnlock()

	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read catalog cache: %w", err)
		}
		log.Info("No catalog cache, rebuilding from item dump", "path", s.path)
		return s.Refresh(ctx)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog cache %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	log.Info("Catalog loaded from cache", "path", s.path, "items", len(items))
	return items, nil
}

// Refresh fetches the raw dump, enriches it and persists the result,
// replacing the current snapshot. Callers must serialize Refresh against
// themselves; matches against the previous snapshot stay valid.
func (s *Store) Refresh(ctx context.Context) ([]Item, error) {
	if s.fetcher == nil {
		return nil, ErrNoFetcher
	}

	raw, err := s.fetcher.FetchItemDump(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch item dump: %w", err)
	}

	items := Enrich(raw)

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write catalog cache: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Catalog refreshed", "path", s.path, "items", len(items))
	return items, nil
}

// Items returns the current snapshot, or nil before the first Load.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}
