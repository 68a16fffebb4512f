package links

import (
	"context"
	"fmt"

	"github.com/pmurley/linkboard/internal/cache"
	"github.com/pmurley/linkboard/internal/models"
	"github.com/pmurley/linkboard/pkg/logger"
)

// Loader fetches the full entry list from the source sheet
type Loader interface {
	LoadEntries(ctx context.Context) (models.EntryList, error)
}

// Repository serves entries from the cache and reloads them from the sheet when needed
type Repository struct {
	loader Loader
	cache  *cache.Cache
	logger *logger.Logger
}

func NewRepository(loader Loader, c *cache.Cache, log *logger.Logger) *Repository {
	return &Repository{
		loader: loader,
		cache:  c,
		logger: log,
	}
}

// Entries returns a private copy of the entries, auto-reloading when the cache is empty
func (r *Repository) Entries(ctx context.Context) (models.EntryList, error) {
	entries, found := r.cache.GetEntries()
	if found {
		return entries, nil
	}

	r.logger.Info("Cache expired, auto-reloading entries...")
	if _, err := r.Reload(ctx); err != nil {
		return nil, err
	}

	entries, found = r.cache.GetEntries()
	if !found {
		return nil, fmt.Errorf("failed to load entries after reload")
	}
	return entries, nil
}

// Reload flushes the cache and fetches the sheet again, returning the entry count
func (r *Repository) Reload(ctx context.Context) (int, error) {
	r.cache.Flush()

	entries, err := r.loader.LoadEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load entries: %w", err)
	}

	r.cache.SetEntries(entries)
	r.logger.Debug("Loaded", len(entries), "entries")
	return len(entries), nil
}

// Refresh fetches the sheet and replaces the cached entries only on success
func (r *Repository) Refresh(ctx context.Context) (int, error) {
	entries, err := r.loader.LoadEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load entries: %w", err)
	}

	r.cache.SetEntries(entries)
	return len(entries), nil
}

// Sorted returns the entries ordered by state, optionally filtered by a search string
func (r *Repository) Sorted(ctx context.Context, state models.SortState, search string) (models.EntryList, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return nil, err
	}

	entries = entries.Search(search)
	entries.Apply(state)
	return entries, nil
}
