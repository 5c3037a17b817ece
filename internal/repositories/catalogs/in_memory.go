package catalogs

import (
	"context"
	"sync"

	"github.com/KirkDiggler/expedition-rewards/internal/catalog"
	rwerr "github.com/KirkDiggler/expedition-rewards/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu   sync.RWMutex
	file *catalog.File
}

// NewInMemoryRepository creates a new in-memory catalog repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{}
}

// Get rebuilds the stored catalog so callers never share its tables
func (r *inMemoryRepository) Get(ctx context.Context) (*catalog.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.file == nil {
		return nil, rwerr.NotFound("catalog not found")
	}

	c, err := catalog.FromFile(r.file)
	if err != nil {
		return nil, rwerr.Wrap(err, "failed to rebuild catalog")
	}
	return c, nil
}

// Save stores a serialized copy of the catalog
func (r *inMemoryRepository) Save(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		return rwerr.InvalidArgument("catalog cannot be nil")
	}

	file := c.File()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.file = file
	return nil
}
