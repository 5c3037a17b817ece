package catalogs

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcatalogs -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/expedition-rewards/internal/catalog"
)

// Repository defines the interface for catalog storage operations
type Repository interface {
	// Get retrieves the stored catalog
	Get(ctx context.Context) (*catalog.Catalog, error)

	// Save replaces the stored catalog
	Save(ctx context.Context, c *catalog.Catalog) error
}
