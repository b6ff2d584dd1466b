package repositories

import (
	"context"

	"htmlblock/internal/domain/models"
)

// BlockRepository defines data access operations for HTML blocks.
// The stored Data column is opaque to this layer: it goes in and comes out
// byte-exact, with no escaping or sanitization.
type BlockRepository interface {
	// Create inserts a new block
	Create(ctx context.Context, block *models.Block) error

	// GetByID retrieves a block by ID, optionally scoped to a course
	GetByID(ctx context.Context, id, courseID string) (*models.Block, error)

	// ListByCourse lists all blocks placed in a course
	ListByCourse(ctx context.Context, courseID string) ([]models.Block, error)

	// Update replaces the editable fields of an existing block
	Update(ctx context.Context, block *models.Block) error

	// UpdateData replaces only the stored HTML body of a block
	UpdateData(ctx context.Context, id, courseID, data string) error

	// Delete removes a block
	Delete(ctx context.Context, id, courseID string) error
}
