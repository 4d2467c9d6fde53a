package repositories

import (
	"context"

	"github.com/hiddenspaces/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	// CreateBatch persists all reviews in one unit and assigns IDs
	CreateBatch(ctx context.Context, reviews []*entities.Review) error

	// ListBySpace retrieves a space's reviews ordered by creation
	ListBySpace(ctx context.Context, spaceID int64) ([]*entities.Review, error)
}
