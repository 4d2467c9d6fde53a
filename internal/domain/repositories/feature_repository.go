package repositories

import (
	"context"

	"github.com/hiddenspaces/backend/internal/domain/entities"
)

// FeatureRepository defines the interface for accessibility feature data operations
type FeatureRepository interface {
	// CreateBatch persists all features in one unit and assigns IDs
	CreateBatch(ctx context.Context, features []*entities.AccessibilityFeature) error

	// GetByIDs retrieves the features whose id is in ids; unknown ids
	// are simply not part of the result
	GetByIDs(ctx context.Context, ids []int64) ([]*entities.AccessibilityFeature, error)

	// List retrieves all features
	List(ctx context.Context) ([]*entities.AccessibilityFeature, error)
}
