package repositories

import (
	"context"

	"github.com/hiddenspaces/backend/internal/domain/entities"
)

// SpaceRepository defines the interface for space data operations
type SpaceRepository interface {
	// CreateBatch persists all spaces and their feature associations in
	// one unit and assigns IDs
	CreateBatch(ctx context.Context, spaces []*entities.Space) error

	// GetByID retrieves a space with its features, reviews and resolved
	// creator name
	GetByID(ctx context.Context, id int64) (*entities.Space, error)

	// Exists reports whether a space with the given id exists
	Exists(ctx context.Context, id int64) (bool, error)

	// List retrieves spaces (with relations) matching the filter
	List(ctx context.Context, filter SpaceFilter) ([]*entities.Space, error)

	// Update writes the space's own columns (not associations)
	Update(ctx context.Context, space *entities.Space) error

	// ReplaceFeatures replaces the space's feature association set
	ReplaceFeatures(ctx context.Context, spaceID int64, featureIDs []int64) error

	// Delete physically removes a space; reviews and feature
	// associations cascade
	Delete(ctx context.Context, id int64) error

	// CategoryCounts returns the number of spaces per category
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
}

// SpaceFilter defines filters for listing spaces
type SpaceFilter struct {
	Category string
	Type     string
	Limit    int
	Offset   int
}

// CategoryCount pairs a category name with its space count
type CategoryCount struct {
	Category string `db:"category"`
	Count    int    `db:"count"`
}
