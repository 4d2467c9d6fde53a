package repositories

import (
	"context"

	"github.com/hiddenspaces/backend/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user and assigns its ID
	Create(ctx context.Context, user *entities.User) error

	// CreateBatch persists all users in one unit and assigns IDs
	CreateBatch(ctx context.Context, users []*entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*entities.User, error)

	// GetByEmail retrieves a user by email; not-found is an error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
