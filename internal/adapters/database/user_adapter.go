package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	"github.com/hiddenspaces/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func userRecord(user *entities.User) goqu.Record {
	return goqu.Record{
		"email":              user.Email,
		"name":               user.Name,
		"ethnicity":          user.Ethnicity,
		"language":           user.Language,
		"hobby":              user.Hobby,
		"gender":             user.Gender,
		"age":                user.Age,
		"city":               user.City,
		"sexual_orientation": user.SexualOrientation,
		"password_hash":      user.PasswordHash,
		"created_at":         user.CreatedAt,
		"updated_at":         user.UpdatedAt,
	}
}

// Create inserts a user and assigns its ID
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query, args, err := a.db.Insert("users").Rows(userRecord(user)).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// CreateBatch inserts all users inside one transaction
func (a *UserAdapter) CreateBatch(ctx context.Context, users []*entities.User) error {
	if len(users) == 0 {
		return nil
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin user batch transaction", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, user := range users {
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now
		}
		user.UpdatedAt = now

		query, args, err := a.db.Insert("users").Rows(userRecord(user)).Returning("id").ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build user insert query", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
			return apperrors.NewInternalError("failed to create user batch", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit user batch", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query, args, err := a.db.From("users").Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user select query", err)
	}

	user := &entities.User{}
	if err := a.client.DBX().GetContext(ctx, user, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
		}
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query, args, err := a.db.From("users").Where(goqu.C("email").Eq(email)).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user select query", err)
	}

	user := &entities.User{}
	if err := a.client.DBX().GetContext(ctx, user, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with email %s not found", email))
		}
		return nil, apperrors.NewInternalError("failed to get user by email", err)
	}

	return user, nil
}
