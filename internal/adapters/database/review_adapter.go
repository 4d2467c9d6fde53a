package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	"github.com/hiddenspaces/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

// ReviewAdapter implements the ReviewRepository interface
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// CreateBatch inserts all reviews inside one transaction
func (a *ReviewAdapter) CreateBatch(ctx context.Context, reviews []*entities.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin review batch transaction", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, review := range reviews {
		if review.CreatedAt.IsZero() {
			review.CreatedAt = now
		}

		query, args, err := a.db.Insert("reviews").Rows(goqu.Record{
			"space_id":   review.SpaceID,
			"user_id":    review.UserID,
			"rating":     review.Rating,
			"comment":    review.Comment,
			"created_at": review.CreatedAt,
		}).Returning("id").ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build review insert query", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&review.ID); err != nil {
			return apperrors.NewInternalError("failed to create review", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit review batch", err)
	}

	return nil
}

// ListBySpace retrieves a space's reviews in creation order
func (a *ReviewAdapter) ListBySpace(ctx context.Context, spaceID int64) ([]*entities.Review, error) {
	query, args, err := a.db.From("reviews").
		Where(goqu.C("space_id").Eq(spaceID)).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review list query", err)
	}

	reviews := []*entities.Review{}
	if err := a.client.DBX().SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}

	return reviews, nil
}
