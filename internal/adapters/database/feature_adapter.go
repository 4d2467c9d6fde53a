package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	"github.com/hiddenspaces/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

// FeatureAdapter implements the FeatureRepository interface
type FeatureAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFeatureAdapter creates a new accessibility feature adapter
func NewFeatureAdapter(client *postgres.Client) repositories.FeatureRepository {
	return &FeatureAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// CreateBatch inserts all features inside one transaction
func (a *FeatureAdapter) CreateBatch(ctx context.Context, features []*entities.AccessibilityFeature) error {
	if len(features) == 0 {
		return nil
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin feature batch transaction", err)
	}
	defer tx.Rollback()

	for _, feature := range features {
		query, args, err := a.db.Insert("accessibility_features").Rows(goqu.Record{
			"name":        feature.Name,
			"description": feature.Description,
			"icon":        feature.Icon,
		}).Returning("id").ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build feature insert query", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&feature.ID); err != nil {
			return apperrors.NewInternalError("failed to create feature", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit feature batch", err)
	}

	return nil
}

// GetByIDs retrieves the features whose id is in ids. Unknown ids are
// simply absent from the result.
func (a *FeatureAdapter) GetByIDs(ctx context.Context, ids []int64) ([]*entities.AccessibilityFeature, error) {
	if len(ids) == 0 {
		return []*entities.AccessibilityFeature{}, nil
	}

	query, args, err := a.db.From("accessibility_features").
		Where(goqu.C("id").In(ids)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feature select query", err)
	}

	features := []*entities.AccessibilityFeature{}
	if err := a.client.DBX().SelectContext(ctx, &features, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to get features", err)
	}

	return features, nil
}

// List retrieves all features
func (a *FeatureAdapter) List(ctx context.Context) ([]*entities.AccessibilityFeature, error) {
	query, args, err := a.db.From("accessibility_features").Order(goqu.C("id").Asc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feature list query", err)
	}

	features := []*entities.AccessibilityFeature{}
	if err := a.client.DBX().SelectContext(ctx, &features, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list features", err)
	}

	return features, nil
}
