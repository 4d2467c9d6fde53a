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

// SpaceAdapter implements the SpaceRepository interface
type SpaceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSpaceAdapter creates a new space adapter
func NewSpaceAdapter(client *postgres.Client) repositories.SpaceRepository {
	return &SpaceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func spaceRecord(space *entities.Space) goqu.Record {
	return goqu.Record{
		"name":          space.Name,
		"type":          space.Type,
		"category":      space.Category,
		"address":       space.Address,
		"description":   space.Description,
		"contact_email": space.ContactEmail,
		"website":       space.Website,
		"phone":         space.Phone,
		"latitude":      space.Latitude,
		"longitude":     space.Longitude,
		"indoor":        space.Indoor,
		"outdoor":       space.Outdoor,
		"wifi":          space.Wifi,
		"parking":       space.Parking,
		"created_by":    space.CreatedBy,
		"created_at":    space.CreatedAt,
		"updated_at":    space.UpdatedAt,
	}
}

// CreateBatch inserts all spaces and their feature associations inside
// one transaction
func (a *SpaceAdapter) CreateBatch(ctx context.Context, spaces []*entities.Space) error {
	if len(spaces) == 0 {
		return nil
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin space batch transaction", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, space := range spaces {
		if space.CreatedAt.IsZero() {
			space.CreatedAt = now
		}
		space.UpdatedAt = now

		query, args, err := a.db.Insert("spaces").Rows(spaceRecord(space)).Returning("id").ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build space insert query", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&space.ID); err != nil {
			return apperrors.NewInternalError("failed to create space", err)
		}

		for _, feature := range space.Features {
			query, args, err := a.db.Insert("space_features").Rows(goqu.Record{
				"space_id":   space.ID,
				"feature_id": feature.ID,
			}).ToSQL()
			if err != nil {
				return apperrors.NewInternalError("failed to build space feature insert query", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return apperrors.NewInternalError("failed to associate space feature", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit space batch", err)
	}

	return nil
}

// GetByID retrieves a space with features, reviews and creator name
func (a *SpaceAdapter) GetByID(ctx context.Context, id int64) (*entities.Space, error) {
	query, args, err := a.db.From("spaces").Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build space select query", err)
	}

	space := &entities.Space{}
	if err := a.client.DBX().GetContext(ctx, space, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("space with id %d not found", id))
		}
		return nil, apperrors.NewInternalError("failed to get space", err)
	}

	if err := a.loadRelations(ctx, space); err != nil {
		return nil, err
	}

	return space, nil
}

// Exists reports whether a space with the given id exists
func (a *SpaceAdapter) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := a.db.From("spaces").Select(goqu.COUNT("*")).Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build space exists query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to check space existence", err)
	}

	return count > 0, nil
}

// List retrieves spaces matching the filter, newest first
func (a *SpaceAdapter) List(ctx context.Context, filter repositories.SpaceFilter) ([]*entities.Space, error) {
	ds := a.db.From("spaces").Order(goqu.C("created_at").Desc())

	if filter.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}
	if filter.Type != "" {
		ds = ds.Where(goqu.C("type").Eq(filter.Type))
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build space list query", err)
	}

	spaces := []*entities.Space{}
	if err := a.client.DBX().SelectContext(ctx, &spaces, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list spaces", err)
	}

	for _, space := range spaces {
		if err := a.loadRelations(ctx, space); err != nil {
			return nil, err
		}
	}

	return spaces, nil
}

// Update writes the space's own columns
func (a *SpaceAdapter) Update(ctx context.Context, space *entities.Space) error {
	space.UpdatedAt = time.Now().UTC()

	record := spaceRecord(space)
	delete(record, "created_at")
	delete(record, "created_by")

	query, args, err := a.db.Update("spaces").Set(record).Where(goqu.C("id").Eq(space.ID)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build space update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update space", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("space with id %d not found", space.ID))
	}

	return nil
}

// ReplaceFeatures replaces the space's feature association set
func (a *SpaceAdapter) ReplaceFeatures(ctx context.Context, spaceID int64, featureIDs []int64) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin feature replace transaction", err)
	}
	defer tx.Rollback()

	query, args, err := a.db.Delete("space_features").Where(goqu.C("space_id").Eq(spaceID)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build feature delete query", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to clear space features", err)
	}

	for _, featureID := range featureIDs {
		query, args, err := a.db.Insert("space_features").Rows(goqu.Record{
			"space_id":   spaceID,
			"feature_id": featureID,
		}).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build space feature insert query", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError("failed to associate space feature", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit feature replacement", err)
	}

	return nil
}

// Delete physically removes a space. Reviews and feature associations
// are removed by the store's ON DELETE CASCADE actions.
func (a *SpaceAdapter) Delete(ctx context.Context, id int64) error {
	query, args, err := a.db.Delete("spaces").Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build space delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete space", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("space with id %d not found", id))
	}

	return nil
}

// CategoryCounts returns the number of spaces per category
func (a *SpaceAdapter) CategoryCounts(ctx context.Context) ([]repositories.CategoryCount, error) {
	query, args, err := a.db.From("spaces").
		Select(goqu.C("category"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.C("category")).
		Order(goqu.I("count").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build category count query", err)
	}

	counts := []repositories.CategoryCount{}
	if err := a.client.DBX().SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to count categories", err)
	}

	return counts, nil
}

func (a *SpaceAdapter) loadRelations(ctx context.Context, space *entities.Space) error {
	features, err := a.loadFeatures(ctx, space.ID)
	if err != nil {
		return err
	}
	space.Features = features

	reviews, err := a.loadReviews(ctx, space.ID)
	if err != nil {
		return err
	}
	space.Reviews = reviews

	return a.loadCreatorName(ctx, space)
}

func (a *SpaceAdapter) loadFeatures(ctx context.Context, spaceID int64) ([]*entities.AccessibilityFeature, error) {
	query, args, err := a.db.From("accessibility_features").
		Join(goqu.T("space_features"), goqu.On(goqu.I("space_features.feature_id").Eq(goqu.I("accessibility_features.id")))).
		Where(goqu.I("space_features.space_id").Eq(spaceID)).
		Select("accessibility_features.id", "accessibility_features.name",
			"accessibility_features.description", "accessibility_features.icon").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build space feature query", err)
	}

	features := []*entities.AccessibilityFeature{}
	if err := a.client.DBX().SelectContext(ctx, &features, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to load space features", err)
	}

	return features, nil
}

func (a *SpaceAdapter) loadReviews(ctx context.Context, spaceID int64) ([]*entities.Review, error) {
	query, args, err := a.db.From("reviews").
		Where(goqu.C("space_id").Eq(spaceID)).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build space review query", err)
	}

	reviews := []*entities.Review{}
	if err := a.client.DBX().SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to load space reviews", err)
	}

	return reviews, nil
}

// loadCreatorName resolves the creator's display name. A space whose
// creator was deleted stays renderable with a nil name.
func (a *SpaceAdapter) loadCreatorName(ctx context.Context, space *entities.Space) error {
	space.CreatorName = nil
	if space.CreatedBy == nil {
		return nil
	}

	query, args, err := a.db.From("users").Select("name").Where(goqu.C("id").Eq(*space.CreatedBy)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build creator query", err)
	}

	var name string
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return apperrors.NewInternalError("failed to resolve space creator", err)
	}

	space.CreatorName = &name
	return nil
}
