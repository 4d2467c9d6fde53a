package services

import (
	"context"

	"github.com/hiddenspaces/backend/internal/application/batch"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

// FeatureService handles accessibility feature lookup and creation.
type FeatureService struct {
	repo repositories.FeatureRepository
}

// NewFeatureService creates a new feature service.
func NewFeatureService(repo repositories.FeatureRepository) *FeatureService {
	return &FeatureService{repo: repo}
}

// ResolveIDs maps requested feature ids to existing feature records.
// Duplicate ids collapse, unknown ids are silently excluded, and an
// empty request never touches the store.
func (s *FeatureService) ResolveIDs(ctx context.Context, ids []int64) ([]*entities.AccessibilityFeature, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return s.repo.GetByIDs(ctx, unique)
}

// CreateBatch stores new features. Unlike space and review ingestion, a
// missing field in any entry rejects the whole request.
func (s *FeatureService) CreateBatch(ctx context.Context, items []map[string]any) ([]*entities.AccessibilityFeature, error) {
	for _, item := range items {
		if missing := batch.MissingFields(item, "name", "description", "icon"); len(missing) > 0 {
			return nil, apperrors.NewValidationError("Missing required fields in one or more entries")
		}
	}

	features := make([]*entities.AccessibilityFeature, 0, len(items))
	for _, item := range items {
		features = append(features, &entities.AccessibilityFeature{
			Name:        batch.StringField(item, "name"),
			Description: batch.StringField(item, "description"),
			Icon:        batch.StringField(item, "icon"),
		})
	}

	if err := s.repo.CreateBatch(ctx, features); err != nil {
		return nil, err
	}

	return features, nil
}

// List returns all features.
func (s *FeatureService) List(ctx context.Context) ([]*entities.AccessibilityFeature, error) {
	return s.repo.List(ctx)
}
