package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiddenspaces/backend/internal/application/batch"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	"github.com/hiddenspaces/backend/internal/infrastructure/observability"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

var spaceRequiredFields = []string{"name", "type", "category", "address", "description", "contactEmail"}

// SpaceService handles space ingestion, projection, editing and removal.
type SpaceService struct {
	repo     repositories.SpaceRepository
	userRepo repositories.UserRepository
	features *FeatureService
	policy   OwnershipPolicy
}

// NewSpaceService creates a new space service.
func NewSpaceService(
	repo repositories.SpaceRepository,
	userRepo repositories.UserRepository,
	features *FeatureService,
	policy OwnershipPolicy,
) *SpaceService {
	return &SpaceService{
		repo:     repo,
		userRepo: userRepo,
		features: features,
		policy:   policy,
	}
}

// CreatedSpace is the echo shape for a created space.
type CreatedSpace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SpaceBatchResult reports a batch space creation run.
type SpaceBatchResult struct {
	Created []CreatedSpace
	Report  batch.Report
}

// CreateBatch validates each candidate independently, resolves its
// creator and features, and commits the accepted set at the end. One
// bad candidate never aborts its siblings; a commit failure fails the
// whole request.
func (s *SpaceService) CreateBatch(ctx context.Context, items []map[string]any) (*SpaceBatchResult, error) {
	result := &SpaceBatchResult{Created: []CreatedSpace{}}

	var pending []*entities.Space
	for idx, item := range items {
		if missing := batch.MissingFields(item, spaceRequiredFields...); len(missing) > 0 {
			result.Report.FailMissingFields(idx, missing, item)
			continue
		}

		latitude := batch.FloatField(item, "latitude")
		longitude := batch.FloatField(item, "longitude")
		if (latitude == nil) != (longitude == nil) {
			result.Report.Fail(idx, "latitude and longitude must be provided together", item)
			continue
		}

		creatorID := batch.IntField(item, "created_by")
		if creatorID == nil {
			result.Report.Fail(idx, "User not found", item)
			continue
		}
		if _, err := s.userRepo.GetByID(ctx, *creatorID); err != nil {
			if apperrors.IsNotFound(err) {
				result.Report.Fail(idx, "User not found", item)
				continue
			}
			return nil, err
		}

		// An explicit null means no features; only a non-list value
		// fails the candidate.
		featureIDs, ok, _ := batch.IDListField(item, "features")
		if !ok && item["features"] != nil {
			result.Report.Fail(idx, "Features should be a list of IDs", item)
			continue
		}
		features, err := s.features.ResolveIDs(ctx, featureIDs)
		if err != nil {
			return nil, err
		}

		pending = append(pending, &entities.Space{
			Name:         batch.StringField(item, "name"),
			Type:         batch.StringField(item, "type"),
			Category:     batch.StringField(item, "category"),
			Address:      batch.StringField(item, "address"),
			Description:  batch.StringField(item, "description"),
			ContactEmail: batch.StringField(item, "contactEmail"),
			Website:      batch.StringField(item, "website"),
			Phone:        batch.StringField(item, "phone"),
			Latitude:     latitude,
			Longitude:    longitude,
			Indoor:       batch.BoolField(item, "indoor", true),
			Outdoor:      batch.BoolField(item, "outdoor", false),
			Wifi:         batch.BoolField(item, "wifi", false),
			Parking:      batch.BoolField(item, "parking", false),
			CreatedBy:    creatorID,
			Features:     features,
		})
	}

	if len(pending) > 0 {
		if err := s.repo.CreateBatch(ctx, pending); err != nil {
			return nil, err
		}
	}

	for _, space := range pending {
		result.Report.MarkCreated()
		result.Created = append(result.Created, CreatedSpace{ID: space.ID, Name: space.Name})
	}

	observability.LoggerFromContext(ctx).Info().
		Int("created", result.Report.CreatedCount()).
		Int("failed", len(result.Report.Errors)).
		Msg("space batch processed")

	return result, nil
}

// Get returns the projection of a single space.
func (s *SpaceService) Get(ctx context.Context, id int64) (*entities.SpaceView, error) {
	space, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ProjectSpace(space), nil
}

// List returns projections of the spaces matching the filter.
func (s *SpaceService) List(ctx context.Context, filter repositories.SpaceFilter) ([]*entities.SpaceView, error) {
	spaces, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*entities.SpaceView, 0, len(spaces))
	for _, space := range spaces {
		views = append(views, ProjectSpace(space))
	}
	return views, nil
}

// spaceEditableFields is the allow-list for partial edits. Keys outside
// it (and the features key, handled separately) are ignored.
var spaceEditableFields = map[string]struct{}{
	"name": {}, "type": {}, "category": {}, "address": {}, "description": {},
	"website": {}, "phone": {}, "latitude": {}, "longitude": {},
	"indoor": {}, "outdoor": {}, "wifi": {}, "parking": {},
}

// Update applies a partial edit: only keys present in the patch change,
// and a present features key fully replaces the association set. The
// patch is validated before anything is written, so a rejected edit
// leaves no partial mutation.
func (s *SpaceService) Update(ctx context.Context, spaceID, actorID int64, patch map[string]any) (*entities.SpaceView, error) {
	space, err := s.repo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	if err := s.policy.Authorize(actorID, space); err != nil {
		return nil, err
	}

	featureIDs, ok, featuresPresent := batch.IDListField(patch, "features")
	if !ok {
		return nil, apperrors.NewValidationError("Features should be a list of IDs")
	}

	applySpacePatch(space, patch)
	if (space.Latitude == nil) != (space.Longitude == nil) {
		return nil, apperrors.NewValidationError("latitude and longitude must be provided together")
	}

	if err := s.repo.Update(ctx, space); err != nil {
		return nil, err
	}

	if featuresPresent {
		features, err := s.features.ResolveIDs(ctx, featureIDs)
		if err != nil {
			return nil, err
		}
		resolved := make([]int64, 0, len(features))
		for _, feature := range features {
			resolved = append(resolved, feature.ID)
		}
		if err := s.repo.ReplaceFeatures(ctx, spaceID, resolved); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	return ProjectSpace(updated), nil
}

// Delete physically removes a space; its reviews and feature
// associations go with it.
func (s *SpaceService) Delete(ctx context.Context, spaceID, actorID int64) error {
	space, err := s.repo.GetByID(ctx, spaceID)
	if err != nil {
		return err
	}

	if err := s.policy.Authorize(actorID, space); err != nil {
		return err
	}

	return s.repo.Delete(ctx, spaceID)
}

// Categories summarizes space counts per category.
func (s *SpaceService) Categories(ctx context.Context) ([]*entities.CategoryView, error) {
	counts, err := s.repo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]*entities.CategoryView, 0, len(counts))
	for _, count := range counts {
		categories = append(categories, &entities.CategoryView{
			ID:          strings.ReplaceAll(strings.ToLower(count.Category), " ", "_"),
			Name:        count.Category,
			Description: fmt.Sprintf("Spaces under %s", count.Category),
			Icon:        "🏠",
			Count:       count.Count,
		})
	}
	return categories, nil
}

func applySpacePatch(space *entities.Space, patch map[string]any) {
	for key := range patch {
		if _, allowed := spaceEditableFields[key]; !allowed {
			continue
		}
		switch key {
		case "name":
			space.Name = batch.StringField(patch, key)
		case "type":
			space.Type = batch.StringField(patch, key)
		case "category":
			space.Category = batch.StringField(patch, key)
		case "address":
			space.Address = batch.StringField(patch, key)
		case "description":
			space.Description = batch.StringField(patch, key)
		case "website":
			space.Website = batch.StringField(patch, key)
		case "phone":
			space.Phone = batch.StringField(patch, key)
		case "latitude":
			space.Latitude = batch.FloatField(patch, key)
		case "longitude":
			space.Longitude = batch.FloatField(patch, key)
		case "indoor":
			space.Indoor = batch.BoolField(patch, key, space.Indoor)
		case "outdoor":
			space.Outdoor = batch.BoolField(patch, key, space.Outdoor)
		case "wifi":
			space.Wifi = batch.BoolField(patch, key, space.Wifi)
		case "parking":
			space.Parking = batch.BoolField(patch, key, space.Parking)
		}
	}
}
