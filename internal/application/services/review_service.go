package services

import (
	"context"

	"github.com/hiddenspaces/backend/internal/application/batch"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	"github.com/hiddenspaces/backend/internal/infrastructure/observability"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

var reviewRequiredFields = []string{"space_id", "user_id", "rating"}

// SpaceCacheInvalidator drops a cached space so its projection picks up
// newly attached reviews.
type SpaceCacheInvalidator interface {
	Invalidate(ctx context.Context, spaceID int64)
}

// ReviewService handles review ingestion.
type ReviewService struct {
	repo        repositories.ReviewRepository
	spaceRepo   repositories.SpaceRepository
	userRepo    repositories.UserRepository
	invalidator SpaceCacheInvalidator
}

// NewReviewService creates a new review service. invalidator may be nil
// when no caching layer is configured.
func NewReviewService(
	repo repositories.ReviewRepository,
	spaceRepo repositories.SpaceRepository,
	userRepo repositories.UserRepository,
	invalidator SpaceCacheInvalidator,
) *ReviewService {
	return &ReviewService{
		repo:        repo,
		spaceRepo:   spaceRepo,
		userRepo:    userRepo,
		invalidator: invalidator,
	}
}

// CreatedReview is the echo shape for a created review.
type CreatedReview struct {
	ID      int64 `json:"id"`
	SpaceID int64 `json:"space_id"`
}

// ReviewBatchResult reports a batch review creation run.
type ReviewBatchResult struct {
	Created []CreatedReview
	Report  batch.Report
}

// CreateBatch validates each candidate independently and commits the
// accepted set at the end. The rating key must be present but its value
// may be null, meaning the review is not yet rated.
func (s *ReviewService) CreateBatch(ctx context.Context, items []map[string]any) (*ReviewBatchResult, error) {
	result := &ReviewBatchResult{Created: []CreatedReview{}}

	var pending []*entities.Review
	for idx, item := range items {
		if missing := batch.MissingFields(item, reviewRequiredFields...); len(missing) > 0 {
			result.Report.FailMissingFields(idx, missing, item)
			continue
		}

		userID := batch.IntField(item, "user_id")
		if userID == nil {
			result.Report.Fail(idx, "User not found", item)
			continue
		}
		if _, err := s.userRepo.GetByID(ctx, *userID); err != nil {
			if apperrors.IsNotFound(err) {
				result.Report.Fail(idx, "User not found", item)
				continue
			}
			return nil, err
		}

		spaceID := batch.IntField(item, "space_id")
		if spaceID == nil {
			result.Report.Fail(idx, "Space not found", item)
			continue
		}
		exists, err := s.spaceRepo.Exists(ctx, *spaceID)
		if err != nil {
			return nil, err
		}
		if !exists {
			result.Report.Fail(idx, "Space not found", item)
			continue
		}

		var rating *int
		if value := batch.IntField(item, "rating"); value != nil {
			iv := int(*value)
			rating = &iv
		}

		pending = append(pending, &entities.Review{
			SpaceID: *spaceID,
			UserID:  *userID,
			Rating:  rating,
			Comment: batch.StringField(item, "comment"),
		})
	}

	if len(pending) > 0 {
		if err := s.repo.CreateBatch(ctx, pending); err != nil {
			return nil, err
		}
	}

	touched := make(map[int64]struct{})
	for _, review := range pending {
		result.Report.MarkCreated()
		result.Created = append(result.Created, CreatedReview{ID: review.ID, SpaceID: review.SpaceID})
		touched[review.SpaceID] = struct{}{}
	}

	if s.invalidator != nil {
		for spaceID := range touched {
			s.invalidator.Invalidate(ctx, spaceID)
		}
	}

	observability.LoggerFromContext(ctx).Info().
		Int("created", result.Report.CreatedCount()).
		Int("failed", len(result.Report.Errors)).
		Msg("review batch processed")

	return result, nil
}
