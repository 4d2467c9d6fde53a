package services

import (
	"math"

	"github.com/hiddenspaces/backend/internal/domain/entities"
)

// ProjectSpace renders a space into its external view, computing the
// derived fields. It is a pure function: safe to call repeatedly and
// concurrently, never fails.
func ProjectSpace(space *entities.Space) *entities.SpaceView {
	featureNames := make([]string, 0, len(space.Features))
	for _, feature := range space.Features {
		featureNames = append(featureNames, feature.Name)
	}

	return &entities.SpaceView{
		ID:          space.ID,
		Name:        space.Name,
		Type:        space.Type,
		Category:    space.Category,
		Address:     space.Address,
		Description: space.Description,
		Website:     space.Website,
		Phone:       space.Phone,
		Rating:      averageRating(space.Reviews),
		ReviewCount: len(space.Reviews),
		Features:    featureNames,
		Indoor:      space.Indoor,
		Outdoor:     space.Outdoor,
		Wifi:        space.Wifi,
		Parking:     space.Parking,
		Coordinates: space.Coordinates(),
		OwnerID:     space.CreatedBy,
		CreatedBy:   space.CreatorName,
		Reviews:     projectReviews(space.Reviews),
	}
}

// averageRating returns the mean of the rated reviews rounded to one
// decimal place. Unrated reviews are excluded; with no rated reviews
// the average is absent, not zero.
func averageRating(reviews []*entities.Review) *float64 {
	sum := 0
	count := 0
	for _, review := range reviews {
		if review.Rating != nil {
			sum += *review.Rating
			count++
		}
	}
	if count == 0 {
		return nil
	}

	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return &avg
}

func projectReviews(reviews []*entities.Review) []*entities.ReviewView {
	if len(reviews) == 0 {
		return nil
	}
	views := make([]*entities.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, &entities.ReviewView{
			ID:        review.ID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	return views
}
