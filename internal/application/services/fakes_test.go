package services_test

import (
	"context"
	"fmt"

	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

// In-memory repository fakes. They assign sequential ids like the
// database does and return the same error types the adapters do.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entities.User
	order  []int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entities.User)}
}

func (f *fakeUserRepo) add(user *entities.User) *entities.User {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	f.order = append(f.order, user.ID)
	return user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) CreateBatch(ctx context.Context, users []*entities.User) error {
	for _, user := range users {
		f.add(user)
	}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, id := range f.order {
		if f.users[id].Email == email {
			return f.users[id], nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

type fakeFeatureRepo struct {
	nextID   int64
	features map[int64]*entities.AccessibilityFeature
	order    []int64
	getCalls int
}

func newFakeFeatureRepo() *fakeFeatureRepo {
	return &fakeFeatureRepo{features: make(map[int64]*entities.AccessibilityFeature)}
}

func (f *fakeFeatureRepo) add(feature *entities.AccessibilityFeature) *entities.AccessibilityFeature {
	f.nextID++
	feature.ID = f.nextID
	f.features[feature.ID] = feature
	f.order = append(f.order, feature.ID)
	return feature
}

func (f *fakeFeatureRepo) CreateBatch(ctx context.Context, features []*entities.AccessibilityFeature) error {
	for _, feature := range features {
		f.add(feature)
	}
	return nil
}

func (f *fakeFeatureRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entities.AccessibilityFeature, error) {
	f.getCalls++
	var out []*entities.AccessibilityFeature
	for _, id := range ids {
		if feature, ok := f.features[id]; ok {
			out = append(out, feature)
		}
	}
	return out, nil
}

func (f *fakeFeatureRepo) List(ctx context.Context) ([]*entities.AccessibilityFeature, error) {
	out := make([]*entities.AccessibilityFeature, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.features[id])
	}
	return out, nil
}

type fakeSpaceRepo struct {
	nextID  int64
	spaces  map[int64]*entities.Space
	order   []int64
	assoc   map[int64][]int64
	reviews map[int64][]*entities.Review
	catalog *fakeFeatureRepo
}

func newFakeSpaceRepo(catalog *fakeFeatureRepo) *fakeSpaceRepo {
	return &fakeSpaceRepo{
		spaces:  make(map[int64]*entities.Space),
		assoc:   make(map[int64][]int64),
		reviews: make(map[int64][]*entities.Review),
		catalog: catalog,
	}
}

func (f *fakeSpaceRepo) CreateBatch(ctx context.Context, spaces []*entities.Space) error {
	for _, space := range spaces {
		f.nextID++
		space.ID = f.nextID
		stored := *space
		f.spaces[space.ID] = &stored
		f.order = append(f.order, space.ID)
		for _, feature := range space.Features {
			f.assoc[space.ID] = append(f.assoc[space.ID], feature.ID)
		}
	}
	return nil
}

// GetByID returns a copy with relations attached, like the adapter's
// row scan does, so callers can mutate the result freely.
func (f *fakeSpaceRepo) GetByID(ctx context.Context, id int64) (*entities.Space, error) {
	stored, ok := f.spaces[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("space %d not found", id))
	}
	space := *stored
	space.Features = nil
	for _, featureID := range f.assoc[id] {
		if feature, exists := f.catalog.features[featureID]; exists {
			space.Features = append(space.Features, feature)
		}
	}
	space.Reviews = f.reviews[id]
	return &space, nil
}

func (f *fakeSpaceRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.spaces[id]
	return ok, nil
}

func (f *fakeSpaceRepo) List(ctx context.Context, filter repositories.SpaceFilter) ([]*entities.Space, error) {
	var out []*entities.Space
	skipped := 0
	for _, id := range f.order {
		stored := f.spaces[id]
		if filter.Category != "" && stored.Category != filter.Category {
			continue
		}
		if filter.Type != "" && stored.Type != filter.Type {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
		space, _ := f.GetByID(ctx, id)
		out = append(out, space)
	}
	return out, nil
}

func (f *fakeSpaceRepo) Update(ctx context.Context, space *entities.Space) error {
	if _, ok := f.spaces[space.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("space %d not found", space.ID))
	}
	stored := *space
	stored.Features = nil
	stored.Reviews = nil
	f.spaces[space.ID] = &stored
	return nil
}

func (f *fakeSpaceRepo) ReplaceFeatures(ctx context.Context, spaceID int64, featureIDs []int64) error {
	f.assoc[spaceID] = featureIDs
	return nil
}

func (f *fakeSpaceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.spaces[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("space %d not found", id))
	}
	delete(f.spaces, id)
	delete(f.assoc, id)
	delete(f.reviews, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSpaceRepo) CategoryCounts(ctx context.Context) ([]repositories.CategoryCount, error) {
	counts := make(map[string]int)
	var names []string
	for _, id := range f.order {
		category := f.spaces[id].Category
		if counts[category] == 0 {
			names = append(names, category)
		}
		counts[category]++
	}
	out := make([]repositories.CategoryCount, 0, len(names))
	for _, name := range names {
		out = append(out, repositories.CategoryCount{Category: name, Count: counts[name]})
	}
	return out, nil
}

type fakeReviewRepo struct {
	nextID  int64
	store   *fakeSpaceRepo
	reviews []*entities.Review
}

func newFakeReviewRepo(store *fakeSpaceRepo) *fakeReviewRepo {
	return &fakeReviewRepo{store: store}
}

func (f *fakeReviewRepo) CreateBatch(ctx context.Context, reviews []*entities.Review) error {
	for _, review := range reviews {
		f.nextID++
		review.ID = f.nextID
		f.reviews = append(f.reviews, review)
		if f.store != nil {
			f.store.reviews[review.SpaceID] = append(f.store.reviews[review.SpaceID], review)
		}
	}
	return nil
}

func (f *fakeReviewRepo) ListBySpace(ctx context.Context, spaceID int64) ([]*entities.Review, error) {
	var out []*entities.Review
	for _, review := range f.reviews {
		if review.SpaceID == spaceID {
			out = append(out, review)
		}
	}
	return out, nil
}

type fakeInvalidator struct {
	invalidated []int64
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, spaceID int64) {
	f.invalidated = append(f.invalidated, spaceID)
}
