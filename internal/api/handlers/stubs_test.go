package handlers_test

import (
	"context"

	"github.com/hiddenspaces/backend/internal/application/services"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
)

// Function-field stubs for the handler-facing service interfaces. Each
// test sets only the funcs it expects the handler to call.

type stubUserService struct {
	registerFn      func(ctx context.Context, item map[string]any) (*entities.User, error)
	registerBatchFn func(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error)
	loginFn         func(ctx context.Context, email, password string) (*entities.User, error)
}

func (s *stubUserService) Register(ctx context.Context, item map[string]any) (*entities.User, error) {
	return s.registerFn(ctx, item)
}

func (s *stubUserService) RegisterBatch(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error) {
	return s.registerBatchFn(ctx, items)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubSpaceService struct {
	createBatchFn func(ctx context.Context, items []map[string]any) (*services.SpaceBatchResult, error)
	getFn         func(ctx context.Context, id int64) (*entities.SpaceView, error)
	listFn        func(ctx context.Context, filter repositories.SpaceFilter) ([]*entities.SpaceView, error)
	updateFn      func(ctx context.Context, spaceID, actorID int64, patch map[string]any) (*entities.SpaceView, error)
	deleteFn      func(ctx context.Context, spaceID, actorID int64) error
	categoriesFn  func(ctx context.Context) ([]*entities.CategoryView, error)
}

func (s *stubSpaceService) CreateBatch(ctx context.Context, items []map[string]any) (*services.SpaceBatchResult, error) {
	return s.createBatchFn(ctx, items)
}

func (s *stubSpaceService) Get(ctx context.Context, id int64) (*entities.SpaceView, error) {
	return s.getFn(ctx, id)
}

func (s *stubSpaceService) List(ctx context.Context, filter repositories.SpaceFilter) ([]*entities.SpaceView, error) {
	return s.listFn(ctx, filter)
}

func (s *stubSpaceService) Update(ctx context.Context, spaceID, actorID int64, patch map[string]any) (*entities.SpaceView, error) {
	return s.updateFn(ctx, spaceID, actorID, patch)
}

func (s *stubSpaceService) Delete(ctx context.Context, spaceID, actorID int64) error {
	return s.deleteFn(ctx, spaceID, actorID)
}

func (s *stubSpaceService) Categories(ctx context.Context) ([]*entities.CategoryView, error) {
	return s.categoriesFn(ctx)
}

type stubReviewService struct {
	createBatchFn func(ctx context.Context, items []map[string]any) (*services.ReviewBatchResult, error)
}

func (s *stubReviewService) CreateBatch(ctx context.Context, items []map[string]any) (*services.ReviewBatchResult, error) {
	return s.createBatchFn(ctx, items)
}

type stubFeatureService struct {
	createBatchFn func(ctx context.Context, items []map[string]any) ([]*entities.AccessibilityFeature, error)
	listFn        func(ctx context.Context) ([]*entities.AccessibilityFeature, error)
}

func (s *stubFeatureService) CreateBatch(ctx context.Context, items []map[string]any) ([]*entities.AccessibilityFeature, error) {
	return s.createBatchFn(ctx, items)
}

func (s *stubFeatureService) List(ctx context.Context) ([]*entities.AccessibilityFeature, error) {
	return s.listFn(ctx)
}
