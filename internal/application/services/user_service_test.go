package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddenspaces/backend/internal/application/batch"
	"github.com/hiddenspaces/backend/internal/application/services"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

func userPayload(email string) map[string]any {
	return map[string]any{
		"email": email, "name": "Test User", "ethnicity": "Finnish",
		"language": "Finnish", "hobby": "Reading", "gender": "Female",
		"age": "30", "city": "Helsinki", "sexual_orientation": "Heterosexual",
		"password": "secret",
	}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := services.NewUserService(newFakeUserRepo())

		user, err := svc.Register(ctx, userPayload("a@example.com"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "a@example.com", user.Email)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := services.NewUserService(newFakeUserRepo())

		item := userPayload("a@example.com")
		delete(item, "password")
		_, err := svc.Register(ctx, item)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := services.NewUserService(newFakeUserRepo())

		_, err := svc.Register(ctx, userPayload("a@example.com"))
		require.NoError(t, err)

		_, err = svc.Register(ctx, userPayload("a@example.com"))
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(err))
	})
}

func TestUserService_RegisterBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("mixed batch", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := services.NewUserService(repo)

		_, err := svc.Register(ctx, userPayload("existing@example.com"))
		require.NoError(t, err)

		invalid := userPayload("broken@example.com")
		delete(invalid, "age")
		delete(invalid, "password")

		result, err := svc.RegisterBatch(ctx, []map[string]any{
			userPayload("new@example.com"),
			invalid,
			userPayload("existing@example.com"),
			userPayload("new@example.com"),
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Report.CreatedCount())
		assert.Equal(t, 2, result.Report.SkippedCount())
		require.Len(t, result.Report.Errors, 1)
		assert.Equal(t, 1, result.Report.Errors[0].Index)
		assert.Equal(t, "Missing required fields: age, password", result.Report.Errors[0].Error)
		assert.Equal(t, batch.OutcomePartial, result.Report.Outcome())

		require.Len(t, result.Created, 1)
		assert.Equal(t, "new@example.com", result.Created[0].Email)
		assert.NotZero(t, result.Created[0].ID)
	})

	t.Run("only duplicates is still a success", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := services.NewUserService(repo)

		_, err := svc.Register(ctx, userPayload("existing@example.com"))
		require.NoError(t, err)

		result, err := svc.RegisterBatch(ctx, []map[string]any{
			userPayload("existing@example.com"),
			userPayload("existing@example.com"),
		})
		require.NoError(t, err)

		assert.Empty(t, result.Report.Errors)
		assert.Equal(t, 0, result.Report.CreatedCount())
		assert.Equal(t, 2, result.Report.SkippedCount())
		assert.Equal(t, batch.OutcomeAllCreated, result.Report.Outcome())
	})

	t.Run("all invalid", func(t *testing.T) {
		svc := services.NewUserService(newFakeUserRepo())

		result, err := svc.RegisterBatch(ctx, []map[string]any{
			{"email": "only@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, batch.OutcomeAllFailed, result.Report.Outcome())
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := services.NewUserService(repo)

	_, err := svc.Register(ctx, userPayload("a@example.com"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(ctx, "a@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "a@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
	})

	t.Run("unknown email looks the same as wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secret")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
	})

	t.Run("blank credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "secret")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})
}
