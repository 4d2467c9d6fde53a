package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiddenspaces/backend/internal/application/services"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

func TestOwnershipPolicy_Authorize(t *testing.T) {
	owned := &entities.Space{CreatedBy: int64Ptr(7)}
	orphan := &entities.Space{}

	t.Run("relaxed allows anyone", func(t *testing.T) {
		policy := services.OwnershipPolicy{}
		assert.NoError(t, policy.Authorize(1, owned))
		assert.NoError(t, policy.Authorize(1, orphan))
	})

	t.Run("enforced allows only the creator", func(t *testing.T) {
		policy := services.OwnershipPolicy{Enforced: true}
		assert.NoError(t, policy.Authorize(7, owned))

		err := policy.Authorize(8, owned)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
	})

	t.Run("enforced never allows editing an orphan", func(t *testing.T) {
		policy := services.OwnershipPolicy{Enforced: true}
		err := policy.Authorize(7, orphan)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
	})
}
