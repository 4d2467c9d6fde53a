package services

import (
	"github.com/hiddenspaces/backend/internal/domain/entities"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

// OwnershipPolicy decides whether a user may edit or delete a space.
// The check is configurable because deployments differ on whether
// spaces are creator-owned or community-maintained.
type OwnershipPolicy struct {
	Enforced bool
}

// Authorize returns an unauthorized error when the policy is enforced
// and the actor is not the space's creator. Orphaned spaces (creator
// deleted) are never editable under an enforced policy.
func (p OwnershipPolicy) Authorize(actorID int64, space *entities.Space) error {
	if !p.Enforced {
		return nil
	}
	if space.CreatedBy == nil || *space.CreatedBy != actorID {
		return apperrors.NewUnauthorizedError("only the creator can modify this space")
	}
	return nil
}
