package services

import (
	"context"

	"github.com/hiddenspaces/backend/internal/application/batch"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	"github.com/hiddenspaces/backend/internal/infrastructure/observability"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

var userRequiredFields = []string{
	"email", "name", "ethnicity", "language", "hobby", "gender",
	"age", "city", "sexual_orientation", "password",
}

// UserService handles registration and login.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreatedUser is the echo shape for a registered user.
type CreatedUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// UserBatchResult reports a batch registration run.
type UserBatchResult struct {
	Created []CreatedUser
	Report  batch.Report
}

// Register registers a single user. A duplicate email is rejected with
// a conflict error; the batch variant instead skips it silently.
func (s *UserService) Register(ctx context.Context, item map[string]any) (*entities.User, error) {
	if missing := batch.MissingFields(item, userRequiredFields...); len(missing) > 0 {
		return nil, apperrors.NewValidationError("Missing required fields")
	}

	email := batch.StringField(item, "email")
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("Email already registered")
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	user := userFromPayload(item)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RegisterBatch registers many users with per-item validation. Emails
// already registered (or repeated within the batch) are skipped
// silently rather than reported as failures.
func (s *UserService) RegisterBatch(ctx context.Context, items []map[string]any) (*UserBatchResult, error) {
	result := &UserBatchResult{Created: []CreatedUser{}}

	var pending []*entities.User
	seenEmails := make(map[string]struct{})

	for idx, item := range items {
		if missing := batch.MissingFields(item, userRequiredFields...); len(missing) > 0 {
			result.Report.FailMissingFields(idx, missing, item)
			continue
		}

		email := batch.StringField(item, "email")
		if _, ok := seenEmails[email]; ok {
			result.Report.MarkSkipped()
			continue
		}
		if _, err := s.repo.GetByEmail(ctx, email); err == nil {
			result.Report.MarkSkipped()
			observability.LoggerFromContext(ctx).Debug().
				Str("email", email).
				Msg("batch registration skipped already-registered email")
			continue
		} else if !apperrors.IsNotFound(err) {
			return nil, err
		}

		seenEmails[email] = struct{}{}
		pending = append(pending, userFromPayload(item))
	}

	if len(pending) > 0 {
		if err := s.repo.CreateBatch(ctx, pending); err != nil {
			return nil, err
		}
	}

	for _, user := range pending {
		result.Report.MarkCreated()
		result.Created = append(result.Created, CreatedUser{ID: user.ID, Email: user.Email})
	}

	return result, nil
}

// Login checks an email/stored-secret pair. The secret is opaque to
// this service; hashing strength is out of scope.
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("Email and password required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		return nil, err
	}

	if user.PasswordHash != password {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	return user, nil
}

func userFromPayload(item map[string]any) *entities.User {
	return &entities.User{
		Email:             batch.StringField(item, "email"),
		Name:              batch.StringField(item, "name"),
		Ethnicity:         batch.StringField(item, "ethnicity"),
		Language:          batch.StringField(item, "language"),
		Hobby:             batch.StringField(item, "hobby"),
		Gender:            batch.StringField(item, "gender"),
		Age:               batch.StringField(item, "age"),
		City:              batch.StringField(item, "city"),
		SexualOrientation: batch.StringField(item, "sexual_orientation"),
		PasswordHash:      batch.StringField(item, "password"),
	}
}
