package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hiddenspaces/backend/internal/application/batch"
	"github.com/hiddenspaces/backend/internal/application/services"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

// UserService defines the user operations used by the handler.
type UserService interface {
	Register(ctx context.Context, item map[string]any) (*entities.User, error)
	RegisterBatch(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error)
	Login(ctx context.Context, email, password string) (*entities.User, error)
}

// UserHandler handles registration and login requests.
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	item, err := decodeObject(r.Body)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), item)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

// RegisterBatch handles POST /register/batch
func (h *UserHandler) RegisterBatch(w http.ResponseWriter, r *http.Request) {
	items, err := decodeCandidates(r.Body)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.service.RegisterBatch(r.Context(), items)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	status := statusForOutcome(result.Report.Outcome())
	if len(items) == 0 {
		status = http.StatusCreated
	}

	respondWithJSON(w, status, map[string]interface{}{
		"message": fmt.Sprintf("%d user(s) registered successfully", result.Report.CreatedCount()),
		"users":   result.Created,
		"errors":  errorList(result.Report.Errors),
		"skipped": result.Report.SkippedCount(),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondWithLoginError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user_id": user.ID,
	})
}

// respondWithLoginError keeps a 401 for bad credentials rather than the
// generic 403 mapping used elsewhere.
func respondWithLoginError(w http.ResponseWriter, err error) {
	if apperrors.TypeOf(err) == apperrors.ErrorTypeUnauthorized {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	respondWithAppError(w, err)
}

// errorList guarantees a JSON array (never null) for batch error lists.
func errorList(errors []batch.ItemError) []batch.ItemError {
	if errors == nil {
		return []batch.ItemError{}
	}
	return errors
}
