package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hiddenspaces/backend/internal/application/batch"
	"github.com/hiddenspaces/backend/internal/application/services"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
)

// SpaceService defines the space operations used by the handler.
type SpaceService interface {
	CreateBatch(ctx context.Context, items []map[string]any) (*services.SpaceBatchResult, error)
	Get(ctx context.Context, id int64) (*entities.SpaceView, error)
	List(ctx context.Context, filter repositories.SpaceFilter) ([]*entities.SpaceView, error)
	Update(ctx context.Context, spaceID, actorID int64, patch map[string]any) (*entities.SpaceView, error)
	Delete(ctx context.Context, spaceID, actorID int64) error
	Categories(ctx context.Context) ([]*entities.CategoryView, error)
}

// SpaceHandler handles space-related HTTP requests
type SpaceHandler struct {
	service SpaceService
}

// NewSpaceHandler creates a new space handler
func NewSpaceHandler(service SpaceService) *SpaceHandler {
	return &SpaceHandler{service: service}
}

// CreateSpaces handles POST /spaces
func (h *SpaceHandler) CreateSpaces(w http.ResponseWriter, r *http.Request) {
	items, err := decodeCandidates(r.Body)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.service.CreateBatch(r.Context(), items)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	status := statusForOutcome(result.Report.Outcome())
	if len(items) == 0 {
		status = http.StatusCreated
	}

	respondWithJSON(w, status, map[string]interface{}{
		"created": result.Created,
		"errors":  errorList(result.Report.Errors),
	})
}

// GetSpace handles GET /spaces/{id}
func (h *SpaceHandler) GetSpace(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), spaceID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"space": view,
	})
}

// ListSpaces handles GET /spaces
func (h *SpaceHandler) ListSpaces(w http.ResponseWriter, r *http.Request) {
	filter := repositories.SpaceFilter{
		Category: r.URL.Query().Get("category"),
		Type:     r.URL.Query().Get("type"),
		Limit:    queryInt(r, "limit", 30),
		Offset:   queryInt(r, "offset", 0),
	}

	views, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"spaces": views,
		"count":  len(views),
	})
}

// UpdateSpace handles PUT /spaces/{id}
func (h *SpaceHandler) UpdateSpace(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := pathID(w, r)
	if !ok {
		return
	}

	patch, err := decodeObject(r.Body)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	actorID := batch.IntField(patch, "user_id")
	if actorID == nil {
		respondWithError(w, http.StatusBadRequest, "User ID required")
		return
	}

	view, err := h.service.Update(r.Context(), spaceID, *actorID, patch)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Space updated",
		"space":   view,
	})
}

// DeleteSpace handles DELETE /spaces/{id}
func (h *SpaceHandler) DeleteSpace(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := pathID(w, r)
	if !ok {
		return
	}

	payload, err := decodeObject(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "User ID required")
		return
	}

	actorID := batch.IntField(payload, "user_id")
	if actorID == nil {
		respondWithError(w, http.StatusBadRequest, "User ID required")
		return
	}

	if err := h.service.Delete(r.Context(), spaceID, *actorID); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Space %d deleted", spaceID),
	})
}

// GetCategories handles GET /spaces/categories
func (h *SpaceHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// GetSpacesInCategory handles GET /spaces/categories/{category}/spaces
func (h *SpaceHandler) GetSpacesInCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		respondWithError(w, http.StatusBadRequest, "category is required")
		return
	}

	views, err := h.service.List(r.Context(), repositories.SpaceFilter{Category: category})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"spaces": views,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Resource not found: "+r.URL.Path)
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return def
}
