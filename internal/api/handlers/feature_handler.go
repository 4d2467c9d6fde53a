package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hiddenspaces/backend/internal/domain/entities"
)

// FeatureService defines the feature operations used by the handler.
type FeatureService interface {
	CreateBatch(ctx context.Context, items []map[string]any) ([]*entities.AccessibilityFeature, error)
	List(ctx context.Context) ([]*entities.AccessibilityFeature, error)
}

// FeatureHandler handles accessibility feature requests.
type FeatureHandler struct {
	service FeatureService
}

// NewFeatureHandler creates a new feature handler.
func NewFeatureHandler(service FeatureService) *FeatureHandler {
	return &FeatureHandler{service: service}
}

// CreateFeatures handles POST /accessibility
func (h *FeatureHandler) CreateFeatures(w http.ResponseWriter, r *http.Request) {
	items, err := decodeCandidates(r.Body)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	features, err := h.service.CreateBatch(r.Context(), items)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  fmt.Sprintf("%d feature(s) added", len(features)),
		"features": features,
	})
}

// ListFeatures handles GET /accessibility
func (h *FeatureHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"features": features,
	})
}
