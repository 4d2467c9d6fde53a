package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hiddenspaces/backend/internal/application/services"
)

// ReviewService defines the review operations used by the handler.
type ReviewService interface {
	CreateBatch(ctx context.Context, items []map[string]any) (*services.ReviewBatchResult, error)
}

// ReviewHandler handles review submissions.
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReviews handles POST /reviews
func (h *ReviewHandler) CreateReviews(w http.ResponseWriter, r *http.Request) {
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
		"message": fmt.Sprintf("%d review(s) added successfully.", result.Report.CreatedCount()),
		"created": result.Created,
		"errors":  errorList(result.Report.Errors),
	})
}
