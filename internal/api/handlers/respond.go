package handlers

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hiddenspaces/backend/internal/application/batch"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondWithError writes the uniform error body: a numeric status and
// a human-readable message.
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]interface{}{
		"status":  statusCode,
		"message": message,
	})
}

// respondWithAppError maps the application error taxonomy onto HTTP
// statuses. Internal details never leak to the client.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation, apperrors.ErrorTypeReference:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusForbidden, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}

// statusForOutcome translates a batch outcome into the three-way status
// policy: everything created, partial success, or nothing accepted.
func statusForOutcome(outcome batch.Outcome) int {
	switch outcome {
	case batch.OutcomeAllCreated:
		return http.StatusCreated
	case batch.OutcomePartial:
		return http.StatusMultiStatus
	default:
		return http.StatusBadRequest
	}
}

// decodeCandidates reads the request body as either an array of objects
// or a single object normalized to a one-element sequence.
func decodeCandidates(body io.Reader) ([]map[string]any, error) {
	var raw any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, apperrors.NewValidationError("invalid request payload")
	}

	switch value := raw.(type) {
	case map[string]any:
		return []map[string]any{value}, nil
	case []any:
		items := make([]map[string]any, 0, len(value))
		for _, element := range value {
			item, ok := element.(map[string]any)
			if !ok {
				return nil, apperrors.NewValidationError("request body must be an object or a list of objects")
			}
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, apperrors.NewValidationError("request body must be an object or a list of objects")
	}
}

// decodeObject reads the request body as a single JSON object.
func decodeObject(body io.Reader) (map[string]any, error) {
	var item map[string]any
	if err := json.NewDecoder(body).Decode(&item); err != nil {
		return nil, apperrors.NewValidationError("invalid request payload")
	}
	return item, nil
}
