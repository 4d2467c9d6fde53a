package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddenspaces/backend/internal/api/handlers"
	"github.com/hiddenspaces/backend/internal/application/services"
	"github.com/hiddenspaces/backend/internal/domain/entities"
	apperrors "github.com/hiddenspaces/backend/pkg/errors"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubUserService{
			registerFn: func(ctx context.Context, item map[string]any) (*entities.User, error) {
				return &entities.User{ID: 42, Email: item["email"].(string)}, nil
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"email":"a@example.com"}`))
		w := httptest.NewRecorder()
		handler.Register(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "User registered successfully", body["message"])
		assert.Equal(t, float64(42), body["user_id"])
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc := &stubUserService{
			registerFn: func(ctx context.Context, item map[string]any) (*entities.User, error) {
				return nil, apperrors.NewConflictError("Email already registered")
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"email":"a@example.com"}`))
		w := httptest.NewRecorder()
		handler.Register(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Email already registered", body["message"])
		assert.Equal(t, float64(http.StatusConflict), body["status"])
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := handlers.NewUserHandler(&stubUserService{})

		req := httptest.NewRequest("POST", "/register", strings.NewReader(`{not json`))
		w := httptest.NewRecorder()
		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_RegisterBatch(t *testing.T) {
	partial := func() *services.UserBatchResult {
		result := &services.UserBatchResult{
			Created: []services.CreatedUser{{ID: 1, Email: "ok@example.com"}},
		}
		result.Report.MarkCreated()
		result.Report.Fail(1, "Missing required fields: password", map[string]any{"email": "bad@example.com"})
		return result
	}

	t.Run("partial success is 207", func(t *testing.T) {
		svc := &stubUserService{
			registerBatchFn: func(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error) {
				assert.Len(t, items, 2)
				return partial(), nil
			},
		}
		handler := handlers.NewUserHandler(svc)

		payload := `[{"email":"ok@example.com"},{"email":"bad@example.com"}]`
		req := httptest.NewRequest("POST", "/register/batch", strings.NewReader(payload))
		w := httptest.NewRecorder()
		handler.RegisterBatch(w, req)

		require.Equal(t, http.StatusMultiStatus, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "1 user(s) registered successfully", body["message"])
		assert.Len(t, body["users"], 1)
		errorsField, ok := body["errors"].([]any)
		require.True(t, ok)
		require.Len(t, errorsField, 1)
		first := errorsField[0].(map[string]any)
		assert.Equal(t, float64(1), first["index"])
	})

	t.Run("single object body accepted", func(t *testing.T) {
		svc := &stubUserService{
			registerBatchFn: func(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error) {
				require.Len(t, items, 1)
				result := &services.UserBatchResult{Created: []services.CreatedUser{{ID: 1, Email: "a@example.com"}}}
				result.Report.MarkCreated()
				return result, nil
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/register/batch", strings.NewReader(`{"email":"a@example.com"}`))
		w := httptest.NewRecorder()
		handler.RegisterBatch(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("all failed is 400 with errors listed", func(t *testing.T) {
		svc := &stubUserService{
			registerBatchFn: func(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error) {
				result := &services.UserBatchResult{Created: []services.CreatedUser{}}
				result.Report.Fail(0, "Missing required fields: email", nil)
				return result, nil
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/register/batch", strings.NewReader(`[{}]`))
		w := httptest.NewRecorder()
		handler.RegisterBatch(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "0 user(s) registered successfully", body["message"])
	})

	t.Run("skips reported alongside a 201", func(t *testing.T) {
		svc := &stubUserService{
			registerBatchFn: func(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error) {
				result := &services.UserBatchResult{Created: []services.CreatedUser{}}
				result.Report.MarkSkipped()
				return result, nil
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/register/batch", strings.NewReader(`[{"email":"dup@example.com"}]`))
		w := httptest.NewRecorder()
		handler.RegisterBatch(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["skipped"])
		errorsField, ok := body["errors"].([]any)
		require.True(t, ok)
		assert.Empty(t, errorsField)
	})

	t.Run("empty list is 201", func(t *testing.T) {
		svc := &stubUserService{
			registerBatchFn: func(ctx context.Context, items []map[string]any) (*services.UserBatchResult, error) {
				return &services.UserBatchResult{Created: []services.CreatedUser{}}, nil
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/register/batch", strings.NewReader(`[]`))
		w := httptest.NewRecorder()
		handler.RegisterBatch(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubUserService{
			loginFn: func(ctx context.Context, email, password string) (*entities.User, error) {
				assert.Equal(t, "a@example.com", email)
				return &entities.User{ID: 7, Email: email}, nil
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"a@example.com","password":"secret"}`))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Login successful", body["message"])
		assert.Equal(t, float64(7), body["user_id"])
	})

	t.Run("bad credentials is 401 not 403", func(t *testing.T) {
		svc := &stubUserService{
			loginFn: func(ctx context.Context, email, password string) (*entities.User, error) {
				return nil, apperrors.NewUnauthorizedError("Invalid email or password")
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"a@example.com","password":"wrong"}`))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Invalid email or password", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &stubUserService{
			loginFn: func(ctx context.Context, email, password string) (*entities.User, error) {
				return nil, apperrors.NewValidationError("Email and password required")
			},
		}
		handler := handlers.NewUserHandler(svc)

		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
