package routes

import (
	"net/http"

	"github.com/hiddenspaces/backend/internal/api/handlers"
	"github.com/hiddenspaces/backend/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler    *handlers.UserHandler
	spaceHandler   *handlers.SpaceHandler
	featureHandler *handlers.FeatureHandler
	reviewHandler  *handlers.ReviewHandler
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	spaceHandler *handlers.SpaceHandler,
	featureHandler *handlers.FeatureHandler,
	reviewHandler *handlers.ReviewHandler,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		userHandler:    userHandler,
		spaceHandler:   spaceHandler,
		featureHandler: featureHandler,
		reviewHandler:  reviewHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// User endpoints
	r.mux.HandleFunc("POST /register", r.userHandler.Register)
	r.mux.HandleFunc("POST /register/batch", r.userHandler.RegisterBatch)
	r.mux.HandleFunc("POST /login", r.userHandler.Login)

	// Space endpoints
	r.mux.HandleFunc("POST /spaces", r.spaceHandler.CreateSpaces)
	r.mux.HandleFunc("GET /spaces", r.spaceHandler.ListSpaces)
	r.mux.HandleFunc("GET /spaces/categories", r.spaceHandler.GetCategories)
	r.mux.HandleFunc("GET /spaces/categories/{category}/spaces", r.spaceHandler.GetSpacesInCategory)
	r.mux.HandleFunc("GET /spaces/{id}", r.spaceHandler.GetSpace)
	r.mux.HandleFunc("PUT /spaces/{id}", r.spaceHandler.UpdateSpace)
	r.mux.HandleFunc("DELETE /spaces/{id}", r.spaceHandler.DeleteSpace)

	// Accessibility feature endpoints
	r.mux.HandleFunc("POST /accessibility", r.featureHandler.CreateFeatures)
	r.mux.HandleFunc("GET /accessibility", r.featureHandler.ListFeatures)

	// Review endpoints
	r.mux.HandleFunc("POST /reviews", r.reviewHandler.CreateReviews)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS is outermost so its headers are always set.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
