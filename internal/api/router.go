package api

import (
	"net/http"

	"github.com/coachkit/draft-coach/internal/api/handlers"
	"github.com/coachkit/draft-coach/internal/api/middleware"
	"github.com/coachkit/draft-coach/internal/service"
	"github.com/coachkit/draft-coach/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	championHandler := handlers.NewChampionHandler(services.Champion)
	sessionHandler := handlers.NewSessionHandler(services.Draft)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Get("/key/{key}", championHandler.GetByKey)
			r.Get("/{id}", championHandler.Get)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/{id}", sessionHandler.Get)
			r.Delete("/{id}", sessionHandler.Delete)
			r.Post("/{id}/actions", sessionHandler.ApplyAction)
			r.Post("/{id}/undo", sessionHandler.Undo)
			r.Post("/{id}/reset", sessionHandler.Reset)
			r.Get("/{id}/recommendations", sessionHandler.GetRecommendations)
			r.Get("/{id}/analysis", sessionHandler.GetAnalysis)
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
