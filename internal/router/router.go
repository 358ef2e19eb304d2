package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tiecvui/api/internal/catalog"
	"github.com/tiecvui/api/internal/config"
	"github.com/tiecvui/api/internal/database"
	"github.com/tiecvui/api/internal/handler"
	mw "github.com/tiecvui/api/internal/middleware"
	"github.com/tiecvui/api/internal/quote"
	"github.com/tiecvui/api/internal/session"
	"github.com/tiecvui/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, queries *database.Queries, proj *catalog.Projection,
	presets []string, sessions *session.Store, m quote.Matcher,
	submitter handler.Submitter, hub *ws.Hub) chi.Router {

	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",        // SvelteKit dev server
			"https://admin.tiecvui.vn",     // Production admin
			"https://stg-admin.tiecvui.vn", // Staging admin
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(queries, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/quote-sessions/{sid}", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		catalogHandler := handler.NewCatalogHandler(proj, presets)
		r.Route("/catalog", catalogHandler.RegisterRoutes)

		quoteHandler := handler.NewQuoteSessionHandler(sessions, m, submitter)
		r.Route("/quote-sessions", quoteHandler.RegisterRoutes)
	})

	return r
}
