package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhollis/gamewire/internal/api/handler"
	"github.com/mhollis/gamewire/internal/api/middleware"
	"github.com/mhollis/gamewire/internal/realtime"
	"github.com/mhollis/gamewire/internal/services/auth"
	"github.com/mhollis/gamewire/internal/services/game"
	"github.com/mhollis/gamewire/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	GameController *game.Controller
	Hub            *realtime.Hub
	Storage        storage.Storage
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	broadcaster := realtime.NewBroadcaster(cfg.Hub, cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.GameController)
	playerHandler := handler.NewPlayerHandler(cfg.GameController, broadcaster)
	moveHandler := handler.NewMoveHandler(cfg.GameController, broadcaster)
	wsHandler := realtime.NewHandler(cfg.Hub, cfg.AuthService, cfg.Storage, cfg.Logger)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Registration requires no token
	r.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)

	// Identity routes
	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.Use(authMiddleware)
	authRoutes.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Game routes (all require auth)
	games := r.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{gameId}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{gameId}", gameHandler.Update).Methods(http.MethodPut)
	games.HandleFunc("/{gameId}", gameHandler.Delete).Methods(http.MethodDelete)

	// Roster routes
	games.HandleFunc("/{gameId}/players", playerHandler.Add).Methods(http.MethodPost)
	games.HandleFunc("/{gameId}/players", playerHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{gameId}/players/{playerId}", playerHandler.Remove).Methods(http.MethodDelete)

	// Move routes
	games.HandleFunc("/{gameId}/moves", moveHandler.Add).Methods(http.MethodPost)
	games.HandleFunc("/{gameId}/moves", moveHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{gameId}/moves/{moveId}", moveHandler.Get).Methods(http.MethodGet)

	// Realtime channel; the handshake does its own auth via query params
	r.Handle("/ws", wsHandler).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
