package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wheelgame-go/internal/api/handler"
	"github.com/mcoot/wheelgame-go/internal/api/middleware"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/services/scoring"
	"github.com/mcoot/wheelgame-go/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	ScoringService *scoring.Service
	Hub            *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Hub)
	playerHandler := handler.NewPlayerHandler(cfg.GameController, cfg.ScoringService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game/next", gameHandler.Next).Methods(http.MethodPost)
	api.HandleFunc("/game/select", gameHandler.Select).Methods(http.MethodPost)
	api.HandleFunc("/game/spin", gameHandler.Spin).Methods(http.MethodPost)
	api.HandleFunc("/game/spin/wheel", gameHandler.Wheel).Methods(http.MethodPost)
	api.HandleFunc("/game/letters", gameHandler.Letter).Methods(http.MethodPost)
	api.HandleFunc("/game/solve", gameHandler.Solve).Methods(http.MethodPost)
	api.HandleFunc("/game/bankrupt", gameHandler.Bankrupt).Methods(http.MethodPost)
	api.HandleFunc("/game/events", gameHandler.Events).Methods(http.MethodGet)

	// Scoreboard routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/score", playerHandler.GetScore).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/score", playerHandler.UpdateScore).Methods(http.MethodPatch)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
