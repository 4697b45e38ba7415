package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/web/handler"
	"github.com/mcoot/wheelgame-go/internal/web/middleware"
	"github.com/mcoot/wheelgame-go/internal/web/sse"
	"github.com/mcoot/wheelgame-go/internal/web/templates/components"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	Hub            *sse.Hub
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Hub, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/", gameHandler.View).Methods(http.MethodGet)
	r.HandleFunc(handler.EventsPath, gameHandler.Events).Methods(http.MethodGet)

	// Host actions
	r.HandleFunc(components.ActionNext, gameHandler.Next).Methods(http.MethodPost)
	r.HandleFunc(components.ActionSelect, gameHandler.Select).Methods(http.MethodPost)
	r.HandleFunc(components.ActionSpin, gameHandler.Spin).Methods(http.MethodPost)
	r.HandleFunc(components.ActionWheel, gameHandler.Wheel).Methods(http.MethodPost)
	r.HandleFunc(components.ActionLetter, gameHandler.Letter).Methods(http.MethodPost)
	r.HandleFunc(components.ActionSolve, gameHandler.Solve).Methods(http.MethodPost)
	r.HandleFunc(components.ActionBankrupt, gameHandler.Bankrupt).Methods(http.MethodPost)

	return r
}
