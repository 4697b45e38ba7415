package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wheelgame-go/internal/middleware"
)

// Logging creates logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID tags API requests with an ID, echoed in the X-Request-ID header
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
