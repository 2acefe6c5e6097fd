package routes

import (
	"net/http"

	"estaty360/chat-assistant/handlers"
)

// RegisterSessionRoutes registers all session-related routes
func RegisterSessionRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /sessions", handlers.GetSessionsHandler)
	mux.HandleFunc("POST /sessions/select", handlers.SelectSessionHandler)
	mux.HandleFunc("DELETE /sessions", handlers.DeleteSessionHandler)
}
