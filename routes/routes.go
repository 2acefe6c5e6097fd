package routes

import (
	"net/http"

	"estaty360/chat-assistant/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /visitor", handlers.VisitorTokenHandler)

	RegisterChatRoutes(mux)
	RegisterSessionRoutes(mux)
	RegisterLeadRoutes(mux)
}
