package routes

import (
	"net/http"

	"estaty360/chat-assistant/handlers"
)

// RegisterChatRoutes registers all chat-related routes
func RegisterChatRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", handlers.ChatHandler)
	mux.HandleFunc("GET /chat", handlers.GetChatHandler)
	mux.HandleFunc("POST /chat/new", handlers.NewChatHandler)
}
