package routes

import (
	"net/http"

	"estaty360/chat-assistant/handlers"
)

// RegisterLeadRoutes registers the contact gate routes
func RegisterLeadRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /lead", handlers.SubmitLeadHandler)
	mux.HandleFunc("GET /lead", handlers.LeadStatusHandler)
	mux.HandleFunc("DELETE /lead", handlers.ResetLeadHandler)
}
