package handlers

import (
	"encoding/json"
	"net/http"

	"estaty360/chat-assistant/chat"
)

// Conversations is the per-visitor conversation registry, wired in main.
var Conversations *chat.Manager

func Init(manager *chat.Manager) {
	Conversations = manager
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, errorResponse{Success: false, ErrorMessage: message})
}
