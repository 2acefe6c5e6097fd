package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estaty360/chat-assistant/chat"
	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/types"
)

// ChatHandler runs one question through the conversation orchestrator and
// returns the appended turns.
func ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		config.Logger.Warn("Rejected chat request:", err)
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	result, err := conv.Send(r.Context(), req.Message)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeError(w, "Message is empty", http.StatusBadRequest)
		return
	case errors.Is(err, chat.ErrSendInFlight):
		writeError(w, "A message is already being processed", http.StatusConflict)
		return
	case err != nil:
		config.Logger.Error("Send failed:", err)
		writeError(w, "Could not process message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:       true,
		UserTurn:      &result.UserTurn,
		AssistantTurn: &result.AssistantTurn,
		SessionID:     result.SessionID,
	})
}

// GetChatHandler returns the visitor's current message log.
func GetChatHandler(w http.ResponseWriter, r *http.Request) {
	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	writeJSON(w, http.StatusOK, types.GetLogResponse{
		Success:   true,
		Turns:     conv.Turns(),
		SessionID: conv.CurrentSession(),
	})
}

// NewChatHandler starts a fresh conversation: session id dropped, log reset
// to the greeting.
func NewChatHandler(w http.ResponseWriter, r *http.Request) {
	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	if err := conv.StartNew(); err != nil {
		config.Logger.Error("Failed to start new chat:", err)
		writeError(w, "Could not start a new chat", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetLogResponse{
		Success: true,
		Turns:   conv.Turns(),
	})
}
