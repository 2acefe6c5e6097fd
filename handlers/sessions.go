package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/types"
)

const (
	defaultSessionLimit = 20
	maxSessionLimit     = 100
)

// GetSessionsHandler returns a page of the visitor's past sessions.
func GetSessionsHandler(w http.ResponseWriter, r *http.Request) {
	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	limit := defaultSessionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= maxSessionLimit {
			limit = parsed
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	conv := Conversations.Get(visitorID)
	list, err := conv.Sessions(r.Context(), limit, offset)
	if err != nil {
		writeError(w, "Could not fetch sessions", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, types.GetSessionsResponse{
		Success:  true,
		Sessions: list.Sessions,
		Total:    list.Total,
	})
}

type selectSessionRequest struct {
	SessionID string `json:"session_id"`
}

// SelectSessionHandler switches the visitor's active session to a past one.
func SelectSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req selectSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		writeError(w, "Missing session_id", http.StatusBadRequest)
		return
	}

	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	if err := conv.Select(r.Context(), req.SessionID); err != nil {
		config.Logger.Error("Failed to select session:", err)
		writeError(w, "Could not load session", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, types.GetLogResponse{
		Success:   true,
		Turns:     conv.Turns(),
		SessionID: req.SessionID,
	})
}

// DeleteSessionHandler removes a session; deleting the active one resets the
// conversation.
func DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, "Missing session_id", http.StatusBadRequest)
		return
	}

	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	if err := conv.Delete(r.Context(), sessionID); err != nil {
		writeError(w, "Could not delete session", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, types.DeleteSessionResponse{
		Success: true,
		Message: "Session deleted",
	})
}
