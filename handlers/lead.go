package handlers

import (
	"encoding/json"
	"net/http"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/types"
)

// SubmitLeadHandler runs the contact gate. Validation failures come back as
// field-scoped errors with no side effects.
func SubmitLeadHandler(w http.ResponseWriter, r *http.Request) {
	var form types.LeadForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	fieldErrors, err := conv.SubmitLead(form)
	if err != nil {
		config.Logger.Error("Failed to persist lead:", err)
		writeError(w, "Could not save contact info", http.StatusInternalServerError)
		return
	}
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, types.LeadResponse{
			Success:     false,
			FieldErrors: fieldErrors,
		})
		return
	}

	writeJSON(w, http.StatusOK, types.LeadResponse{Success: true})
}

// LeadStatusHandler reports whether the gate form must be shown.
func LeadStatusHandler(w http.ResponseWriter, r *http.Request) {
	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	writeJSON(w, http.StatusOK, types.LeadStatusResponse{
		Success:  true,
		Required: conv.LeadRequired(),
	})
}

// ResetLeadHandler clears the persisted lead and session id, re-enabling the
// gate. The message log is left alone.
func ResetLeadHandler(w http.ResponseWriter, r *http.Request) {
	visitorID, err := VisitorFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conv := Conversations.Get(visitorID)
	if err := conv.ResetLead(); err != nil {
		config.Logger.Error("Failed to reset lead:", err)
		writeError(w, "Could not reset contact info", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.LeadResponse{Success: true})
}
