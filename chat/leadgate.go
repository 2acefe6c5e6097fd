package chat

import (
	"encoding/json"
	"regexp"
	"strings"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/storage"
	"estaty360/chat-assistant/types"
)

// Egyptian mobile numbers: 11 digits starting 010/011/012/015.
var phonePattern = regexp.MustCompile(`^01[0125][0-9]{8}$`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// LeadRecorder mirrors captured leads into a back-office channel, e.g. the
// Supabase leads table. Recording failures are non-fatal.
type LeadRecorder interface {
	Record(lead types.LeadInfo) error
}

// LeadGate decides whether the visitor must leave contact info before
// chatting. A persisted lead suppresses the gate until Reset.
type LeadGate struct {
	store    storage.Store
	slot     string
	recorder LeadRecorder
}

func NewLeadGate(store storage.Store, visitorID string, recorder LeadRecorder) *LeadGate {
	return &LeadGate{store: store, slot: config.SlotLead + visitorID, recorder: recorder}
}

// Required reports whether the contact form must be shown. Storage trouble
// counts as "no lead", keeping the gate up.
func (g *LeadGate) Required() bool {
	_, ok, err := g.store.Get(g.slot)
	if err != nil {
		config.Logger.Warn("Failed to read persisted lead:", err)
		return true
	}
	return !ok
}

// Lead returns the persisted contact record, if any.
func (g *LeadGate) Lead() (types.LeadInfo, bool) {
	raw, ok, err := g.store.Get(g.slot)
	if err != nil || !ok {
		if err != nil {
			config.Logger.Warn("Failed to read persisted lead:", err)
		}
		return types.LeadInfo{}, false
	}

	var lead types.LeadInfo
	if err := json.Unmarshal([]byte(raw), &lead); err != nil {
		config.Logger.Warn("Failed to parse persisted lead:", err)
		return types.LeadInfo{}, false
	}
	return lead, true
}

// ValidateLeadForm checks the gate submission and returns field-scoped error
// messages. An empty map means the form is valid. No side effects.
func ValidateLeadForm(form types.LeadForm) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(form.Name) == "" {
		fieldErrors["name"] = "Name is required"
	}
	if !phonePattern.MatchString(form.Phone) {
		fieldErrors["phone"] = "Phone must be a valid 11-digit mobile number"
	}
	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		fieldErrors["email"] = "Email address is not valid"
	}
	return fieldErrors
}

// save persists the validated form as the visitor's lead, tagged with the
// widget provenance marker, and mirrors it to the recorder when one is wired.
func (g *LeadGate) save(form types.LeadForm) error {
	lead := types.LeadInfo{
		Name:   strings.TrimSpace(form.Name),
		Phone:  form.Phone,
		Email:  form.Email,
		Source: config.LeadSource,
	}

	raw, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	if err := g.store.Set(g.slot, string(raw)); err != nil {
		return err
	}

	if g.recorder != nil {
		if err := g.recorder.Record(lead); err != nil {
			config.Logger.Warn("Failed to record lead:", err)
		}
	}
	return nil
}

// Reset clears the persisted lead, re-enabling the gate.
func (g *LeadGate) Reset() error {
	return g.store.Clear(g.slot)
}
