package types

// LeadInfo is a captured visitor contact record. It is attached to the first
// message of a newly started session and never resent on later turns.
type LeadInfo struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	Source string `json:"source,omitempty"`
}

// LeadForm is the gate submission payload.
type LeadForm struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type LeadResponse struct {
	Success      bool              `json:"success"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

type LeadStatusResponse struct {
	Success  bool `json:"success"`
	Required bool `json:"required"`
}

type VisitorTokenResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token,omitempty"`
	VisitorID    string `json:"visitor_id,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}
