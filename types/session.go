package types

// SessionSummary is one entry in the history gateway's session list.
type SessionSummary struct {
	SessionID    string `json:"sessionId"`
	Title        string `json:"title,omitempty"`
	MessageCount int    `json:"messageCount"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

type SessionList struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
}

// HistoryMessage is one stored message inside a fetched session history.
type HistoryMessage struct {
	Role      string           `json:"role"` // "user" | "assistant"
	Content   string           `json:"content"`
	Timestamp string           `json:"timestamp,omitempty"`
	Metadata  *HistoryMetadata `json:"metadata,omitempty"`
}

type HistoryMetadata struct {
	Data        []ResultItem `json:"data,omitempty"`
	Suggestions []ResultItem `json:"suggestions,omitempty"`
	Target      string       `json:"target,omitempty"`
}

type SessionHistory struct {
	SessionID string           `json:"sessionId"`
	Title     string           `json:"title,omitempty"`
	Messages  []HistoryMessage `json:"messages"`
}

type GetSessionsResponse struct {
	Success      bool             `json:"success"`
	Sessions     []SessionSummary `json:"sessions,omitempty"`
	Total        int              `json:"total,omitempty"`
	ErrorMessage string           `json:"error,omitempty"`
}

type DeleteSessionResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}
