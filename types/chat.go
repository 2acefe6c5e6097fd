package types

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ResultItem is one listing returned by the chat gateway, either as an exact
// match (data) or as a recommended alternative (suggestions).
type ResultItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Location string  `json:"location,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Bedrooms int     `json:"bedrooms,omitempty"`
	Area     float64 `json:"area,omitempty"`
	Image    string  `json:"image,omitempty"`
	URL      string  `json:"url,omitempty"`
}

// ChatTurn is one message in a conversation's log. Turns are immutable once
// appended; the log only grows, except on full session switch or reset.
type ChatTurn struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Sender      string       `json:"sender"` // "user" | "assistant"
	Timestamp   string       `json:"timestamp,omitempty"`
	Data        []ResultItem `json:"data,omitempty"`
	Suggestions []ResultItem `json:"suggestions,omitempty"`
	Target      string       `json:"target,omitempty"` // "projects" | "units" | "chat"
	IsArabic    bool         `json:"is_arabic"`
}

// AskRequest is the payload sent to the remote chat gateway. LeadInfo rides
// along only on the first message of a new session.
type AskRequest struct {
	Question  string    `json:"question"`
	SessionID string    `json:"sessionId,omitempty"`
	EnableRag bool      `json:"enableRag"`
	LeadInfo  *LeadInfo `json:"leadInfo,omitempty"`
}

// AskResponse is the canonical shape of a chat gateway reply. Raw replies go
// through gateway normalization first, so Explanation is only populated as an
// intermediate fallback for Message.
type AskResponse struct {
	SessionID    string       `json:"sessionId"`
	Message      string       `json:"message"`
	Explanation  string       `json:"explanation,omitempty"`
	Data         []ResultItem `json:"data"`
	Suggestions  []ResultItem `json:"suggestions"`
	Target       string       `json:"target,omitempty"`
	LeadID       string       `json:"leadId,omitempty"`
	IsNewSession bool         `json:"isNewSession,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Success       bool      `json:"success"`
	UserTurn      *ChatTurn `json:"user_turn,omitempty"`
	AssistantTurn *ChatTurn `json:"assistant_turn,omitempty"`
	SessionID     string    `json:"session_id,omitempty"`
	ErrorMessage  string    `json:"error,omitempty"` // only set on failure
}

type GetLogResponse struct {
	Success   bool       `json:"success"`
	Turns     []ChatTurn `json:"turns"`
	SessionID string     `json:"session_id,omitempty"`
}
