package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/storage"
	"estaty360/chat-assistant/types"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrSendInFlight = errors.New("a send is already in progress")
)

// ChatGateway is the remote AI endpoint that answers visitor questions.
type ChatGateway interface {
	Send(ctx context.Context, req types.AskRequest) (types.AskResponse, error)
}

// HistoryGateway lists, fetches and deletes past sessions.
type HistoryGateway interface {
	List(ctx context.Context, limit, offset int) (types.SessionList, error)
	Get(ctx context.Context, sessionID string) (types.SessionHistory, error)
	Delete(ctx context.Context, sessionID string) error
}

// Conversation ties together the session store, message log and lead gate for
// one visitor. Every session-mutating operation (send, lead submit/reset,
// session select/delete, new chat) serializes behind one mutex; Send refuses
// to queue behind an in-flight send and returns ErrSendInFlight instead.
type Conversation struct {
	mu        sync.Mutex
	sessions  *SessionStore
	log       *MessageLog
	gate      *LeadGate
	chat      ChatGateway
	history   HistoryGateway
	enableRag bool
}

func NewConversation(store storage.Store, visitorID string, chatGw ChatGateway, historyGw HistoryGateway, recorder LeadRecorder, enableRag bool) *Conversation {
	return &Conversation{
		sessions:  NewSessionStore(store, visitorID),
		log:       NewMessageLog(store, visitorID),
		gate:      NewLeadGate(store, visitorID, recorder),
		chat:      chatGw,
		history:   historyGw,
		enableRag: enableRag,
	}
}

// SendResult carries the two turns one exchange appended. On gateway failure
// AssistantTurn is the synthesized fallback and SessionID is whatever was
// active before the call.
type SendResult struct {
	UserTurn      types.ChatTurn
	AssistantTurn types.ChatTurn
	SessionID     string
}

// Send runs one question through the gateway. The user turn is appended
// synchronously before the network call, so it survives a failed exchange.
// A lead rides along only when no session exists yet and a lead is persisted.
func (c *Conversation) Send(ctx context.Context, question string) (SendResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return SendResult{}, ErrEmptyMessage
	}
	if !c.mu.TryLock() {
		return SendResult{}, ErrSendInFlight
	}
	defer c.mu.Unlock()

	userTurn := NewTurn(types.SenderUser, question)
	c.log.Append(userTurn)

	sessionID, err := c.sessions.Current()
	if err != nil {
		config.Logger.Warn("Failed to read current session:", err)
	}

	req := types.AskRequest{
		Question:  question,
		SessionID: sessionID,
		EnableRag: c.enableRag,
	}
	if sessionID == "" {
		if lead, ok := c.gate.Lead(); ok {
			req.LeadInfo = &lead
		}
	}

	resp, err := c.chat.Send(ctx, req)
	if err != nil {
		config.Logger.Error("Chat gateway call failed:", err)
		fallback := NewTurn(types.SenderAssistant, config.FallbackMessage)
		c.log.Append(fallback)
		return SendResult{UserTurn: userTurn, AssistantTurn: fallback, SessionID: sessionID}, nil
	}

	// The gateway may hand out a fresh id even when one was sent.
	if resp.SessionID != "" && resp.SessionID != sessionID {
		if err := c.sessions.Set(resp.SessionID); err != nil {
			config.Logger.Warn("Failed to persist session id:", err)
		}
		sessionID = resp.SessionID
	}

	assistant := NewTurn(types.SenderAssistant, resp.Message)
	assistant.Data = resp.Data
	assistant.Suggestions = resp.Suggestions
	assistant.Target = resp.Target
	c.log.Append(assistant)

	return SendResult{UserTurn: userTurn, AssistantTurn: assistant, SessionID: sessionID}, nil
}

// Turns returns a copy of the current log.
func (c *Conversation) Turns() []types.ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.log.Turns()
}

// CurrentSession returns the active session id, or "".
func (c *Conversation) CurrentSession() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, err := c.sessions.Current()
	if err != nil {
		config.Logger.Warn("Failed to read current session:", err)
	}
	return id
}

// StartNew drops the session identity and resets the log to a greeting. The
// next Send begins a fresh session eligible to carry the lead again.
func (c *Conversation) StartNew() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.sessions.Clear(); err != nil {
		return err
	}
	c.log.Reset()
	return nil
}

// LeadRequired reports whether the contact form must be shown.
func (c *Conversation) LeadRequired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gate.Required()
}

// SubmitLead validates and persists the contact form. On success the session
// id is cleared, making the next message the start of a new session that
// carries the lead, and the log resets to a greeting. Field errors come back
// in the map with no side effects performed.
func (c *Conversation) SubmitLead(form types.LeadForm) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fieldErrors := ValidateLeadForm(form)
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	if err := c.gate.save(form); err != nil {
		return nil, err
	}
	if err := c.sessions.Clear(); err != nil {
		config.Logger.Warn("Failed to clear session on lead submit:", err)
	}
	c.log.Reset()
	return nil, nil
}

// ResetLead clears the persisted lead and the session identity, re-enabling
// the gate. The log is left alone; callers wanting new-chat semantics chain
// StartNew.
func (c *Conversation) ResetLead() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.gate.Reset(); err != nil {
		return err
	}
	return c.sessions.Clear()
}
