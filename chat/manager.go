package chat

import (
	"sync"

	"estaty360/chat-assistant/storage"
)

// Manager hands out one Conversation per visitor. Two chat surfaces for the
// same visitor share persisted state through the store but each rendered
// surface talks to the same server-side Conversation here.
type Manager struct {
	mu        sync.Mutex
	convs     map[string]*Conversation
	store     storage.Store
	chat      ChatGateway
	history   HistoryGateway
	recorder  LeadRecorder
	enableRag bool
}

func NewManager(store storage.Store, chatGw ChatGateway, historyGw HistoryGateway, recorder LeadRecorder, enableRag bool) *Manager {
	return &Manager{
		convs:     make(map[string]*Conversation),
		store:     store,
		chat:      chatGw,
		history:   historyGw,
		recorder:  recorder,
		enableRag: enableRag,
	}
}

// Get returns the visitor's conversation, creating it on first use.
func (m *Manager) Get(visitorID string) *Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()

	if conv, ok := m.convs[visitorID]; ok {
		return conv
	}
	conv := NewConversation(m.store, visitorID, m.chat, m.history, m.recorder, m.enableRag)
	m.convs[visitorID] = conv
	return conv
}
