package chat

import (
	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/storage"
)

// SessionStore owns the current session identifier for one visitor. It is the
// single source of truth for which session outgoing messages belong to; the
// message log never tracks session identity on its own.
type SessionStore struct {
	store storage.Store
	slot  string
}

func NewSessionStore(store storage.Store, visitorID string) *SessionStore {
	return &SessionStore{store: store, slot: config.SlotSession + visitorID}
}

// Current returns the persisted session id, or "" when no session exists yet.
func (s *SessionStore) Current() (string, error) {
	id, ok, err := s.store.Get(s.slot)
	if err != nil || !ok {
		return "", err
	}
	return id, nil
}

func (s *SessionStore) Set(id string) error {
	return s.store.Set(s.slot, id)
}

func (s *SessionStore) Clear() error {
	return s.store.Clear(s.slot)
}
