package chat

import (
	"encoding/json"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/storage"
	"estaty360/chat-assistant/types"
)

// MessageLog holds the ordered turns of the active conversation. The log only
// grows by append; the sole exceptions are whole-log replacement on session
// switch and reset to a single greeting. Existing turns are never mutated or
// reordered.
//
// The log mirrors itself into the storage slot so a widget reload picks the
// conversation back up. It is not safe for concurrent use on its own; the
// owning Conversation serializes access.
type MessageLog struct {
	turns []types.ChatTurn
	store storage.Store
	slot  string
}

func NewMessageLog(store storage.Store, visitorID string) *MessageLog {
	l := &MessageLog{store: store, slot: config.SlotLog + visitorID}
	if !l.load() {
		l.turns = []types.ChatTurn{GreetingTurn()}
	}
	return l
}

// Turns returns a copy of the log, oldest first.
func (l *MessageLog) Turns() []types.ChatTurn {
	out := make([]types.ChatTurn, len(l.turns))
	copy(out, l.turns)
	return out
}

func (l *MessageLog) Append(turn types.ChatTurn) {
	l.turns = append(l.turns, turn)
	l.persist()
}

// ReplaceAll atomically swaps the entire log, used when switching to another
// session's fetched history. Never a partial merge.
func (l *MessageLog) ReplaceAll(turns []types.ChatTurn) {
	l.turns = make([]types.ChatTurn, len(turns))
	copy(l.turns, turns)
	l.persist()
}

// Reset replaces the log with a single synthesized greeting turn.
func (l *MessageLog) Reset() {
	l.turns = []types.ChatTurn{GreetingTurn()}
	l.persist()
}

func (l *MessageLog) load() bool {
	raw, ok, err := l.store.Get(l.slot)
	if err != nil {
		config.Logger.Warn("Failed to load persisted message log:", err)
		return false
	}
	if !ok {
		return false
	}

	var turns []types.ChatTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		config.Logger.Warn("Failed to parse persisted message log:", err)
		return false
	}
	if len(turns) == 0 {
		return false
	}
	l.turns = turns
	return true
}

func (l *MessageLog) persist() {
	raw, err := json.Marshal(l.turns)
	if err != nil {
		config.Logger.Warn("Failed to serialize message log:", err)
		return
	}
	if err := l.store.Set(l.slot, string(raw)); err != nil {
		config.Logger.Warn("Failed to persist message log:", err)
	}
}
