package chat

import (
	"time"

	"github.com/google/uuid"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/types"
)

// NewTurn builds a chat turn with a fresh id and display timestamp. UUIDs
// rather than timestamps, so rapid sends can't collide.
func NewTurn(sender, text string) types.ChatTurn {
	return types.ChatTurn{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().Format("3:04 PM"),
		IsArabic:  containsArabic(text),
	}
}

// GreetingTurn is the single assistant turn every fresh or reset conversation
// starts with.
func GreetingTurn() types.ChatTurn {
	return NewTurn(types.SenderAssistant, config.GreetingMessage)
}

// TurnsFromHistory maps stored gateway messages onto local chat turns. Any
// role other than "user" is treated as the assistant.
func TurnsFromHistory(messages []types.HistoryMessage) []types.ChatTurn {
	turns := make([]types.ChatTurn, 0, len(messages))
	for _, msg := range messages {
		sender := types.SenderAssistant
		if msg.Role == types.SenderUser {
			sender = types.SenderUser
		}

		turn := NewTurn(sender, msg.Content)
		if msg.Timestamp != "" {
			turn.Timestamp = msg.Timestamp
		}
		if msg.Metadata != nil {
			turn.Data = msg.Metadata.Data
			turn.Suggestions = msg.Metadata.Suggestions
			turn.Target = msg.Metadata.Target
		}
		turns = append(turns, turn)
	}
	return turns
}
