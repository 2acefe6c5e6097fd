package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estaty360/chat-assistant/storage"
	"estaty360/chat-assistant/types"
)

func TestMessageLogStartsWithGreeting(t *testing.T) {
	log := NewMessageLog(storage.NewMemoryStore(), "v1")

	turns := log.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, types.SenderAssistant, turns[0].Sender)
	assert.NotEmpty(t, turns[0].Text)
}

func TestMessageLogAppendPreservesOrder(t *testing.T) {
	log := NewMessageLog(storage.NewMemoryStore(), "v1")

	log.Append(NewTurn(types.SenderUser, "first"))
	log.Append(NewTurn(types.SenderAssistant, "second"))
	log.Append(NewTurn(types.SenderUser, "third"))

	turns := log.Turns()
	require.Len(t, turns, 4)
	assert.Equal(t, "first", turns[1].Text)
	assert.Equal(t, "second", turns[2].Text)
	assert.Equal(t, "third", turns[3].Text)
}

func TestMessageLogReplaceAll(t *testing.T) {
	log := NewMessageLog(storage.NewMemoryStore(), "v1")
	log.Append(NewTurn(types.SenderUser, "old turn"))

	replacement := []types.ChatTurn{
		NewTurn(types.SenderUser, "from history"),
		NewTurn(types.SenderAssistant, "stored reply"),
	}
	log.ReplaceAll(replacement)

	turns := log.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "from history", turns[0].Text)
}

func TestMessageLogReset(t *testing.T) {
	log := NewMessageLog(storage.NewMemoryStore(), "v1")
	log.Append(NewTurn(types.SenderUser, "hello"))

	log.Reset()

	turns := log.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, types.SenderAssistant, turns[0].Sender)
}

func TestMessageLogSurvivesReload(t *testing.T) {
	store := storage.NewMemoryStore()

	log := NewMessageLog(store, "v1")
	log.Append(NewTurn(types.SenderUser, "persist me"))

	reloaded := NewMessageLog(store, "v1")
	turns := reloaded.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "persist me", turns[1].Text)
}

func TestMessageLogIgnoresCorruptPersistedState(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set("chat_log:v1", "not json"))

	log := NewMessageLog(store, "v1")
	turns := log.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, types.SenderAssistant, turns[0].Sender)
}

func TestMessageLogsAreScopedPerVisitor(t *testing.T) {
	store := storage.NewMemoryStore()

	first := NewMessageLog(store, "v1")
	first.Append(NewTurn(types.SenderUser, "only for v1"))

	second := NewMessageLog(store, "v2")
	assert.Len(t, second.Turns(), 1)
}

func TestTurnIDsAreUnique(t *testing.T) {
	a := NewTurn(types.SenderUser, "one")
	b := NewTurn(types.SenderUser, "two")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestContainsArabic(t *testing.T) {
	assert.True(t, containsArabic("شقة في المعادي"))
	assert.True(t, containsArabic("mixed نص text"))
	assert.False(t, containsArabic("Studio in Maadi"))
	assert.False(t, containsArabic(""))
}
