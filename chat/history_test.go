package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estaty360/chat-assistant/types"
)

func studioHistory(sessionID string) types.SessionHistory {
	return types.SessionHistory{
		SessionID: sessionID,
		Title:     "Maadi studios",
		Messages: []types.HistoryMessage{
			{Role: "user", Content: "Studio in Maadi", Timestamp: "2:10 PM"},
			{Role: "assistant", Content: "Found 3 studios", Metadata: &types.HistoryMetadata{
				Target: "units",
				Data:   []types.ResultItem{{ID: "u1", Name: "Studio 45m"}},
			}},
		},
	}
}

func TestSelectReplacesLog(t *testing.T) {
	gw := &fakeChatGateway{respond: okResponse("s1", "hi")}
	hw := &fakeHistoryGateway{getFn: func(sessionID string) (types.SessionHistory, error) {
		return studioHistory(sessionID), nil
	}}
	conv, _ := newTestConversation(gw, hw)

	// build s1 state, then switch to s2
	_, err := conv.Send(context.Background(), "hello from s1")
	require.NoError(t, err)

	require.NoError(t, conv.Select(context.Background(), "s2"))

	assert.Equal(t, "s2", conv.CurrentSession())
	turns := conv.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, types.SenderUser, turns[0].Sender)
	assert.Equal(t, "Studio in Maadi", turns[0].Text)
	assert.Equal(t, "2:10 PM", turns[0].Timestamp)
	assert.Equal(t, types.SenderAssistant, turns[1].Sender)
	assert.Equal(t, "units", turns[1].Target)
	require.Len(t, turns[1].Data, 1)
}

func TestSelectActiveSessionIsNoOp(t *testing.T) {
	hw := &fakeHistoryGateway{getFn: func(sessionID string) (types.SessionHistory, error) {
		return studioHistory(sessionID), nil
	}}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	require.NoError(t, conv.Select(context.Background(), "s2"))
	require.NoError(t, conv.Select(context.Background(), "s2"))

	assert.Equal(t, 1, hw.getCalls, "second select of the same session must not fetch")
}

func TestSelectUnknownRoleBecomesAssistant(t *testing.T) {
	hw := &fakeHistoryGateway{getFn: func(sessionID string) (types.SessionHistory, error) {
		return types.SessionHistory{
			SessionID: sessionID,
			Messages: []types.HistoryMessage{
				{Role: "system", Content: "welcome"},
				{Role: "user", Content: "hi"},
			},
		}, nil
	}}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	require.NoError(t, conv.Select(context.Background(), "s9"))

	turns := conv.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, types.SenderAssistant, turns[0].Sender)
	assert.Equal(t, types.SenderUser, turns[1].Sender)
}

func TestSelectEmptyHistoryFallsBackToGreeting(t *testing.T) {
	hw := &fakeHistoryGateway{getFn: func(sessionID string) (types.SessionHistory, error) {
		return types.SessionHistory{SessionID: sessionID}, nil
	}}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	require.NoError(t, conv.Select(context.Background(), "s3"))

	turns := conv.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, types.SenderAssistant, turns[0].Sender)
	assert.Equal(t, "s3", conv.CurrentSession())
}

func TestSelectFailureLeavesStateIntact(t *testing.T) {
	hw := &fakeHistoryGateway{getFn: func(string) (types.SessionHistory, error) {
		return types.SessionHistory{}, errors.New("session not found")
	}}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	_, err := conv.Send(context.Background(), "hello")
	require.NoError(t, err)
	before := conv.Turns()

	assert.Error(t, conv.Select(context.Background(), "gone"))
	assert.Equal(t, "s1", conv.CurrentSession())
	assert.Equal(t, before, conv.Turns())
}

func TestDeleteActiveSessionResets(t *testing.T) {
	hw := &fakeHistoryGateway{}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	_, err := conv.Send(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "s1", conv.CurrentSession())

	require.NoError(t, conv.Delete(context.Background(), "s1"))

	assert.Empty(t, conv.CurrentSession())
	turns := conv.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, types.SenderAssistant, turns[0].Sender)
}

func TestDeleteOtherSessionKeepsLog(t *testing.T) {
	hw := &fakeHistoryGateway{}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	_, err := conv.Send(context.Background(), "hello")
	require.NoError(t, err)

	require.NoError(t, conv.Delete(context.Background(), "s9"))

	assert.Equal(t, "s1", conv.CurrentSession())
	assert.Len(t, conv.Turns(), 3)
}

func TestDeleteFailurePropagates(t *testing.T) {
	hw := &fakeHistoryGateway{deleteFn: func(string) error {
		return errors.New("boom")
	}}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	_, err := conv.Send(context.Background(), "hello")
	require.NoError(t, err)

	assert.Error(t, conv.Delete(context.Background(), "s1"))
	// nothing reset on failure
	assert.Equal(t, "s1", conv.CurrentSession())
	assert.Len(t, conv.Turns(), 3)
}

func TestSessionsList(t *testing.T) {
	hw := &fakeHistoryGateway{listFn: func(limit, offset int) (types.SessionList, error) {
		assert.Equal(t, 20, limit)
		assert.Equal(t, 0, offset)
		return types.SessionList{
			Sessions: []types.SessionSummary{{SessionID: "s1", Title: "Maadi studios", MessageCount: 4}},
			Total:    1,
		}, nil
	}}
	conv, _ := newTestConversation(&fakeChatGateway{respond: okResponse("s1", "hi")}, hw)

	list, err := conv.Sessions(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Sessions, 1)
}
