package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estaty360/chat-assistant/types"
)

func TestChatClientSend(t *testing.T) {
	var got types.AskRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ask", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sessionId":"abc123","message":"Found 3 studios"}`))
	}))
	defer server.Close()

	client := NewChatClient(server.URL, "secret")
	resp, err := client.Send(context.Background(), types.AskRequest{
		Question:  "Studio in Maadi under 2M",
		EnableRag: true,
		LeadInfo:  &types.LeadInfo{Name: "Ali", Phone: "01012345678", Source: "chat_widget"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Studio in Maadi under 2M", got.Question)
	assert.Empty(t, got.SessionID)
	assert.True(t, got.EnableRag)
	require.NotNil(t, got.LeadInfo)
	assert.Equal(t, "chat_widget", got.LeadInfo.Source)

	assert.Equal(t, "abc123", resp.SessionID)
	assert.Equal(t, "Found 3 studios", resp.Message)
}

func TestChatClientSendOmitsAbsentFields(t *testing.T) {
	var raw map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Write([]byte(`{"sessionId":"s1","message":"ok"}`))
	}))
	defer server.Close()

	client := NewChatClient(server.URL, "")
	_, err := client.Send(context.Background(), types.AskRequest{Question: "hi", SessionID: "s1"})
	require.NoError(t, err)

	_, hasLead := raw["leadInfo"]
	assert.False(t, hasLead, "leadInfo should be omitted when not attached")
}

func TestChatClientSendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewChatClient(server.URL, "")
	_, err := client.Send(context.Background(), types.AskRequest{Question: "hi"})
	assert.Error(t, err)
}
