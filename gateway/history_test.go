package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryClientList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		w.Write([]byte(`{"sessions":[{"sessionId":"s1","title":"Maadi studios","messageCount":4}],"total":1}`))
	}))
	defer server.Close()

	client := NewHistoryClient(server.URL, "")
	list, err := client.List(context.Background(), 10, 20)
	require.NoError(t, err)

	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, "s1", list.Sessions[0].SessionID)
	assert.Equal(t, "Maadi studios", list.Sessions[0].Title)
}

func TestHistoryClientListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":0}`))
	}))
	defer server.Close()

	client := NewHistoryClient(server.URL, "")
	list, err := client.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, list.Sessions)
	assert.Empty(t, list.Sessions)
}

func TestHistoryClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/s1", r.URL.Path)
		w.Write([]byte(`{
			"sessionId": "s1",
			"messages": [
				{"role":"user","content":"Studio in Maadi"},
				{"role":"assistant","content":"Found 3","metadata":{"target":"units"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewHistoryClient(server.URL, "")
	history, err := client.Get(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "s1", history.SessionID)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "user", history.Messages[0].Role)
	require.NotNil(t, history.Messages[1].Metadata)
	assert.Equal(t, "units", history.Messages[1].Metadata.Target)
}

func TestHistoryClientGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHistoryClient(server.URL, "")
	_, err := client.Get(context.Background(), "gone")
	assert.Error(t, err)
}

func TestHistoryClientDelete(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewHistoryClient(server.URL, "")
	require.NoError(t, client.Delete(context.Background(), "s1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/sessions/s1", path)
}
