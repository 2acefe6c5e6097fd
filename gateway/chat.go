package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"estaty360/chat-assistant/types"
)

// ChatClient talks to the remote AI chat service. One question in, one
// normalized assistant reply out.
type ChatClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewChatClient(baseURL, apiKey string) *ChatClient {
	return &ChatClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		// Bounded timeout so a hung gateway surfaces as a normal failure
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ChatClient) Send(ctx context.Context, askReq types.AskRequest) (types.AskResponse, error) {
	jsonData, err := json.Marshal(askReq)
	if err != nil {
		return types.AskResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(jsonData))
	if err != nil {
		return types.AskResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return types.AskResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.AskResponse{}, fmt.Errorf("chat gateway returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.AskResponse{}, fmt.Errorf("failed to read response: %w", err)
	}

	return NormalizeAskResponse(body)
}
