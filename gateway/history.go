package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"estaty360/chat-assistant/types"
)

// HistoryClient lists, fetches and deletes past sessions on the remote
// history service.
type HistoryClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHistoryClient(baseURL, apiKey string) *HistoryClient {
	return &HistoryClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HistoryClient) List(ctx context.Context, limit, offset int) (types.SessionList, error) {
	endpoint := fmt.Sprintf("%s/sessions?limit=%d&offset=%d", c.baseURL, limit, offset)

	var list types.SessionList
	if err := c.do(ctx, http.MethodGet, endpoint, &list); err != nil {
		return types.SessionList{}, err
	}
	if list.Sessions == nil {
		list.Sessions = []types.SessionSummary{}
	}
	return list, nil
}

func (c *HistoryClient) Get(ctx context.Context, sessionID string) (types.SessionHistory, error) {
	endpoint := c.baseURL + "/sessions/" + url.PathEscape(sessionID)

	var history types.SessionHistory
	if err := c.do(ctx, http.MethodGet, endpoint, &history); err != nil {
		return types.SessionHistory{}, err
	}
	return history, nil
}

func (c *HistoryClient) Delete(ctx context.Context, sessionID string) error {
	endpoint := c.baseURL + "/sessions/" + url.PathEscape(sessionID)
	return c.do(ctx, http.MethodDelete, endpoint, nil)
}

func (c *HistoryClient) do(ctx context.Context, method, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("session not found")
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("history gateway returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
