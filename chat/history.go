package chat

import (
	"context"
	"fmt"

	"estaty360/chat-assistant/config"
	"estaty360/chat-assistant/types"
)

// Sessions fetches a page of session summaries. Read-only, so callers keep
// their previously displayed list when this fails.
func (c *Conversation) Sessions(ctx context.Context, limit, offset int) (types.SessionList, error) {
	list, err := c.history.List(ctx, limit, offset)
	if err != nil {
		config.Logger.Error("Failed to list sessions:", err)
		return types.SessionList{}, err
	}
	return list, nil
}

// Select switches the conversation to a past session: fetch its full history,
// swap the log wholesale and adopt the session id. Selecting the already
// active session is a no-op and performs no fetch. In-memory turns of the
// previous session are discarded, not persisted back anywhere.
func (c *Conversation) Select(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.sessions.Current()
	if err != nil {
		config.Logger.Warn("Failed to read current session:", err)
	}
	if current == sessionID {
		return nil
	}

	history, err := c.history.Get(ctx, sessionID)
	if err != nil {
		config.Logger.Error("Failed to load session history:", err)
		return fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	turns := TurnsFromHistory(history.Messages)
	if len(turns) == 0 {
		turns = []types.ChatTurn{GreetingTurn()}
	}
	c.log.ReplaceAll(turns)

	if err := c.sessions.Set(sessionID); err != nil {
		config.Logger.Warn("Failed to persist session id:", err)
	}
	return nil
}

// Delete removes a session on the gateway. Deleting the active session also
// resets the conversation the same way StartNew does.
func (c *Conversation) Delete(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.history.Delete(ctx, sessionID); err != nil {
		config.Logger.Error("Failed to delete session:", err)
		return err
	}

	current, err := c.sessions.Current()
	if err != nil {
		config.Logger.Warn("Failed to read current session:", err)
	}
	if current == sessionID {
		if err := c.sessions.Clear(); err != nil {
			config.Logger.Warn("Failed to clear session:", err)
		}
		c.log.Reset()
	}
	return nil
}
