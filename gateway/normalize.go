package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"estaty360/chat-assistant/types"
)

// NormalizeAskResponse decodes a raw gateway reply into the canonical
// AskResponse. The remote contract occasionally pads keys with whitespace
// (a known " message" typo on their side) and may put the assistant text
// under "explanation" instead of "message"; both are coalesced here so the
// rest of the system only ever sees canonical shapes.
func NormalizeAskResponse(raw []byte) (types.AskResponse, error) {
	var loose map[string]json.RawMessage
	if err := json.Unmarshal(raw, &loose); err != nil {
		return types.AskResponse{}, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	clean := make(map[string]json.RawMessage, len(loose))
	for key, value := range loose {
		trimmed := strings.TrimSpace(key)
		// Don't let a padded duplicate clobber a canonical key.
		if _, exists := clean[trimmed]; exists && trimmed != key {
			continue
		}
		clean[trimmed] = value
	}

	cleaned, err := json.Marshal(clean)
	if err != nil {
		return types.AskResponse{}, fmt.Errorf("failed to re-encode gateway response: %w", err)
	}

	var out types.AskResponse
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return types.AskResponse{}, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if out.Message == "" {
		out.Message = out.Explanation
	}
	out.Explanation = ""
	if out.Data == nil {
		out.Data = []types.ResultItem{}
	}
	if out.Suggestions == nil {
		out.Suggestions = []types.ResultItem{}
	}
	return out, nil
}
