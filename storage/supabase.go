package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/supabase-community/supabase-go"

	"estaty360/chat-assistant/types"
)

// SupabaseStore keeps widget state in a two-column widget_state table, one row
// per storage slot.
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore() (*SupabaseStore, error) {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	if apiURL == "" || apiKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

type stateRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (s *SupabaseStore) Get(key string) (string, bool, error) {
	resp, _, err := s.client.From("widget_state").
		Select("key, value", "", false).
		Eq("key", key).
		Execute()
	if err != nil {
		return "", false, err
	}

	var rows []stateRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return "", false, fmt.Errorf("failed to decode state row: %w", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (s *SupabaseStore) Set(key, value string) error {
	row := stateRow{Key: key, Value: value}
	_, _, err := s.client.From("widget_state").
		Upsert(row, "key", "", "").
		Execute()
	return err
}

func (s *SupabaseStore) Clear(key string) error {
	_, _, err := s.client.From("widget_state").
		Delete("", "").
		Eq("key", key).
		Execute()
	return err
}

// Leads returns a recorder that mirrors captured leads into the back-office
// leads table.
func (s *SupabaseStore) Leads() *SupabaseLeadRecorder {
	return &SupabaseLeadRecorder{client: s.client}
}

type SupabaseLeadRecorder struct {
	client *supabase.Client
}

func (r *SupabaseLeadRecorder) Record(lead types.LeadInfo) error {
	_, _, err := r.client.From("leads").
		Insert(lead, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}
