package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

// The three logical records. Everything the app persists lives here.
const (
	keySettings  = "settings"
	keyGameState = "game_state"
	keyOnboarded = "onboarded"
)

// Store reads and writes the three journey records. A missing record is
// reported as (nil, nil); a record that fails to decode is reported as an
// error so the caller can decide how to recover.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("record get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("record put %s: %w", key, err)
	}
	return nil
}

func (s *Store) LoadSettings(ctx context.Context) (*Settings, error) {
	raw, ok, err := s.get(ctx, keySettings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var st Settings
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &st, nil
}

func (s *Store) SaveSettings(ctx context.Context, st *Settings) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.put(ctx, keySettings, string(data))
}

func (s *Store) LoadGameState(ctx context.Context) (*GameState, error) {
	raw, ok, err := s.get(ctx, keyGameState)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var gs GameState
	if err := json.Unmarshal([]byte(raw), &gs); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	// Old saves may carry nil maps.
	if gs.CompletedBlocks == nil {
		gs.CompletedBlocks = map[string][]int{}
	}
	if gs.CompletedWeekendTasks == nil {
		gs.CompletedWeekendTasks = map[string][]int{}
	}
	if gs.JournalEntries == nil {
		gs.JournalEntries = map[string]string{}
	}
	if gs.ChallengesCompleted == nil {
		gs.ChallengesCompleted = map[int][]int{}
	}
	return &gs, nil
}

func (s *Store) SaveGameState(ctx context.Context, gs *GameState) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("encode game state: %w", err)
	}
	return s.put(ctx, keyGameState, string(data))
}

func (s *Store) Onboarded(ctx context.Context) (bool, error) {
	raw, ok, err := s.get(ctx, keyOnboarded)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("decode onboarded: %w", err)
	}
	return v, nil
}

func (s *Store) SetOnboarded(ctx context.Context, v bool) error {
	return s.put(ctx, keyOnboarded, strconv.FormatBool(v))
}

// Reset deletes all three records, returning the store to its
// pre-onboarding state.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key IN (?, ?, ?)`,
		keySettings, keyGameState, keyOnboarded)
	if err != nil {
		return fmt.Errorf("record reset: %w", err)
	}
	return nil
}
