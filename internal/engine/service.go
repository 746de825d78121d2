package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

// DefaultCharacterName is used when onboarding doesn't supply one.
const DefaultCharacterName = "Kaelan Dawnblade"

// DefaultJourneyDays is the stock journey length (10 weeks).
const DefaultJourneyDays = 70

// Service is the storage-backed facade over the progression ledger: every
// mutation loads the log, applies a pure transform, and persists the result
// strictly after the transform succeeds.
type Service struct {
	db    *sql.DB
	store *storage.Store
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, store: storage.NewStore(db)}
}

func (s *Service) Store() *storage.Store { return s.store }

// DefaultSettings returns the stock journey configuration starting today.
func DefaultSettings(today time.Time) storage.Settings {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return storage.Settings{
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, DefaultJourneyDays),
		CharacterName: DefaultCharacterName,
	}
}

// Onboarded reports whether onboarding has completed.
func (s *Service) Onboarded(ctx context.Context) (bool, error) {
	return s.store.Onboarded(ctx)
}

// CompleteOnboarding initializes the journey: it persists the settings
// (marking them initialized), an empty progress log, and the onboarded
// flag. It is the single entry point that starts a journey.
func (s *Service) CompleteOnboarding(ctx context.Context, st storage.Settings) error {
	if st.CharacterName == "" {
		st.CharacterName = DefaultCharacterName
	}
	st.Initialized = true
	if err := s.store.SaveSettings(ctx, &st); err != nil {
		return err
	}
	if err := s.store.SaveGameState(ctx, storage.NewGameState()); err != nil {
		return err
	}
	return s.store.SetOnboarded(ctx, true)
}

// Restart clears all three persisted records, returning the app to its
// pre-onboarding state. Confirmation belongs to the caller; a declined
// confirmation must simply not call this.
func (s *Service) Restart(ctx context.Context) error {
	return s.store.Reset(ctx)
}

func (s *Service) load(ctx context.Context) (*storage.Settings, *storage.GameState, error) {
	st, err := s.store.LoadSettings(ctx)
	if err != nil {
		return nil, nil, err
	}
	if st == nil || !st.Initialized {
		return nil, nil, ErrNotOnboarded
	}
	gs, err := s.store.LoadGameState(ctx)
	if err != nil {
		return nil, nil, err
	}
	if gs == nil {
		gs = storage.NewGameState()
	}
	return st, gs, nil
}

func (s *Service) apply(ctx context.Context, res *MutationResult, err error) (*MutationResult, error) {
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveGameState(ctx, res.State); err != nil {
		return nil, err
	}
	return res, nil
}

// ToggleBlock flips a time-block completion for the given day.
func (s *Service) ToggleBlock(ctx context.Context, day string, blockID int) (*MutationResult, error) {
	st, gs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := ToggleBlock(st, gs, day, blockID)
	return s.apply(ctx, res, err)
}

// ToggleWeekendTask flips a weekend-task completion for the given day.
func (s *Service) ToggleWeekendTask(ctx context.Context, day string, taskID int) (*MutationResult, error) {
	_, gs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := ToggleWeekendTask(gs, day, taskID)
	return s.apply(ctx, res, err)
}

// SaveJournalEntry stores the day's journal entry.
func (s *Service) SaveJournalEntry(ctx context.Context, day string, text string) (*MutationResult, error) {
	_, gs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := SaveJournalEntry(gs, day, text)
	return s.apply(ctx, res, err)
}

// SetChallengeCompletion marks a weekly challenge done or not done.
func (s *Service) SetChallengeCompletion(ctx context.Context, week, index int, completed bool) (*MutationResult, error) {
	_, gs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := SetChallengeCompletion(gs, week, index, completed)
	return s.apply(ctx, res, err)
}

// ResetDay clears the given day's progress.
func (s *Service) ResetDay(ctx context.Context, day string) (*MutationResult, error) {
	st, gs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := ResetDay(st, gs, day)
	return s.apply(ctx, res, err)
}

// Snapshot bundles everything a read surface needs for one render.
type Snapshot struct {
	Settings *storage.Settings
	State    *storage.GameState

	Week          int
	Progress      float64
	Stats         Stats
	Title         string
	CurrentStreak int
	LongestStreak int
	Achievements  []Achievement
}

// Snapshot derives the full read model for the supplied today.
func (s *Service) Snapshot(ctx context.Context, today time.Time) (*Snapshot, error) {
	st, gs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	stats := DeriveStats(st, gs, today)
	current, longest := Streaks(ActiveDays(gs), today)
	checker := NewAchievementChecker(st, gs, stats, today)
	return &Snapshot{
		Settings:      st,
		State:         gs,
		Week:          CurrentWeek(st, today),
		Progress:      ProgressPercent(st, today),
		Stats:         stats,
		Title:         CharacterTitle(gs.Level(), stats),
		CurrentStreak: current,
		LongestStreak: longest,
		Achievements:  checker.GetAchievements(),
	}, nil
}
