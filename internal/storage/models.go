package storage

import "time"

// Category classifies schedule blocks and weekend tasks.
type Category string

const (
	CategoryIndividual Category = "individual"
	CategoryTeam       Category = "team"
	CategoryMental     Category = "mental"
	CategoryPhysical   Category = "physical"
	CategorySelfCare   Category = "selfCare"
	CategoryOther      Category = "other"
)

// TimeBlock is one weekday schedule slot. The ID is stable and defines
// display order; a custom timetable replaces the default set wholesale
// but keeps the same shape.
type TimeBlock struct {
	ID       int      `json:"id"`
	Time     string   `json:"time"`
	Activity string   `json:"activity"`
	Category Category `json:"category"`
}

// Settings is the journey configuration captured during onboarding.
// It is immutable once the journey begins; replacing it means restarting.
type Settings struct {
	StartDate        time.Time   `json:"startDate"`
	EndDate          time.Time   `json:"endDate"`
	CharacterName    string      `json:"characterName"`
	CustomTimeBlocks []TimeBlock `json:"customTimeBlocks,omitempty"`
	Initialized      bool        `json:"initialized"`
}

// GameState is the progress log: the sole unit of mutable persistence.
// Map keys are ISO dates (YYYY-MM-DD); challenge keys are week numbers.
type GameState struct {
	Experience            int               `json:"experience"`
	CompletedBlocks       map[string][]int  `json:"completedBlocks"`
	CompletedWeekendTasks map[string][]int  `json:"completedWeekendTasks"`
	JournalEntries        map[string]string `json:"journalEntries"`
	ChallengesCompleted   map[int][]int     `json:"challengesCompleted"`
	LastCompletedWeek     int               `json:"lastCompletedWeek"`
}

func NewGameState() *GameState {
	return &GameState{
		CompletedBlocks:       map[string][]int{},
		CompletedWeekendTasks: map[string][]int{},
		JournalEntries:        map[string]string{},
		ChallengesCompleted:   map[int][]int{},
	}
}

// Level is derived from experience, never stored, so the two can't drift.
func (s *GameState) Level() int {
	return s.Experience/100 + 1
}

// Clone returns a deep copy. Ledger operations transform a clone so the
// caller observes either the old state or the new one, never a partial mix.
func (s *GameState) Clone() *GameState {
	out := &GameState{
		Experience:            s.Experience,
		CompletedBlocks:       cloneIntSets(s.CompletedBlocks),
		CompletedWeekendTasks: cloneIntSets(s.CompletedWeekendTasks),
		JournalEntries:        make(map[string]string, len(s.JournalEntries)),
		ChallengesCompleted:   make(map[int][]int, len(s.ChallengesCompleted)),
		LastCompletedWeek:     s.LastCompletedWeek,
	}
	for k, v := range s.JournalEntries {
		out.JournalEntries[k] = v
	}
	for k, v := range s.ChallengesCompleted {
		out.ChallengesCompleted[k] = append([]int(nil), v...)
	}
	return out
}

func cloneIntSets(in map[string][]int) map[string][]int {
	out := make(map[string][]int, len(in))
	for k, v := range in {
		out[k] = append([]int(nil), v...)
	}
	return out
}
