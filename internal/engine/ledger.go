package engine

import (
	"sort"
	"strings"

	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

// XP constants for non-activity awards.
const (
	JournalEntryXP   = 20
	ChallengeXP      = 25
	WeekCompletionXP = 100
)

// MutationResult reports the outcome of one ledger operation. State is a
// fresh value; the input state is never modified.
type MutationResult struct {
	State *storage.GameState

	// Applied is false for defined no-ops (weekend task on a weekday,
	// empty journal text, redundant challenge updates).
	Applied bool

	// Completed reports membership after a toggle.
	Completed bool

	XPDelta     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool

	// WeekCompleted is set when a challenge update completed its week for
	// the first time and the one-time bonus was granted.
	WeekCompleted bool
}

func newResult(before, after *storage.GameState) *MutationResult {
	return &MutationResult{
		State:       after,
		XPDelta:     after.Experience - before.Experience,
		LevelBefore: before.Level(),
		LevelAfter:  after.Level(),
		LevelUp:     after.Level() > before.Level(),
	}
}

func containsInt(set []int, v int) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

func removeInt(set []int, v int) []int {
	out := set[:0]
	for _, x := range set {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// setDaySet writes a per-day id set back, deleting the key when empty so
// empty sets are never retained.
func setDaySet(m map[string][]int, day string, set []int) {
	if len(set) == 0 {
		delete(m, day)
		return
	}
	sort.Ints(set)
	m[day] = set
}

// ToggleBlock flips completion of a weekday time block on the given day.
// Insertion awards the activity's XP; removal takes it back, floored at 0.
// Two toggles of the same id restore the original state: checkbox
// semantics, deliberately not idempotent.
func ToggleBlock(st *storage.Settings, gs *storage.GameState, day string, blockID int) (*MutationResult, error) {
	if _, err := ParseDay(day); err != nil {
		return nil, err
	}
	block, ok := BlockByID(ActiveTimeBlocks(st), blockID)
	if !ok {
		return nil, UnknownBlockError{ID: blockID}
	}

	next := gs.Clone()
	set := next.CompletedBlocks[day]
	xp := XPForActivity(block.Activity)

	completed := !containsInt(set, blockID)
	if completed {
		set = append(set, blockID)
		next.Experience += xp
	} else {
		set = removeInt(set, blockID)
		next.Experience -= xp
		if next.Experience < 0 {
			next.Experience = 0
		}
	}
	setDaySet(next.CompletedBlocks, day, set)

	res := newResult(gs, next)
	res.Applied = true
	res.Completed = completed
	return res, nil
}

// ToggleWeekendTask is ToggleBlock for the weekend catalog. On a weekday it
// is a no-op that leaves the state deep-equal to the input.
func ToggleWeekendTask(gs *storage.GameState, day string, taskID int) (*MutationResult, error) {
	d, err := ParseDay(day)
	if err != nil {
		return nil, err
	}
	if !IsWeekend(d) {
		res := newResult(gs, gs.Clone())
		return res, nil
	}
	task, ok := WeekendTaskByID(taskID)
	if !ok {
		return nil, UnknownTaskError{ID: taskID}
	}

	next := gs.Clone()
	set := next.CompletedWeekendTasks[day]
	xp := XPForActivity(task.Activity)

	completed := !containsInt(set, taskID)
	if completed {
		set = append(set, taskID)
		next.Experience += xp
	} else {
		set = removeInt(set, taskID)
		next.Experience -= xp
		if next.Experience < 0 {
			next.Experience = 0
		}
	}
	setDaySet(next.CompletedWeekendTasks, day, set)

	res := newResult(gs, next)
	res.Applied = true
	res.Completed = completed
	return res, nil
}

// SaveJournalEntry stores the day's entry (one per day, overwriting). Only
// the first entry for a day earns XP; rewrites are free. Blank text is a
// no-op.
func SaveJournalEntry(gs *storage.GameState, day string, text string) (*MutationResult, error) {
	if _, err := ParseDay(day); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return newResult(gs, gs.Clone()), nil
	}

	next := gs.Clone()
	_, exists := next.JournalEntries[day]
	next.JournalEntries[day] = text
	if !exists {
		next.Experience += JournalEntryXP
	}

	res := newResult(gs, next)
	res.Applied = true
	return res, nil
}

// SetChallengeCompletion marks a weekly challenge done or not done.
// Completing the week's full challenge set for the first time (while
// week > lastCompletedWeek) grants a one-time bonus and ratchets
// lastCompletedWeek up. The ratchet is one-way: un-completing a challenge
// later never returns the bonus or lowers lastCompletedWeek.
func SetChallengeCompletion(gs *storage.GameState, week, index int, completed bool) (*MutationResult, error) {
	quest, ok := QuestForWeek(week)
	if !ok {
		return nil, ChallengeRangeError{Week: week, Index: index}
	}
	if index < 0 || index >= len(quest.Challenges) {
		return nil, ChallengeRangeError{Week: week, Index: index}
	}

	next := gs.Clone()
	set := next.ChallengesCompleted[week]
	has := containsInt(set, index)

	applied := false
	xpChange := 0
	switch {
	case completed && !has:
		set = append(set, index)
		sort.Ints(set)
		next.ChallengesCompleted[week] = set
		xpChange = ChallengeXP
		applied = true
	case !completed && has:
		set = removeInt(set, index)
		if len(set) == 0 {
			delete(next.ChallengesCompleted, week)
		} else {
			next.ChallengesCompleted[week] = set
		}
		xpChange = -ChallengeXP
		applied = true
	}

	weekCompleted := false
	bonus := 0
	if len(next.ChallengesCompleted[week]) == len(quest.Challenges) && week > next.LastCompletedWeek {
		bonus = WeekCompletionXP
		next.LastCompletedWeek = week
		weekCompleted = true
	}

	next.Experience += xpChange + bonus
	if next.Experience < 0 {
		next.Experience = 0
	}

	res := newResult(gs, next)
	res.Applied = applied
	res.Completed = containsInt(next.ChallengesCompleted[week], index)
	res.WeekCompleted = weekCompleted
	return res, nil
}

// ResetDay clears the day's blocks, weekend tasks, and journal entry,
// refunding exactly the XP they earned, floored at 0. Challenges are
// week-scoped and untouched.
func ResetDay(st *storage.Settings, gs *storage.GameState, day string) (*MutationResult, error) {
	if _, err := ParseDay(day); err != nil {
		return nil, err
	}

	next := gs.Clone()
	refund := 0
	_, hadJournal := next.JournalEntries[day]
	touched := len(next.CompletedBlocks[day]) > 0 || len(next.CompletedWeekendTasks[day]) > 0 || hadJournal

	blocks := ActiveTimeBlocks(st)
	for _, id := range next.CompletedBlocks[day] {
		// Ids from a retired timetable no longer resolve; they carry no refund.
		if b, ok := BlockByID(blocks, id); ok {
			refund += XPForActivity(b.Activity)
		}
	}
	for _, id := range next.CompletedWeekendTasks[day] {
		if t, ok := WeekendTaskByID(id); ok {
			refund += XPForActivity(t.Activity)
		}
	}
	if hadJournal {
		refund += JournalEntryXP
	}

	delete(next.CompletedBlocks, day)
	delete(next.CompletedWeekendTasks, day)
	delete(next.JournalEntries, day)

	next.Experience -= refund
	if next.Experience < 0 {
		next.Experience = 0
	}

	res := newResult(gs, next)
	res.Applied = touched
	return res, nil
}
