package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

func TestToggleBlockAwardsAndRefunds(t *testing.T) {
	st := testSettings("2024-01-08")
	gs := storage.NewGameState()

	res, err := ToggleBlock(st, gs, "2024-01-10", 1) // Exercise, 15 XP
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !res.Applied || !res.Completed {
		t.Fatalf("toggle on: Applied=%v Completed=%v", res.Applied, res.Completed)
	}
	if res.XPDelta != 15 || res.State.Experience != 15 {
		t.Fatalf("toggle on: XPDelta=%d Experience=%d, want 15", res.XPDelta, res.State.Experience)
	}
	if gs.Experience != 0 || len(gs.CompletedBlocks) != 0 {
		t.Fatal("toggle mutated its input state")
	}

	res2, err := ToggleBlock(st, res.State, "2024-01-10", 1)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if res2.Completed {
		t.Fatal("toggle off reported Completed")
	}
	if res2.XPDelta != -15 {
		t.Fatalf("toggle off: XPDelta=%d, want -15", res2.XPDelta)
	}
	if !reflect.DeepEqual(res2.State, gs) {
		t.Fatalf("toggle on+off did not restore the original state: %+v", res2.State)
	}
}

func TestToggleBlockUnknownID(t *testing.T) {
	st := testSettings("2024-01-08")
	_, err := ToggleBlock(st, storage.NewGameState(), "2024-01-10", 99)
	var ube UnknownBlockError
	if !errors.As(err, &ube) || ube.ID != 99 {
		t.Fatalf("err = %v, want UnknownBlockError{99}", err)
	}
}

func TestToggleBlockCustomTimetable(t *testing.T) {
	st := testSettings("2024-01-08")
	st.CustomTimeBlocks = []storage.TimeBlock{
		{ID: 1, Time: "08:00 - 09:00", Activity: "Deep Work", Category: storage.CategoryIndividual},
	}
	gs := storage.NewGameState()

	res, err := ToggleBlock(st, gs, "2024-01-10", 1)
	if err != nil {
		t.Fatalf("toggle custom block: %v", err)
	}
	if res.XPDelta != DefaultActivityXP {
		t.Fatalf("unlisted activity XPDelta = %d, want %d", res.XPDelta, DefaultActivityXP)
	}
	// Stock ids beyond the custom catalog must not resolve.
	if _, err := ToggleBlock(st, gs, "2024-01-10", 2); err == nil {
		t.Fatal("stock id accepted against a custom timetable")
	}
}

func TestToggleBlockXPFloorsAtZero(t *testing.T) {
	st := testSettings("2024-01-08")
	gs := storage.NewGameState()
	gs.CompletedBlocks["2024-01-10"] = []int{1} // completed, but 0 XP banked

	res, err := ToggleBlock(st, gs, "2024-01-10", 1)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if res.State.Experience != 0 {
		t.Fatalf("Experience = %d, want floor at 0", res.State.Experience)
	}
	if _, ok := res.State.CompletedBlocks["2024-01-10"]; ok {
		t.Fatal("empty day set was retained")
	}
}

func TestToggleWeekendTask(t *testing.T) {
	gs := storage.NewGameState()

	res, err := ToggleWeekendTask(gs, "2024-01-13", 25) // Saturday, Templar Meditation
	if err != nil {
		t.Fatalf("toggle weekend task: %v", err)
	}
	if !res.Applied || !res.Completed || res.XPDelta != 15 {
		t.Fatalf("toggle weekend task: Applied=%v Completed=%v XPDelta=%d", res.Applied, res.Completed, res.XPDelta)
	}

	_, err = ToggleWeekendTask(gs, "2024-01-13", 999)
	var ute UnknownTaskError
	if !errors.As(err, &ute) {
		t.Fatalf("err = %v, want UnknownTaskError", err)
	}
}

func TestToggleWeekendTaskOnWeekdayIsNoOp(t *testing.T) {
	gs := storage.NewGameState()
	gs.Experience = 40

	res, err := ToggleWeekendTask(gs, "2024-01-10", 25) // Wednesday
	if err != nil {
		t.Fatalf("weekday toggle: %v", err)
	}
	if res.Applied {
		t.Fatal("weekday toggle reported Applied")
	}
	if !reflect.DeepEqual(res.State, gs) {
		t.Fatalf("weekday toggle changed state: %+v", res.State)
	}
}

func TestSaveJournalEntry(t *testing.T) {
	gs := storage.NewGameState()

	res, err := SaveJournalEntry(gs, "2024-01-10", "First entry.")
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if !res.Applied || res.XPDelta != JournalEntryXP {
		t.Fatalf("first save: Applied=%v XPDelta=%d, want %d", res.Applied, res.XPDelta, JournalEntryXP)
	}

	res2, err := SaveJournalEntry(res.State, "2024-01-10", "Rewritten entry.")
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if res2.XPDelta != 0 {
		t.Fatalf("rewrite granted XP: %d", res2.XPDelta)
	}
	if got := res2.State.JournalEntries["2024-01-10"]; got != "Rewritten entry." {
		t.Fatalf("entry = %q, want the rewrite", got)
	}
}

func TestSaveJournalEntryBlankIsNoOp(t *testing.T) {
	gs := storage.NewGameState()
	res, err := SaveJournalEntry(gs, "2024-01-10", "   \n\t")
	if err != nil {
		t.Fatalf("blank save: %v", err)
	}
	if res.Applied {
		t.Fatal("blank save reported Applied")
	}
	if !reflect.DeepEqual(res.State, gs) {
		t.Fatal("blank save changed state")
	}
}

func TestChallengeCompletionWeekBonus(t *testing.T) {
	gs := storage.NewGameState()
	quest, _ := QuestForWeek(2)

	state := gs
	var last *MutationResult
	for i := range quest.Challenges {
		res, err := SetChallengeCompletion(state, 2, i, true)
		if err != nil {
			t.Fatalf("challenge %d: %v", i, err)
		}
		state = res.State
		last = res
	}

	if !last.WeekCompleted {
		t.Fatal("final challenge did not complete the week")
	}
	wantXP := len(quest.Challenges)*ChallengeXP + WeekCompletionXP
	if state.Experience != wantXP {
		t.Fatalf("Experience = %d, want %d", state.Experience, wantXP)
	}
	if state.LastCompletedWeek != 2 {
		t.Fatalf("LastCompletedWeek = %d, want 2", state.LastCompletedWeek)
	}
	if !last.LevelUp || last.LevelAfter != state.Level() {
		t.Fatalf("level transition: LevelUp=%v LevelAfter=%d Level()=%d", last.LevelUp, last.LevelAfter, state.Level())
	}

	// The ratchet is one-way: undoing a challenge refunds its XP but keeps
	// the milestone, and re-completing does not pay the bonus again.
	undo, err := SetChallengeCompletion(state, 2, 0, false)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if undo.XPDelta != -ChallengeXP {
		t.Fatalf("undo XPDelta = %d, want %d", undo.XPDelta, -ChallengeXP)
	}
	if undo.State.LastCompletedWeek != 2 {
		t.Fatalf("undo lowered LastCompletedWeek to %d", undo.State.LastCompletedWeek)
	}

	redo, err := SetChallengeCompletion(undo.State, 2, 0, true)
	if err != nil {
		t.Fatalf("redo: %v", err)
	}
	if redo.XPDelta != ChallengeXP {
		t.Fatalf("redo XPDelta = %d, want %d (no second bonus)", redo.XPDelta, ChallengeXP)
	}
	if redo.WeekCompleted {
		t.Fatal("redo re-reported WeekCompleted")
	}
}

func TestChallengeRedundantUpdate(t *testing.T) {
	gs := storage.NewGameState()
	res, err := SetChallengeCompletion(gs, 1, 0, true)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	again, err := SetChallengeCompletion(res.State, 1, 0, true)
	if err != nil {
		t.Fatalf("redundant complete: %v", err)
	}
	if again.Applied || again.XPDelta != 0 {
		t.Fatalf("redundant complete: Applied=%v XPDelta=%d", again.Applied, again.XPDelta)
	}
}

func TestChallengeRange(t *testing.T) {
	gs := storage.NewGameState()
	for _, tc := range []struct{ week, index int }{
		{0, 0}, {11, 0}, {1, -1}, {1, 7},
	} {
		_, err := SetChallengeCompletion(gs, tc.week, tc.index, true)
		var cre ChallengeRangeError
		if !errors.As(err, &cre) {
			t.Errorf("week=%d index=%d: err = %v, want ChallengeRangeError", tc.week, tc.index, err)
		}
	}
}

func TestResetDay(t *testing.T) {
	st := testSettings("2024-01-08")
	gs := storage.NewGameState()

	state := gs
	for _, id := range []int{1, 3} { // Exercise 15 + Intellect 20
		res, err := ToggleBlock(st, state, "2024-01-10", id)
		if err != nil {
			t.Fatalf("toggle %d: %v", id, err)
		}
		state = res.State
	}
	res, err := SaveJournalEntry(state, "2024-01-10", "Entry.")
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	state = res.State
	if state.Experience != 15+20+JournalEntryXP {
		t.Fatalf("setup Experience = %d", state.Experience)
	}

	reset, err := ResetDay(st, state, "2024-01-10")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !reset.Applied {
		t.Fatal("reset on a recorded day reported Applied=false")
	}
	if !reflect.DeepEqual(reset.State, gs) {
		t.Fatalf("reset did not restore the empty state: %+v", reset.State)
	}
}

func TestResetDayEmptyIsNoOp(t *testing.T) {
	st := testSettings("2024-01-08")
	gs := storage.NewGameState()
	gs.Experience = 30

	res, err := ResetDay(st, gs, "2024-01-10")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if res.Applied {
		t.Fatal("reset on an empty day reported Applied")
	}
	if !reflect.DeepEqual(res.State, gs) {
		t.Fatal("reset on an empty day changed state")
	}
}

func TestResetDayRetiredIDsCarryNoRefund(t *testing.T) {
	st := testSettings("2024-01-08")
	gs := storage.NewGameState()
	gs.Experience = 50
	gs.CompletedBlocks["2024-01-10"] = []int{99} // from a retired timetable

	res, err := ResetDay(st, gs, "2024-01-10")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if res.State.Experience != 50 {
		t.Fatalf("Experience = %d, want 50 (no refund for unknown id)", res.State.Experience)
	}
	if len(res.State.CompletedBlocks) != 0 {
		t.Fatal("retired id survived the reset")
	}
}

func TestResetDayLeavesChallengesAlone(t *testing.T) {
	st := testSettings("2024-01-08")
	gs := storage.NewGameState()
	gs.ChallengesCompleted[1] = []int{0, 1}
	gs.JournalEntries["2024-01-10"] = "Entry."
	gs.Experience = JournalEntryXP + 2*ChallengeXP

	res, err := ResetDay(st, gs, "2024-01-10")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !reflect.DeepEqual(res.State.ChallengesCompleted, gs.ChallengesCompleted) {
		t.Fatal("reset touched challenge completions")
	}
	if res.State.Experience != 2*ChallengeXP {
		t.Fatalf("Experience = %d, want %d", res.State.Experience, 2*ChallengeXP)
	}
}
