package engine

import (
	"testing"

	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

func TestCatalogShape(t *testing.T) {
	if got := len(DefaultTimeBlocks); got != 21 {
		t.Errorf("DefaultTimeBlocks = %d entries, want 21", got)
	}
	if got := len(WeekendTasks); got != 8 {
		t.Errorf("WeekendTasks = %d entries, want 8", got)
	}
	if got := len(WeeklyQuests); got != TotalWeeks {
		t.Fatalf("WeeklyQuests = %d entries, want %d", got, TotalWeeks)
	}
	for i, q := range WeeklyQuests {
		if q.Week != i+1 {
			t.Errorf("quest %d carries week %d", i, q.Week)
		}
		if len(q.Challenges) != 7 {
			t.Errorf("week %d has %d challenges, want 7", q.Week, len(q.Challenges))
		}
	}
}

// Block and weekend-task ids share one namespace; a collision would let a
// day-reset refund the wrong XP.
func TestCatalogIDsAreDisjoint(t *testing.T) {
	seen := map[int]bool{}
	for _, b := range DefaultTimeBlocks {
		if seen[b.ID] {
			t.Errorf("duplicate id %d", b.ID)
		}
		seen[b.ID] = true
	}
	for _, w := range WeekendTasks {
		if seen[w.ID] {
			t.Errorf("weekend task id %d collides with a block", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestXPForActivity(t *testing.T) {
	if got := XPForActivity("Major Project"); got != 25 {
		t.Errorf("Major Project = %d XP, want 25", got)
	}
	if got := XPForActivity("Something Unlisted"); got != DefaultActivityXP {
		t.Errorf("unlisted activity = %d XP, want %d", got, DefaultActivityXP)
	}
}

func TestActiveTimeBlocks(t *testing.T) {
	if got := ActiveTimeBlocks(nil); len(got) != len(DefaultTimeBlocks) {
		t.Errorf("nil settings: %d blocks, want the stock schedule", len(got))
	}
	st := &storage.Settings{CustomTimeBlocks: []storage.TimeBlock{{ID: 1, Activity: "Deep Work"}}}
	if got := ActiveTimeBlocks(st); len(got) != 1 || got[0].Activity != "Deep Work" {
		t.Errorf("custom timetable not honored: %+v", got)
	}
}

func TestQuestForWeekBounds(t *testing.T) {
	if _, ok := QuestForWeek(0); ok {
		t.Error("week 0 resolved")
	}
	if _, ok := QuestForWeek(TotalWeeks + 1); ok {
		t.Error("week 11 resolved")
	}
	if q, ok := QuestForWeek(1); !ok || q.Week != 1 {
		t.Errorf("week 1: ok=%v q=%+v", ok, q)
	}
}
