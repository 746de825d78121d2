package engine

import (
	"time"

	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

// Achievement is a badge definition plus its earned status.
type Achievement struct {
	AchievementDef
	Earned bool
}

// AchievementChecker derives earned status for every badge from the
// progress log. Nothing is stored; badges re-derive on each read like the
// virtues do.
type AchievementChecker struct {
	st    *storage.Settings
	gs    *storage.GameState
	stats Stats
	today time.Time
}

func NewAchievementChecker(st *storage.Settings, gs *storage.GameState, stats Stats, today time.Time) *AchievementChecker {
	return &AchievementChecker{st: st, gs: gs, stats: stats, today: today}
}

// GetAchievements returns all badges with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	out := make([]Achievement, 0, len(Achievements))
	for _, def := range Achievements {
		out = append(out, Achievement{AchievementDef: def, Earned: c.earned(def.ID)})
	}
	return out
}

// CountEarned returns how many badges have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns the total number of badges.
func (c *AchievementChecker) CountTotal() int {
	return len(Achievements)
}

func (c *AchievementChecker) earned(id string) bool {
	switch id {
	case "mindful_arbiter":
		return c.fullBreakWeek()
	case "foundation_builder":
		return c.weekCompletionRate() >= 0.8
	case "shadow_binder":
		return c.challengeDone(3, 0)
	case "unbroken_chain":
		_, longest := Streaks(ActiveDays(c.gs), c.today)
		return longest >= 7
	case "humble_strength":
		return c.challengeDone(5, 0) && c.challengeDone(5, 1)
	case "clear_sight":
		return c.challengeDone(6, 3)
	case "balanced_arbiter":
		return c.stats.MentalClarity >= 6 && c.stats.Consistency >= 6 &&
			c.stats.EmotionalIntelligence >= 6 && c.stats.Interdependence >= 6
	case "wise_judge":
		return c.challengeDone(8, 1)
	case "templar_resolve":
		return c.gs.LastCompletedWeek >= 9
	case "ascended_arbiter":
		return c.gs.LastCompletedWeek >= TotalWeeks
	default:
		return false
	}
}

func (c *AchievementChecker) challengeDone(week, index int) bool {
	return containsInt(c.gs.ChallengesCompleted[week], index)
}

// fullBreakWeek reports whether every weekday in the trailing 7 calendar
// days has all break blocks completed.
func (c *AchievementChecker) fullBreakWeek() bool {
	for i := 0; i < 7; i++ {
		d := c.today.AddDate(0, 0, -i)
		if IsWeekend(d) {
			continue
		}
		set := c.gs.CompletedBlocks[FormatDay(d)]
		for id := range breakBlockIDs {
			if !containsInt(set, id) {
				return false
			}
		}
	}
	return true
}

// weekCompletionRate is the completion ratio over the trailing 7 calendar
// days against the full weekday/weekend slot counts.
func (c *AchievementChecker) weekCompletionRate() float64 {
	weekdayTotal := len(ActiveTimeBlocks(c.st))
	weekendTotal := len(WeekendTasks)
	total := 0
	completed := 0
	for i := 0; i < 7; i++ {
		d := c.today.AddDate(0, 0, -i)
		day := FormatDay(d)
		if IsWeekend(d) {
			total += weekendTotal
			completed += len(c.gs.CompletedWeekendTasks[day])
		} else {
			total += weekdayTotal
			completed += len(c.gs.CompletedBlocks[day])
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}
