package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

// Stats holds the four derived virtues, each clamped to 1..10. They are
// recomputed from the full progress log on every call; nothing here is
// cached or incrementally maintained.
type Stats struct {
	MentalClarity         int
	Consistency           int
	EmotionalIntelligence int
	Interdependence       int
}

// challengeRef addresses one challenge by week number and index. These
// addresses are load-bearing constants of the scoring model.
type challengeRef struct {
	week  int
	index int
}

const (
	// Break-category block ids and their expected slots per active day.
	breakSlotsPerDay = 3
	// The weekend meditation task counts double toward the break ratio.
	meditationTaskID = 25
)

var breakBlockIDs = map[int]bool{4: true, 6: true, 12: true}

// Team-slot ids for the emotional-intelligence ratio (4 slots per day).
var (
	teamBlockIDs       = map[int]bool{10: true, 11: true, 19: true, 20: true}
	teamWeekendTaskIDs = map[int]bool{22: true, 26: true}
)

// Per-virtue challenge bonuses.
var (
	clarityChallenges     = []challengeRef{{1, 0}, {4, 0}, {6, 0}}
	consistencyChallenges = []struct {
		ref   challengeRef
		bonus float64
	}{
		{challengeRef{1, 1}, 0.3},
		{challengeRef{3, 3}, 0.5},
	}
	empathyChallenges  = []challengeRef{{1, 2}, {2, 1}, {4, 2}, {5, 2}}
	interdepChallenges = []challengeRef{{2, 3}, {4, 0}, {4, 1}, {6, 2}}
)

var emotionalKeywords = []string{
	"feel", "feeling", "felt", "emotion", "happy", "sad", "angry", "frustrated",
	"excited", "anxious", "worried", "proud", "disappointed", "satisfied", "grateful",
	"challenge", "struggle", "overcame", "learned", "realized", "understand",
	"team", "together", "helped", "supported", "listened", "shared",
}

var collaborationKeywords = []string{
	"team", "together", "collaborate", "help", "assist", "support", "delegate",
	"ask", "share", "feedback", "advice", "others", "group", "member",
}

// ActiveDays returns the sorted set of days carrying any recorded activity:
// a completed block, a completed weekend task, or a journal entry.
func ActiveDays(gs *storage.GameState) []string {
	set := map[string]bool{}
	for day, ids := range gs.CompletedBlocks {
		if len(ids) > 0 {
			set[day] = true
		}
	}
	for day, ids := range gs.CompletedWeekendTasks {
		if len(ids) > 0 {
			set[day] = true
		}
	}
	for day := range gs.JournalEntries {
		set[day] = true
	}
	days := make([]string, 0, len(set))
	for day := range set {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Streaks computes the streak ending today and the longest streak overall
// for a sorted list of active days. Only the longest feeds scoring; the
// current streak is surfaced for display.
func Streaks(days []string, today time.Time) (current, longest int) {
	set := make(map[string]bool, len(days))
	for _, d := range days {
		set[d] = true
	}

	check := today
	for set[FormatDay(check)] {
		current++
		check = check.AddDate(0, 0, -1)
	}

	if len(days) == 0 {
		return current, 0
	}
	streak := 1
	for i := 1; i < len(days); i++ {
		prev, err1 := ParseDay(days[i-1])
		curr, err2 := ParseDay(days[i])
		if err1 == nil && err2 == nil && daysBetween(prev, curr) == 1 {
			streak++
			continue
		}
		if streak > longest {
			longest = streak
		}
		streak = 1
	}
	if streak > longest {
		longest = streak
	}
	return current, longest
}

// DeriveStats computes the four virtues from the progress log. The caller
// supplies today; the engine never reads the system clock.
func DeriveStats(st *storage.Settings, gs *storage.GameState, today time.Time) Stats {
	c := statCalc{st: st, gs: gs, today: today, activeDays: ActiveDays(gs)}
	return Stats{
		MentalClarity:         c.mentalClarity(),
		Consistency:           c.consistency(),
		EmotionalIntelligence: c.emotionalIntelligence(),
		Interdependence:       c.interdependence(),
	}
}

type statCalc struct {
	st         *storage.Settings
	gs         *storage.GameState
	today      time.Time
	activeDays []string
}

func (c statCalc) done(ref challengeRef) bool {
	return containsInt(c.gs.ChallengesCompleted[ref.week], ref.index)
}

// recentActiveDay returns the i-th most recent active day (0 = latest).
func (c statCalc) recentActiveDay(i int) string {
	return c.activeDays[len(c.activeDays)-1-i]
}

// mentalClarity rewards recent journaling (with length bonuses), completed
// break blocks against expected break slots, and three specific challenges.
func (c statCalc) mentalClarity() int {
	score := 1.0
	const recentDays = 7

	journalCount := 0
	for i := 0; i < recentDays; i++ {
		day := FormatDay(c.today.AddDate(0, 0, -i))
		entry, ok := c.gs.JournalEntries[day]
		if !ok {
			continue
		}
		journalCount++
		if len(entry) > 100 {
			score += 0.2
		}
		if len(entry) > 250 {
			score += 0.3
		}
	}
	score += float64(journalCount) / recentDays * 3

	breakBlocks := 0
	totalBreakBlocks := 0
	for day, ids := range c.gs.CompletedBlocks {
		for _, id := range ids {
			if breakBlockIDs[id] {
				breakBlocks++
			}
		}
		if d, err := ParseDay(day); err == nil && daysBetween(d, c.today) < recentDays {
			totalBreakBlocks += breakSlotsPerDay
		}
	}
	for _, ids := range c.gs.CompletedWeekendTasks {
		for _, id := range ids {
			if id == meditationTaskID {
				breakBlocks += 2
			}
		}
	}
	if totalBreakBlocks > 0 {
		score += float64(breakBlocks) / float64(totalBreakBlocks) * 4
	}

	for _, ref := range clarityChallenges {
		if c.done(ref) {
			score += 0.5
		}
	}
	return clampScore(score)
}

// consistency rewards the longest active-day streak, the completion ratio
// over the most recent active days, specific challenges, and week progress.
func (c statCalc) consistency() int {
	score := 1.0

	_, longest := Streaks(c.activeDays, c.today)
	streakBonus := float64(longest) / 3
	if streakBonus > 4 {
		streakBonus = 4
	}
	score += streakBonus

	recent := len(c.activeDays)
	if recent > 10 {
		recent = 10
	}
	weekdayTotal := len(ActiveTimeBlocks(c.st))
	weekendTotal := len(WeekendTasks)
	totalSlots := 0
	completed := 0
	for i := 0; i < recent; i++ {
		day := c.recentActiveDay(i)
		d, err := ParseDay(day)
		if err != nil {
			continue
		}
		if IsWeekend(d) {
			totalSlots += weekendTotal
			completed += len(c.gs.CompletedWeekendTasks[day])
		} else {
			totalSlots += weekdayTotal
			completed += len(c.gs.CompletedBlocks[day])
		}
	}
	if totalSlots > 0 {
		score += float64(completed) / float64(totalSlots) * 4
	}

	for _, ch := range consistencyChallenges {
		if c.done(ch.ref) {
			score += ch.bonus
		}
	}
	if c.gs.LastCompletedWeek >= 3 {
		score += 0.5
	}
	if c.gs.LastCompletedWeek >= 5 {
		score += 0.7
	}
	return clampScore(score)
}

// emotionalIntelligence rewards emotional vocabulary across all journal
// entries, team-slot completions over the recent active days, specific
// challenges, and week progress.
func (c statCalc) emotionalIntelligence() int {
	score := 1.0

	if total := len(c.gs.JournalEntries); total > 0 {
		matches := 0
		for _, entry := range c.gs.JournalEntries {
			if containsAnyKeyword(entry, emotionalKeywords) {
				matches++
			}
		}
		score += float64(matches) / float64(total) * 3
	}

	days := len(c.activeDays)
	if days > 14 {
		days = 14
	}
	teamSlots := 0
	for i := 0; i < days; i++ {
		day := c.recentActiveDay(i)
		for _, id := range c.gs.CompletedBlocks[day] {
			if teamBlockIDs[id] {
				teamSlots++
			}
		}
		for _, id := range c.gs.CompletedWeekendTasks[day] {
			if teamWeekendTaskIDs[id] {
				teamSlots++
			}
		}
	}
	if possible := days * 4; possible > 0 {
		score += float64(teamSlots) / float64(possible) * 3
	}

	for _, ref := range empathyChallenges {
		if c.done(ref) {
			score += 0.5
		}
	}
	if c.gs.LastCompletedWeek >= 4 {
		score += 0.5
	}
	if c.gs.LastCompletedWeek >= 7 {
		score += 0.5
	}
	return clampScore(score)
}

// interdependence rewards delegation/feedback challenges, a healthy balance
// of team vs individual work (ideal: 30% team), week progression, and
// collaboration vocabulary in the journal.
func (c statCalc) interdependence() int {
	score := 1.0

	for _, ref := range interdepChallenges {
		if c.done(ref) {
			score += 0.7
		}
	}

	days := len(c.activeDays)
	if days > 10 {
		days = 10
	}
	blocks := ActiveTimeBlocks(c.st)
	individual := 0
	team := 0
	for i := 0; i < days; i++ {
		day := c.recentActiveDay(i)
		for _, id := range c.gs.CompletedBlocks[day] {
			if b, ok := BlockByID(blocks, id); ok {
				switch b.Category {
				case storage.CategoryIndividual:
					individual++
				case storage.CategoryTeam:
					team++
				}
			}
		}
		for _, id := range c.gs.CompletedWeekendTasks[day] {
			if t, ok := WeekendTaskByID(id); ok {
				switch t.Category {
				case storage.CategoryIndividual:
					individual++
				case storage.CategoryTeam:
					team++
				}
			}
		}
	}
	if total := individual + team; total > 0 {
		ratio := float64(team) / float64(total)
		// Triangular reward: peaks at the ideal ratio, zero at 0.0 and 0.6.
		balance := 3 - math.Abs(0.3-ratio)*10
		if balance > 0 {
			score += balance
		}
	}

	weekBonus := float64(c.gs.LastCompletedWeek) * 0.3
	if weekBonus > 3 {
		weekBonus = 3
	}
	score += weekBonus

	if total := len(c.gs.JournalEntries); total > 0 {
		matches := 0
		for _, entry := range c.gs.JournalEntries {
			if containsAnyKeyword(entry, collaborationKeywords) {
				matches++
			}
		}
		score += float64(matches) / float64(total) * 2
	}
	return clampScore(score)
}

// containsAnyKeyword does a case-insensitive substring scan, stopping at
// the first match.
func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clampScore(score float64) int {
	r := int(math.Round(score))
	if r < 1 {
		return 1
	}
	if r > 10 {
		return 10
	}
	return r
}
