package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
)

type boardModel struct {
	ctx   context.Context
	svc   *engine.Service
	today time.Time

	width  int
	height int

	snap *engine.Snapshot

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	snap *engine.Snapshot
	err  error
}

type mutatedMsg struct {
	label string
	res   *engine.MutationResult
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service, today time.Time) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		today:   today,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx, m.today)
		return loadedMsg{snap: snap, err: err}
	}
}

type lineKind int

const (
	lineBlock lineKind = iota
	lineTask
	lineChallenge
)

type boardLine struct {
	kind    lineKind
	section string
	id      int // block/task id
	week    int // challenge address
	index   int
	label   string
	done    bool
}

func (m boardModel) toggleCmd(line boardLine) tea.Cmd {
	day := engine.FormatDay(m.today)
	return func() tea.Msg {
		switch line.kind {
		case lineBlock:
			res, err := m.svc.ToggleBlock(m.ctx, day, line.id)
			return mutatedMsg{label: line.label, res: res, err: err}
		case lineTask:
			res, err := m.svc.ToggleWeekendTask(m.ctx, day, line.id)
			return mutatedMsg{label: line.label, res: res, err: err}
		default:
			res, err := m.svc.SetChallengeCompletion(m.ctx, line.week, line.index, !line.done)
			return mutatedMsg{label: line.label, res: res, err: err}
		}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case mutatedMsg:
		if msg.err != nil {
			m.lastLog = "Update failed: " + msg.err.Error()
			return m, nil
		}
		switch {
		case !msg.res.Applied:
			m.lastLog = "No change."
		case msg.res.LevelUp:
			m.lastLog = fmt.Sprintf("%s: %+d XP — level %d → %d!", msg.label, msg.res.XPDelta, msg.res.LevelBefore, msg.res.LevelAfter)
		case msg.res.WeekCompleted:
			m.lastLog = fmt.Sprintf("%s: %+d XP (week complete bonus!)", msg.label, msg.res.XPDelta)
		default:
			m.lastLog = fmt.Sprintf("%s: %+d XP", msg.label, msg.res.XPDelta)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.lines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			lines := m.lines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			m.lastLog = fmt.Sprintf("Toggling %s…", line.label)
			return m, m.toggleCmd(line)
		}
	}
	return m, nil
}

func (m boardModel) lines() []boardLine {
	if m.snap == nil {
		return nil
	}
	day := engine.FormatDay(m.today)
	var out []boardLine

	if engine.IsWeekend(m.today) {
		done := m.snap.State.CompletedWeekendTasks[day]
		for _, t := range engine.WeekendTasks {
			out = append(out, boardLine{
				kind:    lineTask,
				section: "Weekend Tasks",
				id:      t.ID,
				label:   t.Activity,
				done:    containsID(done, t.ID),
			})
		}
	} else {
		done := m.snap.State.CompletedBlocks[day]
		for _, b := range engine.ActiveTimeBlocks(m.snap.Settings) {
			out = append(out, boardLine{
				kind:    lineBlock,
				section: "Daily Schedule",
				id:      b.ID,
				label:   fmt.Sprintf("%s  %s", b.Time, b.Activity),
				done:    containsID(done, b.ID),
			})
		}
	}

	if quest, ok := engine.QuestForWeek(m.snap.Week); ok {
		done := m.snap.State.ChallengesCompleted[quest.Week]
		section := fmt.Sprintf("Week %d — %s", quest.Week, quest.Title)
		for i, text := range quest.Challenges {
			out = append(out, boardLine{
				kind:    lineChallenge,
				section: section,
				week:    quest.Week,
				index:   i,
				label:   text,
				done:    containsID(done, i),
			})
		}
	}

	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.snap == nil {
		return "LevelUp — loading…"
	}
	gs := m.snap.State
	bar := progressBar(gs.Experience%100, 100, 24)
	return fmt.Sprintf("LevelUp | %s, %s | Level %d | XP %d %s | Week %d/%d (%.0f%%)",
		m.snap.Settings.CharacterName, m.snap.Title,
		gs.Level(), gs.Experience, bar,
		m.snap.Week, engine.TotalWeeks, m.snap.Progress)
}

func (m boardModel) renderSidebar() string {
	if m.snap == nil {
		return "Virtues\n\nLoading…"
	}
	st := m.snap.Stats
	lines := []string{"Virtues"}
	lines = append(lines, renderVirtue("Mental Clarity", st.MentalClarity))
	lines = append(lines, renderVirtue("Consistency", st.Consistency))
	lines = append(lines, renderVirtue("Emotional Intel", st.EmotionalIntelligence))
	lines = append(lines, renderVirtue("Interdependence", st.Interdependence))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Streak: %d (best %d)", m.snap.CurrentStreak, m.snap.LongestStreak))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	lines := m.lines()
	if len(lines) == 0 {
		return "(nothing scheduled)"
	}

	var out []string
	section := ""
	for i, line := range lines {
		if line.section != section {
			if section != "" {
				out = append(out, "")
			}
			section = line.section
			out = append(out, section)
		}
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if line.done {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s", cursor, mark, line.label))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func renderVirtue(label string, value int) string {
	return fmt.Sprintf("- %-16s %2d %s", label, value, progressBar(value, 10, 10))
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func containsID(set []int, id int) bool {
	for _, x := range set {
		if x == id {
			return true
		}
	}
	return false
}
