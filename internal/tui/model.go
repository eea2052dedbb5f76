package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"goalquest/internal/engine"
	"goalquest/internal/storage"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	player *storage.Player
	habits []engine.HabitWithStatus
	goals  []storage.Goal

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	player *storage.Player
	habits []engine.HabitWithStatus
	goals  []storage.Goal
	err    error
}

type toggledMsg struct {
	id  int64
	res *engine.CompleteHabitResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Player(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.ListHabits(m.ctx, true)
		if err != nil {
			return loadedMsg{err: err}
		}
		open := false
		goals, err := m.svc.Goals().List(m.ctx, &open)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{player: p, habits: habits, goals: goals}
	}
}

func (m boardModel) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteHabit(m.ctx, id, "")
		return toggledMsg{id: id, res: res, err: err}
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
		m.player = msg.player
		m.habits = msg.habits
		m.goals = msg.goals
		if m.selected >= len(m.habits) {
			m.selected = len(m.habits) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.AlreadyCompleted {
			m.lastLog = fmt.Sprintf("%s already done today.", msg.res.Habit.Name)
			return m, m.loadCmd()
		}
		note := ""
		if msg.res.LeveledUp {
			note = " LEVEL UP!"
		}
		m.lastLog = fmt.Sprintf("Completed %s: +%d XP, +%d gold (streak %d).%s",
			msg.res.Habit.Name, msg.res.Habit.XPReward, msg.res.Habit.GoldReward, msg.res.Streak, note)
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
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.habits) {
				return m, nil
			}
			h := m.habits[m.selected]
			if h.DoneToday {
				m.lastLog = "Already done today."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", h.Name)
			return m, m.toggleCmd(h.ID)
		}
	}
	return m, nil
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
	leftW := 26
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
	if m.player == nil {
		return "GoalQuest — loading…"
	}
	bar := progressBar(m.player.CurrentXP, engine.XPToNextLevel(m.player.Level), 30)
	return fmt.Sprintf("GoalQuest | Level %d %s | Gold %d", m.player.Level, bar, m.player.CurrentGold)
}

func (m boardModel) renderSidebar() string {
	if m.player == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Attributes"}
	lines = append(lines, fmt.Sprintf("- STR %d", m.player.Strength))
	lines = append(lines, fmt.Sprintf("- INT %d", m.player.Intelligence))
	lines = append(lines, fmt.Sprintf("- VIT %d", m.player.Vitality))
	lines = append(lines, fmt.Sprintf("- AGI %d", m.player.Agility))
	lines = append(lines, fmt.Sprintf("- SEN %d", m.player.Sense))
	lines = append(lines, fmt.Sprintf("- WIL %d", m.player.Willpower))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}

	var out []string
	out = append(out, "Today's Habits")
	if len(m.habits) == 0 {
		out = append(out, "(no active habits)")
	}
	for i, h := range m.habits {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if h.DoneToday {
			mark = "[x]"
		}
		streak := ""
		if h.Streak > 0 {
			streak = fmt.Sprintf(" (streak %d)", h.Streak)
		}
		out = append(out, fmt.Sprintf("%s%s %s +%dxp%s", cursor, mark, h.Name, h.XPReward, streak))
	}

	out = append(out, "")
	out = append(out, "Open Goals")
	if len(m.goals) == 0 {
		out = append(out, "(none)")
	}
	for _, g := range m.goals {
		out = append(out, fmt.Sprintf("- %s %s %d%%", g.Title, progressBar(g.Progress, 100, 10), g.Progress))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
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
