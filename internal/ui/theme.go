package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GoalQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconHabit   = "🔁"
	IconGoal    = "🎯"
	IconNote    = "📝"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconGold    = "🪙"
	IconStreak  = "🔥"
	IconShop    = "🛒"
	IconQuote   = "📜"
	IconSparkle = "✨"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPBar renders a fixed-width progress bar for the current level.
func XPBar(current, needed, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if needed > 0 {
		filled = current * width / needed
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Gold.Render(bar) + Muted.Render(fmt.Sprintf(" %d/%d", current, needed))
}

// RarityText colors an item rarity name.
func RarityText(rarity string) string {
	switch strings.ToLower(rarity) {
	case "legendary":
		return Gold.Render(rarity)
	case "epic":
		return Title.Render(rarity)
	case "rare":
		return H2.Render(rarity)
	case "uncommon":
		return Good.Render(rarity)
	default:
		return Muted.Render(rarity)
	}
}
