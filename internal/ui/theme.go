// Package ui renders the Enigma landing page in the terminal. The page is
// a bubbletea program; all animation state lives in internal/engine and is
// advanced from the program's tick loop.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Anshit-Gupta/Enigma/internal/config"
)

// Theme holds the lipgloss styles for the page. The engine's presentation
// states map onto these styles at render time.
type Theme struct {
	NoColor bool
	Colors  config.ThemeConfig

	Title        lipgloss.Style
	TitleFading  lipgloss.Style
	Tagline      lipgloss.Style
	LangLabel    lipgloss.Style
	Nav          lipgloss.Style
	NavActive    lipgloss.Style
	SectionTitle lipgloss.Style
	Hidden       lipgloss.Style
	Card         lipgloss.Style
	StatValue    lipgloss.Style
	StatLabel    lipgloss.Style
	Success      lipgloss.Style
	Help         lipgloss.Style
}

// NewTheme builds a Theme from the configured colors. With NoColor set,
// every style is a plain passthrough.
func NewTheme(cfg config.ThemeConfig) *Theme {
	t := &Theme{NoColor: cfg.NoColor, Colors: cfg}
	if cfg.NoColor {
		plain := lipgloss.NewStyle()
		t.Title = plain.Bold(true)
		t.TitleFading = plain
		t.Tagline = plain
		t.LangLabel = plain
		t.Nav = plain
		t.NavActive = plain.Bold(true).Underline(true)
		t.SectionTitle = plain.Bold(true)
		t.Hidden = plain.Faint(true)
		t.Card = plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
		t.StatValue = plain.Bold(true)
		t.StatLabel = plain
		t.Success = plain.Bold(true)
		t.Help = plain.Faint(true)
		return t
	}

	primary := lipgloss.Color(cfg.Primary)
	secondary := lipgloss.Color(cfg.Secondary)
	muted := lipgloss.Color(cfg.Muted)

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.TitleFading = lipgloss.NewStyle().Bold(true).Foreground(muted).Faint(true)
	t.Tagline = lipgloss.NewStyle().Foreground(secondary)
	t.LangLabel = lipgloss.NewStyle().Foreground(muted).Italic(true)
	t.Nav = lipgloss.NewStyle().Foreground(muted)
	t.NavActive = lipgloss.NewStyle().Bold(true).Foreground(secondary).Underline(true)
	t.SectionTitle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.Hidden = lipgloss.NewStyle().Faint(true)
	t.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1)
	t.StatValue = lipgloss.NewStyle().Bold(true).Foreground(secondary)
	t.StatLabel = lipgloss.NewStyle().Foreground(muted)
	t.Success = lipgloss.NewStyle().Bold(true).Foreground(secondary)
	t.Help = lipgloss.NewStyle().Foreground(muted).Faint(true)
	return t
}
