package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Anshit-Gupta/Enigma/internal/page"
)

const staticWidth = 76

// RenderStatic renders the page in its final, fully revealed state: the
// first hero language, exact counter targets, every section visible. This
// is the headless/no-TTY degraded mode, where nothing animates.
func RenderStatic(theme *Theme) string {
	var b strings.Builder

	hero := page.Languages()[0]
	b.WriteString(theme.Title.Render(hero.Text))
	b.WriteString("\n")
	b.WriteString(theme.Tagline.Render(page.HeroTagline))
	b.WriteString("\n")
	b.WriteString(theme.LangLabel.Render(hero.Label))
	b.WriteString("\n\n")

	b.WriteString(theme.SectionTitle.Render("About"))
	b.WriteString("\n")
	b.WriteString(renderAbout(theme, staticWidth))
	b.WriteString("\n")

	b.WriteString(theme.SectionTitle.Render("Stats"))
	b.WriteString("\n")
	for _, s := range page.Stats() {
		value := fmt.Sprintf("%d", s.Value)
		if s.Value >= 100 {
			value += "+"
		}
		fmt.Fprintf(&b, "  %s %s\n", theme.StatValue.Render(value), theme.StatLabel.Render(s.Label))
	}
	b.WriteString("\n")

	b.WriteString(theme.SectionTitle.Render("Team"))
	b.WriteString("\n")
	for _, m := range page.TeamMembers() {
		fmt.Fprintf(&b, "  [%s] %s — %s\n", m.Initials, m.Name, theme.StatLabel.Render(m.Role))
	}
	b.WriteString("\n")

	b.WriteString(theme.SectionTitle.Render("Contact"))
	b.WriteString("\n")
	b.WriteString("  hello@enigma.club\n")

	return b.String()
}

// renderAbout renders the about markdown through glamour, falling back to
// the raw text if the renderer cannot be built.
func renderAbout(theme *Theme, width int) string {
	style := glamour.WithStandardStyle("dark")
	if theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return page.AboutMarkdown
	}
	out, err := r.Render(page.AboutMarkdown)
	if err != nil {
		return page.AboutMarkdown
	}
	return out
}
