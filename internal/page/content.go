// Package page holds the landing page content: section definitions, the
// team grid, statistics, the hero language cycle, and the contact form
// rules. The engine and UI consume this data; nothing here animates.
package page

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/Anshit-Gupta/Enigma/internal/engine"
)

// Section identifiers. These double as navigation anchors.
const (
	SectionHero    = "home"
	SectionAbout   = "about"
	SectionStats   = "stats"
	SectionTeam    = "team"
	SectionContact = "contact"
)

// Section is one landmark of the page.
type Section struct {
	ID    string
	Title string
	// FadeIn marks the section as a reveal target: it renders in its
	// hidden presentation until the viewport reaches it.
	FadeIn bool
}

// Sections returns the page landmarks in display order.
func Sections() []Section {
	return []Section{
		{ID: SectionHero, Title: "Home"},
		{ID: SectionAbout, Title: "About", FadeIn: true},
		{ID: SectionStats, Title: "Stats", FadeIn: true},
		{ID: SectionTeam, Title: "Team", FadeIn: true},
		{ID: SectionContact, Title: "Contact", FadeIn: true},
	}
}

// Stat is a counter displayed in the stats section. Values of 100 or more
// render with a trailing "+" while counting.
type Stat struct {
	Label string
	Value int
}

// Stats returns the statistics counted up when the stats section first
// enters view.
func Stats() []Stat {
	return []Stat{
		{Label: "Active Members", Value: 150},
		{Label: "Events Hosted", Value: 45},
		{Label: "Projects Built", Value: 80},
		{Label: "Workshop Hours", Value: 500},
	}
}

// TeamMember is one card in the team grid.
type TeamMember struct {
	Name     string
	Role     string
	Initials string
}

// TeamMembers returns the team grid in display order.
func TeamMembers() []TeamMember {
	return []TeamMember{
		{Name: "Anshit Gupta", Role: "President", Initials: "AG"},
		{Name: "Riya Sharma", Role: "Vice President", Initials: "RS"},
		{Name: "Kabir Mehta", Role: "Technical Lead", Initials: "KM"},
		{Name: "Sana Iqbal", Role: "Design Lead", Initials: "SI"},
		{Name: "Dev Patel", Role: "Events Head", Initials: "DP"},
		{Name: "Ananya Rao", Role: "Outreach Head", Initials: "AR"},
	}
}

// HeroTagline is the static line under the cycling hero text.
const HeroTagline = "Decode the future. One puzzle at a time."

// AboutMarkdown is the about section body, rendered through glamour.
const AboutMarkdown = `**Enigma** is a student-run technology society built around one idea:
the best way to learn is to build something that did not exist yesterday.

We run hands-on workshops, host hackathons, and ship open projects across
systems, web, and machine learning. No prerequisites, no gatekeeping.

- Weekly build nights, every semester
- Mentorship pairing for first-years
- An annual flagship hackathon open to all campuses
`

// Languages returns the hero language cycle: the fixed, ordered,
// wrap-around sequence of "ENIGMA" renderings. Labels combine the English
// language name with the text so assistive technology announces both.
func Languages() []engine.LanguageEntry {
	namer := display.English.Languages()
	entries := []struct {
		text string
		tag  language.Tag
	}{
		{"ENIGMA", language.English},
		{"एनिग्मा", language.Hindi},
		{"エニグマ", language.Japanese},
		{"ЭНИГМА", language.Russian},
		{"ΑΙΝΙΓΜΑ", language.Greek},
		{"에니그마", language.Korean},
	}
	out := make([]engine.LanguageEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, engine.LanguageEntry{
			Text:  e.text,
			Tag:   e.tag,
			Label: fmt.Sprintf("%s: %s", namer.Name(e.tag), e.text),
		})
	}
	return out
}
