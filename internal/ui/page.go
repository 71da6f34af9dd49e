package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Anshit-Gupta/Enigma/internal/config"
	"github.com/Anshit-Gupta/Enigma/internal/engine"
	"github.com/Anshit-Gupta/Enigma/internal/page"
)

// tickMsg advances the engine loop. Every animation on the page runs off
// these ticks; between two ticks nothing moves, exactly like a browser
// frame budget.
type tickMsg time.Time

// chromeHeight is the rows used by the nav bar and footer around the
// scrolling viewport.
const chromeHeight = 4

// element is one rendered section with its measured position in the
// scrolled content.
type element struct {
	section page.Section
	target  *engine.Target
	span    engine.Span
}

// Page is the bubbletea model for the landing page.
type Page struct {
	cfg   *config.Config
	theme *Theme

	loop        *engine.Loop
	gate        *engine.MotionGate
	reveal      *engine.RevealObserver
	tracker     *engine.SectionTracker
	cycle       *engine.CycleAnimator
	counterAnim *engine.CounterAnimator
	counters    []*engine.Counter
	stats       []page.Stat

	hero   *engine.BasicNode
	status *engine.BasicNode

	elements     []*element
	activeAnchor string

	vp       viewport.Model
	ready    bool
	width    int
	about    string
	lastTick time.Time

	checkScroll func()
	remeasure   func(int)

	form       *huh.Form
	formMode   bool
	submitting bool
	submitTmr  *engine.Timer
	sub        page.ContactSubmission
	spin       spinner.Model

	revealTh  engine.Threshold
	sectionTh engine.Threshold

	quitting bool
}

// NewPage wires the engine to the page content. All component state is
// owned here and handed to each component explicitly; nothing reaches
// into another component's internals.
func NewPage(cfg *config.Config, theme *Theme) *Page {
	m := &Page{
		cfg:    cfg,
		theme:  theme,
		loop:   engine.NewLoop(time.Now()),
		gate:   engine.NewMotionGate(cfg.Motion.Reduced),
		hero:   engine.NewBasicNode(""),
		status: engine.NewBasicNode(""),
		stats:  page.Stats(),
		revealTh: engine.Threshold{
			Ratio:  cfg.Observer.RevealThreshold,
			Margin: cfg.Observer.RevealMargin,
		},
		sectionTh: engine.Threshold{
			Ratio:  cfg.Observer.SectionThreshold,
			Margin: cfg.Observer.SectionMargin,
		},
	}

	m.cycle = engine.NewCycleAnimator(
		m.loop, m.gate, m.hero, page.Languages(),
		time.Duration(cfg.Timing.CyclePeriodMs)*time.Millisecond,
		time.Duration(cfg.Timing.CycleFadeMs)*time.Millisecond,
	)

	m.counterAnim = engine.NewCounterAnimator(
		m.loop, m.gate,
		time.Duration(cfg.Timing.CountDurationMs)*time.Millisecond,
	)
	for _, s := range m.stats {
		m.counters = append(m.counters, &engine.Counter{
			Node:   engine.NewBasicNode("0"),
			Target: s.Value,
		})
	}

	m.reveal = engine.NewRevealObserver(m.loop, m.gate)
	m.reveal.OnStats(func() { m.counterAnim.RunAll(m.counters) })

	m.tracker = engine.NewSectionTracker(func(_, anchor string) {
		m.activeAnchor = anchor
	})

	for _, s := range page.Sections() {
		el := &element{section: s}
		if s.FadeIn {
			kind := engine.TargetFadeIn
			if s.ID == page.SectionStats {
				kind = engine.TargetStats
			}
			el.target = &engine.Target{ID: s.ID, Node: engine.NewBasicNode(""), Kind: kind}
			m.reveal.Observe(el.target)
		}
		m.elements = append(m.elements, el)
	}

	m.checkScroll = engine.Throttle(
		m.loop,
		time.Duration(cfg.Timing.ScrollThrottleMs)*time.Millisecond,
		m.checkIntersections,
	)
	m.remeasure = engine.Debounce(
		m.loop,
		time.Duration(cfg.Timing.ResizeDebounceMs)*time.Millisecond,
		func(width int) {
			m.layout(width)
			m.checkIntersections()
		},
	)

	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}

	return m
}

// Init starts the tick loop and the hero language cycle.
func (m *Page) Init() tea.Cmd {
	m.cycle.Start()
	return m.tick()
}

func (m *Page) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.Timing.TickMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update is the page's event loop. It is the only writer of model state,
// so engine callbacks fired from loop.Advance run serialized with every
// other mutation, the way a browser's main thread serializes its handlers.
func (m *Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.onTick(time.Time(msg))

	case tea.WindowSizeMsg:
		return m.onResize(msg)

	case tea.FocusMsg:
		m.cycle.Start()
		return m, nil

	case tea.BlurMsg:
		// Page hidden: stop the cycle; reveals and counters simply pause
		// because no ticks advance the loop while redraws are suspended.
		m.cycle.Stop()
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.formMode {
			return m.updateForm(msg)
		}
		return m.onKey(msg)
	}

	if m.formMode {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *Page) onTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastTick.IsZero() {
		m.lastTick = now
	}
	m.loop.Advance(now.Sub(m.lastTick))
	m.lastTick = now
	if m.ready && !m.formMode {
		m.syncContent()
	}
	return m, m.tick()
}

func (m *Page) onResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	height := max(msg.Height-chromeHeight, 1)
	if !m.ready {
		m.vp = viewport.New(msg.Width, height)
		m.ready = true
		m.layout(msg.Width)
		m.checkIntersections()
		m.syncContent()
		return m, nil
	}
	m.vp.Width = msg.Width
	m.vp.Height = height
	// Re-measuring is debounced; resize storms settle before the spans
	// are recomputed.
	m.remeasure(msg.Width)
	return m, nil
}

func (m *Page) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.teardown()
		return m, tea.Quit
	case "c":
		m.sub = page.ContactSubmission{}
		m.form = newContactForm(&m.sub)
		if m.ready {
			m.form = m.form.WithWidth(m.vp.Width)
		}
		m.formMode = true
		return m, m.form.Init()
	case "g", "home":
		// Back to top.
		m.vp.GotoTop()
		m.checkScroll()
		m.syncContent()
		return m, nil
	case "G", "end":
		m.vp.GotoBottom()
		m.checkScroll()
		m.syncContent()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.vp.YOffset
	m.vp, cmd = m.vp.Update(msg)
	if m.vp.YOffset != before {
		m.checkScroll()
		m.syncContent()
	}
	return m, cmd
}

func (m *Page) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.formMode = false
		m.form = nil
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.formMode = false
		m.submitting = true
		sub := m.sub
		timer, err := page.Submit(
			m.loop, sub,
			time.Duration(m.cfg.Timing.SubmitDelayMs)*time.Millisecond,
			m.status,
			func() { m.submitting = false },
		)
		if err != nil {
			// huh validated every field, so this only fires if the rules
			// and the form drift apart.
			m.submitting = false
			m.status.SetText(err.Error())
			m.status.AddState(engine.StateShow)
			return m, nil
		}
		m.submitTmr = timer
		m.form = nil
		return m, m.spin.Tick
	case huh.StateAborted:
		m.formMode = false
		m.form = nil
	}
	return m, cmd
}

func (m *Page) teardown() {
	m.quitting = true
	m.cycle.Stop()
	m.reveal.Disconnect()
	m.tracker.Disconnect()
	m.submitTmr.Stop()
}

// checkIntersections feeds the current scroll position to the reveal
// observer and the section tracker. The two consume the same viewport
// span under different thresholds; their relative order is unspecified.
func (m *Page) checkIntersections() {
	if !m.ready {
		return
	}
	view := engine.Span{Top: m.vp.YOffset, Height: m.vp.Height}
	for _, el := range m.elements {
		if el.target != nil {
			m.reveal.Intersect(el.target, engine.Intersects(view, el.span, m.revealTh))
		}
		m.tracker.Intersect(el.section.ID, engine.Intersects(view, el.span, m.sectionTh))
	}
}

// layout renders every section once to measure its span. Section heights
// do not depend on animation state, so spans stay valid until the next
// resize.
func (m *Page) layout(width int) {
	m.width = width
	m.about = renderAbout(m.theme, max(width-4, 20))
	top := 0
	for _, el := range m.elements {
		body := m.renderSection(el)
		h := lipgloss.Height(body) + 1 // trailing blank separator
		el.span = engine.Span{Top: top, Height: h}
		top += h
	}
}

// syncContent rebuilds the scrolled content from current engine state.
func (m *Page) syncContent() {
	var b strings.Builder
	for _, el := range m.elements {
		b.WriteString(m.renderSection(el))
		b.WriteString("\n")
	}
	m.vp.SetContent(b.String())
}

func (m *Page) renderSection(el *element) string {
	var body string
	switch el.section.ID {
	case page.SectionHero:
		body = m.renderHero()
	case page.SectionAbout:
		body = m.about
	case page.SectionStats:
		body = m.renderStats()
	case page.SectionTeam:
		body = m.renderTeam()
	case page.SectionContact:
		body = m.renderContact()
	}

	title := m.theme.SectionTitle.Render("# " + el.section.Title)
	block := title + "\n" + body

	// Fade-in targets render dimmed until their reveal fires. The styling
	// changes; the line count does not, so measured spans hold.
	if el.target != nil && !el.target.Node.HasState(engine.StateVisible) {
		return m.theme.Hidden.Render(block)
	}
	return block
}

func (m *Page) renderHero() string {
	style := m.theme.Title
	if m.hero.HasState(engine.StateFadeOut) {
		style = m.theme.TitleFading
	}
	// The hero fills a good share of the viewport, like its full-screen
	// browser counterpart, so the section tracker picks it up at the top.
	lines := []string{
		"",
		"  " + style.Render(m.hero.Text()),
		"",
		"  " + m.theme.Tagline.Render(page.HeroTagline),
		"  " + m.theme.LangLabel.Render(m.hero.Attr("aria-label")),
		"",
		"",
		"",
		"",
		"",
		"",
		"  " + m.theme.Help.Render("scroll ↓ to explore"),
		"",
		"",
		"",
	}
	return strings.Join(lines, "\n")
}

func (m *Page) renderStats() string {
	var lines []string
	for i, c := range m.counters {
		value := "0"
		if c.Node != nil {
			value = c.Node.Text()
		}
		lines = append(lines, fmt.Sprintf("  %s %s",
			m.theme.StatValue.Render(value),
			m.theme.StatLabel.Render(m.stats[i].Label)))
	}
	return strings.Join(lines, "\n")
}

func (m *Page) renderTeam() string {
	members := page.TeamMembers()
	perRow := max(m.width/26, 1)
	var rows []string
	for start := 0; start < len(members); start += perRow {
		end := min(start+perRow, len(members))
		var cards []string
		for _, member := range members[start:end] {
			card := fmt.Sprintf("%s\n%s\n%s",
				m.theme.StatValue.Render("("+member.Initials+")"),
				member.Name,
				m.theme.StatLabel.Render(member.Role))
			cards = append(cards, m.theme.Card.Render(card))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m *Page) renderContact() string {
	status := ""
	if m.status.HasState(engine.StateShow) {
		status = m.theme.Success.Render(m.status.Text())
	}
	lines := []string{
		"  hello@enigma.club",
		"  " + m.theme.Help.Render("press c to open the contact form"),
		"  " + status,
	}
	return strings.Join(lines, "\n")
}

func (m *Page) renderNav() string {
	var entries []string
	for _, s := range page.Sections() {
		style := m.theme.Nav
		if "#"+s.ID == m.activeAnchor {
			style = m.theme.NavActive
		}
		entries = append(entries, style.Render(s.Title))
	}
	nav := " " + strings.Join(entries, "  ")
	if m.ready && m.vp.YOffset > m.vp.Height {
		nav += "   " + m.theme.Help.Render("↑ top (g)")
	}
	return nav
}

func (m *Page) renderFooter() string {
	if m.submitting {
		return " " + m.spin.View() + " sending your message..."
	}
	return " " + m.theme.Help.Render("↑/↓ scroll · c contact · g top · q quit")
}

// View renders the chrome and the scrolled page.
func (m *Page) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}
	if m.formMode && m.form != nil {
		return m.renderNav() + "\n\n" + m.form.View()
	}
	return m.renderNav() + "\n\n" + m.vp.View() + "\n" + m.renderFooter()
}

// Run starts the page program on a real terminal.
func Run(cfg *config.Config, theme *Theme) error {
	p := tea.NewProgram(
		NewPage(cfg, theme),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
