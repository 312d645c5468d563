// Package tui renders the assessment wizard in the terminal with bubbletea.
//
// The model is single-threaded and owned by the bubbletea event loop.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dshills/pcoscare/internal/advice"
	"github.com/dshills/pcoscare/internal/flow"
)

// screen is one page of the wizard.
type screen interface {
	// update handles a message while the screen is visible.
	update(m *Model, msg tea.Msg) tea.Cmd
	view(m *Model) string
}

// focusable screens get a chance to focus an input each time they are entered.
type focusable interface {
	enter() tea.Cmd
}

// Model is the bubbletea model for the whole wizard.
type Model struct {
	session *flow.Session
	guide   *advice.Guide
	screens *flow.Screens[screen]

	err      string
	width    int
	quitting bool
	shown    flow.State
}

// New builds the wizard model. Screens are constructed the first time they are shown.
func New(session *flow.Session, guide *advice.Guide) *Model {
	m := &Model{
		session: session,
		guide:   guide,
		screens: flow.NewScreens[screen](),
		shown:   -1,
	}
	m.screens.Register(flow.StateLogin, func() screen { return newLoginScreen() })
	m.screens.Register(flow.StateHome, func() screen { return homeScreen{} })
	m.screens.Register(flow.StateInput, func() screen { return newInputScreen() })
	m.screens.Register(flow.StateResult, func() screen { return resultScreen{} })
	m.screens.Register(flow.StateSuggestion, func() screen { return suggestionScreen{} })
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.sync()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		// Any key dismisses the previous error.
		m.err = ""
	}

	var cmds []tea.Cmd
	cmds = append(cmds, m.current().update(m, msg))
	cmds = append(cmds, m.sync())
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	card := styles.Card
	if m.width > 0 {
		card = card.MaxWidth(m.width)
	}
	var b strings.Builder
	b.WriteString(card.Render(m.current().view(m)))
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(styles.ErrorBox.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(styles.Help.Render("ctrl+c to quit"))
	b.WriteString("\n")
	return b.String()
}

// State reports the screen currently shown.
func (m *Model) State() flow.State {
	return m.session.State()
}

func (m *Model) current() screen {
	s, _ := m.screens.Get(m.session.State())
	return s
}

// sync runs the enter hook when the session has moved to a new screen.
func (m *Model) sync() tea.Cmd {
	st := m.session.State()
	if st == m.shown {
		return nil
	}
	m.shown = st
	if f, ok := m.current().(focusable); ok {
		return f.enter()
	}
	return nil
}

func (m *Model) fail(err error) {
	if err != nil {
		m.err = capitalize(err.Error())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
