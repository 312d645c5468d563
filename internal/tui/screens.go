package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dshills/pcoscare/internal/advice"
	"github.com/dshills/pcoscare/internal/assessment"
	"github.com/dshills/pcoscare/internal/intake"
)

// =============================================================================
// Form
// =============================================================================

// form is a vertical list of text inputs. Enter moves to the next input and
// submits from the last one.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (f *form) enter() tea.Cmd {
	return f.setFocus(f.focus)
}

func (f *form) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = 0
	}
	if i >= len(f.inputs) {
		i = len(f.inputs) - 1
	}
	f.focus = i
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

// handle processes navigation keys and reports whether the form should be submitted.
func (f *form) handle(msg tea.Msg) (tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if f.focus == len(f.inputs)-1 {
				return nil, true
			}
			return f.setFocus(f.focus + 1), false
		case tea.KeyTab, tea.KeyDown:
			return f.setFocus((f.focus + 1) % len(f.inputs)), false
		case tea.KeyShiftTab, tea.KeyUp:
			return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs)), false
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, false
}

func (f *form) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := styles.Label
		if i == f.focus {
			label = styles.Focused
		}
		b.WriteString(label.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	return b.String()
}

// =============================================================================
// Login
// =============================================================================

type loginScreen struct {
	form
}

func newLoginScreen() *loginScreen {
	email := newInput("you@example.com")
	password := newInput("")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	return &loginScreen{form{
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{email, password},
	}}
}

func (s *loginScreen) update(m *Model, msg tea.Msg) tea.Cmd {
	cmd, submit := s.handle(msg)
	if submit {
		m.fail(m.session.Login(s.inputs[0].Value(), s.inputs[1].Value()))
	}
	return cmd
}

func (s *loginScreen) view(*Model) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Welcome Back 👋"))
	b.WriteString("\n\n")
	b.WriteString(s.form.view())
	b.WriteString(styles.Help.Render("enter: next / login →"))
	return b.String()
}

// =============================================================================
// Home
// =============================================================================

type homeScreen struct{}

func (homeScreen) update(m *Model, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		m.fail(m.session.Start())
	}
	return nil
}

func (homeScreen) view(*Model) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("PCOS Care"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("A simple self-assessment tool to\nunderstand your PCOS risk early"))
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("enter: Start Assessment →"))
	return b.String()
}

// =============================================================================
// Input
// =============================================================================

type inputScreen struct {
	form
}

func newInputScreen() *inputScreen {
	s := &inputScreen{}
	for _, f := range intake.Fields {
		s.labels = append(s.labels, f.Label())
		s.inputs = append(s.inputs, newInput(""))
	}
	return s
}

func (s *inputScreen) raw() intake.Raw {
	raw := make(intake.Raw, len(intake.Fields))
	for i, f := range intake.Fields {
		raw[f] = s.inputs[i].Value()
	}
	return raw
}

func (s *inputScreen) update(m *Model, msg tea.Msg) tea.Cmd {
	cmd, submit := s.handle(msg)
	if !submit {
		return cmd
	}
	if _, err := m.session.Submit(s.raw()); err != nil {
		m.fail(err)
		var fe *intake.FieldError
		if errors.As(err, &fe) {
			return s.focusField(fe.Field)
		}
	}
	return cmd
}

func (s *inputScreen) focusField(f intake.Field) tea.Cmd {
	for i, known := range intake.Fields {
		if known == f {
			return s.setFocus(i)
		}
	}
	return nil
}

func (s *inputScreen) view(*Model) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("PCOS Health Assessment"))
	b.WriteString("\n\n")
	b.WriteString(s.form.view())
	b.WriteString(styles.Help.Render("enter: next field / Calculate Risk →  tab/shift+tab: move"))
	return b.String()
}

// =============================================================================
// Result
// =============================================================================

// resultScreen keeps no state: it is redrawn from the session's latest record.
type resultScreen struct{}

func (resultScreen) update(m *Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "s", "enter":
		m.fail(m.session.Suggestions())
	case "h":
		m.fail(m.session.Home())
	}
	return nil
}

func (resultScreen) view(m *Model) string {
	rec, ok := m.session.Record()
	if !ok {
		return "No result yet."
	}
	return renderResult(rec)
}

func renderResult(rec assessment.Record) string {
	var b strings.Builder
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(rec.Tier.Color()))
	b.WriteString(label.Render(rec.Tier.Label()))
	b.WriteString("\n\n")
	b.WriteString(renderBar(rec.Tier.Fill(), rec.Tier.Color()))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("score %d / %d", rec.Score, assessment.MaxScore)))
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("s: View Suggestions →   h: Back to Home"))
	return b.String()
}

// =============================================================================
// Suggestion
// =============================================================================

type suggestionScreen struct{}

func (suggestionScreen) update(m *Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "h", "enter":
		m.fail(m.session.Home())
	}
	return nil
}

func (suggestionScreen) view(m *Model) string {
	var b strings.Builder
	title := "Suggestions & Guidance"
	if m.guide != nil && m.guide.Title != "" {
		title = m.guide.Title
	}
	b.WriteString(styles.Title.Render(title + " 💜"))
	b.WriteString("\n\n")
	if m.guide != nil {
		b.WriteString(advice.Format(m.guide))
		b.WriteString("\n")
	}
	b.WriteString(styles.Help.Render("h: Back to Home"))
	return b.String()
}
