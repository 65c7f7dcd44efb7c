// ============================================================================
// textkit - Pattern Matching and String Transforms
// ============================================================================
//
// Package:     playground
// Description: Interactive pattern tester with live match highlighting
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package playground

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/textkit/foundation/utils/patternx"
	"github.com/msto63/textkit/internal/textkit/service"
)

const (
	fieldPattern = iota
	fieldSubject
	fieldTemplate
	fieldCount
)

var fieldLabels = [fieldCount]string{"Pattern", "Subject", "Template"}

var engines = []patternx.Engine{patternx.EngineBacktracking, patternx.EngineLinear, patternx.EngineAuto}

// Config holds the initial playground state
type Config struct {
	Pattern  string
	Subject  string
	Template string
	Engine   patternx.Engine
}

// Model is the Bubbletea model for the pattern playground
type Model struct {
	svc    *service.Service
	inputs [fieldCount]textinput.Model
	focus  int
	width  int

	engine          patternx.Engine
	caseInsensitive bool
	anchored        bool

	seq         int
	match       *service.MatchResult
	replacement string
	err         error
}

// New creates a playground evaluating through svc
func New(svc *service.Service, cfg Config) Model {
	m := Model{svc: svc, engine: cfg.Engine, width: 80}
	placeholders := [fieldCount]string{`\b\w+\b`, "text to search", "replacement template, e.g. <$0>"}
	values := [fieldCount]string{cfg.Pattern, cfg.Subject, cfg.Template}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = ""
		in.Width = 60
		in.SetValue(values[i])
		m.inputs[i] = in
	}
	m.inputs[fieldPattern].Focus()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.evaluate())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
		case "ctrl+e":
			m.engine = nextEngine(m.engine)
			return m.reevaluate()
		case "ctrl+o":
			m.caseInsensitive = !m.caseInsensitive
			return m.reevaluate()
		case "ctrl+a":
			m.anchored = !m.anchored
			return m.reevaluate()
		}

		before := m.inputs[m.focus].Value()
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before {
			next, eval := m.reevaluate()
			return next, tea.Batch(cmd, eval)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-16, 10)
		}
		return m, nil

	case evaluatedMsg:
		if msg.seq == m.seq {
			m.match = msg.match
			m.replacement = msg.replacement
			m.err = msg.err
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) setFocus(i int) Model {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) reevaluate() (Model, tea.Cmd) {
	m.seq++
	return m, m.evaluate()
}

func nextEngine(e patternx.Engine) patternx.Engine {
	for i, candidate := range engines {
		if candidate == e {
			return engines[(i+1)%len(engines)]
		}
	}
	return engines[0]
}

// evaluate runs the match and the replacement off the UI loop; a
// backtracking pattern may take up to its timeout
func (m Model) evaluate() tea.Cmd {
	seq := m.seq
	spec := service.PatternSpec{Source: m.inputs[fieldPattern].Value(), Engine: m.engine.String()}
	if m.caseInsensitive {
		spec.Options = []string{"case-insensitive"}
	}
	subject := m.inputs[fieldSubject].Value()
	template := m.inputs[fieldTemplate].Value()
	anchored := m.anchored
	svc := m.svc

	return func() tea.Msg {
		if spec.Source == "" {
			return evaluatedMsg{seq: seq}
		}
		ctx := context.Background()
		res, err := svc.Match(ctx, &service.MatchRequest{Pattern: spec, Text: subject, Anchored: anchored, Strict: true})
		if err != nil {
			return evaluatedMsg{seq: seq, err: err}
		}
		msg := evaluatedMsg{seq: seq, match: res}
		if template != "" {
			rep, err := svc.Replace(ctx, &service.ReplaceRequest{Pattern: spec, Text: subject, Template: template, Anchored: anchored})
			if err != nil {
				msg.err = err
			} else {
				msg.replacement = rep.Text
			}
		}
		return msg
	}
}

// View renders the playground
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render("textkit playground"))
	b.WriteString("  ")
	b.WriteString(HelpStyle.Render(m.flags()))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		label := LabelStyle
		if i == m.focus {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	subject := m.inputs[fieldSubject].Value()
	var ranges []patternx.MatchRange
	if m.match != nil {
		ranges = m.match.Ranges
	}
	preview := Highlight(subject, ranges, MatchStyle.Render)
	panelWidth := max(m.width-2, 20)
	b.WriteString(PanelStyle.Width(panelWidth).Render(preview))
	b.WriteString("\n")

	if m.replacement != "" {
		b.WriteString(PanelStyle.Width(panelWidth).Render(m.replacement))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("tab: next field • ctrl+e: engine • ctrl+o: ignore case • ctrl+a: anchored • esc: quit"))
	return b.String()
}

func (m Model) flags() string {
	flags := []string{"engine=" + m.engine.String()}
	if m.caseInsensitive {
		flags = append(flags, "case-insensitive")
	}
	if m.anchored {
		flags = append(flags, "anchored")
	}
	return strings.Join(flags, " ")
}

func (m Model) renderStatus() string {
	switch {
	case m.err != nil:
		return StatusErrorStyle.Render(m.err.Error())
	case m.match == nil:
		return HelpStyle.Render("enter a pattern")
	case m.match.Matched:
		parts := make([]string, len(m.match.Ranges))
		for i, r := range m.match.Ranges {
			parts[i] = r.String()
		}
		return StatusMatchedStyle.Render(fmt.Sprintf("%d match(es)", len(m.match.Ranges))) +
			" " + HelpStyle.Render(strings.Join(parts, " "))
	default:
		return StatusNoMatchStyle.Render(m.match.Status)
	}
}

// Highlight returns subject with every range passed through mark. Ranges
// must be ascending and non-overlapping.
func Highlight(subject string, ranges []patternx.MatchRange, mark func(...string) string) string {
	var b strings.Builder
	last := 0
	for _, r := range ranges {
		if r.Start < last || r.End > len(subject) {
			continue
		}
		b.WriteString(subject[last:r.Start])
		if r.IsEmpty() {
			b.WriteString(mark("|"))
		} else {
			b.WriteString(mark(r.Slice(subject)))
		}
		last = r.End
	}
	b.WriteString(subject[last:])
	return b.String()
}

// Run starts the playground program
func Run(svc *service.Service, cfg Config) error {
	_, err := tea.NewProgram(New(svc, cfg), tea.WithAltScreen()).Run()
	return err
}

var _ tea.Model = Model{}
