package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/conceptlab/walkthrough"
	"github.com/conceptlab/walkthrough/demos"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	demoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	reg      *demos.Registry
	items    []walkthrough.Demo
	output   viewport.Model
	selected int
	width    int
	height   int
	sized    bool
	state    modelState
}

type modelState int

const (
	stateSelectDemo modelState = iota
	stateShowOutput
)

func newInteractiveModel(reg *demos.Registry) *interactiveModel {
	return &interactiveModel{
		reg:   reg,
		items: reg.All(),
		state: stateSelectDemo,
	}
}

type ranMsg struct {
	err    error
	name   string
	output string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) runSelected() tea.Msg {
	d := m.items[m.selected]

	var buf bytes.Buffer
	err := m.reg.RunOne(context.Background(), &buf, d.Name())
	return ranMsg{name: d.Name(), output: buf.String(), err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectDemo && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectDemo && m.selected < len(m.items)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectDemo {
				return m, m.runSelected
			}

		case "esc":
			if m.state == stateShowOutput {
				m.state = stateSelectDemo
				m.err = nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.sized {
			m.output = viewport.New(msg.Width, vpHeight)
			m.sized = true
		} else {
			m.output.Width = msg.Width
			m.output.Height = vpHeight
		}

	case ranMsg:
		m.err = msg.err
		if !m.sized {
			m.output = viewport.New(80, 20)
			m.sized = true
		}
		m.output.SetContent(msg.output)
		m.output.GotoTop()
		m.state = stateShowOutput
	}

	if m.state == stateShowOutput {
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Concept Walkthrough"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectDemo:
		b.WriteString("Select a demonstration to run:\n\n")
		for i, d := range m.items {
			line := m.formatDemo(d)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateShowOutput:
		d := m.items[m.selected]
		b.WriteString(fmt.Sprintf("Output of %s:\n\n", demoStyle.Render(d.Name())))
		b.WriteString(m.output.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatDemo(d walkthrough.Demo) string {
	return demoStyle.Render(d.Name()) + " " + summaryStyle.Render(d.Summary())
}

func runInteractive(reg *demos.Registry) error {
	p := tea.NewProgram(newInteractiveModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
