package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldTemplate = iota
	fieldArgs
)

type interactiveModel struct {
	err      error
	pipeline *pipeline
	cfg      *Config
	result   string
	units    []byte
	inputs   []textinput.Model
	focusIdx int
}

func newInteractiveModel(cfg *Config, template string) (*interactiveModel, error) {
	p, err := newPipeline(cfg)
	if err != nil {
		return nil, err
	}

	tmpl := textinput.New()
	tmpl.Prompt = "template: "
	tmpl.Placeholder = "Hello, ${0}!"
	tmpl.Width = 60
	tmpl.SetValue(template)
	tmpl.Focus()

	args := textinput.New()
	args.Prompt = "args: "
	args.Placeholder = "string:world u8:7 f64:2.5"
	args.Width = 60

	m := &interactiveModel{
		pipeline: p,
		cfg:      cfg,
		inputs:   []textinput.Model{tmpl, args},
	}
	m.refresh()
	return m, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.refresh()
	return m, tea.Batch(cmds...)
}

// refresh re-expands the template with the current arguments.
func (m *interactiveModel) refresh() {
	m.result, m.units, m.err = "", nil, nil

	args, err := parseArgs(strings.Fields(m.inputs[fieldArgs].Value()))
	if err != nil {
		m.err = err
		return
	}
	units, text, err := m.pipeline.render(m.inputs[fieldTemplate].Value(), args)
	if err != nil {
		m.err = err
		return
	}
	m.units, m.result = units, text
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("textfmt"))
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(m.cfg.Encoding.To))
	b.WriteString("\n\n")

	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else {
		b.WriteString(labelStyle.Render("result: "))
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("units:  "))
		b.WriteString(fmt.Sprintf("% x", m.units))
		b.WriteString(typeStyle.Render(fmt.Sprintf(" (%d)", len(m.units))))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("types: " + strings.Join(argTypeNames(), " ")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field • esc quit"))

	return b.String()
}

func argTypeNames() []string {
	names := make([]string, 0, len(argTypes))
	for name := range argTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runInteractive(cfg *Config, template string) error {
	m, err := newInteractiveModel(cfg, template)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
