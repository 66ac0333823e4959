// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Thermoquad/stoker/pkg/cinder"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive TUI for the Cinder console",
	Long: `Run the Cinder console in a scrollback TUI.

Commands are typed into the prompt and executed locally on Enter; handler
output and result codes accumulate in a scrollable log. PgUp/PgDn scroll,
Esc or Ctrl+C exits.

The standard command set is registered; startup commands persist in the
EEPROM image named by --image.`,
	RunE: runConsoleTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// TUI styles
var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	tuiHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	tuiOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tuiErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	tuiLogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// consoleTUIModel drives the console TUI
type consoleTUIModel struct {
	it       *cinder.Interpreter
	captured *bytes.Buffer // handler output lands here

	input    textinput.Model
	log      viewport.Model
	lines    []string
	width    int
	height   int
	sized    bool
	quitting bool
}

func initialConsoleTUIModel() (*consoleTUIModel, error) {
	captured := &bytes.Buffer{}
	it, err := newConsoleInterpreter(captured)
	if err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = tuiPromptStyle
	input.CharLimit = cinder.DefaultLineSize - 1
	input.Focus()

	return &consoleTUIModel{
		it:       it,
		captured: captured,
		input:    input,
		width:    80,
		height:   24,
	}, nil
}

func (m *consoleTUIModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m *consoleTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			m.submit()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.log, cmd = m.log.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit feeds the typed line through the interpreter and logs the outcome.
func (m *consoleTUIModel) submit() {
	line := m.input.Value()
	m.input.Reset()

	m.appendLine(tuiPromptStyle.Render("> ") + line)

	for i := 0; i < len(line); i++ {
		m.it.Feed(line[i])
	}
	m.it.Feed(cinder.Terminator)
	result := m.it.Execute()

	if out := m.captured.String(); out != "" {
		for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			m.appendLine(l)
		}
		m.captured.Reset()
	}

	if result == nil {
		m.appendLine(tuiOKStyle.Render(formatResult(nil)))
	} else {
		m.appendLine(tuiErrorStyle.Render(formatResult(result)))
	}
}

func (m *consoleTUIModel) appendLine(line string) {
	m.lines = append(m.lines, line)
	if m.sized {
		m.log.SetContent(strings.Join(m.lines, "\n"))
		m.log.GotoBottom()
	}
}

// resize lays out the viewport under the two header rows and above the
// prompt row.
func (m *consoleTUIModel) resize() {
	logHeight := m.height - 5
	if logHeight < 3 {
		logHeight = 3
	}
	logWidth := m.width - 4
	if logWidth < 20 {
		logWidth = 20
	}

	if !m.sized {
		m.log = viewport.New(logWidth, logHeight)
		m.sized = true
	} else {
		m.log.Width = logWidth
		m.log.Height = logHeight
	}
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()

	m.input.Width = m.width - 6
}

func (m *consoleTUIModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var s strings.Builder
	s.WriteString(tuiTitleStyle.Render("STOKER - CINDER CONSOLE"))
	s.WriteString("\n")
	s.WriteString(tuiHeaderStyle.Render(fmt.Sprintf("Image: %s | %d commands registered | PgUp/PgDn scroll, Esc quits",
		imagePath, m.it.Registry().Len())))
	s.WriteString("\n")

	if m.sized {
		s.WriteString(tuiLogStyle.Render(m.log.View()))
	}
	s.WriteString("\n")
	s.WriteString(m.input.View())

	return s.String()
}

func runConsoleTUI(cmd *cobra.Command, args []string) error {
	m, err := initialConsoleTUIModel()
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}
