package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/infra/netfile"
)

type step int

const (
	stepInputFile step = iota
	stepOutputFile
	stepOverwrite
	stepRunning
	stepDone
)

const maxNoticesShown = 10

type model struct {
	theme Theme
	deps  Deps

	step   step
	input  textinput.Model
	spin   spinner.Model
	errMsg string

	inputPath  string
	outputPath string

	sum     domain.Summary
	notices []string
	runErr  error

	ch chan expandDoneMsg
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "subnets.txt"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		step:  stepInputFile,
		input: ti,
		spin:  sp,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case expandDoneMsg:
		m.step = stepDone
		m.sum = msg.sum
		m.notices = msg.notices
		m.runErr = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.step == stepRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.step == stepDone {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.step {
	case stepInputFile:
		if value == "" {
			m.errMsg = "Enter a filename."
			return m, nil
		}
		if !netfile.Exists(value) {
			m.errMsg = "File not found. Enter the correct filename or press Esc to exit."
			return m, nil
		}
		m.inputPath = value
		m.step = stepOutputFile
		m.errMsg = ""
		m.input.Reset()
		m.input.Placeholder = "hosts.txt"
		return m, nil

	case stepOutputFile:
		if value == "" {
			m.errMsg = "Enter a filename."
			return m, nil
		}
		m.outputPath = value
		m.errMsg = ""
		if netfile.Exists(value) && !m.deps.Config.Output.Force {
			m.step = stepOverwrite
			m.input.Reset()
			m.input.Placeholder = "y/n"
			return m, nil
		}
		return m.startRun(true)

	case stepOverwrite:
		switch strings.ToLower(value) {
		case "y":
			return m.startRun(true)
		case "n":
			m.step = stepOutputFile
			m.errMsg = ""
			m.input.Reset()
			m.input.Placeholder = "hosts.txt"
			return m, nil
		default:
			m.errMsg = "Cannot recognize your answer. Type y or n, or press Esc to exit."
			return m, nil
		}

	case stepDone:
		return m, tea.Quit
	}

	return m, nil
}

func (m model) startRun(overwrite bool) (tea.Model, tea.Cmd) {
	m.step = stepRunning
	m.errMsg = ""
	ch, cmd := startExpandAsync(m.deps, m.inputPath, m.outputPath, overwrite)
	m.ch = ch
	return m, tea.Batch(m.spin.Tick, cmd)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("hostexpand"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Expand IPv4 subnet lists into usable host addresses"))
	b.WriteString("\n\n")

	switch m.step {
	case stepInputFile:
		b.WriteString("Enter the name of the file with a list of IPv4 subnets:\n\n")
		b.WriteString(m.input.View())
	case stepOutputFile:
		b.WriteString("Enter the name for the output file:\n\n")
		b.WriteString(m.input.View())
	case stepOverwrite:
		b.WriteString(fmt.Sprintf("%s already exists. Overwrite it? (y/n)\n\n", m.outputPath))
		b.WriteString(m.input.View())
	case stepRunning:
		b.WriteString(m.spin.View())
		b.WriteString(" Processing...")
	case stepDone:
		b.WriteString(m.renderDone())
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Warn.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(helpFor(m.step)))

	return m.theme.Card.Render(b.String())
}

func (m model) renderDone() string {
	var b strings.Builder

	if m.runErr != nil {
		b.WriteString(m.theme.Warn.Render("Failed: " + m.runErr.Error()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(fmt.Sprintf("Done! %d host(s) written to %s\n\n", m.sum.Hosts, m.outputPath))
	}

	b.WriteString(fmt.Sprintf("Networks: %d", m.sum.Networks))
	if m.sum.Coerced > 0 {
		b.WriteString(fmt.Sprintf(" (%d coerced)", m.sum.Coerced))
	}
	if m.sum.Rejected > 0 {
		b.WriteString(fmt.Sprintf(", rejected: %d", m.sum.Rejected))
	}
	b.WriteString("\n")

	if len(m.notices) > 0 {
		b.WriteString("\n")
		shown := m.notices
		if len(shown) > maxNoticesShown {
			shown = shown[:maxNoticesShown]
		}
		for _, notice := range shown {
			b.WriteString(m.theme.Warn.Render(notice))
			b.WriteString("\n")
		}
		if extra := len(m.notices) - maxNoticesShown; extra > 0 {
			b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("... and %d more (see logs)", extra)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func helpFor(s step) string {
	switch s {
	case stepRunning:
		return "expanding..."
	case stepDone:
		return "press any key to exit"
	default:
		return "enter: confirm • esc: quit"
	}
}
