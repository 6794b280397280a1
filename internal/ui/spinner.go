package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator for one stage.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// StartSpinner creates a spinner for the given title. Headless runs get
// a log-line spinner instead of an animation.
func StartSpinner(theme *Theme, detector *HeadlessDetector, title string) Spinner {
	if detector.IsHeadless() || theme.NoColor {
		return newLogSpinner(title, os.Stdout)
	}
	return newTeaSpinner(theme, title)
}

// --- animated spinner ---

type spinnerTitleMsg string

type spinnerStopMsg struct{}

type teaSpinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newTeaSpinnerModel(theme *Theme, title string) teaSpinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary))
	return teaSpinnerModel{spinner: s, title: title}
}

func (m teaSpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m teaSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m teaSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// teaSpinner runs the bubbletea program on its own goroutine; Stop is
// safe to call more than once.
type teaSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newTeaSpinner(theme *Theme, title string) *teaSpinner {
	p := tea.NewProgram(newTeaSpinnerModel(theme, title))
	s := &teaSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

func (s *teaSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *teaSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- headless spinner ---

type logSpinner struct {
	title  string
	writer io.Writer
}

func newLogSpinner(title string, w io.Writer) *logSpinner {
	s := &logSpinner{title: title, writer: w}
	_, _ = fmt.Fprintln(w, title)
	return s
}

func (s *logSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintln(s.writer, title)
}

func (s *logSpinner) Stop() {}
