package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// StepTracker shows determinate progress over a known number of
// generation stages.
type StepTracker interface {
	Step(title string)
	Done()
}

// StartSteps creates a step tracker for total stages.
func StartSteps(theme *Theme, detector *HeadlessDetector, title string, total int) StepTracker {
	if detector.IsHeadless() || theme.NoColor {
		return &logSteps{title: title, total: total, writer: os.Stdout}
	}
	return newTeaSteps(theme, title, total)
}

// --- animated tracker ---

type stepMsg string

type stepsDoneMsg struct{}

type teaStepsModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newTeaStepsModel(theme *Theme, title string, total int) teaStepsModel {
	bar := progress.New(
		progress.WithGradient(theme.Primary, theme.Secondary),
		progress.WithWidth(40),
	)
	return teaStepsModel{bar: bar, title: title, total: total}
}

func (m teaStepsModel) Init() tea.Cmd {
	return nil
}

func (m teaStepsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.title = string(msg)
		if m.current < m.total {
			m.current++
		}
		return m, nil
	case stepsDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m teaStepsModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + fmt.Sprintf(" [%d/%d] %s\n", m.current, m.total, m.title)
}

type teaSteps struct {
	program *tea.Program
	once    sync.Once
}

func newTeaSteps(theme *Theme, title string, total int) *teaSteps {
	p := tea.NewProgram(newTeaStepsModel(theme, title, total))
	t := &teaSteps{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return t
}

func (t *teaSteps) Step(title string) {
	t.program.Send(stepMsg(title))
}

func (t *teaSteps) Done() {
	t.once.Do(func() {
		t.program.Send(stepsDoneMsg{})
		t.program.Wait()
	})
}

// --- headless tracker ---

type logSteps struct {
	title   string
	total   int
	current int
	done    bool
	writer  io.Writer
}

func (t *logSteps) Step(title string) {
	if t.current < t.total {
		t.current++
	}
	_, _ = fmt.Fprintf(t.writer, "[%d/%d] %s\n", t.current, t.total, title)
}

func (t *logSteps) Done() {
	if t.done {
		return
	}
	t.done = true
	_, _ = fmt.Fprintf(t.writer, "[%d/%d] %s\n", t.total, t.total, t.title)
}
