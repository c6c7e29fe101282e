// internal/progress/progress.go

// Package progress shows pipeline status on stderr while a run is in flight.
// The default reporter is a Bubble Tea spinner with the latest status line;
// a plain reporter prints one line per update for logs and CI, and a silent
// reporter drops everything.
package progress

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Reporter receives pipeline status updates. Done must be called exactly
// once, after the last status.
type Reporter interface {
	Statusf(format string, args ...any)
	Done()
}

// New picks a reporter: silent when suppressed, otherwise the spinner UI.
func New(suppress bool) Reporter {
	if suppress {
		return silentReporter{}
	}
	return newSpinnerReporter()
}

// Plain returns a reporter that writes one stderr line per update, with no
// terminal control sequences.
func Plain() Reporter {
	return plainReporter{}
}

type silentReporter struct{}

func (silentReporter) Statusf(string, ...any) {}
func (silentReporter) Done()                  {}

type plainReporter struct{}

func (plainReporter) Statusf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func (plainReporter) Done() {}

type statusMsg string

type doneMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	status   string
	quitting bool
}

func newSpinnerModel() spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.status + "\n"
}

type spinnerReporter struct {
	program *tea.Program
	done    chan struct{}
}

func newSpinnerReporter() *spinnerReporter {
	r := &spinnerReporter{
		program: tea.NewProgram(newSpinnerModel(), tea.WithOutput(os.Stderr), tea.WithInput(nil)),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(r.done)
		_, _ = r.program.Run()
	}()
	return r
}

func (r *spinnerReporter) Statusf(format string, args ...any) {
	r.program.Send(statusMsg(fmt.Sprintf(format, args...)))
}

func (r *spinnerReporter) Done() {
	r.program.Send(doneMsg{})
	<-r.done
}
