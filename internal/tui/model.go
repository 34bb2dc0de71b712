// Package tui is a terminal front end for the countdown.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

// Options configures the terminal model.
type Options struct {
	TickInterval time.Duration
	Notifier     timekeeper.Notifier
	// OnDurations is called after the user changes a duration.
	OnDurations func(model.Durations)
}

type tickMsg struct {
	generation int
}

// Model is the Bubble Tea model. It owns its countdown state and applies
// every message on the program's event loop.
type Model struct {
	state      timekeeper.State
	options    Options
	generation int
	banner     string
	width      int

	help help.Model
	bar  progress.Model
}

// New creates an idle work countdown.
func New(durations model.Durations, options Options) Model {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return Model{
		state:   timekeeper.NewState(durations),
		options: options,
		help:    help.New(),
		bar:     progress.New(progress.WithSolidFill(string(colorAccent)), progress.WithoutPercentage()),
	}
}

// State returns the current countdown state.
func (m Model) State() timekeeper.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.bar.Width = clampWidth(msg.Width - 4)
		return m, nil

	case tickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		cmd := m.dispatch(timekeeper.Tick{})
		if m.state.Running {
			return m, tea.Batch(cmd, m.tick())
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Toggle):
		m.banner = ""
		return m, m.dispatch(timekeeper.Toggle{})
	case key.Matches(msg, keys.Reset):
		m.banner = ""
		return m, m.dispatch(timekeeper.Reset{})
	case key.Matches(msg, keys.Work):
		return m, m.dispatch(timekeeper.SelectMode{Mode: model.ModeWork})
	case key.Matches(msg, keys.ShortBreak):
		return m, m.dispatch(timekeeper.SelectMode{Mode: model.ModeShortBreak})
	case key.Matches(msg, keys.LongBreak):
		return m, m.dispatch(timekeeper.SelectMode{Mode: model.ModeLongBreak})
	case key.Matches(msg, keys.Longer):
		return m, m.adjustDuration(1)
	case key.Matches(msg, keys.Shorter):
		return m, m.adjustDuration(-1)
	}
	return m, nil
}

func (m *Model) adjustDuration(delta int) tea.Cmd {
	mode := m.state.Mode
	before := m.state.Durations
	cmd := m.dispatch(timekeeper.DurationChanged{Mode: mode, Minutes: before.Minutes(mode) + delta})
	if m.state.Durations != before && m.options.OnDurations != nil {
		m.options.OnDurations(m.state.Durations)
	}
	return cmd
}

// dispatch applies msg and turns the requested effects into commands.
func (m *Model) dispatch(msg timekeeper.Message) tea.Cmd {
	var effects []timekeeper.Effect
	m.state, effects = timekeeper.Apply(m.state, msg)

	var cmds []tea.Cmd
	for _, effect := range effects {
		switch effect := effect.(type) {
		case timekeeper.StartTicker:
			m.generation++
			cmds = append(cmds, m.tick())
		case timekeeper.StopTicker:
			m.generation++
		case timekeeper.Notify:
			m.banner = fmt.Sprintf("%s: %s", effect.Title, effect.Message)
			if m.options.Notifier != nil {
				m.options.Notifier.Notify(effect.Title, effect.Message)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.options.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pomodoro"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(clockStyle.Render(m.state.Clock()))
	b.WriteString("\n")
	if fraction, ok := m.state.Fraction(); ok {
		b.WriteString(m.bar.ViewAs(fraction))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.statusLine()))
	if m.banner != "" {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(m.banner))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))

	return appStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		label := fmt.Sprintf("%s %dm", mode.Label(), m.state.Durations.Minutes(mode))
		if mode == m.state.Mode {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) statusLine() string {
	switch m.state.Phase() {
	case timekeeper.PhaseRunning:
		return "running"
	case timekeeper.PhaseCompleted:
		return "finished - press r to reset"
	default:
		return "paused"
	}
}

func clampWidth(width int) int {
	const (
		minWidth = 10
		maxWidth = 60
	)
	if width < minWidth {
		return minWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}
