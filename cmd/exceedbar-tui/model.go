package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rands/exceedbar"
	"github.com/rands/exceedbar/backends/term"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#303F9F", Dark: "#7986CB"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
)

const defaultWidth = 60

type model struct {
	bar  *exceedbar.Bar
	keys keyMap
	help help.Model

	initialMin      float64
	initialMax      float64
	initialProgress float64
	width           int
	quitting        bool
}

func newModel(plannedMax, progress float64, unit string) model {
	opts := []exceedbar.Option{
		exceedbar.WithRange(0, plannedMax),
		exceedbar.WithProgress(progress),
	}
	if unit != "" {
		opts = append(opts, exceedbar.WithTopTextFormatter(func(s string) string {
			return s + " " + unit
		}))
	}
	bar := exceedbar.New(append(opts, term.Options()...)...)
	return model{
		bar:             bar,
		keys:            defaultKeyMap(),
		help:            help.New(),
		initialMin:      bar.Min(),
		initialMax:      bar.Max(),
		initialProgress: progress,
		width:           defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// step is 5% of the planned maximum, or 1 when there is none.
func (m model) step() float64 {
	if s := m.bar.Max() * 0.05; s > 0 {
		return s
	}
	return 1
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Less):
			m.bar.SetProgress(m.bar.Progress() - m.step())
		case key.Matches(msg, m.keys.More):
			m.bar.SetProgress(m.bar.Progress() + m.step())
		case key.Matches(msg, m.keys.Raise):
			m.bar.SetMax(m.bar.Max() + m.initialStep())
		case key.Matches(msg, m.keys.Lower):
			m.bar.SetMax(m.bar.Max() - m.initialStep())
		case key.Matches(msg, m.keys.Reset):
			m.bar.SetRange(m.initialMin, m.initialMax)
			m.bar.SetProgress(m.initialProgress)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// initialStep moves the maximum by a tenth of its starting value.
func (m model) initialStep() float64 {
	if s := m.initialMax * 0.1; s > 0 {
		return s
	}
	return 1
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	bar, err := term.Render(m.bar, w)
	if err != nil {
		bar = err.Error()
	}

	status := fmt.Sprintf("progress %s of %s",
		exceedbar.DefaultDecimalFormat().FormatNumber(m.bar.Progress()),
		exceedbar.DefaultDecimalFormat().FormatNumber(m.bar.Max()))

	var sb strings.Builder
	sb.WriteString("\n  " + headerStyle.Render("exceedbar") + "\n\n")
	for _, line := range strings.Split(bar, "\n") {
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("\n  " + statusStyle.Render(status) + "\n")
	sb.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return sb.String()
}
