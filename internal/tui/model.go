package tui

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"darkroom/internal/batch"
)

// recentRows is how many finished files stay visible under the bar.
const recentRows = 8

type Model struct {
	updates <-chan batch.FileUpdate
	tracker *batch.Tracker
	cancel  context.CancelFunc

	opName     string
	started    time.Time
	width      int
	current    string
	recent     []batch.Item
	cancelling bool
	quitting   bool
}

type doneMsg struct{}

type updateMsg batch.FileUpdate

type tickMsg time.Time

// NewModel builds the progress view for one batch run. cancel is invoked
// when the operator presses ctrl+c or q; the batch then winds down at the
// next file boundary and closes the update channel.
func NewModel(opName string, files []string, updates <-chan batch.FileUpdate, cancel context.CancelFunc) Model {
	tracker := batch.NewTracker(len(files))
	tracker.Seed(files)
	return Model{
		updates: updates,
		tracker: tracker,
		cancel:  cancel,
		opName:  opName,
		started: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(listenForUpdates(m.updates), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		update := batch.FileUpdate(msg)
		m.tracker.Apply(update)
		if update.State == batch.StateProcessing {
			m.current = update.Path
		} else {
			if update.Path == m.current {
				m.current = ""
			}
			m.recent = append(m.recent, batch.Item{Path: update.Path, State: update.State, Err: update.Err})
			if len(m.recent) > recentRows {
				m.recent = m.recent[len(m.recent)-recentRows:]
			}
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		if m.cancelling {
			m.tracker.CancelPending()
		}
		m.quitting = true
		return m, tea.Quit
	case tickMsg:
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.cancelling {
				m.cancelling = true
				m.cancel()
			}
			return m, nil
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	lines := []string{
		titleStyle.Render("darkroom 🎞  " + m.opName),
		labelStyle.Render(fmt.Sprintf("Files: %d/%d", m.tracker.Terminal(), m.tracker.Total())) +
			dimStyle.Render(fmt.Sprintf("  skipped:%d failed:%d", m.tracker.Skipped(), m.tracker.Failed())),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s  ETA: %s",
			time.Since(m.started).Round(time.Second), m.etaText())),
		barStyle.Render(renderBar(barWidth, m.tracker.Percent())),
	}

	if m.cancelling {
		lines = append(lines, warnStyle.Render("Cancelling after the current file..."))
	} else if m.current != "" {
		lines = append(lines, labelStyle.Render("→ "+filepath.Base(m.current)))
	}

	for _, item := range m.recent {
		lines = append(lines, renderItem(item))
	}

	return strings.Join(lines, "\n")
}

func (m Model) etaText() string {
	eta, ok := m.tracker.ETA()
	if !ok {
		return "--"
	}
	return eta.Round(time.Second).String()
}

func renderItem(item batch.Item) string {
	name := filepath.Base(item.Path)
	switch item.State {
	case batch.StateCompleted:
		return successStyle.Render("  ✓ ") + labelStyle.Render(name)
	case batch.StateSkipped:
		return dimStyle.Render("  - " + name + " (skipped)")
	case batch.StateFailed:
		line := failStyle.Render("  ✗ ") + labelStyle.Render(name)
		if item.Err != "" {
			line += dimStyle.Render("  " + item.Err)
		}
		return line
	case batch.StateCancelled:
		return dimStyle.Render("  · " + name + " (cancelled)")
	default:
		return dimStyle.Render("  " + name)
	}
}

func listenForUpdates(updates <-chan batch.FileUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle     = lipgloss.NewStyle().Foreground(ColorDim)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	failStyle    = lipgloss.NewStyle().Foreground(ColorFail)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarn)
)
