// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planisphere/internal/logging"
	"github.com/litescript/ls-planisphere/internal/state"
	"github.com/litescript/ls-planisphere/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers a periodic rebuild at the view's instant.
	TickMsg time.Time

	// AnimTickMsg triggers spinner updates.
	AnimTickMsg time.Time

	// SnapshotMsg signals a new sky snapshot is available.
	SnapshotMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a rebuild error.
	ErrorMsg struct {
		Error error
	}
)

const title = "ls-planisphere"

// Options configures the root model.
type Options struct {
	ObserverName string
	FieldOfView  float64
	Location     *time.Location
	Logger       *logging.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	log   *logging.Logger

	observerName string

	// UI state
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int // Animation tick for the spinner

	skyView SkyViewModel

	// Data snapshot (updated on SnapshotMsg)
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	skyView := NewSkyViewModel(stateMgr).SetLocation(opts.Location)
	if opts.FieldOfView > 0 {
		skyView = skyView.SetFOV(opts.FieldOfView)
	}
	return Model{
		state:        stateMgr,
		log:          log.Named("ui"),
		observerName: opts.ObserverName,
		skyView:      skyView,
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.skyView.rebuild(),
		tickCmd(m.state.RefreshInterval()),
		animTickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.skyView, cmd = m.skyView.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Title line and footer
		m.skyView = m.skyView.SetSize(msg.Width, msg.Height-2)

	case TickMsg:
		cmds = append(cmds, tickCmd(m.state.RefreshInterval()), m.skyView.rebuild())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		m.skyView = m.skyView.UpdateData(m.snapshot)
		m.statusMsg = ""

	case ErrorMsg:
		m.log.Error("rebuild failed: %v", msg.Error)
		m.statusMsg = msg.Error.Error()
		m.snapshot = m.state.Snapshot()

	default:
		var cmd tea.Cmd
		m.skyView, cmd = m.skyView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderTitle() + "\n" + m.skyView.View() + "\n" + m.renderFooter()
}

func (m Model) renderTitle() string {
	var b strings.Builder
	b.WriteString("  ")
	runes := []rune(title)
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(gradientColor(col, len(runes))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	where := m.snapshot.Observer
	observer := fmt.Sprintf("(%.2f°, %.2f°)", where.LatDeg(), where.LonDeg())
	if m.observerName != "" {
		observer = m.observerName + " " + observer
	}
	b.WriteString(muted.Render(fmt.Sprintf("  %s · v%s", observer, version.Version)))
	return b.String()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	// Animated spinner frames
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.statusMsg != "":
		status = errorStyle.Render("ERROR: " + m.statusMsg)
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case !m.snapshot.LastBuild.IsZero():
		status = accentStyle.Render(spinner) + dimStyle.Render(" built in "+m.snapshot.BuildDuration.Round(time.Microsecond).String())
		if n := len(m.snapshot.Events); n > 0 {
			e := m.snapshot.Events[n-1]
			status += dimStyle.Render(fmt.Sprintf(" | %s %s", e.Body, strings.ToLower(string(e.Type))))
		}
	default:
		status = accentStyle.Render(spinner) + dimStyle.Render(" Computing sky...")
	}

	help := dimStyle.Render("arrows: pan | hjkl: cursor | enter: centre | +/-: zoom | [/]: ±1h | {/}: ±1d | 0: now | n: labels | c: lines | q: quit")
	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}
