package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/linuxsys/internal/transfer"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// TransferProgressMsg is a [tea.Msg] containing [transfer.Progress]
// information.
type TransferProgressMsg struct {
	t    time.Time
	data transfer.Progress
}

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler       *Handler
	transferHandler *transfer.Handler

	fullWidthWithBorders int

	transferData transfer.Progress

	transferProgress progress.Model
	logsViewport     viewport.Model
	logs             []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, transferHandler *transfer.Handler, cancel context.CancelFunc) TeaModel {
	transferProgress := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(80),
	)

	logsViewport := viewport.New(80, 20)

	return TeaModel{
		uiHandler:        uiHandler,
		transferHandler:  transferHandler,
		transferProgress: transferProgress,
		transferData:     transfer.Progress{},
		logsViewport:     logsViewport,
		logs:             make([]string, 0, 100),
		cancel:           cancel,
		ready:            false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		updateTransferProgress(m.transferHandler),
	)
}

// updateTransferProgress produces a [tea.Cmd] for later scheduling in a
// [tea.Program]. When executed, a [TransferProgressMsg] with the
// [transfer.Handler]'s [transfer.Progress] is returned.
func updateTransferProgress(h *transfer.Handler) tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { //nolint:mnd
		return TransferProgressMsg{
			t:    t,
			data: h.Progress(),
		}
	})
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2
		m.transferProgress.Width = m.fullWidthWithBorders

		// Upper panel is fixed; the logs viewport takes the remainder.
		viewportHeight := m.height - 9 //nolint:mnd

		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = viewportHeight

		if len(m.logs) > 0 {
			logs := lipgloss.NewStyle().
				Width(m.logsViewport.Width).
				Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

			m.logsViewport.SetContent(logs)
			m.logsViewport.GotoBottom()
		}

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case TransferProgressMsg:
		m.transferData = msg.data

		cmds = append(cmds,
			m.transferProgress.SetPercent(float64(m.transferData.ProgressPct)/100), //nolint:mnd
			updateTransferProgress(m.transferHandler),
		)

	case LogMsg:
		if len(m.logs) >= 100 { //nolint:mnd
			m.logs = m.logs[1:]
		}

		m.logs = append(m.logs, string(msg))

		logs := lipgloss.NewStyle().
			Width(m.logsViewport.Width).
			Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

		m.logsViewport.SetContent(logs)
		m.logsViewport.GotoBottom()

	case progress.FrameMsg:
		updated, cmd := m.transferProgress.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.transferProgress = progressModel
		}
		cmds = append(cmds, cmd)
	}

	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	var s strings.Builder

	transferView := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.fullWidthWithBorders).Render("Transfer"),
		m.transferProgress.View(),
		infoStyle.Render(fmt.Sprintf("%s of %s (%d%%)",
			humanize.IBytes(m.transferData.DoneBytes),
			humanize.IBytes(m.transferData.TotalBytes),
			m.transferData.ProgressPct,
		)),
	)

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.Render("q: quit • ctrl+c: cancel transfer")

	s.WriteString(borderStyle.Width(m.fullWidthWithBorders).Render(transferView))
	s.WriteString("\n")
	s.WriteString(logsSection)
	s.WriteString("\n")
	s.WriteString(helpSection)

	return s.String()
}
