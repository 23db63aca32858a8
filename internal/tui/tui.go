// Package tui provides a Bubble Tea terminal user interface for msr2braille.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grame-cncm/libmusicxml-sub019/internal/batch"
	"github.com/grame-cncm/libmusicxml-sub019/internal/braille"
	"github.com/grame-cncm/libmusicxml-sub019/internal/config"
	"github.com/grame-cncm/libmusicxml-sub019/internal/translate"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateTranslating
	StateComplete
	StateViewing
	StateError
)

var encodings = []string{"utf8", "ascii", "utf16"}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   translate.Level
}

// eventBuffer collects manager events between ticks.
type eventBuffer struct {
	mu     sync.Mutex
	events []translate.Event
}

func (b *eventBuffer) add(e translate.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *eventBuffer) drain() []translate.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	viewport  viewport.Model
	settings  *config.Settings
	logs      []LogEntry
	scores    []string
	results   []*batch.Result
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *batch.Manager
	events  *eventBuffer

	done   int32
	failed int32
	total  int32

	// Viewer
	selected  int
	pages     []string
	page      int
	showASCII bool

	// Options
	verbose  bool
	encoding int

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "scores/minuet.yaml scores/inventions/"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	vp := viewport.New(settings.CellsPerLine+4, settings.LinesPerPage+2)

	ctx, cancel := context.WithCancel(context.Background())

	encoding := 0
	for i, e := range encodings {
		if e == strings.ToLower(settings.OutputEncoding) {
			encoding = i
		}
	}

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		viewport:  vp,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		events:    &eventBuffer{},
		encoding:  encoding,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// InitDoneMsg is sent when the score files are loaded.
	InitDoneMsg struct {
		Scores  []string
		Manager *batch.Manager
		Err     error
	}

	// TranslateDoneMsg is sent when all scores are translated.
	TranslateDoneMsg struct {
		Results []*batch.Result
		Done    int32
		Failed  int32
		Total   int32
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateInitializing, StateTranslating:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			case StateViewing:
				m.state = StateComplete
			}
			return m, nil

		case "enter":
			switch m.state {
			case StateInput:
				if strings.TrimSpace(m.textInput.Value()) != "" {
					m.state = StateInitializing
					return m, tea.Batch(m.initializeTranslation(), m.spinner.Tick, m.tickProgress())
				}
			case StateComplete:
				m.openViewer()
				return m, nil
			}

		case "tab":
			if m.state == StateInput {
				m.encoding = (m.encoding + 1) % len(encodings)
				return m, nil
			}

		case "ctrl+k":
			if m.state == StateInput {
				m.settings.IncludeClefs = !m.settings.IncludeClefs
				return m, nil
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.settings.NoTempos = !m.settings.NoTempos
				return m, nil
			}

		case "ctrl+b":
			if m.state == StateInput {
				m.settings.NoBrailleMusicHeadings = !m.settings.NoBrailleMusicHeadings
				return m, nil
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "up", "k":
			if m.state == StateComplete && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == StateComplete && m.selected < len(m.results)-1 {
				m.selected++
			}

		case "left", "h":
			if m.state == StateViewing && m.page > 0 {
				m.page--
				m.viewport.SetContent(m.pages[m.page])
			}

		case "right", "l":
			if m.state == StateViewing && m.page < len(m.pages)-1 {
				m.page++
				m.viewport.SetContent(m.pages[m.page])
			}

		case "a":
			if m.state == StateViewing {
				m.showASCII = !m.showASCII
				m.loadPages()
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		m.drainEvents()
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.scores = msg.Scores
			m.manager = msg.Manager
			m.state = StateTranslating
			cmds = append(cmds, m.startTranslation())
		}

	case TranslateDoneMsg:
		m.drainEvents()
		m.results = msg.Results
		m.done, m.failed, m.total = msg.Done, msg.Failed, msg.Total
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.selected = 0
		}

	case TickMsg:
		if m.state == StateInitializing || m.state == StateTranslating {
			m.drainEvents()
			if m.manager != nil {
				m.done, m.failed, m.total = m.manager.GetProgress()
			}
			var percent float64
			if m.total > 0 {
				percent = float64(m.done) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	switch m.state {
	case StateInput:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateViewing:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.scores = nil
	m.results = nil
	m.err = nil
	m.done, m.failed, m.total = 0, 0, 0
	m.manager = nil
	m.events = &eventBuffer{}
	m.pages = nil
	m.page = 0
	m.selected = 0
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
}

func (m *Model) drainEvents() {
	for _, e := range m.events.drain() {
		if e.Level == translate.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
	}
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

func (m *Model) openViewer() {
	if m.selected >= len(m.results) || m.results[m.selected] == nil || m.results[m.selected].Braille == nil {
		return
	}
	m.state = StateViewing
	m.page = 0
	m.loadPages()
}

// loadPages renders the selected score, one string per braille page.
func (m *Model) loadPages() {
	enc := braille.EncodingUTF8
	if m.showASCII {
		enc = braille.EncodingASCII
	}
	text := braille.NewEncoder(braille.Config{Encoding: enc}).Render(m.results[m.selected].Braille)
	m.pages = strings.Split(text, "\f")
	if m.page >= len(m.pages) {
		m.page = len(m.pages) - 1
	}
	m.viewport.SetContent(m.pages[m.page])
	m.viewport.GotoTop()
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⠍ msr2braille"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Translate scores into braille music"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateTranslating:
		b.WriteString(m.viewTranslating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateViewing:
		b.WriteString(m.viewViewing())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter score files or directories:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Include clef changes (ctrl+k)\n", check(m.settings.IncludeClefs)))
	b.WriteString(fmt.Sprintf("  %s Leave out tempos (ctrl+t)\n", check(m.settings.NoTempos)))
	b.WriteString(fmt.Sprintf("  %s No music headings (ctrl+b)\n", check(m.settings.NoBrailleMusicHeadings)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", check(m.verbose)))
	b.WriteString(fmt.Sprintf("  Encoding: %s (tab)\n", encodings[m.encoding]))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Page: %d cells x %d lines, %d measures per line",
		m.settings.CellsPerLine, m.settings.LinesPerPage, m.settings.MeasuresPerLine)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output path: %s", m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading scores..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewTranslating() string {
	var b strings.Builder

	if len(m.scores) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Found %d score(s):", len(m.scores))))
		b.WriteString("\n")
		for _, s := range m.scores {
			b.WriteString(scoreStyle.Render(fmt.Sprintf("  ♪ %s", s)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var percent float64
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Scores: %d/%d | Failed: %d", m.done, m.total, m.failed)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"Translation complete\n\nScores: %d\nFailed: %d",
		m.done, m.failed,
	)))
	b.WriteString("\n\n")

	for i, r := range m.results {
		if r == nil {
			continue
		}
		line := fmt.Sprintf("%s  %s", r.Title, resultSummary(r))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func resultSummary(r *batch.Result) string {
	if r.Err != nil {
		return errorStyle.Render("failed: " + r.Err.Error())
	}
	summary := fmt.Sprintf("%d pages → %s", len(r.Braille.Pages), r.Output)
	if r.Warnings > 0 {
		return warningStyle.Render(fmt.Sprintf("%s (%d warnings)", summary, r.Warnings))
	}
	return successStyle.Render(summary)
}

func (m Model) viewViewing() string {
	var b strings.Builder

	r := m.results[m.selected]
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s: page %d/%d", r.Title, m.page+1, len(m.pages))))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case translate.LevelError:
			style = errorStyle
			prefix = "✗"
		case translate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case translate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case translate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: translate • tab: encoding • esc: quit"
	case StateInitializing, StateTranslating:
		return "esc: cancel"
	case StateComplete:
		return "↑/↓: select • enter: view • r: new translation • q: quit"
	case StateViewing:
		return "←/→: page • a: braille ascii • esc: back"
	case StateError:
		return "r: new translation • q: quit"
	}
	return ""
}

// splitInputs splits the text input on whitespace and commas.
func splitInputs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// initializeTranslation loads the score files and creates the manager.
func (m *Model) initializeTranslation() tea.Cmd {
	inputs := splitInputs(m.textInput.Value())

	settings := *m.settings
	settings.OutputEncoding = encodings[m.encoding]
	ctx := m.ctx
	events := m.events

	return func() tea.Msg {
		if err := settings.Validate(); err != nil {
			return InitDoneMsg{Err: err}
		}

		manager := batch.NewManager(&settings, events.add)
		if err := manager.Initialize(ctx, inputs); err != nil {
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{
			Scores:  manager.GetScoreNames(),
			Manager: manager,
		}
	}
}

// startTranslation runs the manager in the background.
func (m *Model) startTranslation() tea.Cmd {
	manager := m.manager
	ctx := m.ctx

	return func() tea.Msg {
		if manager == nil {
			return TranslateDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := manager.Start(ctx)
		done, failed, total := manager.GetProgress()

		return TranslateDoneMsg{
			Results: manager.Results(),
			Done:    done,
			Failed:  failed,
			Total:   total,
			Err:     err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
