// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     shell
// Description: Bubbletea model of the interactive text value shell
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mystring/foundation/core/log"
	"github.com/msto63/mystring/foundation/utils/textvalue"
	"github.com/msto63/mystring/internal/ops"
	"github.com/msto63/mystring/pkg/core/config"
)

const (
	headerHeight = 2 // title + blank line
	footerHeight = 5 // blank line, input, status bar, help with margin
)

// EntryKind classifies a scroll-back line
type EntryKind int

const (
	EntryInput EntryKind = iota
	EntryResult
	EntryError
	EntryInfo
)

// Entry is one line of the scroll-back
type Entry struct {
	Kind      EntryKind
	Operation string
	Text      string
}

// Config holds shell configuration
type Config struct {
	Initial     string
	Policy      textvalue.Policy
	Prompt      string
	HistorySize int
	Registry    *ops.Registry
	Logger      *log.Logger

	// ConfigUpdates delivers reloaded configurations; nil disables reloading
	ConfigUpdates <-chan *config.Config

	// PinPolicy keeps Policy across reloads, e.g. when set by a flag
	PinPolicy bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Policy:      textvalue.PolicyDefensive,
		Prompt:      "mystring> ",
		HistorySize: 100,
	}
}

// Model is the Bubbletea model of the shell
type Model struct {
	width    int
	height   int
	ready    bool
	quitting bool

	input    textinput.Model
	viewport viewport.Model

	value    *textvalue.TextValue
	registry *ops.Registry
	logger   *log.Logger

	// Scroll-back, capped at historySize
	entries     []Entry
	historySize int

	// Input history
	inputHistory []string
	historyIndex int // -1 while editing a new line
	currentInput string

	configUpdates <-chan *config.Config
	pinPolicy     bool
}

// configReloadedMsg carries a configuration reloaded from disk
type configReloadedMsg struct {
	cfg *config.Config
}

// New creates a new shell model
func New(cfg Config) Model {
	defaults := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.HistorySize < 1 {
		cfg.HistorySize = defaults.HistorySize
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if cfg.Registry == nil {
		cfg.Registry = ops.Default(cfg.Logger)
	}

	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(cfg.Prompt)
	ti.Placeholder = "operation [args] ... (help for a list)"
	ti.Focus()

	logger := cfg.Logger.WithFields(log.Fields{
		"component":     "shell",
		"policy_pinned": cfg.PinPolicy,
	})

	m := Model{
		input:        ti,
		value:        textvalue.New(cfg.Initial, textvalue.WithPolicy(cfg.Policy)),
		registry:     cfg.Registry,
		logger:       logger,
		historySize:  cfg.HistorySize,
		historyIndex: -1,

		configUpdates: cfg.ConfigUpdates,
		pinPolicy:     cfg.PinPolicy,
	}
	m.push(Entry{Kind: EntryInfo, Text: fmt.Sprintf("policy %s, type help for operations", cfg.Policy)})
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForConfig())
}

// waitForConfig blocks on the next reloaded configuration
func (m Model) waitForConfig() tea.Cmd {
	if m.configUpdates == nil {
		return nil
	}
	ch := m.configUpdates
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 2

		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 3 {
			viewportHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.syncViewport()

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, m.waitForConfig()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.clear()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.historyIndex = -1
		m.currentInput = ""
		if line == "" {
			return m, nil
		}
		m.remember(line)
		if m.submit(line) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.input.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.inputHistory[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.input.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one input line and reports whether the shell should exit
func (m *Model) submit(line string) bool {
	m.push(Entry{Kind: EntryInput, Text: line})

	words, err := ops.Tokenize(line)
	if err != nil {
		m.fail(err)
		return false
	}
	if len(words) == 0 {
		return false
	}

	switch strings.ToLower(words[0].Text) {
	case "quit", "exit":
		return true
	case "help", "?":
		m.help()
		return false
	case "clear":
		m.clear()
		return false
	}

	steps, err := ops.ParseChain(words)
	if err != nil {
		m.fail(err)
		return false
	}

	results, err := m.registry.Run(m.value, steps)
	for _, r := range results {
		m.push(Entry{Kind: EntryResult, Operation: r.Operation, Text: r.Render()})
	}
	if err != nil {
		m.fail(err)
	}
	return false
}

func (m *Model) fail(err error) {
	m.logger.LogError(err)
	m.push(Entry{Kind: EntryError, Text: err.Error()})
}

func (m *Model) help() {
	for _, op := range m.registry.Operations() {
		m.push(Entry{Kind: EntryInfo, Text: fmt.Sprintf("%-36s %s", op.Synopsis(), op.Summary)})
	}
	m.push(Entry{Kind: EntryInfo, Text: "chain steps with then, e.g. append ! then reverse; quote \"then\" to use it as text"})
}

// applyConfig takes over the settings that can change while running
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if !m.pinPolicy {
		m.value.SetPolicy(cfg.Policy())
	}
	m.input.Prompt = PromptStyle.Render(cfg.Shell.Prompt)
	m.historySize = cfg.Shell.HistorySize
	m.logger.Info("configuration applied", log.Fields{
		"policy": m.value.Policy().String(),
		"pinned": m.pinPolicy,
	})
	m.push(Entry{Kind: EntryInfo, Text: fmt.Sprintf("configuration reloaded, policy %s", m.value.Policy())})
}

// push appends to the scroll-back and drops the oldest entries past the cap
func (m *Model) push(e Entry) {
	m.entries = append(m.entries, e)
	if len(m.entries) > m.historySize {
		m.entries = m.entries[len(m.entries)-m.historySize:]
	}
	m.syncViewport()
}

func (m *Model) clear() {
	m.entries = nil
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoBottom()
}

func (m Model) renderEntries() string {
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = renderEntry(e)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) remember(line string) {
	if len(m.inputHistory) > 0 && m.inputHistory[len(m.inputHistory)-1] == line {
		return
	}
	m.inputHistory = append(m.inputHistory, line)
	if len(m.inputHistory) > m.historySize {
		m.inputHistory = m.inputHistory[len(m.inputHistory)-m.historySize:]
	}
}

// Value returns the current contents of the text value
func (m Model) Value() string {
	return m.value.String()
}

// Entries returns a copy of the scroll-back
func (m Model) Entries() []Entry {
	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("mystring shell"))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderEntries())
	}

	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func renderEntry(e Entry) string {
	switch e.Kind {
	case EntryInput:
		return InputEchoStyle.Render("> " + e.Text)
	case EntryResult:
		return OperationStyle.Render(fmt.Sprintf("%-10s", e.Operation)) + " " + ResultStyle.Render(e.Text)
	case EntryError:
		return ErrorStyle.Render("error: " + e.Text)
	default:
		return InfoStyle.Render(e.Text)
	}
}

func (m Model) renderStatusBar() string {
	content := "value " + StatusValueStyle.Render(strconv.Quote(m.value.String())) +
		fmt.Sprintf("  length %d  policy %s", m.value.Len(), m.value.Policy())
	if m.width > 2 {
		return StatusBarStyle.Width(m.width - 2).Render(content)
	}
	return StatusBarStyle.Render(content)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "run"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("PgUp/PgDn", "scroll"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Esc", "quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the shell and blocks until it exits
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg))
	_, err := p.Run()
	return err
}
