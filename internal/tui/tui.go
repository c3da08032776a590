package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"maxlen/internal/config"
	"maxlen/internal/grapheme"
	"maxlen/internal/logging"
	"maxlen/internal/overflow"
	"maxlen/internal/tui/state"
	"maxlen/internal/tui/util"
	"maxlen/internal/tui/widgets/diff"
	"maxlen/internal/tui/widgets/editor"
	"maxlen/internal/tui/widgets/helpoverlay"
	"maxlen/internal/tui/widgets/statusbar"
	"maxlen/internal/tui/widgets/tagchips"
)

// Result is what the field holds when the TUI exits.
type Result struct {
	Value     string
	State     overflow.TextState
	Cancelled bool
}

// Run shows the length-limited field seeded with initial and blocks until
// the user accepts or cancels. A cancelled run returns initial unchanged.
func Run(cfg config.Config, initial string, noColor bool, logger *slog.Logger) (Result, error) {
	m := newModel(cfg, initial, noColor, logger)
	defer m.close()
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	return final.(*model).result, nil
}

// ===== Host collaborators =====

// liveBuffer is the in-progress edit buffer. commits counts closed
// outermost transactions.
type liveBuffer struct {
	*overflow.AttributedText
	commits int
}

func (b *liveBuffer) EndEditing() {
	if b.Close() {
		b.commits++
	}
}

// committedValue holds the styled value shown while not editing.
type committedValue struct {
	out  overflow.StyledOutput
	sets int
}

func (c *committedValue) SetStyledValue(out overflow.StyledOutput) {
	c.out = out
	c.sets++
}

// ===== Model =====

type copiedMsg struct {
	n   int
	err error
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{n: grapheme.Count(text), err: clipboard.WriteAll(text)}
	}
}

type model struct {
	keys  KeyMap
	input textinput.Model

	styler    *overflow.Styler
	live      *liveBuffer
	committed *committedValue
	unsub     func()

	ui      state.UIState
	noColor bool
	initial string
	result  Result
	log     *slog.Logger

	editor editor.Editor
	status statusbar.StatusBar
	diff   diff.DiffView
	help   helpoverlay.HelpOverlay
}

func newModel(cfg config.Config, initial string, noColor bool, logger *slog.Logger) *model {
	if logger == nil {
		logger = logging.Discard()
	}
	noColor = util.NoColor(noColor)
	unit := cfg.StorageUnit()

	m := &model{
		keys:      DefaultKeyMap(),
		live:      &liveBuffer{AttributedText: overflow.NewAttributedText(initial, unit)},
		committed: &committedValue{},
		noColor:   noColor,
		initial:   initial,
		log:       logger,
		editor:    editor.NewEditor(cfg.Prompt),
		status:    statusbar.NewStatusBar(),
		diff:      diff.NewDiffView(),
		help:      helpoverlay.NewHelpOverlay(),
		ui: state.UIState{
			Mode:       state.INSERT,
			MinCol:     20,
			Limit:      cfg.MaxCharacters,
			Underline:  cfg.UnderlineOverflow,
			Accessible: cfg.AccessibilityOverride,
		},
	}
	m.styler = overflow.New(
		overflow.WithMaxCharacters(cfg.MaxCharacters),
		overflow.WithStyle(cfg.StyleConfig()),
		overflow.WithUnit(unit),
		overflow.WithEditBuffer(m.live),
		overflow.WithCommittedValue(m.committed),
		overflow.WithAccessibility(util.AccessibilitySource(noColor)),
		overflow.WithLogger(logger),
	)
	m.unsub = m.styler.SubscribeValidity(func(valid bool) {
		m.ui = state.SetValid(m.ui, valid)
		m.log.Info("field validity", "valid", valid, "count", m.styler.CharacterCount(), "max", m.styler.MaxCharacters())
	})

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.CharLimit = 0
	ti.Placeholder = cfg.Placeholder
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	m.input = ti

	m.styler.SetText(initial)
	m.styler.ContentChanged(initial, true)
	m.ui = state.SetValid(m.ui, m.styler.Valid())
	return m
}

func (m *model) close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

func (m *model) Init() tea.Cmd { return nil }

// Update handles all TUI interactions.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width)
		m.input.Width = max(0, msg.Width-2)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.ui.Notice = "copy failed: " + msg.err.Error()
			m.log.Warn("clipboard write failed", "err", msg.err)
		} else {
			m.ui.Notice = fmt.Sprintf("copied %d chars", msg.n)
		}
		return m, nil

	case tea.KeyMsg:
		// Bindings shared by both modes.
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m.cancel()
		case key.Matches(msg, m.keys.Accept):
			return m.accept()
		case key.Matches(msg, m.keys.Trim):
			m.trim()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, copyCmd(m.styler.TrimmedText())
		}

		if m.ui.Mode == state.INSERT {
			if key.Matches(msg, m.keys.Command) {
				m.commit()
				return m, nil
			}
			return m.edit(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.cancel()
		case key.Matches(msg, m.keys.Insert):
			m.ui = state.ToggleMode(m.ui)
			m.input.Focus()
			m.liveChanged(m.input.Value())
			m.log.Debug("mode", "mode", "INSERT")
		case key.Matches(msg, m.keys.LimitUp):
			m.setLimit(1)
		case key.Matches(msg, m.keys.LimitDn):
			m.setLimit(-1)
		case key.Matches(msg, m.keys.Underline):
			m.ui = state.ToggleUnderline(m.ui)
			st := m.styler.Style()
			st.UnderlineOverflow = m.ui.Underline
			m.styler.SetStyle(st)
		case key.Matches(msg, m.keys.Access):
			m.ui = state.ToggleAccessible(m.ui)
			m.styler.SetAccessibilityOverride(m.ui.Accessible)
		case key.Matches(msg, m.keys.Layout):
			m.ui = state.ToggleView(m.ui)
			m.ui = state.Resize(m.ui, m.ui.Width)
		case key.Matches(msg, m.keys.Preview):
			m.ui = state.TogglePreview(m.ui)
		case key.Matches(msg, m.keys.Help):
			m.ui = state.ToggleHelp(m.ui)
		}

	default:
		// Paste results and cursor blinks belong to the text input.
		if m.ui.Mode == state.INSERT {
			return m.edit(msg)
		}
	}
	return m, nil
}

// edit forwards msg to the text input and runs a live pass when the
// value changed. A failed paste is reported as a notice.
func (m *model) edit(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.input.Err; err != nil {
		m.ui.Notice = "paste failed: " + err.Error()
		m.log.Warn("clipboard read failed", "err", err)
		m.input.Err = nil
	}
	if v := m.input.Value(); v != before {
		m.liveChanged(v)
		m.ui = state.MarkEdited(m.ui)
	}
	return m, cmd
}

// liveChanged copies v into the live buffer and runs a live pass over it.
func (m *model) liveChanged(v string) {
	m.live.Replace(v)
	m.styler.ContentChanged(v, true)
}

// commit leaves INSERT mode and hands the value to the committed path.
func (m *model) commit() {
	m.ui = state.ToggleMode(m.ui)
	m.input.Blur()
	m.styler.ContentChanged(m.input.Value(), false)
	m.log.Debug("mode", "mode", "CMD")
}

func (m *model) trim() {
	if m.styler.Valid() {
		m.ui.Notice = "Already within limit"
		return
	}
	dropped := m.styler.OverflowCharacterCount()
	m.styler.TrimToMaxLength()
	m.syncInput()
	m.ui = state.MarkTrimmed(m.ui)
	m.log.Info("trimmed", "dropped", dropped, "max", m.styler.MaxCharacters())
}

func (m *model) setLimit(delta int) {
	m.ui = state.BumpLimit(m.ui, delta)
	m.styler.SetMaxCharacters(m.ui.Limit)
	m.ui.Notice = fmt.Sprintf("limit %d", m.ui.Limit)
}

// syncInput pulls content the styler assigned back into the text input.
func (m *model) syncInput() {
	if v := m.styler.Text(); v != m.input.Value() {
		m.input.SetValue(v)
		m.input.CursorEnd()
	}
}

func (m *model) accept() (tea.Model, tea.Cmd) {
	if m.ui.Mode == state.INSERT {
		m.styler.ContentChanged(m.input.Value(), false)
	}
	m.result = Result{Value: m.styler.Text(), State: m.styler.State()}
	return m, tea.Quit
}

func (m *model) cancel() (tea.Model, tea.Cmd) {
	m.result = Result{Value: m.initial, State: overflow.Evaluate(m.initial, m.styler.MaxCharacters()), Cancelled: true}
	return m, tea.Quit
}

// ===== View =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Field (max %d)", m.styler.MaxCharacters())) + "\n\n")

	if m.ui.Mode == state.INSERT && m.input.Value() == "" && m.input.Placeholder != "" {
		b.WriteString("[INSERT]\n")
		b.WriteString(m.input.Prompt + faintStyle.Render(m.input.Placeholder) + "\n")
	} else {
		b.WriteString(m.editor.View(m.ui, m.fieldOutput(), m.cursor(), m.noColor))
	}

	st := m.styler.State()
	b.WriteString(tagchips.View(util.ComputeTags(st, m.ui.Edited, m.ui.Trimmed), m.noColor) + "\n")

	if m.ui.Preview {
		b.WriteString("\n")
		b.WriteString(m.diff.View(m.ui, st.Text, st.Trimmed, m.noColor))
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(m.status.View(m.ui, st)) + "\n")
	b.WriteString(m.help.View(m.ui, m.keys) + "\n")
	return b.String()
}

// fieldOutput is the live buffer while editing and the committed value
// otherwise.
func (m *model) fieldOutput() overflow.StyledOutput {
	if m.ui.Mode == state.INSERT {
		return m.live.Output()
	}
	return m.committed.out
}

// cursor returns the cluster index of the input cursor, or -1 outside
// INSERT mode.
func (m *model) cursor() int {
	if m.ui.Mode != state.INSERT {
		return -1
	}
	return grapheme.ClusterIndex(m.input.Value(), m.input.Position(), grapheme.UnitRune)
}
