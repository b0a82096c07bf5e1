package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/athell/grimoire/engine"
	"github.com/athell/grimoire/world"
)

// inputMode says what the enter key currently submits.
type inputMode int

const (
	modeBusy   inputMode = iota // engine is processing, input ignored
	modeInput                   // next game command
	modeChoice                  // dialog menu selection
)

// rawLine stores an unstyled output line with its classification, so the
// narrative can be re-wrapped and re-styled on terminal resize.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // echoed player input
	isSystem bool // meta-command output
}

// Model is the Bubble Tea model for the game TUI.
type Model struct {
	bridge *bridge

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine
	status   statusSnapshot
	mode     inputMode
	choices  []engine.Choice

	width    int
	height   int
	ready    bool
	quitting bool
	lastCmd  string
}

// New creates a TUI model over the given bridge.
func New(b *bridge) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		bridge:  b,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run loads the realm into an engine, starts it on its own goroutine, and
// runs the Bubble Tea program until the player quits.
func Run(realm *world.Realm) error {
	b := newBridge(realm)
	eng := engine.NewFromRealm(realm, b)
	b.game = eng.Game

	p := tea.NewProgram(New(b), tea.WithAltScreen(), tea.WithMouseCellMotion())
	b.program = p

	go func() {
		engine.NewController(eng).Run()
		p.Send(engineDoneMsg{})
	}()

	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses, window resize, and engine messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if m.mode == modeInput {
				if prev, ok := m.history.Prev(); ok {
					m.input.SetValue(prev)
					m.input.CursorEnd()
				}
			}
			return m, nil

		case "down":
			if m.mode == modeInput {
				if next, ok := m.history.Next(); ok {
					m.input.SetValue(next)
					m.input.CursorEnd()
				} else {
					m.input.SetValue("")
					m.history.ResetCursor()
				}
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case outputMsg:
		m = m.appendLines(msg.lines, msg.system)

	case titleMsg:
		m.rawLines = append(m.rawLines,
			rawLine{},
			rawLine{text: msg.title, kind: kindTitle})
		m.refreshViewport()

	case promptMsg:
		m.status = msg.status
		m.mode = modeInput

	case choiceMsg:
		m.choices = msg.choices
		lines := make([]string, 0, len(msg.choices))
		for i, c := range msg.choices {
			lines = append(lines, fmt.Sprintf("  %d) %s", i+1, c.Text))
		}
		m = m.appendLines(lines, false)
		m.mode = modeChoice

	case engineDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter submits the input line according to the current mode.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" || m.mode == modeBusy {
		return m, nil
	}

	if m.mode == modeChoice {
		return m.submitChoice(input)
	}

	m.history.Push(input)
	m.history.ResetCursor()

	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendEcho(input)
			m = m.appendLines([]string{"Nothing to repeat."}, true)
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendEcho(input)
		m = m.appendLines(output, true)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m = m.appendEcho(input)
	m.mode = modeBusy
	m.bridge.inputCh <- input
	return m, nil
}

// submitChoice resolves a dialog menu selection, by number or by value.
// Anything else goes to the engine verbatim; the dialog machine keeps the
// current node for selections it cannot resolve.
func (m Model) submitChoice(input string) (tea.Model, tea.Cmd) {
	m = m.appendEcho(input)

	value := input
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(m.choices) {
		value = m.choices[n-1].Value
	} else {
		for _, c := range m.choices {
			if strings.EqualFold(c.Value, input) {
				value = c.Value
				break
			}
		}
	}

	m.mode = modeBusy
	m.choices = nil
	m.bridge.choiceCh <- value
	return m, nil
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input)}, false
	}
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /quit         Exit game",
		"  /help         Show this help",
		"  /state        Debug: dump current state",
		"",
		"Game commands:",
		"  look (l)          Describe the room",
		"  look <thing>      Look closely at something",
		"  go <dir>          Move (or just type n/s/e/w/u/d)",
		"  take <item>       Pick something up",
		"  drop <item>       Put something down",
		"  talk <npc>        Talk to someone",
		"  inventory (i)     Check what you're carrying",
		"  again (g)         Repeat your last command",
		"  quit              Leave the game",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	return []string{
		fmt.Sprintf("Turn: %d", m.status.Turns),
		fmt.Sprintf("Location: %s", m.status.Room),
		fmt.Sprintf("Exits: %s", strings.Join(m.status.Exits, ", ")),
		fmt.Sprintf("Inventory: %v", m.status.Inventory),
	}
}

// appendEcho adds the echoed player input to the narrative.
func (m Model) appendEcho(input string) Model {
	m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})
	m.refreshViewport()
	return m
}

// appendLines adds output lines to the narrative and refreshes the viewport.
func (m Model) appendLines(lines []string, system bool) Model {
	for _, line := range lines {
		rl := rawLine{text: line, isSystem: system}
		if !system {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}
	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindTitle:
		return styleTitle.Render(line)
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindChoice:
		return styleChoice.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// wordWrap wraps text at word boundaries to fit within width.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full layout: viewport + status bar + input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled (those
// drive command history instead).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
