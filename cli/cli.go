// Package cli provides plain terminal I/O and meta-command dispatch. It is
// the frontend used for piped input and script playback; interactive
// sessions normally get the tui package instead.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/athell/grimoire/engine"
	"github.com/athell/grimoire/world"
)

// CLI handles terminal interaction with the player. It implements
// engine.UI; the engine's controller drives the loop through GetUserInput.
type CLI struct {
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)

	realm   *world.Realm
	game    *engine.Game
	scanner *bufio.Scanner
	lastCmd string // for "again"/"g" repeat
}

// New creates a CLI over stdin/stdout for the given realm.
func New(realm *world.Realm) *CLI {
	return &CLI{
		In:    os.Stdin,
		Out:   os.Stdout,
		realm: realm,
	}
}

// Run builds an engine over the realm and runs the game loop until the
// player quits or input is exhausted.
func (c *CLI) Run() {
	eng := engine.NewFromRealm(c.realm, c)
	c.game = eng.Game
	engine.NewController(eng).Run()
}

// DisplayWelcomeMessage prints the realm banner and, when the world maps
// one, the welcome text.
func (c *CLI) DisplayWelcomeMessage() {
	if c.realm.Title != "" {
		c.printLine(c.realm.Title)
		if c.realm.Version != "" {
			c.printLine("Version " + c.realm.Version)
		}
		c.printLine("")
	}
	if c.realm.Texts.Has("msg-welcome") {
		c.printLine(c.realm.Texts.Text("msg-welcome"))
		c.printLine("")
	}
}

func (c *CLI) DisplayRoomTitle(title string) {
	c.printLine("")
	c.printLine(title)
	c.printLine(strings.Repeat("-", len(title)))
}

func (c *CLI) DisplayMessage(msg engine.TextWithAudioFiles) {
	c.printLine(msg.Text)
}

// DisplayMessageAsync behaves like DisplayMessage; a plain terminal has no
// audio to overlap with.
func (c *CLI) DisplayMessageAsync(msg engine.TextWithAudioFiles) {
	c.DisplayMessage(msg)
}

// GetUserInput reads the next game command. Blank lines and comment lines
// are skipped, meta-commands are handled in place, and "again"/"g" repeats
// the previous game command. ok is false when input is exhausted or the
// player issued /quit.
func (c *CLI) GetUserInput() (string, bool) {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}

	for {
		c.print("> ")
		if !c.scanner.Scan() {
			return "", false
		}
		input := strings.TrimSpace(c.scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return "", false
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		return input, true
	}
}

// GetUserChoice prints a numbered menu and reads a selection, accepted as
// a number or a choice value. Anything else is returned verbatim. Like
// GetUserInput, ok turns false once the input source runs dry, so a
// script ending mid-conversation ends the conversation.
func (c *CLI) GetUserChoice(choices []engine.Choice) (string, bool) {
	c.printLine("")
	for i, choice := range choices {
		c.printLine(fmt.Sprintf("  %d) %s", i+1, choice.Text))
	}

	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	c.print("? ")
	if !c.scanner.Scan() {
		return "", false
	}
	input := strings.TrimSpace(c.scanner.Text())
	if c.EchoInput {
		c.printLine(input)
	}

	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1].Value, true
	}
	for _, choice := range choices {
		if strings.EqualFold(choice.Value, input) {
			return choice.Value, true
		}
	}
	return input, true
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		if c.realm.Texts.Has("msg-bye") {
			c.printLine(c.realm.Texts.Text("msg-bye"))
		} else {
			c.printSystem("Goodbye.")
		}
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
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
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	c.printSystem(fmt.Sprintf("Turn: %d", c.game.Turns()))
	c.printSystem(fmt.Sprintf("Location: %s", c.game.CurrentRoom().Name))
	var carried []string
	for _, it := range c.game.Player().Inventory().Items() {
		name := it.Name
		if it.Kind == world.KindCountable {
			name = fmt.Sprintf("%s x%d", name, it.Count)
		}
		carried = append(carried, name)
	}
	c.printSystem(fmt.Sprintf("Inventory: %v", carried))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
