package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/athell/grimoire/engine"
	"github.com/athell/grimoire/world"
)

// Messages carrying engine output into the Update loop.
type (
	outputMsg struct {
		lines  []string
		system bool
	}
	titleMsg struct {
		title string
	}
	// promptMsg asks the model for the next input line. It carries a
	// status snapshot so the model never touches game state owned by the
	// engine goroutine.
	promptMsg struct {
		status statusSnapshot
	}
	choiceMsg struct {
		choices []engine.Choice
	}
	engineDoneMsg struct{}
)

// statusSnapshot is the immutable status-bar state captured at each prompt.
type statusSnapshot struct {
	Room      string
	Exits     []string
	Inventory []string
	Turns     int
}

// bridge implements engine.UI for the TUI. The engine runs on its own
// goroutine and blocks here; output goes out through Program.Send and
// input comes back over channels the model writes to.
type bridge struct {
	program *tea.Program
	realm   *world.Realm
	game    *engine.Game

	inputCh  chan string
	choiceCh chan string
}

func newBridge(realm *world.Realm) *bridge {
	return &bridge{
		realm:    realm,
		inputCh:  make(chan string),
		choiceCh: make(chan string),
	}
}

func (b *bridge) DisplayWelcomeMessage() {
	var lines []string
	if b.realm.Title != "" {
		banner := b.realm.Title
		if b.realm.Version != "" {
			banner += " v" + b.realm.Version
		}
		lines = append(lines, banner, "")
	}
	if b.realm.Texts.Has("msg-welcome") {
		lines = append(lines, b.realm.Texts.Text("msg-welcome"), "")
	}
	b.program.Send(outputMsg{lines: lines})
}

func (b *bridge) DisplayRoomTitle(title string) {
	b.program.Send(titleMsg{title: title})
}

func (b *bridge) DisplayMessage(msg engine.TextWithAudioFiles) {
	b.program.Send(outputMsg{lines: strings.Split(msg.Text, "\n")})
}

// DisplayMessageAsync is synchronous here: the viewport renders text
// immediately either way.
func (b *bridge) DisplayMessageAsync(msg engine.TextWithAudioFiles) {
	b.DisplayMessage(msg)
}

// GetUserInput blocks the engine goroutine until the player submits a
// line. ok is false when the program is shutting down.
func (b *bridge) GetUserInput() (string, bool) {
	b.program.Send(promptMsg{status: b.snapshot()})
	input, ok := <-b.inputCh
	return input, ok
}

// GetUserChoice blocks until the player picks a dialog option. ok is
// false when the program is shutting down.
func (b *bridge) GetUserChoice(choices []engine.Choice) (string, bool) {
	b.program.Send(choiceMsg{choices: choices})
	choice, ok := <-b.choiceCh
	return choice, ok
}

// snapshot captures the status-bar state. Called on the engine goroutine
// while the model is idle, so reading game state is safe.
func (b *bridge) snapshot() statusSnapshot {
	room := b.game.CurrentRoom()

	var exits []string
	for _, conn := range room.Connections {
		exits = append(exits, string(conn.Direction))
	}
	sort.Strings(exits)

	var carried []string
	for _, it := range b.game.Player().Inventory().Items() {
		name := it.Name
		if it.Kind == world.KindCountable && it.Count > 1 {
			name = fmt.Sprintf("%s x%d", name, it.Count)
		}
		carried = append(carried, name)
	}

	return statusSnapshot{
		Room:      room.Title,
		Exits:     exits,
		Inventory: carried,
		Turns:     b.game.Turns(),
	}
}
