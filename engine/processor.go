package engine

import "github.com/athell/grimoire/world"

// Engine bundles the runtime collaborators for one play session and
// processes input lines. It is the command processor of the system.
type Engine struct {
	Game     *Game
	UI       UI
	Verifier *Verifier
	Factory  *Factory
	Triggers *TriggerExecutor
	Dialogs  *DialogManager
}

// New wires an engine over a started game and a UI.
func New(g *Game, ui UI) *Engine {
	e := &Engine{Game: g, UI: ui}
	e.Verifier = NewVerifier(g)
	e.Factory = &Factory{engine: e}
	e.Triggers = &TriggerExecutor{engine: e}
	e.Dialogs = &DialogManager{engine: e}
	return e
}

// NewFromRealm is a convenience constructor for frontends.
func NewFromRealm(realm *world.Realm, ui UI) *Engine {
	return New(NewGame(realm), ui)
}

// Process handles one raw input line to completion (including any nested
// dialog conversation) and reports whether the game should keep looping.
// Only a quit command that actually executed stops the loop.
func (e *Engine) Process(input string) bool {
	line := Normalize(input)
	if line == "" {
		return true
	}
	defer e.Game.advanceTurn()

	verb, target, value := Tokenize(line)

	// Item-bound triggers pre-empt normal dispatch for the turn.
	if target != "" && e.Triggers.Execute(target, verb) {
		return true
	}

	cmd := e.Factory.Create(CreateOptions{Verb: verb, Target: target})

	params := []string{target}
	if value != "" {
		params = append(params, value)
	}
	ok := cmd.Execute(params, ExecOptions{Caller: CallerPlayer})

	return !(cmd.Verb() == VerbQuit && ok)
}
