package engine

import "strings"

// Verb identifies a command. The set is closed: dispatch happens through
// the registry below, with capability flags carried as data.
type Verb string

const (
	VerbGo          Verb = "go"
	VerbLook        Verb = "look"
	VerbTake        Verb = "take"
	VerbDrop        Verb = "drop"
	VerbInventory   Verb = "inventory"
	VerbHide        Verb = "hide"
	VerbReveal      Verb = "reveal"
	VerbChangeState Verb = "changeState"
	VerbSubtract    Verb = "subtract"
	VerbSpeak       Verb = "speak"
	VerbTalk        Verb = "talk"
	VerbQuit        Verb = "quit"
	VerbInvalid     Verb = "invalid"
)

// Message text keys used by commands.
const (
	msgNoWay                = "msg-no-way"
	msgCantSeeThat          = "msg-cant-see-that"
	msgNothingInteresting   = "msg-nothing-interesting"
	msgCantFindThat         = "msg-cant-find-that"
	msgCantTakeThat         = "msg-cant-take-that"
	msgNotCarryingThat      = "msg-not-carrying-that"
	msgNotCarryingAnything  = "msg-not-carrying-anything"
	msgCarryingTheFollowing = "msg-carrying-the-following"
	msgLonelyOutHere        = "msg-lonely-out-here"
	msgWhat                 = "msg-what"
	msgOK                   = "msg-ok"
	msgBye                  = "msg-bye"
)

// Caller tags who invoked a command, so side-effect invocations can
// suppress player-facing chatter.
type Caller int

const (
	CallerPlayer Caller = iota
	CallerTrigger
)

// ExecOptions carries per-invocation execution context.
type ExecOptions struct {
	Caller Caller
}

type commandFunc func(e *Engine, params []string, opts ExecOptions) bool

// commandSpec carries a verb's capability flags as data, not inheritance.
type commandSpec struct {
	verb           Verb
	requiresTarget bool
	internal       bool
	run            commandFunc
}

// registry maps lowercased verb tokens to specs. Lookup is
// case-insensitive so that internal verbs typed by the player still reach
// the internal-only gate rather than falling through as unknown.
// Populated in init: cmdTalk reaches Factory.Create through the dialog
// manager, so a map literal would form an initialization cycle.
var registry map[string]commandSpec

func init() {
	registry = map[string]commandSpec{
		"go":          {verb: VerbGo, requiresTarget: true, run: cmdGo},
		"look":        {verb: VerbLook, run: cmdLook},
		"take":        {verb: VerbTake, requiresTarget: true, run: cmdTake},
		"drop":        {verb: VerbDrop, requiresTarget: true, run: cmdDrop},
		"inventory":   {verb: VerbInventory, run: cmdInventory},
		"hide":        {verb: VerbHide, requiresTarget: true, internal: true, run: cmdHide},
		"reveal":      {verb: VerbReveal, requiresTarget: true, run: cmdReveal},
		"changestate": {verb: VerbChangeState, requiresTarget: true, internal: true, run: cmdChangeState},
		"subtract":    {verb: VerbSubtract, requiresTarget: true, internal: true, run: cmdSubtract},
		"speak":       {verb: VerbSpeak, requiresTarget: true, internal: true, run: cmdSpeak},
		"talk":        {verb: VerbTalk, requiresTarget: true, run: cmdTalk},
		"quit":        {verb: VerbQuit, run: cmdQuit},
	}
}

var invalidSpec = commandSpec{verb: VerbInvalid, internal: true, run: cmdInvalid}

// KnownVerb reports whether a verb token names a registered command. The
// loader uses it to reject world files whose triggers or dialogs reference
// verbs nothing can execute.
func KnownVerb(verb string) bool {
	_, ok := registry[strings.ToLower(verb)]
	return ok
}

// Command is a dispatchable command bound to the engine. Commands are
// cheap and recreated per dispatch; they hold no state between calls.
type Command struct {
	engine *Engine
	spec   commandSpec
}

// Verb returns the command's canonical verb.
func (c Command) Verb() Verb {
	return c.spec.verb
}

// Execute runs the command. params is [target] or [target, value]; the
// boolean is the command's success/handled result.
func (c Command) Execute(params []string, opts ExecOptions) bool {
	return c.spec.run(c.engine, params, opts)
}

// CreateOptions are the inputs to Factory.Create.
type CreateOptions struct {
	Verb   string
	Target string
	// AllowInternalCommands lets triggers and dialogs build internal-only
	// commands; player dispatch never sets it.
	AllowInternalCommands bool
}

// Factory builds commands, enforcing the per-command contracts: unknown
// verbs, missing required targets, and disallowed internal verbs all
// produce the invalid command.
type Factory struct {
	engine *Engine
}

// Create resolves a verb to a command.
func (f *Factory) Create(opts CreateOptions) Command {
	spec, ok := registry[strings.ToLower(opts.Verb)]
	if !ok {
		return Command{engine: f.engine, spec: invalidSpec}
	}
	if spec.requiresTarget && opts.Target == "" {
		return Command{engine: f.engine, spec: invalidSpec}
	}
	if spec.internal && !opts.AllowInternalCommands {
		return Command{engine: f.engine, spec: invalidSpec}
	}
	return Command{engine: f.engine, spec: spec}
}
