package engine

import "github.com/athell/grimoire/world"

// TriggerExecutor fires item-bound action triggers. It is consulted before
// normal command dispatch on every input line; when it fires, the ordinary
// command path for that verb/target pair is skipped for the turn.
type TriggerExecutor struct {
	engine *Engine
}

// Execute resolves target to an item (current room first, then inventory)
// and fires every trigger on it that matches verb and whose conditions
// hold. All actions across all matching triggers run in declaration order.
// Returns whether anything fired.
func (x *TriggerExecutor) Execute(target, verb string) bool {
	item := x.engine.Game.CurrentRoom().FindItem(target)
	if item == nil {
		item = x.engine.Game.Player().Inventory().Find(target)
	}
	if item == nil {
		return false
	}

	var actions []world.CommandAction
	fired := false
	for _, tr := range item.TriggersFor(verb) {
		if !x.engine.Verifier.Verify(tr.Conditions) {
			continue
		}
		fired = true
		actions = append(actions, tr.Actions...)
	}
	if !fired {
		return false
	}

	for _, a := range actions {
		x.ExecuteCommandAction(a)
	}
	return true
}

// ExecuteCommandAction builds the action's command with internal commands
// allowed (triggers and dialogs legitimately invoke changeState, reveal,
// hide, subtract, speak), executes it, and displays the configured
// success or failure response key, if any.
func (x *TriggerExecutor) ExecuteCommandAction(a world.CommandAction) bool {
	cmd := x.engine.Factory.Create(CreateOptions{
		Verb:                  a.Command,
		Target:                a.Argument,
		AllowInternalCommands: true,
	})

	params := []string{a.Argument}
	if a.Parameter != "" {
		params = append(params, a.Parameter)
	}

	ok := cmd.Execute(params, ExecOptions{Caller: CallerTrigger})
	if ok && a.SuccessResponse != "" {
		x.engine.UI.DisplayMessage(x.engine.Game.Message(a.SuccessResponse))
	}
	if !ok && a.FailureResponse != "" {
		x.engine.UI.DisplayMessage(x.engine.Game.Message(a.FailureResponse))
	}
	return ok
}
