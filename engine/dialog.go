package engine

import "github.com/athell/grimoire/world"

// Dialog-local action commands: they toggle another dialog node's enabled
// flag on the same NPC instead of going through the command factory.
const (
	actionEnableDialog  = "enableDialog"
	actionDisableDialog = "disableDialog"
)

// startDialogID is both the entry node of every conversation and the
// fallback when a node declares no continuation.
const startDialogID = "start"

// DialogManager drives NPC conversations as a single iterative state
// machine: each node's facets (response, choice, actions, conditions) are
// processed in a fixed order, with no recursion. The only suspension
// points are the UI choice prompts.
type DialogManager struct {
	engine *Engine
}

// Converse runs a full conversation with the NPC, starting at the "start"
// node and looping until a node with the exit flag has been processed.
func (d *DialogManager) Converse(npc *world.NPC) {
	ui := d.engine.UI
	game := d.engine.Game

	if npc.Greeting != "" {
		ui.DisplayMessage(game.Message(npc.Greeting))
	}

	current := npc.Dialog(startDialogID)
	if current == nil {
		return
	}

	for {
		if current.Response != "" {
			ui.DisplayMessage(game.Message(current.Response))
		}

		if len(current.Choices) > 0 {
			next, ok := d.offerChoices(npc, current)
			if !ok {
				return
			}
			current = next
		}

		exit := current.Exit

		for _, a := range current.Actions {
			d.executeDialogAction(npc, a)
		}

		if exit {
			return
		}

		current = d.nextDialog(npc, current)
		if current == nil {
			return
		}
	}
}

// offerChoices presents the node's enabled, precondition-satisfying
// choices and returns the selected node. An unresolvable selection keeps
// the current node. ok is false when the conversation cannot continue:
// the choice source is exhausted, or no choice is eligible (that would
// otherwise re-offer the same node forever).
func (d *DialogManager) offerChoices(npc *world.NPC, current *world.Dialog) (_ *world.Dialog, ok bool) {
	var choices []Choice
	for _, id := range current.Choices {
		dlg := npc.Dialog(id)
		if dlg == nil || !npc.DialogEnabled(id) {
			continue
		}
		if !d.engine.Verifier.Verify(dlg.PreConditions) {
			continue
		}
		text := dlg.Text
		if text == "" {
			text = id
		}
		choices = append(choices, Choice{Value: id, Text: text})
	}
	if len(choices) == 0 {
		return nil, false
	}

	selection, ok := d.engine.UI.GetUserChoice(choices)
	if !ok {
		return nil, false
	}
	selected := npc.Dialog(selection)
	if selected == nil {
		return current, true
	}
	if selected.Response != "" {
		d.engine.UI.DisplayMessage(d.engine.Game.Message(selected.Response))
	}
	return selected, true
}

// executeDialogAction runs one node action: either a dialog enable/disable
// toggle scoped to this NPC, or a generic command action through the
// trigger executor's shared path.
func (d *DialogManager) executeDialogAction(npc *world.NPC, a world.CommandAction) {
	if a.Command == actionEnableDialog || a.Command == actionDisableDialog {
		if npc.Matches(a.Argument) {
			npc.SetDialogEnabled(a.Parameter, a.Command == actionEnableDialog)
			return
		}
	}
	d.engine.Triggers.ExecuteCommandAction(a)
}

// nextDialog computes the node to continue with: the explicit next id,
// else the post-condition branch, else back to "start".
func (d *DialogManager) nextDialog(npc *world.NPC, current *world.Dialog) *world.Dialog {
	if current.Next != "" {
		if next := npc.Dialog(current.Next); next != nil {
			return next
		}
		return npc.Dialog(startDialogID)
	}

	if len(current.PostConditions) > 0 {
		branch := current.Failure
		if d.engine.Verifier.Verify(current.PostConditions) {
			branch = current.Success
		}
		if next := npc.Dialog(branch); next != nil {
			return next
		}
		return npc.Dialog(startDialogID)
	}

	return npc.Dialog(startDialogID)
}
