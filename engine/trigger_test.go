package engine

import "testing"

func TestTriggerPreemptsCommandDispatch(t *testing.T) {
	e, ui := newTestEngine(t)

	e.Process("look casks")

	if !outputContains(ui.output, "A coin drops from behind the casks.") {
		t.Error("trigger success response not displayed")
	}
	if outputContains(ui.output, "The casks smell of vinegar.") {
		t.Error("normal look ran despite a fired trigger")
	}
	coin := e.Game.CurrentRoom().FindItem("coin")
	if coin == nil {
		t.Error("coin not revealed by the trigger")
	}
}

func TestTriggerConditionsGateFiring(t *testing.T) {
	e, ui := newTestEngine(t)
	e.Process("go north")

	// Without the note the rub trigger's conditions fail, so nothing
	// fires and the unknown verb falls through to normal dispatch.
	ui.output = nil
	e.Process("rub lamp")
	if !outputContains(ui.output, "What?") {
		t.Errorf("non-firing trigger should fall through to dispatch, output = %v", ui.output)
	}
	if e.Game.FindItemIncludingHidden("lamp").CurrentState() != "unlit" {
		t.Error("lamp changed state without the trigger firing")
	}
}

func TestTriggerRunsActionsAndResponses(t *testing.T) {
	e, ui := newTestEngine(t)
	e.Process("take note")
	e.Process("go north")

	ui.output = nil
	e.Process("rub lamp")

	lamp := e.Game.FindItemIncludingHidden("lamp")
	if lamp.CurrentState() != "lit" {
		t.Fatalf("lamp state = %q, want lit", lamp.CurrentState())
	}
	if !outputContains(ui.output, "The lamp flares to life.") {
		t.Error("success response not displayed")
	}

	// A second rub fires again but changeState to the current state fails,
	// so the failure response shows.
	ui.output = nil
	e.Process("rub lamp")
	if !outputContains(ui.output, "Nothing happens.") {
		t.Errorf("failure response not displayed, output = %v", ui.output)
	}
}

func TestTriggerFindsItemInInventory(t *testing.T) {
	e, ui := newTestEngine(t)
	e.Process("take note")
	e.Process("go north")
	e.Process("take lamp")

	ui.output = nil
	e.Process("rub lamp")
	if !outputContains(ui.output, "The lamp flares to life.") {
		t.Error("trigger did not fire on a carried item")
	}
}

func TestTriggerSuppressesTakeChatter(t *testing.T) {
	e, ui := newTestEngine(t)

	// A trigger-driven take must not emit the player-facing OK.
	casks := e.Game.CurrentRoom().FindItem("casks")
	casks.Triggers[0].Actions = append(casks.Triggers[0].Actions,
		casks.Triggers[0].Actions[0])
	casks.Triggers[0].Actions[1].Command = "take"
	casks.Triggers[0].Actions[1].Argument = "coin"
	casks.Triggers[0].Actions[1].SuccessResponse = ""

	e.Process("look casks")
	if outputContains(ui.output, "OK.") {
		t.Error("trigger-invoked take displayed the OK confirmation")
	}
	if e.Game.Player().Inventory().Find("coin") == nil {
		t.Error("trigger-invoked take did not move the coin")
	}
}
