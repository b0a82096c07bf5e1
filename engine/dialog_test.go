package engine

import "testing"

func talkToBarkeep(t *testing.T, e *Engine) {
	t.Helper()
	e.Process("go north")
	e.Process("talk barkeep")
}

func TestConverseGreetingAndExit(t *testing.T) {
	e, ui := newTestEngine(t)
	ui.choices = []string{"bye"}

	talkToBarkeep(t, e)

	if !outputContains(ui.output, "The barkeep nods at you.") {
		t.Error("greeting not displayed")
	}
	if !outputContains(ui.output, "What'll it be?") {
		t.Error("start node response not displayed")
	}
	if len(ui.choices) != 0 {
		t.Error("conversation did not consume the bye choice")
	}
}

func TestConverseChoiceFiltering(t *testing.T) {
	e, ui := newTestEngine(t)
	ui.choices = []string{"bye"}

	talkToBarkeep(t, e)

	if len(ui.offered) == 0 {
		t.Fatal("no choices offered")
	}
	offered := map[string]bool{}
	for _, c := range ui.offered[0] {
		offered[c.Value] = true
	}
	if !offered["ask"] || !offered["bye"] {
		t.Errorf("always-available choices missing: %v", ui.offered[0])
	}
	if offered["pay"] {
		t.Error("pay offered without coins (precondition should filter it)")
	}
	if offered["rumor"] {
		t.Error("disabled rumor dialog offered")
	}
}

func TestConverseEnableDialogAction(t *testing.T) {
	e, ui := newTestEngine(t)
	// Asking for news enables the rumor line; the loop returns to start,
	// where rumor is now selectable.
	ui.choices = []string{"ask", "rumor"}

	talkToBarkeep(t, e)

	if !outputContains(ui.output, "Strange lights in the forest, they say.") {
		t.Error("ask response not displayed")
	}
	if !outputContains(ui.output, "Follow the path north of the well.") {
		t.Error("rumor response not displayed after being enabled")
	}
	if len(ui.offered) < 2 {
		t.Fatal("conversation did not loop back to offer choices again")
	}
	rumorOffered := false
	for _, c := range ui.offered[1] {
		if c.Value == "rumor" {
			rumorOffered = true
		}
	}
	if !rumorOffered {
		t.Error("rumor not offered after the enableDialog action")
	}
}

func TestConversePostConditionBranch(t *testing.T) {
	e, ui := newTestEngine(t)
	e.Process("look casks")
	e.Process("take coin")
	ui.choices = []string{"pay"}

	talkToBarkeep(t, e)

	if !outputContains(ui.output, "Pleasure doing business.") {
		t.Error("paid branch response not displayed")
	}
	if e.Game.Player().Inventory().Find("coin") != nil {
		t.Error("coins not consumed by the subtract action")
	}
}

func TestConverseChoiceTextFallsBackToID(t *testing.T) {
	e, ui := newTestEngine(t)
	ui.choices = []string{"bye"}

	talkToBarkeep(t, e)

	for _, c := range ui.offered[0] {
		if c.Text == "" {
			t.Errorf("choice %q offered with empty text", c.Value)
		}
	}
}

func TestConverseUnresolvableSelectionStays(t *testing.T) {
	e, ui := newTestEngine(t)
	// First selection is garbage; the machine stays on start and asks
	// again, then bye ends it.
	ui.choices = []string{"nonsense", "bye"}

	talkToBarkeep(t, e)

	if len(ui.offered) < 2 {
		t.Error("unresolvable selection should re-offer the choices")
	}
}

func TestConverseEndsWhenChoiceSourceExhausted(t *testing.T) {
	e, ui := newTestEngine(t)
	// No scripted choices: the first prompt reports exhaustion, as a
	// script file ending mid-conversation does.
	ui.choices = nil

	talkToBarkeep(t, e)

	if len(ui.offered) != 1 {
		t.Errorf("offered %d menus, want 1 (conversation should end on exhausted input)", len(ui.offered))
	}
}

func TestConverseEndsWhenNoChoiceEligible(t *testing.T) {
	e, ui := newTestEngine(t)
	e.Process("go north")
	npc := e.Game.CurrentRoom().FindNPC("barkeep")
	// pay is filtered by its precondition and rumor starts disabled;
	// disabling the rest leaves the start node with nothing to offer.
	npc.SetDialogEnabled("ask", false)
	npc.SetDialogEnabled("bye", false)

	e.Process("talk barkeep")

	if len(ui.offered) != 0 {
		t.Errorf("offered %d menus, want none", len(ui.offered))
	}
	count := 0
	for _, line := range ui.output {
		if line == "What'll it be?" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("start response displayed %d times, want once", count)
	}
}

func TestConverseWithoutStartNode(t *testing.T) {
	e, ui := newTestEngine(t)
	e.Process("go north")
	npc := e.Game.CurrentRoom().FindNPC("barkeep")
	npc.Dialogs = npc.Dialogs[1:] // drop start

	ui.output = nil
	e.Process("talk barkeep")
	if !outputContains(ui.output, "The barkeep nods at you.") {
		t.Error("greeting should still display without a start node")
	}
	if len(ui.offered) != 0 {
		t.Error("no choices should be offered without a start node")
	}
}
