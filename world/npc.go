package world

import "strings"

// Dialog is one node of an NPC's conversation graph. The facets (choice,
// action, condition) are independently composable: a node may carry any
// subset of them.
type Dialog struct {
	ID       string
	Text     string // player line shown in choice menus
	Response string // text key displayed on reaching the node
	Next     string // explicit next node id
	Exit     bool   // ends the conversation after this node
	Enabled  bool   // initial enabled state

	Choices []string // candidate next-node ids presented to the player

	Actions []CommandAction

	PreConditions  []Condition // gate whether this node may be offered as a choice
	PostConditions []Condition // evaluated after the node to pick Success/Failure
	Success        string      // next node id when post-conditions hold
	Failure        string      // next node id when they do not
}

// NPC is a conversational character. Dialog enabled flags are owned by the
// NPC instance and mutated only through SetDialogEnabled, never through
// shared definition state.
type NPC struct {
	Name        string
	Greeting    string // text key
	Description ContextDescription
	Dialogs     []*Dialog

	enabled map[string]bool
}

// NewNPC creates an NPC and seeds its per-instance dialog enabled flags
// from the declared defaults.
func NewNPC(name, greeting string, desc ContextDescription, dialogs []*Dialog) *NPC {
	enabled := make(map[string]bool, len(dialogs))
	for _, d := range dialogs {
		enabled[d.ID] = d.Enabled
	}
	return &NPC{
		Name:        name,
		Greeting:    greeting,
		Description: desc,
		Dialogs:     dialogs,
		enabled:     enabled,
	}
}

// Matches reports whether word names this NPC.
func (n *NPC) Matches(word string) bool {
	return strings.EqualFold(n.Name, word)
}

// Dialog returns the dialog node with the given id, or nil.
func (n *NPC) Dialog(id string) *Dialog {
	for _, d := range n.Dialogs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// DialogEnabled reports whether the dialog node is currently enabled.
// Unknown ids are disabled.
func (n *NPC) DialogEnabled(id string) bool {
	return n.enabled[id]
}

// SetDialogEnabled toggles a dialog node's enabled flag. Unknown ids are
// ignored.
func (n *NPC) SetDialogEnabled(id string, on bool) {
	if _, ok := n.enabled[id]; ok {
		n.enabled[id] = on
	}
}
