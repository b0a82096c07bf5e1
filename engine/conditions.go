package engine

import (
	"strconv"

	"github.com/athell/grimoire/world"
)

// Verifier evaluates condition lists against the current game state. It is
// shared by the action trigger executor and the dialog manager.
type Verifier struct {
	game *Game
}

// NewVerifier creates a verifier over the given game.
func NewVerifier(g *Game) *Verifier {
	return &Verifier{game: g}
}

// Verify returns the conjunction of all conditions. An empty list is
// vacuously true.
func (v *Verifier) Verify(conditions []world.Condition) bool {
	for _, c := range conditions {
		if !v.verify(c) {
			return false
		}
	}
	return true
}

func (v *Verifier) verify(c world.Condition) bool {
	switch c.Type {
	case world.ConditionLocation:
		return v.game.CurrentRoom().Name == c.Value

	case world.ConditionHasState:
		item := v.game.FindItemIncludingHidden(c.Target)
		return item != nil && item.CurrentState() == c.Value

	case world.ConditionHasItem:
		item := v.game.Player().Inventory().Find(c.Target)
		if item == nil {
			return false
		}
		if c.Value == "" {
			if item.Kind == world.KindCountable {
				return item.Count > 0
			}
			return true
		}
		n, err := strconv.Atoi(c.Value)
		if err != nil {
			return false
		}
		return item.Kind == world.KindCountable && item.Count >= n

	default:
		return false
	}
}
