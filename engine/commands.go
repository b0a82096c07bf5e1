package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/athell/grimoire/world"
)

// Typed failure discriminants used by take to pick its message. They are
// result values, never control flow during normal play.
var (
	errNotFound  = errors.New("item not found")
	errImmovable = errors.New("item immovable")
)

func param(params []string, i int) string {
	if i < len(params) {
		return params[i]
	}
	return ""
}

func cmdGo(e *Engine, params []string, _ ExecOptions) bool {
	target := param(params, 0)
	conn, ok := e.Game.CurrentRoom().ConnectionFor(target)
	if !ok {
		e.UI.DisplayMessage(e.Game.Message(msgNoWay))
		return false
	}

	room, err := e.Game.Rooms().GetRoomByName(conn.To)
	if err != nil {
		// unreachable on a validated graph
		e.UI.DisplayMessage(e.Game.Message(msgNoWay))
		return false
	}

	e.Game.MoveTo(room)
	e.UI.DisplayRoomTitle(room.Title)
	e.UI.DisplayMessage(e.Game.DescribeRoom(room, false))
	return true
}

func cmdLook(e *Engine, params []string, _ ExecOptions) bool {
	target := param(params, 0)
	room := e.Game.CurrentRoom()

	if target == "" {
		e.UI.DisplayRoomTitle(room.Title)
		e.UI.DisplayMessage(e.Game.DescribeRoom(room, true))
		return true
	}

	if dir, ok := world.ParseDirection(target); ok {
		conn, ok := room.ConnectionIn(dir)
		if !ok || conn.Description == "" {
			e.UI.DisplayMessage(e.Game.Message(msgNothingInteresting))
			return true
		}
		e.UI.DisplayMessage(e.Game.Message(conn.Description))
		return true
	}

	if conn, ok := room.ConnectionFor(target); ok {
		if conn.Description == "" {
			e.UI.DisplayMessage(e.Game.Message(msgNothingInteresting))
			return true
		}
		e.UI.DisplayMessage(e.Game.Message(conn.Description))
		return true
	}

	if item := e.Game.FindItem(target); item != nil {
		e.UI.DisplayMessage(e.Game.Message(item.DescriptionKey(world.LookContext)))
		return true
	}

	if npc := room.FindNPC(target); npc != nil && npc.Description.Look != "" {
		e.UI.DisplayMessage(e.Game.Message(npc.Description.Look))
		return true
	}

	e.UI.DisplayMessage(e.Game.Message(msgCantSeeThat))
	return false
}

func cmdTake(e *Engine, params []string, opts ExecOptions) bool {
	target := param(params, 0)

	item, err := takeFromRoom(e.Game.CurrentRoom(), target)
	if err != nil {
		switch {
		case errors.Is(err, errImmovable):
			e.UI.DisplayMessage(e.Game.Message(msgCantTakeThat))
		default:
			e.UI.DisplayMessage(e.Game.Message(msgCantFindThat))
		}
		return false
	}

	e.Game.Player().Inventory().Add(item)
	if opts.Caller != CallerTrigger {
		e.UI.DisplayMessage(e.Game.Message(msgOK))
	}
	return true
}

// takeFromRoom removes a takeable item from the room, reporting why it
// could not.
func takeFromRoom(room *world.Room, target string) (*world.Item, error) {
	item := room.FindItem(target)
	if item == nil {
		return nil, errNotFound
	}
	if item.Immovable {
		return nil, errImmovable
	}
	return room.RemoveItem(item.Name), nil
}

func cmdDrop(e *Engine, params []string, opts ExecOptions) bool {
	target := param(params, 0)
	inv := e.Game.Player().Inventory()

	item := inv.Find(target)
	if item == nil {
		e.UI.DisplayMessage(e.Game.Message(msgNotCarryingThat))
		return false
	}

	inv.Remove(item.Name)
	e.Game.CurrentRoom().AddItem(item)
	if opts.Caller != CallerTrigger {
		e.UI.DisplayMessage(e.Game.Message(msgOK))
	}
	return true
}

func cmdInventory(e *Engine, _ []string, _ ExecOptions) bool {
	inv := e.Game.Player().Inventory()
	if inv.IsEmpty() {
		e.UI.DisplayMessage(e.Game.Message(msgNotCarryingAnything))
		return true
	}

	texts := e.Game.Texts()
	var sb strings.Builder
	sb.WriteString(texts.Text(msgCarryingTheFollowing))
	keys := []string{msgCarryingTheFollowing}

	for _, item := range inv.Items() {
		key := item.DescriptionKey(world.InventoryContext)
		sb.WriteString("\n- ")
		sb.WriteString(texts.Text(key))
		if item.Kind == world.KindCountable && item.Count > 1 {
			fmt.Fprintf(&sb, " (%d)", item.Count)
		}
		keys = append(keys, key)
	}

	e.UI.DisplayMessage(TextWithAudioFiles{Text: sb.String(), AudioKeys: keys})
	return true
}

func cmdHide(e *Engine, params []string, _ ExecOptions) bool {
	item := e.Game.CurrentRoom().FindItemIncludingHidden(param(params, 0))
	if item == nil {
		return false
	}
	return item.Hide()
}

func cmdReveal(e *Engine, params []string, _ ExecOptions) bool {
	item := e.Game.CurrentRoom().FindItemIncludingHidden(param(params, 0))
	if item == nil {
		return false
	}
	return item.Reveal()
}

func cmdChangeState(e *Engine, params []string, _ ExecOptions) bool {
	item := e.Game.FindItemIncludingHidden(param(params, 0))
	if item == nil {
		return false
	}
	return item.SetState(param(params, 1))
}

func cmdSubtract(e *Engine, params []string, _ ExecOptions) bool {
	n, err := strconv.Atoi(param(params, 1))
	if err != nil {
		return false
	}

	item := e.Game.FindItemIncludingHidden(param(params, 0))
	if item == nil || item.Kind != world.KindCountable {
		return false
	}
	if !item.SubtractCount(n) {
		return false
	}
	if item.Count == 0 {
		e.Game.Player().Inventory().Remove(item.Name)
	}
	return true
}

func cmdSpeak(e *Engine, params []string, _ ExecOptions) bool {
	e.UI.DisplayMessageAsync(e.Game.Message(param(params, 0)))
	return true
}

func cmdTalk(e *Engine, params []string, _ ExecOptions) bool {
	npc := e.Game.CurrentRoom().FindNPC(param(params, 0))
	if npc == nil {
		e.UI.DisplayMessage(e.Game.Message(msgLonelyOutHere))
		return false
	}
	e.Dialogs.Converse(npc)
	return true
}

func cmdQuit(e *Engine, _ []string, _ ExecOptions) bool {
	e.UI.DisplayMessage(e.Game.Message(msgBye))
	return true
}

func cmdInvalid(e *Engine, _ []string, _ ExecOptions) bool {
	e.UI.DisplayMessage(e.Game.Message(msgWhat))
	return true
}
