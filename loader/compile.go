package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/athell/grimoire/engine"
	"github.com/athell/grimoire/world"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or the default if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// eachEntry iterates the array part of a Lua table in order.
func eachEntry(tbl *lua.LTable, fn func(v lua.LValue)) {
	if tbl == nil {
		return
	}
	for i := 1; i <= tbl.MaxN(); i++ {
		fn(tbl.RawGetInt(i))
	}
}

// stringList converts the array part of a Lua table to []string.
func stringList(tbl *lua.LTable) []string {
	var out []string
	eachEntry(tbl, func(v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}

// keyRef tracks a referenced text key and where it was referenced from,
// for missing-key warnings.
type keyRef struct {
	key    string
	source string
}

// compiler carries shared compile state.
type compiler struct {
	ve   *world.ValidationError
	refs []keyRef
}

func (c *compiler) refKey(key, sourceFormat string, args ...any) {
	if key == "" {
		return
	}
	c.refs = append(c.refs, keyRef{key: key, source: fmt.Sprintf(sourceFormat, args...)})
}

// compile converts all collected Lua data into a validated Realm.
func compile(coll *collector) (*world.Realm, *world.ValidationError, error) {
	if coll.realm == nil {
		return nil, nil, fmt.Errorf("no Realm{} definition found")
	}

	c := &compiler{ve: &world.ValidationError{}}

	items := map[string]*world.Item{}
	for _, raw := range coll.items {
		if _, dup := items[raw.name]; dup {
			c.ve.Errorf("duplicate item definition %q", raw.name)
			continue
		}
		items[raw.name] = c.compileItem(raw)
	}

	npcs := map[string]*world.NPC{}
	for _, raw := range coll.npcs {
		if _, dup := npcs[raw.name]; dup {
			c.ve.Errorf("duplicate NPC definition %q", raw.name)
			continue
		}
		npcs[raw.name] = c.compileNPC(raw)
	}

	itemRooms := map[string]string{}
	npcRooms := map[string]string{}
	var rooms []*world.Room
	for _, raw := range coll.rooms {
		rooms = append(rooms, c.compileRoom(raw, items, npcs, itemRooms, npcRooms))
	}

	for name := range items {
		if _, used := itemRooms[name]; !used {
			c.ve.Warnf("item %q is defined but placed in no room", name)
		}
	}
	for name := range npcs {
		if _, used := npcRooms[name]; !used {
			c.ve.Warnf("NPC %q is defined but placed in no room", name)
		}
	}

	// Realm{ welcome = ... } overrides any msg-welcome from Texts.
	if w := getString(coll.realm, "welcome"); w != "" {
		coll.texts["msg-welcome"] = w
	}

	texts := world.NewTextRepository(coll.texts)
	for _, ref := range c.refs {
		if !texts.Has(ref.key) {
			c.ve.Warnf("%s references undefined text key %q", ref.source, ref.key)
		}
	}

	repo, err := world.NewRoomRepository(rooms)
	if err != nil {
		if ve, ok := err.(*world.ValidationError); ok {
			c.ve.Errors = append(c.ve.Errors, ve.Errors...)
			return nil, c.ve, nil
		}
		return nil, nil, err
	}

	realm := &world.Realm{
		Title:   getString(coll.realm, "title"),
		Version: getString(coll.realm, "version"),
		Rooms:   repo,
		Texts:   texts,
	}
	return realm, c.ve, nil
}

func (c *compiler) compileDescription(tbl *lua.LTable, source string) world.ContextDescription {
	if tbl == nil {
		return world.ContextDescription{}
	}
	desc := world.ContextDescription{
		Room:      getString(tbl, "room"),
		Look:      getString(tbl, "look"),
		Inventory: getString(tbl, "inventory"),
	}
	c.refKey(desc.Room, "%s room description", source)
	c.refKey(desc.Look, "%s look description", source)
	c.refKey(desc.Inventory, "%s inventory description", source)
	return desc
}

func (c *compiler) compileItem(raw rawDef) *world.Item {
	tbl := raw.table
	source := fmt.Sprintf("item %q", raw.name)
	desc := c.compileDescription(getTable(tbl, "description"), source)

	var item *world.Item
	switch kind := getString(tbl, "type"); kind {
	case "", "item":
		item = world.NewItem(raw.name, desc)
	case "countable-item":
		item = world.NewCountableItem(raw.name, desc, getInt(tbl, "count", 1))
		eachEntry(getTable(tbl, "descriptions"), func(v lua.LValue) {
			tier, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			item.Tiers = append(item.Tiers, world.CountDescription{
				Count:       getInt(tier, "count", 0),
				Description: c.compileDescription(getTable(tier, "description"), source),
			})
		})
	case "container-item":
		item = world.NewContainerItem(raw.name, desc)
	default:
		c.ve.Errorf("item %q has unknown type %q", raw.name, kind)
		item = world.NewItem(raw.name, desc)
	}

	item.Words = stringList(getTable(tbl, "words"))
	item.Visible = getBool(tbl, "visible", true)
	item.Immovable = getBool(tbl, "immovable", false)

	var states []world.ItemState
	eachEntry(getTable(tbl, "states"), func(v lua.LValue) {
		st, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		states = append(states, world.ItemState{
			Name:        getString(st, "name"),
			Description: c.compileDescription(getTable(st, "description"), source),
		})
	})
	item.DeclareStates(states, getString(tbl, "initialState"))

	item.Triggers = c.compileTriggers(getTable(tbl, "triggers"), source)

	return item
}

func (c *compiler) compileTriggers(tbl *lua.LTable, source string) []world.ActionTrigger {
	var triggers []world.ActionTrigger
	eachEntry(tbl, func(v lua.LValue) {
		trTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		trigger := world.ActionTrigger{
			Verb:       getString(trTbl, "verb"),
			Conditions: c.compileConditions(getTable(trTbl, "conditions"), source),
			Actions:    c.compileActions(getTable(trTbl, "actions"), source),
		}
		if trigger.Verb == "" {
			c.ve.Errorf("%s has a trigger without a verb", source)
			return
		}
		triggers = append(triggers, trigger)
	})
	return triggers
}

func (c *compiler) compileNPC(raw rawDef) *world.NPC {
	tbl := raw.table
	source := fmt.Sprintf("NPC %q", raw.name)

	greeting := getString(tbl, "greeting")
	c.refKey(greeting, "%s greeting", source)
	desc := c.compileDescription(getTable(tbl, "description"), source)

	var dialogs []*world.Dialog
	seen := map[string]bool{}
	eachEntry(getTable(tbl, "dialogs"), func(v lua.LValue) {
		dTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		d := c.compileDialog(dTbl, source)
		if d.ID == "" {
			c.ve.Errorf("%s has a dialog without an id", source)
			return
		}
		if seen[d.ID] {
			c.ve.Errorf("%s has duplicate dialog id %q", source, d.ID)
			return
		}
		seen[d.ID] = true
		dialogs = append(dialogs, d)
	})

	// Referential check: every id a dialog names must exist on this NPC.
	for _, d := range dialogs {
		for _, ref := range dialogRefs(d) {
			if !seen[ref] {
				c.ve.Errorf("%s dialog %q references unknown dialog id %q", source, d.ID, ref)
			}
		}
	}

	return world.NewNPC(raw.name, greeting, desc, dialogs)
}

func dialogRefs(d *world.Dialog) []string {
	var refs []string
	if d.Next != "" {
		refs = append(refs, d.Next)
	}
	if d.Success != "" {
		refs = append(refs, d.Success)
	}
	if d.Failure != "" {
		refs = append(refs, d.Failure)
	}
	refs = append(refs, d.Choices...)
	return refs
}

func (c *compiler) compileDialog(tbl *lua.LTable, source string) *world.Dialog {
	d := &world.Dialog{
		ID:             getString(tbl, "id"),
		Text:           getString(tbl, "text"),
		Response:       getString(tbl, "response"),
		Next:           getString(tbl, "next"),
		Exit:           getBool(tbl, "exit", false),
		Enabled:        getBool(tbl, "enabled", true),
		Choices:        stringList(getTable(tbl, "choices")),
		Actions:        c.compileActions(getTable(tbl, "actions"), source),
		PreConditions:  c.compileConditions(getTable(tbl, "preConditions"), source),
		PostConditions: c.compileConditions(getTable(tbl, "postConditions"), source),
		Success:        getString(tbl, "success"),
		Failure:        getString(tbl, "failure"),
	}
	c.refKey(d.Response, "%s dialog %q response", source, d.ID)
	return d
}

func (c *compiler) compileConditions(tbl *lua.LTable, source string) []world.Condition {
	var conditions []world.Condition
	eachEntry(tbl, func(v lua.LValue) {
		cTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		cond := world.Condition{
			Type:   getString(cTbl, "type"),
			Target: getString(cTbl, "item"),
			Value:  getString(cTbl, "value"),
		}
		switch cond.Type {
		case world.ConditionLocation, world.ConditionHasState, world.ConditionHasItem:
		default:
			c.ve.Errorf("%s uses unknown condition type %q", source, cond.Type)
		}
		conditions = append(conditions, cond)
	})
	return conditions
}

func (c *compiler) compileActions(tbl *lua.LTable, source string) []world.CommandAction {
	var actions []world.CommandAction
	eachEntry(tbl, func(v lua.LValue) {
		aTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		a := world.CommandAction{
			Command:   getString(aTbl, "command"),
			Argument:  getString(aTbl, "argument"),
			Parameter: getString(aTbl, "parameter"),
		}
		a.SuccessResponse = getString(aTbl, "success")
		a.FailureResponse = getString(aTbl, "failure")
		c.refKey(a.SuccessResponse, "%s action %q success response", source, a.Command)
		c.refKey(a.FailureResponse, "%s action %q failure response", source, a.Command)
		switch {
		case a.Command == "enableDialog" || a.Command == "disableDialog":
		case engine.KnownVerb(a.Command):
		default:
			c.ve.Errorf("%s action uses unknown command %q", source, a.Command)
		}
		actions = append(actions, a)
	})
	return actions
}

func (c *compiler) compileRoom(raw rawDef, items map[string]*world.Item,
	npcs map[string]*world.NPC, itemRooms, npcRooms map[string]string) *world.Room {

	tbl := raw.table
	room := world.NewRoom(raw.name, getString(tbl, "title"), getString(tbl, "description"))
	room.ShortDescription = getString(tbl, "shortDescription")
	c.refKey(room.Description, "room %q description", raw.name)
	c.refKey(room.ShortDescription, "room %q short description", raw.name)

	if room.Title == "" {
		c.ve.Errorf("room %q has no title", raw.name)
	}

	eachEntry(getTable(tbl, "connections"), func(v lua.LValue) {
		cTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		dirWord := getString(cTbl, "direction")
		dir, ok := world.ParseDirection(dirWord)
		if !ok {
			c.ve.Errorf("room %q connection has invalid direction %q", raw.name, dirWord)
			return
		}
		conn := world.Connection{
			Direction:   dir,
			To:          getString(cTbl, "to"),
			Description: getString(cTbl, "description"),
			Words:       stringList(getTable(cTbl, "words")),
		}
		c.refKey(conn.Description, "room %q connection %s description", raw.name, dir)
		room.Connections = append(room.Connections, conn)
	})

	eachEntry(getTable(tbl, "items"), func(v lua.LValue) {
		c.placeItem(room, v, items, itemRooms)
	})

	eachEntry(getTable(tbl, "npcs"), func(v lua.LValue) {
		name, ok := v.(lua.LString)
		if !ok {
			return
		}
		npc, defined := npcs[string(name)]
		if !defined {
			c.ve.Errorf("room %q references undefined NPC %q", room.Name, string(name))
			return
		}
		if other, used := npcRooms[npc.Name]; used {
			c.ve.Errorf("NPC %q placed in both %q and %q", npc.Name, other, room.Name)
			return
		}
		npcRooms[npc.Name] = room.Name
		room.NPCs = append(room.NPCs, npc)
	})

	return room
}

// placeItem resolves a room item reference, a bare name or a table with
// per-room overrides (count, visible, state), and places the item.
func (c *compiler) placeItem(room *world.Room, v lua.LValue,
	items map[string]*world.Item, itemRooms map[string]string) {

	var name string
	var overrides *lua.LTable
	switch ref := v.(type) {
	case lua.LString:
		name = string(ref)
	case *lua.LTable:
		name = getString(ref, "name")
		overrides = ref
	default:
		return
	}

	item, defined := items[name]
	if !defined {
		c.ve.Errorf("room %q references undefined item %q", room.Name, name)
		return
	}
	if other, used := itemRooms[name]; used {
		c.ve.Errorf("item %q placed in both %q and %q", name, other, room.Name)
		return
	}
	itemRooms[name] = room.Name

	if overrides != nil {
		item.Visible = getBool(overrides, "visible", item.Visible)
		if item.Kind == world.KindCountable {
			item.Count = getInt(overrides, "count", item.Count)
		}
		if state := getString(overrides, "state"); state != "" {
			if state != item.CurrentState() && !item.SetState(state) {
				c.ve.Errorf("room %q sets item %q to undeclared state %q",
					room.Name, name, state)
			}
		}
		if trTbl := getTable(overrides, "triggers"); trTbl != nil {
			source := fmt.Sprintf("room %q item %q", room.Name, name)
			item.Triggers = c.compileTriggers(trTbl, source)
		}
	}

	room.Items = append(room.Items, item)
}
