package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the world-description constructors and helpers as
// Lua globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Realm { title = "...", version = "..." }
	L.SetGlobal("Realm", L.NewFunction(func(L *lua.LState) int {
		coll.realm = L.CheckTable(1)
		return 0
	}))

	// Texts { ["key"] = "text", ... } accumulates across files.
	L.SetGlobal("Texts", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		tbl.ForEach(func(k, v lua.LValue) {
			ks, okK := k.(lua.LString)
			vs, okV := v.(lua.LString)
			if okK && okV {
				coll.texts[string(ks)] = string(vs)
			}
		})
		return 0
	}))

	// Item "name" { ... } is curried: Item("name") returns a function
	// that takes the definition table.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.items = append(coll.items, rawDef{name: name, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// NPC "name" { ... }, curried like Item.
	L.SetGlobal("NPC", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.npcs = append(coll.npcs, rawDef{name: name, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Room "name" { ... }, curried like Item.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.rooms = append(coll.rooms, rawDef{name: name, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))
}

func registerConditionHelpers(L *lua.LState) {
	// Location("room")
	L.SetGlobal("Location", L.NewFunction(func(L *lua.LState) int {
		room := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("location"))
		tbl.RawSetString("value", lua.LString(room))
		L.Push(tbl)
		return 1
	}))

	// HasState("item", "state")
	L.SetGlobal("HasState", L.NewFunction(func(L *lua.LState) int {
		item := L.CheckString(1)
		state := L.CheckString(2)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("hasState"))
		tbl.RawSetString("item", lua.LString(item))
		tbl.RawSetString("value", lua.LString(state))
		L.Push(tbl)
		return 1
	}))

	// HasItem("item") or HasItem("item", count)
	L.SetGlobal("HasItem", L.NewFunction(func(L *lua.LState) int {
		item := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("hasItem"))
		tbl.RawSetString("item", lua.LString(item))
		if L.GetTop() > 1 {
			tbl.RawSetString("value", lua.LString(L.CheckAny(2).String()))
		}
		L.Push(tbl)
		return 1
	}))
}
