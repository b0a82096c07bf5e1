// Package loader reads world-description documents (a small Lua DSL) into
// validated world entities. The Lua VM is sandboxed and discarded after
// loading; no Lua runs during play.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/athell/grimoire/world"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	realm *lua.LTable
	texts map[string]string
	items []rawDef
	npcs  []rawDef
	rooms []rawDef
}

// rawDef holds a named definition table before compilation.
type rawDef struct {
	name  string
	table *lua.LTable
}

// Load reads all .lua files from dir (realm.lua first, rest alphabetical),
// compiles them into world entities, validates references, and returns the
// realm. Validation warnings go to stderr; errors fail the load.
func Load(dir string) (*world.Realm, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading world directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	luaFiles = sortedWorldFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{texts: map[string]string{}}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	realm, ve, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling world data: %w", err)
	}
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return realm, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals a world file has no business calling.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}

// sortedWorldFiles puts realm.lua first, the rest alphabetical.
func sortedWorldFiles(files []string) []string {
	var realmFile string
	var others []string
	for _, f := range files {
		if f == "realm.lua" {
			realmFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if realmFile != "" {
		return append([]string{realmFile}, others...)
	}
	return others
}
