package loader

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/agecore/engine/catalog"
)

// collector gathers the tables passed to the content API while files run.
type collector struct {
	game         *lua.LTable
	buildings    []rawDef
	technologies []rawDef
	governments  []rawDef
	setup        *lua.LTable
}

// Load builds a catalog from the .lua files in dir.
func Load(dir string) (*catalog.Catalog, error) {
	cat, err := LoadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", dir, err)
	}
	return cat, nil
}

// LoadFS builds a catalog from the .lua files in dir of fsys. Files run in
// one sandboxed VM, game.lua first, and the VM is closed before the
// compiled catalog is validated.
func LoadFS(fsys fs.FS, dir string) (*catalog.Catalog, error) {
	names, err := luaFiles(fsys, dir)
	if err != nil {
		return nil, err
	}

	coll := &collector{}
	L := newVM(coll)
	defer L.Close()

	for _, name := range names {
		src, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := run(L, name, src); err != nil {
			return nil, fmt.Errorf("executing %s: %w", name, err)
		}
	}

	cat, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}
	if err := validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// luaFiles lists the content files of dir in execution order.
func luaFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".lua") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	return sortedLuaFiles(names), nil
}

// run executes one chunk of Lua source under the given name.
func run(L *lua.LState, name string, src []byte) error {
	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		return err
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

// safeLibs are the only standard libraries content can see.
var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// bannedGlobals reach the filesystem, bypass metatables or load code.
var bannedGlobals = []string{
	"dofile", "loadfile", "load", "loadstring",
	"rawset", "rawget", "rawequal",
	"collectgarbage",
}

// newVM returns a sandboxed Lua state with the content API bound to coll.
func newVM(coll *collector) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range safeLibs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range bannedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	// Card data must not depend on a seed.
	if math, ok := L.GetGlobal(lua.MathLibName).(*lua.LTable); ok {
		math.RawSetString("random", lua.LNil)
		math.RawSetString("randomseed", lua.LNil)
	}
	registerAPI(L, coll)
	return L
}
