package input

import (
	"errors"
	"fmt"
	"io"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"wormholes/pkg/engine/spatial"
)

// scriptEntry is the global function a script must define:
//
//	function next_move(tick, x, y, z) return "east" end
//
// Returning nil ends the script.
const scriptEntry = "next_move"

// Observer reports the game state handed to the script on every call
type Observer func() (tick int, head spatial.Vector3i)

// ScriptSource feeds binding codes produced by a Lua script.
// Single-goroutine access only.
type ScriptSource struct {
	vm      *lua.LState
	observe Observer
	log     *zap.Logger
	done    bool
}

// LoadScript runs the Lua file at path and returns a source driven by its next_move function
func LoadScript(path string, observe Observer, log *zap.Logger) (*ScriptSource, error) {
	vm := lua.NewState()
	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	s, err := newScriptSource(vm, observe, log)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	s.log.Debug("loaded lua script", zap.String("file", path))
	return s, nil
}

// CompileScript is LoadScript for script source held in memory
func CompileScript(src string, observe Observer, log *zap.Logger) (*ScriptSource, error) {
	vm := lua.NewState()
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("compile script: %w", err)
	}
	return newScriptSource(vm, observe, log)
}

func newScriptSource(vm *lua.LState, observe Observer, log *zap.Logger) (*ScriptSource, error) {
	if vm.GetGlobal(scriptEntry).Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("script does not define function %s", scriptEntry)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ScriptSource{vm: vm, observe: observe, log: log}, nil
}

// Next calls next_move and returns the code it produced.
// It returns io.EOF once the script returns nil, and on every call after that.
func (s *ScriptSource) Next() (RawInput, error) {
	if s.done {
		return RawInput{}, io.EOF
	}

	var tick int
	var head spatial.Vector3i
	if s.observe != nil {
		tick, head = s.observe()
	}

	if err := s.vm.CallByParam(lua.P{
		Fn:      s.vm.GetGlobal(scriptEntry),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(tick), lua.LNumber(head.X), lua.LNumber(head.Y), lua.LNumber(head.Z)); err != nil {
		s.done = true
		return RawInput{}, fmt.Errorf("lua %s: %w", scriptEntry, err)
	}

	result := s.vm.Get(-1)
	s.vm.Pop(1)

	switch v := result.(type) {
	case *lua.LNilType:
		s.done = true
		s.log.Debug("script finished", zap.Int("tick", tick))
		return RawInput{}, io.EOF
	case lua.LString:
		return RawInput{Device: DeviceScript, Code: string(v), Timestamp: time.Now()}, nil
	default:
		s.done = true
		return RawInput{}, errors.New("lua " + scriptEntry + " returned " + result.Type().String() + ", want string or nil")
	}
}

// Close releases the Lua VM
func (s *ScriptSource) Close() {
	s.vm.Close()
}
