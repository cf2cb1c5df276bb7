package script

import (
	"fmt"
	"sync"

	"github.com/Shopify/go-lua"
)

// Command is the structured action a hunt chat command parses into
type Command struct {
	Action     string
	TargetKind string
	TargetID   int64
}

// Command actions produced by the parser script
const (
	ActionTargets   = "targets"
	ActionConfigure = "configure"
	ActionClaim     = "claim"
	ActionStop      = "stop"
	ActionStatus    = "status"
)

// Bridge parses player chat commands through a Lua script so operators can
// change command syntax and aliases without redeploying. The script must
// define a global parse_command(text) returning a table with an "action"
// field, or nil for text that is not a hunt command.
type Bridge struct {
	mu    sync.Mutex
	state *lua.State
	path  string
}

// NewBridge loads and runs the parser script
func NewBridge(path string) (*Bridge, error) {
	b := &Bridge{path: path}
	if err := b.load(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bridge) load() error {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.LoadFile(state, b.path, ""); err != nil {
		return fmt.Errorf("failed to load command script: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("failed to run command script: %w", err)
	}

	state.Global("parse_command")
	if !state.IsFunction(-1) {
		return fmt.Errorf("command script %s does not define parse_command", b.path)
	}
	state.Pop(1)

	b.state = state
	return nil
}

// Reload replaces the parser with a freshly loaded script. On error the
// current parser stays installed.
func (b *Bridge) Reload() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.state
	if err := b.load(); err != nil {
		b.state = old
		return err
	}
	return nil
}

// Parse runs the script against one chat line. A nil command with nil error
// means the text is not a hunt command.
func (b *Bridge) Parse(text string) (*Command, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.state
	state.Global("parse_command")
	state.PushString(text)
	if err := state.ProtectedCall(1, 1, 0); err != nil {
		return nil, fmt.Errorf("command script failed: %w", err)
	}

	if state.IsNil(-1) {
		state.Pop(1)
		return nil, nil
	}
	if !state.IsTable(-1) {
		state.Pop(1)
		return nil, fmt.Errorf("parse_command returned %s, want table or nil", lua.TypeNameOf(state, -1))
	}

	cmd := &Command{}
	cmd.Action = tableString(state, "action")
	cmd.TargetKind = tableString(state, "target_kind")
	cmd.TargetID = tableInteger(state, "target_id")
	state.Pop(1)

	if cmd.Action == "" {
		return nil, fmt.Errorf("parse_command returned a table without an action")
	}
	return cmd, nil
}

// tableString reads a string field from the table at the top of the stack
func tableString(state *lua.State, field string) string {
	state.Field(-1, field)
	defer state.Pop(1)
	value, ok := state.ToString(-1)
	if !ok {
		return ""
	}
	return value
}

// tableInteger reads an integer field from the table at the top of the stack
func tableInteger(state *lua.State, field string) int64 {
	state.Field(-1, field)
	defer state.Pop(1)
	value, ok := state.ToInteger(-1)
	if !ok {
		return 0
	}
	return int64(value)
}
