package input

import (
	"fmt"
	"sort"
	"time"

	"wormholes/pkg/engine/spatial"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceScript
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveEast
	ActionMoveWest
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveUp
	ActionMoveDown

	// Growth
	ActionLengthen
	ActionCancel

	// Meta
	ActionQuit
)

// moveActions pairs each movement action with the direction it crawls in
var moveActions = map[Action]spatial.Direction{
	ActionMoveEast:  spatial.East,
	ActionMoveWest:  spatial.West,
	ActionMoveNorth: spatial.North,
	ActionMoveSouth: spatial.South,
	ActionMoveUp:    spatial.Up,
	ActionMoveDown:  spatial.Down,
}

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// Direction returns the crawl direction of a movement intent.
// The second result is false for every non-movement action.
func (i Intent) Direction() (spatial.Direction, bool) {
	d, ok := moveActions[i.Action]
	return d, ok
}

// IntentFor returns the movement intent for a direction
func IntentFor(d spatial.Direction) Intent {
	for act, dir := range moveActions {
		if dir == d {
			return Intent{Action: act}
		}
	}
	return Intent{Action: ActionNone}
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "w", "arrow_up", "page_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Every source here is turn based, so a raw event is already one press.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Horizontal plane (arrows, WASD, Vim, names)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"north":       ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"south":       ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"west":        ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,
	"east":        ActionMoveEast,

	// Depth
	"r":         ActionMoveUp,
	"page_up":   ActionMoveUp,
	"up":        ActionMoveUp,
	"f":         ActionMoveDown,
	"page_down": ActionMoveDown,
	"down":      ActionMoveDown,

	// Growth
	"g":      ActionLengthen,
	"grow":   ActionLengthen,
	"escape": ActionCancel,
	"cancel": ActionCancel,

	// Quit
	"q":    ActionQuit,
	"quit": ActionQuit,
}

// reserved codes keep their binding so the worm can always be steered
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ResolveAxes turns simultaneously held keys into at most one direction.
// Opposite keys cancel out, and horizontal input wins over vertical.
func ResolveAxes(left, right, up, down bool) (spatial.Direction, bool) {
	horizontal := btoi(right) - btoi(left)
	vertical := btoi(up) - btoi(down)
	switch {
	case horizontal > 0:
		return spatial.East, true
	case horizontal < 0:
		return spatial.West, true
	case vertical > 0:
		return spatial.North, true
	case vertical < 0:
		return spatial.South, true
	default:
		return 0, false
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveEast:
		return "Move East"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionLengthen:
		return "Lengthen"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

var actionKeys = map[string]Action{
	"move_east":  ActionMoveEast,
	"move_west":  ActionMoveWest,
	"move_north": ActionMoveNorth,
	"move_south": ActionMoveSouth,
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"lengthen":   ActionLengthen,
	"cancel":     ActionCancel,
	"quit":       ActionQuit,
}

// ParseAction looks up an action by its config key, e.g. "move_up"
func ParseAction(key string) (Action, error) {
	if act, ok := actionKeys[key]; ok {
		return act, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", key)
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// stable order so the help line doesn't flicker
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes are neither removed nor rebound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// ApplyBindings rebinds actions from a config map of action key to code
func ApplyBindings(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		act, err := ParseAction(k)
		if err != nil {
			return err
		}
		SetSingleBinding(act, overrides[k])
	}
	return nil
}
