package input

import (
	"maps"
	"slices"
	"testing"

	"wormholes/pkg/engine/spatial"
)

// restoreBindings puts the default bindings back after a test rebinds keys
func restoreBindings(t *testing.T) {
	t.Helper()
	saved := maps.Clone(bindings)
	t.Cleanup(func() {
		bindings = saved
	})
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"w", ActionMoveNorth},
		{"k", ActionMoveNorth},
		{"s", ActionMoveSouth},
		{"a", ActionMoveWest},
		{"l", ActionMoveEast},
		{"page_up", ActionMoveUp},
		{"r", ActionMoveUp},
		{"f", ActionMoveDown},
		{"g", ActionLengthen},
		{"escape", ActionCancel},
		{"q", ActionQuit},
		{"", ActionNone},
		{"z", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: tt.code})
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestIntentDirection(t *testing.T) {
	for _, d := range spatial.AllDirections() {
		intent := IntentFor(d)
		got, ok := intent.Direction()
		if !ok || got != d {
			t.Errorf("IntentFor(%v).Direction() = %v, %v", d, got, ok)
		}
	}
	for _, act := range []Action{ActionNone, ActionLengthen, ActionCancel, ActionQuit} {
		if _, ok := (Intent{Action: act}).Direction(); ok {
			t.Errorf("%s has a direction, want none", ActionName(act))
		}
	}
}

func TestResolveAxes(t *testing.T) {
	tests := []struct {
		name                  string
		left, right, up, down bool
		want                  spatial.Direction
		wantOK                bool
	}{
		{"nothing", false, false, false, false, 0, false},
		{"right", false, true, false, false, spatial.East, true},
		{"left", true, false, false, false, spatial.West, true},
		{"up", false, false, true, false, spatial.North, true},
		{"down", false, false, false, true, spatial.South, true},
		{"right beats up", false, true, true, false, spatial.East, true},
		{"left beats down", true, false, false, true, spatial.West, true},
		{"horizontal cancels to vertical", true, true, true, false, spatial.North, true},
		{"everything cancels", true, true, true, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveAxes(tt.left, tt.right, tt.up, tt.down)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("direction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetSingleBinding(t *testing.T) {
	restoreBindings(t)

	SetSingleBinding(ActionLengthen, "e")
	if MapToIntent(DebouncedInput{Code: "g"}).Action != ActionNone {
		t.Error("old binding g still mapped after rebinding")
	}
	if MapToIntent(DebouncedInput{Code: "e"}).Action != ActionLengthen {
		t.Error("new binding e not mapped to lengthen")
	}

	// arrows stay put
	SetSingleBinding(ActionMoveNorth, "i")
	if MapToIntent(DebouncedInput{Code: "arrow_up"}).Action != ActionMoveNorth {
		t.Error("reserved arrow_up lost its binding")
	}
	SetSingleBinding(ActionQuit, "arrow_up")
	if MapToIntent(DebouncedInput{Code: "arrow_up"}).Action != ActionMoveNorth {
		t.Error("reserved arrow_up was rebound")
	}
}

func TestApplyBindings(t *testing.T) {
	restoreBindings(t)

	if err := ApplyBindings(map[string]string{"move_up": "u", "lengthen": "+"}); err != nil {
		t.Fatalf("ApplyBindings: %v", err)
	}
	codes := GetBindingsByAction()
	if !slices.Equal(codes[ActionMoveUp], []string{"u"}) {
		t.Errorf("move_up codes = %v, want [u]", codes[ActionMoveUp])
	}
	if !slices.Equal(codes[ActionLengthen], []string{"+"}) {
		t.Errorf("lengthen codes = %v, want [+]", codes[ActionLengthen])
	}

	if err := ApplyBindings(map[string]string{"fly": "y"}); err == nil {
		t.Error("ApplyBindings with unknown action should fail")
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	for act, codes := range GetBindingsByAction() {
		if !slices.IsSorted(codes) {
			t.Errorf("%s codes not sorted: %v", ActionName(act), codes)
		}
	}
}
