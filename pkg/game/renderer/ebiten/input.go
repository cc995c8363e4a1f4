package ebiten

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	engineinput "wormholes/pkg/engine/input"
)

// Key repeat timing, in frames at 60 TPS
const (
	keyRepeatInitialDelay = 18
	keyRepeatInterval     = 6
)

// Update reads input and steps the session (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	e.frames++

	intent := resolveIntents(e.keyboardIntents())
	if intent.Action == engineinput.ActionNone && e.script != nil && e.frames%e.stepFrames == 0 {
		intent = e.scriptIntent()
	}

	if intent.Action != engineinput.ActionNone {
		e.step(e.session, intent)
		e.RenderFrame(e.session)
	}

	if e.session.Quit {
		return ebiten.Termination
	}
	return nil
}

// scriptIntent pulls the next scripted move; the script is dropped once it ends or fails
func (e *EbitenRenderer) scriptIntent() engineinput.Intent {
	intent, err := engineinput.NextIntent(e.script)
	if errors.Is(err, io.EOF) {
		e.log.Info("script finished", zap.Int("tick", e.session.Tick))
		e.script = nil
		e.ShowMessage(gotext.Get("INPUT_FINISHED"))
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	if err != nil {
		e.log.Error("script failed", zap.Error(err))
		e.script = nil
		e.ShowMessage(gotext.Get("SCRIPT_FAILED"))
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	return intent
}

// keyboardIntents maps every key that fires this frame to an intent
func (e *EbitenRenderer) keyboardIntents() []engineinput.Intent {
	var intents []engineinput.Intent
	for _, k := range inpututil.AppendPressedKeys(nil) {
		if !shouldRepeat(inpututil.KeyPressDuration(k)) {
			continue
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   keyCode(k.String()),
		}))
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}

// shouldRepeat reports whether a key held for the given number of frames fires this frame
func shouldRepeat(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= keyRepeatInitialDelay && (duration-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// resolveIntents folds the keys pressed in one frame into a single intent.
// Planar moves are combined so opposites cancel and horizontal wins a diagonal;
// otherwise the first intent is used.
func resolveIntents(intents []engineinput.Intent) engineinput.Intent {
	var left, right, up, down bool
	planar := false
	for _, in := range intents {
		switch in.Action {
		case engineinput.ActionMoveWest:
			left = true
		case engineinput.ActionMoveEast:
			right = true
		case engineinput.ActionMoveNorth:
			up = true
		case engineinput.ActionMoveSouth:
			down = true
		default:
			continue
		}
		planar = true
	}
	if planar {
		if d, ok := engineinput.ResolveAxes(left, right, up, down); ok {
			return engineinput.IntentFor(d)
		}
	}

	for _, in := range intents {
		switch in.Action {
		case engineinput.ActionMoveWest, engineinput.ActionMoveEast,
			engineinput.ActionMoveNorth, engineinput.ActionMoveSouth:
			continue
		}
		return in
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// keyCode turns an Ebiten key name such as "ArrowUp" into a binding code such as "arrow_up"
func keyCode(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
