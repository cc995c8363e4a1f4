package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"wormholes/pkg/engine/input"
	"wormholes/pkg/engine/spatial"
	"wormholes/pkg/engine/terminal"
	"wormholes/pkg/game/renderer"
	"wormholes/pkg/game/state"
)

// Icons for the top-down map
const (
	IconHead  = "@"
	IconBody  = "●"
	IconTail  = "○"
	IconEmpty = "·"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	CellWidth       = 2 // icon plus a space
	// Lines needed outside the map:
	// - Title (2)
	// - Status bar (3)
	// - Keys (2)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Blank lines (2)
	ViewportTopMargin = 16
)

// dynamicGet is used for runtime translation key lookups from markup.
var dynamicGet = gotext.Get

const overlapsFallback = "The worm crosses itself %d times"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorDirection   color.Style
	colorHead        color.Style
	colorBody        color.Style
	colorTail        color.Style
	colorAbove       color.Style
	colorBelow       color.Style

	// size overrides the terminal size when set
	size func() (width, height int)
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, size: terminal.GetSize}
}

// NewWithWriter creates a TUI renderer with a fixed size writing to out
func NewWithWriter(out io.Writer, width, height int) *TUIRenderer {
	return &TUIRenderer{out: out, size: func() (int, int) { return width, height }}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDirection = color.Style{color.FgCyan}
	t.colorHead = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorBody = color.Style{color.FgYellow}
	t.colorTail = color.Style{color.FgYellow, color.OpBold}
	t.colorAbove = color.Style{color.FgLightYellow, color.OpBold} // segments above the head's level
	t.colorBelow = color.Style{color.FgGray}                      // segments below the head's level
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDirection:
		return t.colorDirection.Sprint(text)
	case renderer.StyleHead:
		return t.colorHead.Sprint(text)
	case renderer.StyleBody:
		return t.colorBody.Sprint(text)
	case renderer.StyleTail:
		return t.colorTail.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.Markup(msg, args, func(function, operand string) string {
		switch function {
		case "GT":
			return operand
		case "DIR":
			return t.StyleText(dynamicGet(operand), renderer.StyleDirection)
		case "ACTION":
			return t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction)
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}
	})
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the map dimensions in cells based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	width, height := t.size()
	return terminal.Viewport(width, height, ViewportTopMargin, CellWidth, ViewportMinRows, ViewportMinCols)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	frame := renderer.Snapshot(s.Worm)

	t.printString("%s\n\n", t.colorAction.Sprint(gotext.Get("TITLE")))

	t.printMap(frame)

	t.printStatusBar(s, frame)

	t.printPossibleActions()

	t.printMessagesPane(s)

	fmt.Fprint(t.out, "\n> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// topDown projects the frame onto the x/y plane. Where pieces share a column
// the highest one shows; on a tie the piece nearer the head wins.
func topDown(frame renderer.Frame) map[[2]int]renderer.Piece {
	cols := make(map[[2]int]renderer.Piece, len(frame.Pieces))
	for _, p := range frame.Pieces {
		key := [2]int{p.Cell.X, p.Cell.Y}
		if cur, ok := cols[key]; ok && cur.Cell.Z >= p.Cell.Z {
			continue
		}
		cols[key] = p
	}
	return cols
}

// renderPiece returns the styled icon for one visible piece.
// Pieces off the head's level are tinted by depth instead of role.
func (t *TUIRenderer) renderPiece(p renderer.Piece, head spatial.Vector3i) string {
	icon, style := IconBody, renderer.StyleBody
	switch p.Role {
	case renderer.RoleHead:
		return t.StyleText(IconHead, renderer.StyleHead)
	case renderer.RoleTail:
		icon, style = IconTail, renderer.StyleTail
	}

	switch {
	case p.Cell.Z > head.Z:
		return t.colorAbove.Sprint(icon)
	case p.Cell.Z < head.Z:
		return t.colorBelow.Sprint(icon)
	default:
		return t.StyleText(icon, style)
	}
}

// printMap renders the worm from above, centred on the head, north up
func (t *TUIRenderer) printMap(frame renderer.Frame) {
	rows, cols := t.GetViewportSize()
	head := frame.Head().Cell
	visible := topDown(frame)

	startX := head.X - cols/2
	topY := head.Y + rows/2

	var b strings.Builder
	for vRow := 0; vRow < rows; vRow++ {
		y := topY - vRow
		for vCol := 0; vCol < cols; vCol++ {
			x := startX + vCol
			if p, ok := visible[[2]int{x, y}]; ok {
				b.WriteString(t.renderPiece(p, head))
			} else {
				b.WriteString(t.colorSubtle.Sprint(IconEmpty))
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(t.out, b.String())
}

// printStatusBar renders head position, length and movement state
func (t *TUIRenderer) printStatusBar(s *state.Session, frame renderer.Frame) {
	fmt.Fprintln(t.out)

	label := func(key string) string {
		return t.StyleText(dynamicGet(key), renderer.StyleSubtle)
	}
	fmt.Fprintln(t.out,
		label("STATUS_HEAD")+" "+s.Worm.HeadPosition().String()+"  "+
			label("STATUS_SEGMENTS")+" "+fmt.Sprint(s.Worm.NumSegments())+"  "+
			label("STATUS_TICK")+" "+fmt.Sprint(s.Tick)+"  "+
			label("STATUS_POLICY")+" "+s.Worm.Policy().String())

	if frame.Overlaps > 0 {
		overlaps := fmt.Sprintf(renderer.Translate("STATUS_OVERLAPS", overlapsFallback), frame.Overlaps)
		fmt.Fprintln(t.out, t.StyleText(overlaps, renderer.StyleDenied))
	}
	if s.AwaitingDirection() {
		fmt.Fprintln(t.out, t.StyleText(gotext.Get("AWAITING_DIRECTION"), renderer.StyleDenied))
	}
}

// helpOrder lists the actions shown in the key help line
var helpOrder = []input.Action{
	input.ActionMoveNorth,
	input.ActionMoveSouth,
	input.ActionMoveWest,
	input.ActionMoveEast,
	input.ActionMoveUp,
	input.ActionMoveDown,
	input.ActionLengthen,
	input.ActionCancel,
	input.ActionQuit,
}

// printPossibleActions prints the key bindings
func (t *TUIRenderer) printPossibleActions() {
	bindings := input.GetBindingsByAction()
	parts := make([]string, 0, len(helpOrder))
	for _, act := range helpOrder {
		codes := bindings[act]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, t.FormatText("ACTION{%s} %s", shortestCode(codes), input.ActionName(act)))
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, strings.Join(parts, t.colorSubtle.Sprint(", ")))
}

// shortestCode picks the quickest key to type from a sorted list of codes
func shortestCode(codes []string) string {
	best := codes[0]
	for _, c := range codes[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	width, _ := t.size()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(s.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range s.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
