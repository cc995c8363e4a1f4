package ebiten

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/zyedidia/generic/mapset"

	"wormholes/pkg/engine/spatial"
	"wormholes/pkg/game/renderer"
)

// camera looks straight down the z axis from above the head
type camera struct {
	x, y, z float64
	focal   float64

	// screen centre
	cx, cy float64
}

// newCamera places a camera cameraCells above the head, framed so viewCells
// cells fit between the centre and the top edge of the screen at head depth
func newCamera(head renderer.WorldPos, cellSize float64, width, height int) camera {
	distance := cameraCells * cellSize
	return camera{
		x:     head.X,
		y:     head.Y,
		z:     head.Z + distance,
		focal: (float64(height) / 2) * distance / (viewCells * cellSize),
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
	}
}

// project returns the screen position of p and the pixels per world unit at its depth.
// ok is false when p is behind the near plane.
func (c camera) project(p renderer.WorldPos) (x, y, scale float64, ok bool) {
	depth := c.z - p.Z
	if depth < nearPlane {
		return 0, 0, 0, false
	}
	scale = c.focal / depth
	// north is up on screen
	return c.cx + (p.X-c.x)*scale, c.cy - (p.Y-c.y)*scale, scale, true
}

// drawOrder sorts pieces far to near, with pieces nearer the head on top at equal depth
func drawOrder(pieces []renderer.Piece) []renderer.Piece {
	ordered := slices.Clone(pieces)
	slices.SortStableFunc(ordered, func(a, b renderer.Piece) int {
		if c := cmp.Compare(a.Cell.Z, b.Cell.Z); c != 0 {
			return c
		}
		return cmp.Compare(b.Index, a.Index)
	})
	return ordered
}

// overlapping returns the indices of pieces sharing a cell with a piece nearer the head
func overlapping(pieces []renderer.Piece) mapset.Set[int] {
	seen := mapset.New[spatial.Vector3i]()
	out := mapset.New[int]()
	for _, p := range pieces {
		if seen.Has(p.Cell) {
			out.Put(p.Index)
		}
		seen.Put(p.Cell)
	}
	return out
}

// Draw renders the worm and HUD (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.valid || len(snap.frame.Pieces) == 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	head := snap.frame.Head()
	cam := newCamera(e.scale.CellToWorld(head.Cell), e.scale.CellSize, w, h)

	e.drawWorm(screen, cam, snap.frame)
	e.drawHUD(screen, snap, h)
}

func (e *EbitenRenderer) drawWorm(screen *ebiten.Image, cam camera, frame renderer.Frame) {
	overlaps := overlapping(frame.Pieces)

	var path vector.Path
	for _, p := range drawOrder(frame.Pieces) {
		x, y, scale, ok := cam.project(e.scale.CellToWorld(p.Cell))
		if !ok {
			continue
		}
		radius := e.scale.Radius(p) * scale
		if radius <= 0 {
			continue
		}

		clr := colorWorm
		switch {
		case p.Role == renderer.RoleHead:
			clr = colorHead
		case overlaps.Has(p.Index):
			clr = colorOverlap
		}

		path.Reset()
		path.Arc(float32(x), float32(y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
		path.Close()
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(clr)
		vector.FillPath(screen, &path, nil, drawOpts)
	}
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, snap renderSnapshot, screenHeight int) {
	face := e.getMonoFontFace()
	if face == nil {
		return
	}

	y := hudPadding
	e.drawText(screen, face, snap.status, hudPadding, y, colorText)
	y += hudLineHeight
	if snap.prompt != "" {
		e.drawText(screen, face, snap.prompt, hudPadding, y, colorDenied)
	}

	y = screenHeight - hudPadding - hudLineHeight*(len(snap.notices)+len(snap.messages))
	for _, notice := range snap.notices {
		e.drawText(screen, face, notice, hudPadding, y, colorText)
		y += hudLineHeight
	}
	for _, msg := range snap.messages {
		e.drawText(screen, face, msg, hudPadding, y, colorSubtle)
		y += hudLineHeight
	}
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, face *text.GoTextFace, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
