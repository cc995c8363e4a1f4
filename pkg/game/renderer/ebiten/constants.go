package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorWorm       = color.RGBA{255, 161, 0, 255}   // Orange
	colorHead       = color.RGBA{255, 203, 0, 255}   // Gold
	colorOverlap    = color.RGBA{255, 80, 80, 255}   // Red where the body crosses itself
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle     = color.RGBA{120, 130, 180, 255} // Soft blue-gray
	colorDenied     = color.RGBA{255, 100, 100, 255} // Bright red
)

const (
	// cameraCells is how far the camera sits above the head, in cells
	cameraCells = 8.0

	// viewCells is how many cells fit between the screen centre and its top edge at head depth
	viewCells = 12.0

	// nearPlane hides pieces closer to the camera than this many world units
	nearPlane = 1.0

	hudFontSize   = 14.0
	hudLineHeight = 18
	hudPadding    = 10
)
