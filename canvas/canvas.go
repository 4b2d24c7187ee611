// Package canvas defines the presentation collaborator consumed by the
// simulation core. The game draws, moves and deletes simple shapes through
// opaque handles; how those shapes reach a screen is a host concern.
package canvas

// Handle identifies a shape owned by a Canvas. Zero is never a valid handle.
type Handle uint64

// Color is a presentation-neutral palette entry.
type Color uint8

const (
	ColorRed Color = iota
	ColorShadow
	ColorWhite
)

// Canvas is the drawing surface the game renders into.
// Coordinates are logical playfield coordinates, not screen cells.
type Canvas interface {
	// CreateRect draws a filled rectangle with top-left (x, y).
	CreateRect(x, y, w, h int, c Color) Handle

	// CreateLine draws a straight segment between two points.
	CreateLine(x0, y0, x1, y1 int, c Color) Handle

	// CreateText draws a string centered on (x, y).
	CreateText(x, y int, text string, c Color) Handle

	// Move shifts a shape by a relative delta.
	Move(h Handle, dx, dy int)

	// Delete removes a shape. Deleting an unknown handle is a no-op.
	Delete(h Handle)

	// Clear removes every shape.
	Clear()
}
