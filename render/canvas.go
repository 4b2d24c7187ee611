// Package render maps the logical 500x500 playfield onto the terminal cell
// grid and draws the game's shapes through tcell.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/the-ray/canvas"
	"github.com/lixenwraith/the-ray/constants"
	"github.com/lixenwraith/the-ray/vmath"
)

type shapeKind uint8

const (
	shapeRect shapeKind = iota
	shapeLine
	shapeText
)

type shape struct {
	kind   shapeKind
	x, y   int
	w, h   int
	x1, y1 int
	text   string
	color  canvas.Color
}

// TermCanvas implements canvas.Canvas. Shapes are stored in logical
// coordinates and projected onto the current cell grid every frame, so
// terminal resizes cost nothing.
type TermCanvas struct {
	nextHandle canvas.Handle
	shapes     map[canvas.Handle]*shape
	order      []canvas.Handle
}

// NewTermCanvas creates an empty terminal canvas.
func NewTermCanvas() *TermCanvas {
	return &TermCanvas{
		nextHandle: 1,
		shapes:     make(map[canvas.Handle]*shape),
	}
}

func (c *TermCanvas) add(s *shape) canvas.Handle {
	h := c.nextHandle
	c.nextHandle++
	c.shapes[h] = s
	c.order = append(c.order, h)
	return h
}

func (c *TermCanvas) CreateRect(x, y, w, h int, col canvas.Color) canvas.Handle {
	return c.add(&shape{kind: shapeRect, x: x, y: y, w: w, h: h, color: col})
}

func (c *TermCanvas) CreateLine(x0, y0, x1, y1 int, col canvas.Color) canvas.Handle {
	return c.add(&shape{kind: shapeLine, x: x0, y: y0, x1: x1, y1: y1, color: col})
}

func (c *TermCanvas) CreateText(x, y int, text string, col canvas.Color) canvas.Handle {
	return c.add(&shape{kind: shapeText, x: x, y: y, text: text, color: col})
}

func (c *TermCanvas) Move(h canvas.Handle, dx, dy int) {
	if s, ok := c.shapes[h]; ok {
		s.x += dx
		s.y += dy
		s.x1 += dx
		s.y1 += dy
	}
}

func (c *TermCanvas) Delete(h canvas.Handle) {
	delete(c.shapes, h)
}

func (c *TermCanvas) Clear() {
	for h := range c.shapes {
		delete(c.shapes, h)
	}
	c.order = c.order[:0]
}

// Draw projects every live shape onto the screen's playfield region
// (everything above the HUD row), in creation order.
func (c *TermCanvas) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	gridH := height - 1 // Bottom row belongs to the HUD
	if width <= 0 || gridH <= 0 {
		return
	}

	live := c.order[:0]
	for _, h := range c.order {
		s, ok := c.shapes[h]
		if !ok {
			continue
		}
		live = append(live, h)
		c.drawShape(screen, s, width, gridH)
	}
	c.order = live
}

func (c *TermCanvas) drawShape(screen tcell.Screen, s *shape, gridW, gridH int) {
	style := styleFor(s.color)
	switch s.kind {
	case shapeRect:
		cx0, cy0 := LogicalToCell(s.x, s.y, gridW, gridH)
		cx1, cy1 := LogicalToCell(s.x+s.w-1, s.y+s.h-1, gridW, gridH)
		for cy := cy0; cy <= cy1; cy++ {
			for cx := cx0; cx <= cx1; cx++ {
				setCell(screen, cx, cy, '█', style, gridW, gridH)
			}
		}
	case shapeLine:
		cx0, cy0 := LogicalToCell(s.x, s.y, gridW, gridH)
		cx1, cy1 := LogicalToCell(s.x1, s.y1, gridW, gridH)
		t := vmath.NewLineTracer(cx0, cy0, cx1, cy1)
		for t.Next() {
			cx, cy := t.Pos()
			setCell(screen, cx, cy, '█', style, gridW, gridH)
		}
	case shapeText:
		cx, cy := LogicalToCell(s.x, s.y, gridW, gridH)
		start := cx - len(s.text)/2
		for i, r := range s.text {
			setCell(screen, start+i, cy, r, style, gridW, gridH)
		}
	}
}

func setCell(screen tcell.Screen, cx, cy int, r rune, style tcell.Style, gridW, gridH int) {
	if cx < 0 || cx >= gridW || cy < 0 || cy >= gridH {
		return
	}
	screen.SetContent(cx, cy, r, nil, style)
}

func styleFor(c canvas.Color) tcell.Style {
	switch c {
	case canvas.ColorShadow:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x82, 0x82))
	case canvas.ColorWhite:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

// LogicalToCell projects a logical playfield coordinate onto the cell grid.
func LogicalToCell(x, y, gridW, gridH int) (int, int) {
	cx := x * gridW / constants.PlayfieldSize
	cy := y * gridH / constants.PlayfieldSize
	return clamp(cx, 0, gridW-1), clamp(cy, 0, gridH-1)
}

// CellToLogical maps a cell back to the logical coordinate at its center,
// used to translate mouse positions into beam targets.
func CellToLogical(cx, cy, gridW, gridH int) (int, int) {
	if gridW <= 0 || gridH <= 0 {
		return 0, 0
	}
	x := (cx*constants.PlayfieldSize + constants.PlayfieldSize/2) / gridW
	y := (cy*constants.PlayfieldSize + constants.PlayfieldSize/2) / gridH
	return clamp(x, 0, constants.PlayfieldSize), clamp(y, 0, constants.PlayfieldSize)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
