package core

import "github.com/tuisteroids/tuisteroids/internal/geom"

// Braille Unicode block: U+2800 to U+28FF. Each terminal cell holds a
// 2-dot-wide by 4-dot-tall grid, giving the canvas sub-cell resolution.
// Dot bit layout within a cell:
//
//	(0,0)=0x01  (1,0)=0x08
//	(0,1)=0x02  (1,1)=0x10
//	(0,2)=0x04  (1,2)=0x20
//	(0,3)=0x40  (1,3)=0x80
const brailleBase = 0x2800

var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// DotBit returns the braille bit for a dot position within a cell
// (dx in 0..1, dy in 0..3).
func DotBit(dx, dy int) uint8 {
	if dx < 0 || dx > 1 || dy < 0 || dy > 3 {
		return 0
	}
	return dotBits[dy][dx]
}

// BrailleRune converts a dot pattern byte to its braille character.
func BrailleRune(pattern uint8) rune {
	return rune(brailleBase + int(pattern))
}

// Canvas is a buffer of braille dots mapped onto terminal cells. Games draw
// world-space polygons into it; Blit transfers the result to a Screen.
// Each cell carries a single color; the last draw into a cell wins.
type Canvas struct {
	cols   int
	rows   int
	cells  []uint8
	colors []Color
}

// NewCanvas creates a canvas covering cols × rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{
		cols:   cols,
		rows:   rows,
		cells:  make([]uint8, cols*rows),
		colors: make([]Color, cols*rows),
	}
}

// DotWidth returns the horizontal dot resolution (2 per cell).
func (c *Canvas) DotWidth() int {
	return c.cols * 2
}

// DotHeight returns the vertical dot resolution (4 per cell).
func (c *Canvas) DotHeight() int {
	return c.rows * 4
}

// Clear removes all dots.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = 0
		c.colors[i] = ColorDefault
	}
}

// SetDot turns on a single dot at the given dot-space coordinates.
// Out-of-range coordinates are silently ignored.
func (c *Canvas) SetDot(px, py int, color Color) {
	if px < 0 || py < 0 || px >= c.DotWidth() || py >= c.DotHeight() {
		return
	}

	col := px / 2
	row := py / 4
	idx := row*c.cols + col
	c.cells[idx] |= DotBit(px%2, py%4)
	c.colors[idx] = color
}

// Rune returns the braille character for a terminal cell.
func (c *Canvas) Rune(col, row int) rune {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return BrailleRune(0)
	}
	return BrailleRune(c.cells[row*c.cols+col])
}

// DrawLine draws a line between two dot-space points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0

	for {
		c.SetDot(x, y, color)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x == x1 {
				return
			}
			err += dy
			x += sx
		}
		if e2 <= dx {
			if y == y1 {
				return
			}
			err += dx
			y += sy
		}
	}
}

// Project maps a world-space position into dot-space coordinates.
func (c *Canvas) Project(p geom.Vec2, worldW, worldH float64) (int, int) {
	px := int(p.X / worldW * float64(c.DotWidth()))
	py := int(p.Y / worldH * float64(c.DotHeight()))
	return px, py
}

// DrawPolygon strokes a closed polygon given in world space.
// Fewer than two vertices draws nothing.
func (c *Canvas) DrawPolygon(verts []geom.Vec2, worldW, worldH float64, color Color) {
	if len(verts) < 2 {
		return
	}
	for i := range verts {
		x0, y0 := c.Project(verts[i], worldW, worldH)
		x1, y1 := c.Project(verts[(i+1)%len(verts)], worldW, worldH)
		c.DrawLine(x0, y0, x1, y1, color)
	}
}

// DrawMarker sets a 2×2 block of dots centered near a world position,
// used for point-like entities such as bullets.
func (c *Canvas) DrawMarker(p geom.Vec2, worldW, worldH float64, color Color) {
	px, py := c.Project(p, worldW, worldH)
	c.SetDot(px, py, color)
	c.SetDot(px+1, py, color)
	c.SetDot(px, py+1, color)
	c.SetDot(px+1, py+1, color)
}

// Blit writes the canvas into a screen buffer at the given cell offset.
// Cells with no dots are left untouched so text underneath survives.
func (c *Canvas) Blit(dst *Screen, offsetX, offsetY int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			idx := row*c.cols + col
			if c.cells[idx] == 0 {
				continue
			}
			dst.SetCell(offsetX+col, offsetY+row, Cell{
				Rune:  BrailleRune(c.cells[idx]),
				Color: c.colors[idx],
			})
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
