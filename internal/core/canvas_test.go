package core

import (
	"testing"

	"github.com/tuisteroids/tuisteroids/internal/geom"
)

func TestDotBit(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   uint8
	}{
		{0, 0, 0x01},
		{0, 1, 0x02},
		{0, 2, 0x04},
		{1, 0, 0x08},
		{1, 1, 0x10},
		{1, 2, 0x20},
		{0, 3, 0x40},
		{1, 3, 0x80},
		{2, 0, 0},
		{0, 4, 0},
	}
	for _, c := range cases {
		if got := DotBit(c.dx, c.dy); got != c.want {
			t.Errorf("DotBit(%d, %d): got %#x, want %#x", c.dx, c.dy, got, c.want)
		}
	}
}

func TestBrailleRune(t *testing.T) {
	if r := BrailleRune(0); r != '⠀' {
		t.Errorf("empty pattern: got %q, want blank braille", r)
	}
	if r := BrailleRune(0xFF); r != '⣿' {
		t.Errorf("full pattern: got %q, want full braille block", r)
	}
}

func TestCanvasResolution(t *testing.T) {
	c := NewCanvas(80, 24)
	if c.DotWidth() != 160 {
		t.Errorf("DotWidth: got %d, want 160", c.DotWidth())
	}
	if c.DotHeight() != 96 {
		t.Errorf("DotHeight: got %d, want 96", c.DotHeight())
	}
}

func TestCanvasSetDot(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetDot(0, 0, ColorWhite)
	if r := c.Rune(0, 0); r != BrailleRune(0x01) {
		t.Errorf("dot (0,0): got %q", r)
	}

	// Two dots in the same cell merge bit patterns.
	c.SetDot(1, 3, ColorWhite)
	if r := c.Rune(0, 0); r != BrailleRune(0x01|0x80) {
		t.Errorf("merged dots: got %q", r)
	}

	// Out-of-range dots are ignored.
	c.SetDot(-1, 0, ColorWhite)
	c.SetDot(0, 100, ColorWhite)
	if r := c.Rune(1, 1); r != BrailleRune(0) {
		t.Errorf("untouched cell: got %q, want blank", r)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetDot(0, 0, ColorWhite)
	c.Clear()
	if r := c.Rune(0, 0); r != BrailleRune(0) {
		t.Errorf("after Clear: got %q, want blank", r)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	// Horizontal line across the top row of dots.
	c.DrawLine(0, 0, 7, 0, ColorWhite)
	for col := 0; col < 4; col++ {
		if r := c.Rune(col, 0); r != BrailleRune(0x01|0x08) {
			t.Errorf("cell %d: got %q, want top-row dots", col, r)
		}
	}
}

func TestCanvasDrawPolygonProjectsWorldSpace(t *testing.T) {
	c := NewCanvas(80, 24)
	// A triangle near world center should only set dots near the canvas center.
	verts := []geom.Vec2{
		geom.V(390, 290),
		geom.V(410, 290),
		geom.V(400, 310),
	}
	c.DrawPolygon(verts, 800, 600, ColorWhite)

	set := 0
	for row := 0; row < 24; row++ {
		for col := 0; col < 80; col++ {
			if c.Rune(col, row) != BrailleRune(0) {
				set++
				if col < 35 || col > 45 || row < 9 || row > 15 {
					t.Errorf("dot outside expected center region at cell (%d, %d)", col, row)
				}
			}
		}
	}
	if set == 0 {
		t.Fatal("polygon drew no dots")
	}
}

func TestCanvasBlitSkipsEmptyCells(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "HUD!", ColorYellow)

	c := NewCanvas(4, 2)
	c.SetDot(0, 4, ColorWhite) // cell (0,1) only

	c.Blit(s, 0, 0)

	if got := s.Row(0); got != "HUD!" {
		t.Errorf("empty canvas cells overwrote text: %q", got)
	}
	if s.Get(0, 1) != BrailleRune(0x01) {
		t.Errorf("blit did not write dot cell: %q", s.Get(0, 1))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "score", ColorWhite)
	s.Resize(20, 8)
	if got := s.Row(0)[:5]; got != "score" {
		t.Errorf("resize lost content: %q", got)
	}
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("resize dimensions: %dx%d", s.Width(), s.Height())
	}
}

func TestFireEdge(t *testing.T) {
	var e FireEdge
	if !e.Update(true) {
		t.Error("first press should fire")
	}
	if e.Update(true) {
		t.Error("held press should not fire again")
	}
	if e.Update(false) {
		t.Error("release should not fire")
	}
	if !e.Update(true) {
		t.Error("re-press should fire")
	}
}
