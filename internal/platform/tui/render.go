package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuisteroids/tuisteroids/internal/core"
	"github.com/tuisteroids/tuisteroids/internal/game"
)

// Invulnerable ships blink with this period, in ticks.
const blinkPeriod = 8

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderFrame draws the full frame for the machine's current state into the
// screen buffer.
func RenderFrame(s *core.Screen, m *game.Machine, highScore int) {
	s.Clear()

	switch m.State() {
	case game.StateMenu:
		if d := m.Demo(); d != nil {
			drawWorld(s, d)
		}
		drawMenuOverlay(s, highScore)
	case game.StatePlaying:
		w := m.Playing()
		drawWorld(s, w)
		drawHUD(s, w, highScore)
	case game.StateGameOver:
		drawGameOverOverlay(s, m.FinalScore(), m.FinalWave(), highScore)
	}
}

// drawWorld renders the playfield below the HUD row using a braille canvas:
// every character cell carries a 2x4 dot grid, which is as close to vector
// graphics as a terminal gets.
func drawWorld(s *core.Screen, w *game.World) {
	rows := s.Height() - 1
	if rows < 1 || s.Width() < 1 {
		return
	}
	canvas := core.NewCanvas(s.Width(), rows)
	worldW, worldH := w.Config().World.Width, w.Config().World.Height

	for _, a := range w.Asteroids() {
		color := core.ColorGray
		if a.Size == game.SizeSmall {
			color = core.ColorWhite
		}
		canvas.DrawPolygon(a.WorldVertices(), worldW, worldH, color)
	}

	for _, b := range w.Bullets() {
		canvas.DrawMarker(b.Position, worldW, worldH, core.ColorYellow)
	}

	drawShip(canvas, w, worldW, worldH)
	canvas.Blit(s, 0, 1)
}

// drawShip draws the hull, blinking while invulnerable, plus a flickering
// exhaust flame under thrust.
func drawShip(canvas *core.Canvas, w *game.World, worldW, worldH float64) {
	ship := w.Ship()
	if ship.Invulnerable() && (w.Tick()/blinkPeriod)%2 == 1 {
		return
	}

	v := ship.Vertices()
	canvas.DrawPolygon(v[:], worldW, worldH, core.ColorCyan)

	if ship.Thrusting && w.Tick()%2 == 0 {
		// Flame from the rear midpoint, opposite the facing.
		rear := v[1].Add(v[2]).Scale(0.5)
		tip := rear.Add(rear.Sub(ship.Position).Normalize().Scale(6))
		x0, y0 := canvas.Project(rear, worldW, worldH)
		x1, y1 := canvas.Project(tip, worldW, worldH)
		canvas.DrawLine(x0, y0, x1, y1, core.ColorOrange)
	}
}

// drawHUD renders the status row: score, lives, wave, and session high,
// plus the interstitial banner between waves.
func drawHUD(s *core.Screen, w *game.World, highScore int) {
	hud := fmt.Sprintf(" SCORE %06d   LIVES %s  WAVE %d", w.Score(), strings.Repeat("^", w.Lives()), w.Wave())
	s.DrawText(0, 0, hud, core.ColorWhite)

	hi := fmt.Sprintf("HI %06d ", highScore)
	s.DrawText(s.Width()-len(hi), 0, hi, core.ColorGray)

	if w.WaveCleared() {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("WAVE %d CLEARED", w.Wave()), core.ColorYellow)
	}
}

// drawMenuOverlay puts the attract-screen text over the demo playfield.
func drawMenuOverlay(s *core.Screen, highScore int) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-4, "T U I S T E R O I D S", core.ColorCyan)
	s.DrawTextCentered(mid-2, fmt.Sprintf("HIGH SCORE %06d", highScore), core.ColorGray)
	s.DrawTextCentered(mid, "PRESS ANY KEY TO START", core.ColorYellow)
	s.DrawTextCentered(mid+2, "arrows/wasd steer - space fires - q quits", core.ColorGray)
}

// drawGameOverOverlay renders the results screen.
func drawGameOverOverlay(s *core.Screen, score, wave, highScore int) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-3, "G A M E  O V E R", core.ColorRed)
	s.DrawTextCentered(mid-1, fmt.Sprintf("FINAL SCORE %06d", score), core.ColorWhite)
	s.DrawTextCentered(mid, fmt.Sprintf("REACHED WAVE %d", wave), core.ColorWhite)
	if score >= highScore && score > 0 {
		s.DrawTextCentered(mid+2, "NEW HIGH SCORE", core.ColorYellow)
	}
	s.DrawTextCentered(mid+4, "PRESS ANY KEY", core.ColorGray)
}
