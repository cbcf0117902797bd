// Package render draws the world onto a tcell screen
// It is read-only glue: one frame is drawn from component snapshots,
// nothing here mutates the simulation
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/systems"
)

var palette = map[component.SpriteColor]tcell.Style{
	component.ColorDefault:    tcell.StyleDefault,
	component.ColorPlayer:     tcell.StyleDefault.Foreground(tcell.ColorLightCyan).Bold(true),
	component.ColorAsteroid:   tcell.StyleDefault.Foreground(tcell.ColorLightSlateGray),
	component.ColorBoss:       tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	component.ColorProjectile: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	component.ColorPowerUp:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
}

// Renderer projects world coordinates onto the terminal cell grid
type Renderer struct {
	screen     tcell.Screen
	halfWidth  float64
	halfHeight float64
}

func NewRenderer(screen tcell.Screen, halfWidth, halfHeight float64) *Renderer {
	return &Renderer{
		screen:     screen,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// Draw renders one frame: sprites, HUD, overlays
func (r *Renderer) Draw(w *engine.World, stats *systems.Stats, paused bool) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	hudRows := 1
	fieldRows := rows - hudRows

	if cols > 0 && fieldRows > 0 {
		c := w.Components
		entities := w.Query().
			With(c.Transforms).
			With(c.Sprites).
			Execute()

		for _, e := range entities {
			transform, _ := c.Transforms.Get(e)
			sprite, _ := c.Sprites.Get(e)

			// World [-half, +half] to screen [0, size), Y down
			x := int((transform.Position.X + r.halfWidth) / (2 * r.halfWidth) * float64(cols))
			y := int((transform.Position.Y + r.halfHeight) / (2 * r.halfHeight) * float64(fieldRows))
			if x < 0 || x >= cols || y < 0 || y >= fieldRows {
				continue
			}

			style, ok := palette[sprite.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			r.screen.SetContent(x, y+hudRows, sprite.Glyph, nil, style)
		}
	}

	r.drawHUD(w, stats, cols, paused)

	if stats.GameOver {
		r.drawCentered(cols, rows/2, "GAME OVER", palette[component.ColorBoss])
	} else if paused {
		r.drawCentered(cols, rows/2, "PAUSED", palette[component.ColorPlayer])
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(w *engine.World, stats *systems.Stats, cols int, paused bool) {
	health := 0.0
	c := w.Components
	for _, e := range c.Players.All() {
		if h, ok := c.Healths.Get(e); ok {
			health = h.Current
		}
	}

	line := fmt.Sprintf(" SCORE %06d  LIVES %d  HULL %3.0f ", stats.Score, stats.Lives, health)
	style := tcell.StyleDefault.Reverse(true)
	for i, ch := range line {
		if i >= cols {
			break
		}
		r.screen.SetContent(i, 0, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(cols, row int, text string, style tcell.Style) {
	start := (cols - len(text)) / 2
	if start < 0 {
		start = 0
	}
	for i, ch := range text {
		r.screen.SetContent(start+i, row, ch, nil, style)
	}
}
