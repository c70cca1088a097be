//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleColor   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the telemetry readout and the settings steppers to the right of
// the viewport.
type HUD struct {
	tunables  Tunables
	controls  []Control
	rows      []controlRow
	width     int
	panel     *ebiten.Image
	telemetry Telemetry
}

// NewHUD constructs a HUD for the provided settings and panel width.
func NewHUD(tunables Tunables, width int) *HUD {
	h := &HUD{tunables: tunables, width: max(width, 0)}
	if tunables != nil {
		h.controls = tunables.Controls()
	}
	h.rows = layoutRows(h.width, readoutBottom(len(Telemetry{}.Lines())), len(h.controls))
	return h
}

// Width reports the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update stores the latest telemetry and applies clicks on the steppers.
// panelX is the panel's left edge in screen coordinates.
func (h *HUD) Update(panelX int, t Telemetry) {
	if h == nil {
		return
	}
	h.telemetry = t
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	i, dir, ok := hitRow(h.rows, image.Pt(mx-panelX, my))
	if !ok {
		return
	}
	c := h.controls[i]
	if cur, ok := h.tunables.Value(c.Key); ok {
		if next, ok := c.Adjust(cur, dir); ok {
			h.tunables.Set(c.Key, next)
		}
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + titleHeight - 6
	text.Draw(h.panel, "Telemetry", face, panelPadding, y, titleColor)
	for _, line := range h.telemetry.Lines() {
		y += readoutLine
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}

	for i, c := range h.controls {
		row := h.rows[i]
		cur, ok := h.tunables.Value(c.Key)
		value, col := "--", dimColor
		if ok {
			value, col = c.Format(cur), textColor
		}
		text.Draw(h.panel, c.Label, face, panelPadding, row.baseline, textColor)
		vx := row.minus.Min.X - 6 - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, vx, row.baseline, col)

		_, down := c.Adjust(cur, -1)
		_, up := c.Adjust(cur, 1)
		h.drawStep(row.minus, "-", ok && down)
		h.drawStep(row.plus, "+", ok && up)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStep(r image.Rectangle, label string, enabled bool) {
	bg, fg := idleColor, dimColor
	if enabled {
		bg, fg = buttonColor, textColor
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	text.Draw(h.panel, label, basicfont.Face7x13, r.Min.X+(r.Dx()-7)/2, r.Max.Y-5, fg)
}
