//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status strip below the board.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{width: width, panel: ebiten.NewImage(width, Height)}
}

// Draw paints the status strip at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, st Status) {
	if h == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	fg := color.RGBA{R: 220, G: 220, B: 220, A: 255}
	if st.State.Done() {
		fg = color.RGBA{R: 255, G: 196, B: 64, A: 255}
	}
	text.Draw(h.panel, st.Text(), basicfont.Face7x13, 4, 14, fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
