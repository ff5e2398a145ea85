//go:build ebiten

package render

import (
	"image/color"

	"lifeterm/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from generation snapshots.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads gen into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, gen life.Generation, on, off color.Color, scale int) {
	if gen.Width() != gp.w || gen.Height() != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, gen.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
