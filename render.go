package dragon

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// ebitenCanvas adapts an Ebitengine screen image to Canvas.
type ebitenCanvas struct {
	target *ebiten.Image

	// textImg is an offscreen buffer for HUD text, which DebugPrint cannot
	// draw translucently by itself.
	textImg *ebiten.Image
}

func (c *ebitenCanvas) Size() (width, height float64) {
	b := c.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *ebitenCanvas) Clear(col Color) {
	c.target.Fill(col.RGBA())
}

func (c *ebitenCanvas) DrawLine(x0, y0, x1, y1, width float64, col Color) {
	vector.StrokeLine(c.target,
		float32(x0), float32(y0), float32(x1), float32(y1),
		float32(width), col.RGBA(), true)
}

func (c *ebitenCanvas) DrawText(x, y float64, s string, col Color) {
	w := max(len(s)*debugGlyphW, 1)
	if c.textImg == nil || c.textImg.Bounds().Dx() < w {
		if c.textImg != nil {
			c.textImg.Deallocate()
		}
		c.textImg = ebiten.NewImage(w, debugGlyphH)
	}
	c.textImg.Clear()
	ebitenutil.DebugPrint(c.textImg, s)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(math.Round(x), math.Round(y))
	op.ColorScale.ScaleWithColor(col.RGBA())
	c.target.DrawImage(c.textImg, &op)
}
