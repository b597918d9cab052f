package dragon

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas is a Canvas backed by an in-memory RGBA image. Lines are
// rasterized with anti-aliasing by golang.org/x/image/vector. Text is not
// supported.
//
// A RasterCanvas is not safe for concurrent use.
type RasterCanvas struct {
	img *image.RGBA
	r   *vector.Rasterizer // sized per line to the line's bounding box
	src *image.Uniform
}

// NewRasterCanvas returns a transparent canvas of the given size in pixels.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		r:   vector.NewRasterizer(width, height),
		src: image.NewUniform(color.RGBA{}),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Size implements Canvas.
func (c *RasterCanvas) Size() (width, height float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear implements Canvas.
func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

// DrawLine implements Canvas. The segment is stroked as a quad extended by
// half the width at both ends (square caps), which hides the seams between
// consecutive segments of a polyline.
func (c *RasterCanvas) DrawLine(x0, y0, x1, y1, width float64, col Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	hw := width / 2
	// Unit tangent scaled to half the width, and its normal.
	tx, ty := dx/length*hw, dy/length*hw
	nx, ny := -ty, tx

	corners := [4][2]float64{
		{x0 - tx + nx, y0 - ty + ny},
		{x1 + tx + nx, y1 + ty + ny},
		{x1 + tx - nx, y1 + ty - ny},
		{x0 - tx - nx, y0 - ty - ny},
	}

	// Rasterize only the quad's bounding box, clipped to the image.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	c.r.Reset(box.Dx(), box.Dy())
	c.r.MoveTo(float32(corners[0][0]-ox), float32(corners[0][1]-oy))
	for _, p := range corners[1:] {
		c.r.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	c.r.ClosePath()

	c.src.C = col.RGBA()
	c.r.Draw(c.img, box, c.src, image.Point{})
}

// DrawText implements Canvas. Raster output carries no text.
func (c *RasterCanvas) DrawText(x, y float64, s string, col Color) {}

// RenderFrame draws the curve for the given state onto a new canvas of the
// given size, without any overlay.
func RenderFrame(st State, width, height int) (*RasterCanvas, error) {
	c := NewRasterCanvas(width, height)
	c.Clear(ColorBlack)
	vertices := NewCurve().Generate(st.Folds, st.Angle)
	m, err := FitToScreen(vertices, float64(width), float64(height))
	if err != nil {
		return nil, err
	}
	DrawSegments(c, BuildSegments(nil, vertices, m))
	return c, nil
}

// RenderPNG renders the curve folded folds times at angle into a
// width×height PNG written to w.
func RenderPNG(w io.Writer, folds int, angle float64, width, height int) error {
	c, err := RenderFrame(State{Folds: folds, Angle: angle}, width, height)
	if err != nil {
		return err
	}
	return encodePNG(w, c.Image())
}
