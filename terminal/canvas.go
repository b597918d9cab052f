package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dragon"
)

// upperHalf is drawn in every cell: foreground = top pixel, background =
// bottom pixel.
const upperHalf = '▀'

// minTextAlpha is the opacity below which HUD text is hidden; cells cannot
// be drawn translucently.
const minTextAlpha = 0.5

type textRun struct {
	col, row int
	text     string
	style    tcell.Style
}

// Canvas is a dragon.Canvas drawing into a tcell screen. Its size in canvas
// units is the terminal width in columns by twice its height in rows.
//
// Drawing only updates an internal pixel buffer; call Flush to copy it to
// the screen.
type Canvas struct {
	screen tcell.Screen
	cols   int
	rows   int
	pixels []dragon.Color // cols × rows*2, row-major
	text   []textRun
}

// NewCanvas returns a canvas covering the whole screen.
func NewCanvas(screen tcell.Screen) *Canvas {
	c := &Canvas{screen: screen}
	c.resize()
	return c
}

// resize matches the pixel buffer to the current screen size.
func (c *Canvas) resize() {
	cols, rows := c.screen.Size()
	if cols == c.cols && rows == c.rows && c.pixels != nil {
		return
	}
	c.cols, c.rows = cols, rows
	c.pixels = make([]dragon.Color, cols*rows*2)
}

// Size implements dragon.Canvas.
func (c *Canvas) Size() (width, height float64) {
	return float64(c.cols), float64(c.rows * 2)
}

// Clear implements dragon.Canvas. It also picks up terminal resizes and
// drops text drawn in the previous frame.
func (c *Canvas) Clear(col dragon.Color) {
	c.resize()
	for i := range c.pixels {
		c.pixels[i] = col
	}
	c.text = c.text[:0]
}

// DrawLine implements dragon.Canvas. Terminal pixels are coarse, so the
// line is always one pixel wide whatever width is requested.
func (c *Canvas) DrawLine(x0, y0, x1, y1, width float64, col dragon.Color) {
	ax, ay := int(math.Floor(x0)), int(math.Floor(y0))
	bx, by := int(math.Floor(x1)), int(math.Floor(y1))

	// Bresenham.
	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(ax, ay, col)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// DrawText implements dragon.Canvas. (x, y) are in pixels; text starts at
// the cell containing that pixel.
func (c *Canvas) DrawText(x, y float64, s string, col dragon.Color) {
	if col.A < minTextAlpha {
		return
	}
	style := tcell.StyleDefault.
		Foreground(tcellColor(col.WithAlpha(1))).
		Background(tcell.ColorBlack)
	c.text = append(c.text, textRun{
		col:   int(x),
		row:   int(y) / 2,
		text:  s,
		style: style,
	})
}

// Pixel returns the color of pixel (x, y), or the zero Color outside the
// canvas.
func (c *Canvas) Pixel(x, y int) dragon.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return dragon.Color{}
	}
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) set(x, y int, col dragon.Color) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return
	}
	c.pixels[y*c.cols+x] = col
}

// Flush copies the pixel buffer and text to the screen and shows it.
func (c *Canvas) Flush() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(2*row)*c.cols+col]
			bottom := c.pixels[(2*row+1)*c.cols+col]
			style := tcell.StyleDefault.
				Foreground(tcellColor(top)).
				Background(tcellColor(bottom))
			c.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	for _, t := range c.text {
		col := t.col
		for _, r := range t.text {
			if col >= c.cols || t.row >= c.rows {
				break
			}
			c.screen.SetContent(col, t.row, r, nil, t.style)
			col++
		}
	}
	c.screen.Show()
}

func tcellColor(col dragon.Color) tcell.Color {
	rgba := col.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
