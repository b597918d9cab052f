package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dragon"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(cols, rows)
	return s
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 40, 12))
	w, h := c.Size()
	if w != 40 || h != 24 {
		t.Errorf("Size = %vx%v, want 40x24", w, h)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 10, 5))
	c.Clear(dragon.ColorBlack)
	c.DrawLine(0, 0, 9.7, 9.2, 2, dragon.ColorWhite)
	for i := range 10 {
		if got := c.Pixel(i, i); got != dragon.ColorWhite {
			t.Errorf("pixel (%d,%d) = %v, want white", i, i, got)
		}
	}
	if got := c.Pixel(9, 0); got != dragon.ColorBlack {
		t.Errorf("pixel (9,0) = %v, want black", got)
	}

	c.DrawLine(2, 7, 8, 7, 2, dragon.ColorWhite)
	for x := 2; x <= 8; x++ {
		if c.Pixel(x, 7) != dragon.ColorWhite {
			t.Errorf("pixel (%d,7) not drawn", x)
		}
	}

	// Off-canvas parts are clipped.
	c.DrawLine(-5, 3, 20, 3, 2, dragon.ColorWhite)
	if c.Pixel(0, 3) != dragon.ColorWhite || c.Pixel(9, 3) != dragon.ColorWhite {
		t.Error("clipped line missing inside canvas")
	}
	if (c.Pixel(-1, 3) != dragon.Color{}) {
		t.Error("Pixel outside canvas should be zero")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 4, 2))
	c.DrawText(0, 0, "hi", dragon.ColorWhite)
	c.Clear(dragon.ColorWhite)
	for y := range 4 {
		for x := range 4 {
			if c.Pixel(x, y) != dragon.ColorWhite {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
	if len(c.text) != 0 {
		t.Error("Clear kept text from the previous frame")
	}
}

func TestCanvasFlush(t *testing.T) {
	s := newTestScreen(t, 6, 3)
	c := NewCanvas(s)
	c.Clear(dragon.ColorBlack)
	c.DrawLine(0, 0, 5, 0, 1, dragon.ColorWhite)
	c.DrawText(1, 4, "ok", dragon.ColorWhite)
	c.DrawText(1, 2, "faded", dragon.ColorWhite.WithAlpha(0.2))
	c.Flush()

	white := tcell.NewRGBColor(255, 255, 255)
	black := tcell.NewRGBColor(0, 0, 0)

	r, _, style, _ := s.GetContent(3, 0)
	if r != upperHalf {
		t.Errorf("cell (3,0) = %q, want %q", r, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	if fg != white || bg != black {
		t.Errorf("cell (3,0) fg=%v bg=%v, want white over black", fg, bg)
	}

	// Row 1 holds pixel rows 2 and 3, which the faded text would cover.
	if r, _, _, _ := s.GetContent(1, 1); r != upperHalf {
		t.Errorf("faded text drawn: cell (1,1) = %q", r)
	}

	for i, want := range "ok" {
		r, _, style, _ := s.GetContent(1+i, 2)
		if r != want {
			t.Errorf("cell (%d,2) = %q, want %q", 1+i, r, want)
		}
		if fg, _, _ := style.Decompose(); fg != white {
			t.Errorf("text fg = %v, want white", fg)
		}
	}
}

func TestCanvasResize(t *testing.T) {
	s := newTestScreen(t, 8, 4)
	c := NewCanvas(s)
	s.SetSize(12, 6)
	c.Clear(dragon.ColorBlack)
	if w, h := c.Size(); w != 12 || h != 12 {
		t.Errorf("Size after resize = %vx%v, want 12x12", w, h)
	}
}

func TestCanvasDrawsScene(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 80, 25))
	scene := dragon.NewScene()
	scene.SetHUD(false)
	if err := scene.Draw(c); err != nil {
		t.Fatal(err)
	}
	lit := 0
	for y := range 50 {
		for x := range 80 {
			if c.Pixel(x, y) != dragon.ColorBlack {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("scene drew nothing")
	}
}
