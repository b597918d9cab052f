package dragon

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	TPS       int  // ticks per second; 0 keeps the Ebitengine default (60)
	Resizable bool // let the user resize the window; the curve refits
	ShowHUD   bool // draw the status line, including FPS
	Debug     bool // enable Scene debug mode
}

// Run opens a window and drives scene until the user quits or an error
// occurs. Quitting with Q returns nil.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	scene.SetHUD(cfg.ShowHUD)
	if cfg.ShowHUD {
		scene.SetFPSFunc(ebiten.ActualFPS)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}

	return ebiten.RunGame(&game{scene: scene})
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene   *Scene
	keys    []Key
	canvas  ebitenCanvas
	clock   frameClock
	drawErr error
}

func (g *game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	g.keys = pollKeys(g.keys[:0])
	err := g.scene.Update(g.clock.tick(time.Now(), tickSeconds()), g.keys)
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	if err := g.scene.Draw(&g.canvas); err != nil && g.drawErr == nil {
		// Draw cannot fail; report on the next Update.
		g.drawErr = err
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// frameClock measures the wall-clock time between Update calls, so the
// spin keeps its rate when frames take longer than a tick.
type frameClock struct {
	last time.Time
}

// tick returns the seconds elapsed since the previous tick. The first tick
// returns first.
func (c *frameClock) tick(now time.Time, first float64) float64 {
	if c.last.IsZero() {
		c.last = now
		return first
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return max(dt, 0)
}

// tickSeconds is the nominal time between two Update calls.
func tickSeconds() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float64(tps)
}
