package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dragon"
)

// DefaultTPS is the frame rate used when Options.TPS is not positive.
const DefaultTPS = 30

// Options configures Run.
type Options struct {
	TPS     int  // frames per second
	ShowHUD bool // draw the status line
	Debug   bool // enable Scene debug mode
}

// keyFor maps a tcell key event to a scene key. ok is false for keys the
// scene does not use.
func keyFor(ev *tcell.EventKey) (k dragon.Key, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dragon.KeyUp, true
	case tcell.KeyDown:
		return dragon.KeyDown, true
	case tcell.KeyLeft:
		return dragon.KeyLeft, true
	case tcell.KeyRight:
		return dragon.KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return dragon.KeyQ, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return dragon.KeyQ, true
		}
	}
	return 0, false
}

// Run drives scene on an initialized screen until the user quits, ctx is
// done or the scene fails. It does not call screen.Fini. Quitting and
// context cancellation both return nil.
func Run(ctx context.Context, scene *dragon.Scene, screen tcell.Screen, opts Options) error {
	tps := opts.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	scene.SetHUD(opts.ShowHUD)
	if opts.Debug {
		scene.SetDebugMode(true)
	}

	var fps dragon.FPSCounter
	scene.SetFPSFunc(fps.FPS)

	canvas := NewCanvas(screen)
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	var keys []dragon.Key
	last := time.Now()
	for {
		keys = keys[:0]
		for screen.HasPendingEvent() {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if k, ok := keyFor(ev); ok {
					keys = append(keys, k)
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				// Screen finalized.
				return nil
			}
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		fps.Tick(dt)

		if err := scene.Update(dt, keys); err != nil {
			if errors.Is(err, dragon.ErrQuit) {
				return nil
			}
			return fmt.Errorf("terminal: update: %w", err)
		}
		if err := scene.Draw(canvas); err != nil {
			return fmt.Errorf("terminal: draw: %w", err)
		}
		canvas.Flush()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
