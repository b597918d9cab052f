package dragon

import (
	"errors"
	"io"
	"os"
	"time"
)

// ErrQuit is returned by Scene.Update when the user asked to quit.
var ErrQuit = errors.New("dragon: quit")

const defaultSegmentCap = 1 << (DefaultFolds + 1)

// Scene owns the user state, the curve buffers and everything drawn on top
// of the curve. It is driven by calling Update once per tick and Draw once
// per frame.
type Scene struct {
	state    State
	bindings Bindings
	curve    *Curve
	segments []Segment
	debug    bool

	// ClearColor fills the canvas before the curve is drawn.
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	// LogOutput receives debug stats and non-fatal errors. Defaults to
	// os.Stderr.
	LogOutput io.Writer

	hud     hud
	fpsFunc func() float64

	// Hooks
	foldsChanged []func(folds int)

	// Input injection and scripted runs
	injectQueue     []Key
	testRunner      *TestRunner
	screenshotQueue []string

	stats debugStats
}

// NewScene creates a scene in the startup state with the default bindings.
func NewScene() *Scene {
	s := &Scene{
		state:         NewState(),
		bindings:      DefaultBindings,
		curve:         NewCurve(),
		segments:      make([]Segment, 0, defaultSegmentCap),
		ClearColor:    ColorBlack,
		ScreenshotDir: "screenshots",
		LogOutput:     os.Stderr,
		hud:           hud{enabled: true},
	}
	s.curve.Generate(s.state.Folds, s.state.Angle)
	s.hud.show()
	s.hud.text = statusText(s.state, 0)
	return s
}

// State returns a copy of the current user state.
func (s *Scene) State() State {
	return s.state
}

// SetState replaces the user state and regenerates the curve.
func (s *Scene) SetState(st State) {
	if st.Folds < 0 {
		st.Folds = 0
	}
	s.state = st
	s.curve.Generate(s.state.Folds, s.state.Angle)
}

// Vertices returns the curve generated by the last Update. The slice is
// owned by the scene.
func (s *Scene) Vertices() []Vec2 {
	return s.curve.Vertices()
}

// SetHUD enables or disables the status overlay.
func (s *Scene) SetHUD(enabled bool) {
	s.hud.enabled = enabled
}

// OnFoldsChanged registers fn to be called after a key press changed the
// fold count.
func (s *Scene) OnFoldsChanged(fn func(folds int)) {
	s.foldsChanged = append(s.foldsChanged, fn)
}

// SetDebugMode enables or disables debug mode. When enabled, folding a
// malformed curve panics, large fold counts are warned about and per-frame
// timing stats are logged to LogOutput. The fold check is package-wide:
// disabling debug mode on one Scene disables it for all of them.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that the
// curve generator (which lacks a Scene pointer) can check it cheaply.
var globalDebug bool

// Update advances the scene by dt seconds. pressed lists the keys pressed
// since the previous call; injected keys are handled first. Update returns
// ErrQuit once a quit key was pressed.
func (s *Scene) Update(dt float64, pressed []Key) error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	folds := s.state.Folds
	changed := false

	if k, ok := s.popInjectedKey(); ok {
		pressed = append([]Key{k}, pressed...)
	}
	for _, k := range pressed {
		a := s.bindings[k]
		if a == ActionNone {
			continue
		}
		if s.state.Apply(a) {
			return ErrQuit
		}
		changed = true
	}

	s.state.Advance(dt)

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.curve.Generate(s.state.Folds, s.state.Angle)
	if s.debug {
		s.stats.generateTime = time.Since(t0)
		if s.state.Folds != folds {
			debugCheckFolds(s.LogOutput, s.state.Folds)
		}
	}

	if s.state.Folds != folds {
		for _, fn := range s.foldsChanged {
			fn(s.state.Folds)
		}
	}
	if changed {
		s.hud.show()
	}
	s.hud.update(dt)
	return nil
}

// Draw clears c, fits the current curve to its size and strokes every
// segment, then draws the HUD and flushes queued screenshots.
func (s *Scene) Draw(c Canvas) error {
	c.Clear(s.ClearColor)

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	w, h := c.Size()
	m, err := FitToScreen(s.curve.Vertices(), w, h)
	if err != nil {
		return err
	}
	s.segments = BuildSegments(s.segments, s.curve.Vertices(), m)

	if s.debug {
		s.stats.fitTime = time.Since(t0)
		t0 = time.Now()
	}

	DrawSegments(c, s.segments)

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.stats.vertexCount = len(s.curve.Vertices())
		s.stats.segmentCount = len(s.segments)
		s.debugLog(s.stats)
	}

	if s.hud.visible() {
		s.hud.text = statusText(s.state, s.fps())
		s.hud.draw(c)
	}

	s.flushScreenshots(w, h)
	return nil
}
