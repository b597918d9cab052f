package dragon

// fpsWindow is how often an FPSCounter refreshes its reading, in seconds.
const fpsWindow = 0.5

// FPSCounter measures frames per second from frame durations. The reading
// refreshes about every half second so the HUD stays legible.
type FPSCounter struct {
	elapsed float64
	frames  int
	fps     float64
}

// Tick records one frame that took dt seconds.
func (c *FPSCounter) Tick(dt float64) {
	c.elapsed += dt
	c.frames++
	if c.elapsed < fpsWindow {
		return
	}
	c.fps = float64(c.frames) / c.elapsed
	c.elapsed = 0
	c.frames = 0
}

// FPS returns the most recent reading, or 0 before the first window ends.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// SetFPSFunc installs a callback reporting the measured frame rate. The HUD
// shows its value when set. Run installs ebiten.ActualFPS.
func (s *Scene) SetFPSFunc(fn func() float64) {
	s.fpsFunc = fn
}

func (s *Scene) fps() float64 {
	if s.fpsFunc == nil {
		return 0
	}
	return s.fpsFunc()
}
