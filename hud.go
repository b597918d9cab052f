package dragon

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	hudHold = 1.5 // seconds at full opacity after a change
	hudFade = 1.0 // seconds to fade out
	hudX    = 8
	hudY    = 8
)

// hud is the status line drawn over the curve. It appears at full opacity
// whenever the state changes and fades out once the user stops pressing
// keys.
type hud struct {
	enabled bool
	alpha   float64
	hold    float64
	fade    *gween.Tween
	text    string
}

// show resets the HUD to full opacity and restarts its hold timer.
func (h *hud) show() {
	h.alpha = 1
	h.hold = hudHold
	h.fade = nil
}

// update advances the hold timer and the fade tween by dt seconds.
func (h *hud) update(dt float64) {
	if h.alpha == 0 {
		return
	}
	if h.hold > 0 {
		h.hold -= dt
		if h.hold > 0 {
			return
		}
		h.fade = gween.New(1, 0, hudFade, ease.InQuad)
		// Carry the overshoot into the fade.
		dt = -h.hold
		h.hold = 0
	}
	if h.fade == nil {
		return
	}
	val, finished := h.fade.Update(float32(dt))
	h.alpha = math.Max(0, float64(val))
	if finished {
		h.alpha = 0
		h.fade = nil
	}
}

// visible reports whether the HUD would draw anything.
func (h *hud) visible() bool {
	return h.enabled && h.alpha > 0
}

// statusText formats the state for the HUD.
func statusText(st State, fps float64) string {
	deg := math.Mod(st.Angle*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	s := fmt.Sprintf("folds %d  angle %.1f deg  spin %+.2f rad/s", st.Folds, deg, st.AngleVelocity)
	if fps > 0 {
		s += fmt.Sprintf("  fps %.1f", fps)
	}
	return s
}

func (h *hud) draw(c Canvas) {
	if !h.visible() {
		return
	}
	c.DrawText(hudX, hudY, h.text, ColorWhite.WithAlpha(h.alpha))
}
