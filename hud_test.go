package dragon

import (
	"math"
	"testing"
)

func TestHUDHoldsThenFades(t *testing.T) {
	var h hud
	h.enabled = true
	h.show()

	h.update(hudHold / 2)
	if h.alpha != 1 {
		t.Fatalf("alpha during hold = %v, want 1", h.alpha)
	}

	// Cross into the fade by a quarter second.
	h.update(hudHold/2 + 0.25)
	if h.alpha <= 0 || h.alpha >= 1 {
		t.Fatalf("alpha mid-fade = %v, want in (0, 1)", h.alpha)
	}
	// InQuad: 1 - (0.25)^2
	if want := 1 - 0.0625; math.Abs(h.alpha-want) > 1e-3 {
		t.Errorf("alpha = %v, want %v", h.alpha, want)
	}

	prev := h.alpha
	h.update(0.25)
	if h.alpha >= prev {
		t.Errorf("alpha did not decrease: %v -> %v", prev, h.alpha)
	}

	h.update(hudFade)
	if h.alpha != 0 || h.visible() {
		t.Errorf("alpha after fade = %v, visible = %v", h.alpha, h.visible())
	}

	// Further updates are no-ops.
	h.update(10)
	if h.alpha != 0 {
		t.Errorf("alpha = %v after idle update", h.alpha)
	}
}

func TestHUDShowRestarts(t *testing.T) {
	h := hud{enabled: true}
	h.show()
	h.update(hudHold + hudFade/2)
	h.show()
	if h.alpha != 1 || h.fade != nil || h.hold != hudHold {
		t.Errorf("show did not reset: %+v", h)
	}
}

func TestHUDDrawUsesAlpha(t *testing.T) {
	h := hud{enabled: true, text: "hello"}
	c := newRecordingCanvas(100, 100)

	h.draw(c)
	if len(c.texts) != 0 {
		t.Fatal("hidden HUD drew text")
	}

	h.show()
	h.alpha = 0.5
	h.draw(c)
	if len(c.texts) != 1 {
		t.Fatalf("%d texts, want 1", len(c.texts))
	}
	got := c.texts[0]
	if got.x != hudX || got.y != hudY || got.text != "hello" {
		t.Errorf("text = %+v", got)
	}
	assertColor(t, "text", got.color, Color{1, 1, 1, 0.5})
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		st   State
		fps  float64
		want string
	}{
		{NewState(), 0, "folds 6  angle 90.0 deg  spin +0.00 rad/s"},
		{State{Folds: 0, Angle: -math.Pi / 2, AngleVelocity: -0.05}, 0, "folds 0  angle 270.0 deg  spin -0.05 rad/s"},
		{State{Folds: 12, Angle: 5 * math.Pi}, 30, "folds 12  angle 180.0 deg  spin +0.00 rad/s  fps 30.0"},
	}
	for _, tt := range tests {
		if got := statusText(tt.st, tt.fps); got != tt.want {
			t.Errorf("statusText(%+v, %v) = %q, want %q", tt.st, tt.fps, got, tt.want)
		}
	}
}
