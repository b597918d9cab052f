package dragon

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "key": "up"},
		{"action": "press", "keys": ["Left", "right"]},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("%d steps, want 4", len(r.steps))
	}
	if got := r.steps[1].keys; len(got) != 2 || got[0] != KeyLeft || got[1] != KeyRight {
		t.Errorf("keys = %v", got)
	}
	if r.Done() {
		t.Error("new runner reports done")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name, script, want string
	}{
		{"invalid json", `{`, "parse test script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"press without key", `{"steps": [{"action": "press"}]}`, "press without key"},
		{"unknown key", `{"steps": [{"action": "press", "key": "space"}]}`, `unknown key "space"`},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.script))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestTestRunnerDrivesScene(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "keys": ["up", "up"]},
		{"action": "screenshot", "label": "eight"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.SetTestRunner(r)

	for range 3 {
		if err := s.Update(frame, nil); err != nil {
			t.Fatal(err)
		}
	}
	if !r.Done() {
		t.Error("runner not done")
	}
	if got := s.State().Folds; got != 8 {
		t.Errorf("Folds = %d, want 8", got)
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "eight" {
		t.Errorf("screenshot queue = %v", s.screenshotQueue)
	}

	if err := s.Draw(newRecordingCanvas(64, 64)); err != nil {
		t.Fatal(err)
	}
	matches, _ := filepath.Glob(filepath.Join(s.ScreenshotDir, "*_eight.png"))
	if len(matches) != 1 {
		t.Errorf("screenshots = %v", matches)
	}
}

func TestTestRunnerWait(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "key": "q"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.SetTestRunner(r)

	// Frames 1-3 wait, frame 4 injects q and quits.
	for i := range 3 {
		if err := s.Update(frame, nil); err != nil {
			t.Fatalf("frame %d: %v", i+1, err)
		}
	}
	if err := s.Update(frame, nil); err != ErrQuit {
		t.Fatalf("frame 4: err = %v, want ErrQuit", err)
	}
}
