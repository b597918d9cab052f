package dragon

import (
	"fmt"
	"io"
	"time"
)

// debugStats holds per-frame timing and geometry counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	generateTime time.Duration
	fitTime      time.Duration
	drawTime     time.Duration
	vertexCount  int
	segmentCount int
}

// debugLog prints timing and geometry stats to the scene's LogOutput.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.generateTime + stats.fitTime + stats.drawTime
	_, _ = fmt.Fprintf(s.LogOutput,
		"[dragon] generate: %v | fit: %v | draw: %v | total: %v\n",
		stats.generateTime, stats.fitTime, stats.drawTime, total)
	_, _ = fmt.Fprintf(s.LogOutput,
		"[dragon] folds: %d | vertices: %d | segments: %d\n",
		s.state.Folds, stats.vertexCount, stats.segmentCount)
}

// debugMaxFolds is the fold count past which a frame's vertex buffer
// exceeds a million points.
const debugMaxFolds = 20

// debugCheckFolds warns on w if folds exceeds debugMaxFolds.
func debugCheckFolds(w io.Writer, folds int) {
	if folds > debugMaxFolds {
		_, _ = fmt.Fprintf(w, "[dragon] warning: %d folds generate %d vertices per frame (threshold %d folds)\n",
			folds, VertexCount(folds), debugMaxFolds)
	}
}
