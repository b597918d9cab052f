// Package audio plays a short tone whenever the fold count changes. The
// pitch rises an octave every six folds.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 60 * time.Millisecond
	toneAttack   = 0.005 // seconds
	toneVolume   = 0.2
	baseTone     = 220.0 // Hz at zero folds
	foldsPerOct  = 6
	maxToneFolds = 24
)

// Player plays fold-change cues through the default audio device.
type Player struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
}

// New initializes the speaker and starts an idle mixer on it. Only one
// Player should exist at a time.
func New() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	p := &Player{rate: sampleRate, mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// ToneFor returns the cue frequency in Hz for a fold count. Fold counts
// past maxToneFolds share the highest tone.
func ToneFor(folds int) float64 {
	folds = max(0, min(folds, maxToneFolds))
	return baseTone * math.Pow(2, float64(folds)/foldsPerOct)
}

// FoldsChanged plays the cue for folds without blocking. It has the
// signature expected by dragon.Scene.OnFoldsChanged.
func (p *Player) FoldsChanged(folds int) {
	cue := beep.Take(p.rate.N(toneDuration), newToneGenerator(p.rate, ToneFor(folds)))
	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}

// toneGenerator is an endless sine with a short linear attack and an
// exponential decay.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/toneAttack, 1) * math.Exp(-t*30)
		sample := toneVolume * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
