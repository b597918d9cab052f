package dragon

import "math"

const (
	// DefaultFolds is the fold count at startup.
	DefaultFolds = 6

	// DefaultAngle is the fold angle at startup (a right angle, which gives
	// the classic Heighway dragon).
	DefaultAngle = math.Pi / 2

	// AngleVelocityStep is how much one Left/Right press changes the
	// angular velocity, in radians per second.
	AngleVelocityStep = 0.01
)

// Action is a state change requested by the user.
type Action uint8

const (
	ActionNone      Action = iota
	ActionFoldMore         // one more fold
	ActionFoldLess         // one fewer fold, saturating at zero
	ActionSpinLeft         // decrease angular velocity
	ActionSpinRight        // increase angular velocity
	ActionQuit             // stop the frame loop
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionFoldMore:  "fold-more",
	ActionFoldLess:  "fold-less",
	ActionSpinLeft:  "spin-left",
	ActionSpinRight: "spin-right",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// State is the user-controlled state carried from frame to frame.
type State struct {
	Folds         int     // number of folds, never negative
	Angle         float64 // fold angle in radians
	AngleVelocity float64 // radians per second
}

// NewState returns the startup state: 6 folds at a right angle, not spinning.
func NewState() State {
	return State{
		Folds: DefaultFolds,
		Angle: DefaultAngle,
	}
}

// Apply performs a. It reports whether a asks the loop to stop.
func (s *State) Apply(a Action) (quit bool) {
	switch a {
	case ActionFoldMore:
		s.Folds++
	case ActionFoldLess:
		if s.Folds > 0 {
			s.Folds--
		}
	case ActionSpinLeft:
		s.AngleVelocity -= AngleVelocityStep
	case ActionSpinRight:
		s.AngleVelocity += AngleVelocityStep
	case ActionQuit:
		return true
	}
	return false
}

// Advance integrates the angular velocity over dt seconds.
func (s *State) Advance(dt float64) {
	s.Angle += s.AngleVelocity * dt
}
