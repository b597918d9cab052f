package dragon

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key identifies a key the scene reacts to, independent of the backend that
// reported it.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyQ
	keyCount
)

var keyNames = [keyCount]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyQ:     "q",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey returns the Key with the given case-insensitive name.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Bindings maps keys to the actions they trigger.
type Bindings map[Key]Action

// DefaultBindings is the fixed control scheme.
var DefaultBindings = Bindings{
	KeyUp:    ActionFoldMore,
	KeyDown:  ActionFoldLess,
	KeyLeft:  ActionSpinLeft,
	KeyRight: ActionSpinRight,
	KeyQ:     ActionQuit,
}

// ebitenKeys is the physical key for each Key.
var ebitenKeys = [keyCount]ebiten.Key{
	KeyUp:    ebiten.KeyArrowUp,
	KeyDown:  ebiten.KeyArrowDown,
	KeyLeft:  ebiten.KeyArrowLeft,
	KeyRight: ebiten.KeyArrowRight,
	KeyQ:     ebiten.KeyQ,
}

// pollKeys appends every key pressed since the previous tick to buf.
// Presses are edge-triggered; holding a key reports it once.
func pollKeys(buf []Key) []Key {
	for k, ek := range ebitenKeys {
		if inpututil.IsKeyJustPressed(ek) {
			buf = append(buf, Key(k))
		}
	}
	return buf
}
