package ampel

import (
	"fmt"
	"time"
)

// Color identifies one of the three traffic light signals. The set is
// closed: every Color value used by the package is one of Green, Yellow
// or Red.
type Color int

const (
	// Green allows traffic to pass
	Green Color = iota
	// Yellow warns that the light is about to turn red
	Yellow
	// Red stops traffic
	Red
)

// colorNames maps each Color to its display name
var colorNames = map[Color]string{
	Green:  "Green",
	Yellow: "Yellow",
	Red:    "Red",
}

// String returns the display name of the color
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// IsValid reports whether the color is one of the three known signals
func (c Color) IsValid() bool {
	_, ok := colorNames[c]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, NewColorError(fmt.Sprintf("unknown color %d", int(c)))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor converts a display name back into a Color
func ParseColor(name string) (Color, error) {
	for color, colorName := range colorNames {
		if colorName == name {
			return color, nil
		}
	}
	return 0, NewColorError(fmt.Sprintf("unknown color '%s'", name))
}

// State is the active signal of a traffic light together with the
// duration the light holds it before advancing. States are values:
// advancing replaces the state, it never mutates one in place.
type State struct {
	Color Color
	Wait  time.Duration
}

// NewState creates a state for the given color and wait duration
func NewState(color Color, wait time.Duration) State {
	return State{Color: color, Wait: wait}
}

// String returns a debug-style representation such as "Green(1m0s)"
func (s State) String() string {
	return fmt.Sprintf("%s(%s)", s.Color, s.Wait)
}
