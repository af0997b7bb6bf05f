package interp

import (
	"fmt"
	"strings"
)

// Mode selects how a segment between two keyframes is filled.
type Mode uint8

const (
	Constant Mode = iota
	Linear
	Bezier
	EaseIn
	EaseOut
	EaseInOut
	Bounce
	Elastic
)

var modeNames = [...]string{
	Constant:  "constant",
	Linear:    "linear",
	Bezier:    "bezier",
	EaseIn:    "ease_in",
	EaseOut:   "ease_out",
	EaseInOut: "ease_in_out",
	Bounce:    "bounce",
	Elastic:   "elastic",
}

// Modes returns every interpolation mode.
func Modes() []Mode {
	return []Mode{Constant, Linear, Bezier, EaseIn, EaseOut, EaseInOut, Bounce, Elastic}
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode resolves a mode name such as "ease_in_out".
// An empty name defaults to linear.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Linear, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return Linear, fmt.Errorf("unknown interpolation mode: %s", name)
}

func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("unknown interpolation mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Easing is the sub-mode used by the bounce and elastic families to pick
// which end of the segment the effect sits on.
type Easing uint8

const (
	Auto Easing = iota
	In
	Out
	InOut
)

var easingNames = [...]string{
	Auto:  "auto",
	In:    "in",
	Out:   "out",
	InOut: "in_out",
}

func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return fmt.Sprintf("easing(%d)", uint8(e))
}

// ParseEasing resolves an easing name. An empty name is Auto.
func ParseEasing(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Auto, nil
	}
	for e, n := range easingNames {
		if n == name {
			return Easing(e), nil
		}
	}
	return Auto, fmt.Errorf("unknown easing: %s", name)
}

func (e Easing) MarshalText() ([]byte, error) {
	if int(e) >= len(easingNames) {
		return nil, fmt.Errorf("unknown easing %d", uint8(e))
	}
	return []byte(e.String()), nil
}

func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
