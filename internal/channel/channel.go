package channel

import (
	"fmt"
	"strings"
)

// Channel is one of the animatable property groups of a scene object.
type Channel uint8

const (
	Location Channel = iota + 1
	Rotation
	Scale
	Material
	Visibility
)

var channelNames = map[Channel]string{
	Location:   "location",
	Rotation:   "rotation",
	Scale:      "scale",
	Material:   "material",
	Visibility: "visibility",
}

func (c Channel) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// Axis is a vector component of a spatial channel.
type Axis uint8

const (
	NoAxis Axis = iota
	X
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return ""
}

// Key names one animatable series: a channel together with one of its
// sub-channels. The set is closed, so a Key value is always a valid
// channel/sub-channel pair (the zero value is Invalid).
type Key uint8

const (
	Invalid Key = iota

	LocationX
	LocationY
	LocationZ

	RotationX
	RotationY
	RotationZ

	ScaleX
	ScaleY
	ScaleZ

	MaterialOpacity
	MaterialRoughness
	MaterialMetalness
	MaterialEmissive
	MaterialColorR
	MaterialColorG
	MaterialColorB

	Visible

	keyCount
)

type keyInfo struct {
	channel Channel
	axis    Axis
	sub     string
}

var keys = [keyCount]keyInfo{
	LocationX: {Location, X, "x"},
	LocationY: {Location, Y, "y"},
	LocationZ: {Location, Z, "z"},

	RotationX: {Rotation, X, "x"},
	RotationY: {Rotation, Y, "y"},
	RotationZ: {Rotation, Z, "z"},

	ScaleX: {Scale, X, "x"},
	ScaleY: {Scale, Y, "y"},
	ScaleZ: {Scale, Z, "z"},

	MaterialOpacity:   {Material, NoAxis, "opacity"},
	MaterialRoughness: {Material, NoAxis, "roughness"},
	MaterialMetalness: {Material, NoAxis, "metalness"},
	MaterialEmissive:  {Material, NoAxis, "emissive"},
	MaterialColorR:    {Material, NoAxis, "colorR"},
	MaterialColorG:    {Material, NoAxis, "colorG"},
	MaterialColorB:    {Material, NoAxis, "colorB"},

	Visible: {Visibility, NoAxis, "visible"},
}

var byName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := LocationX; k < keyCount; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// Valid reports whether k is one of the enumerated keys.
func (k Key) Valid() bool {
	return k > Invalid && k < keyCount
}

// Channel returns the property group of k.
func (k Key) Channel() Channel {
	if !k.Valid() {
		return 0
	}
	return keys[k].channel
}

// Axis returns the vector component for location/rotation/scale keys and
// NoAxis otherwise.
func (k Key) Axis() Axis {
	if !k.Valid() {
		return NoAxis
	}
	return keys[k].axis
}

// Sub returns the sub-channel name, e.g. "x" or "roughness".
func (k Key) Sub() string {
	if !k.Valid() {
		return ""
	}
	return keys[k].sub
}

// String renders the "channel.subChannel" form, e.g. "location.x".
func (k Key) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return keys[k].channel.String() + "." + keys[k].sub
}

// MarshalText implements encoding.TextMarshaler so keys can be used as map
// keys in encoded output.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid channel key %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Parse resolves a "channel.subChannel" name, ignoring case. Unknown
// combinations are rejected.
func Parse(name string) (Key, error) {
	ch, sub, ok := strings.Cut(strings.TrimSpace(name), ".")
	if !ok {
		return Invalid, fmt.Errorf("channel key %q: expected channel.subChannel", name)
	}
	return Lookup(ch, sub)
}

// Lookup resolves a channel and sub-channel pair.
func Lookup(ch, sub string) (Key, error) {
	if k, ok := byName[strings.ToLower(ch+"."+sub)]; ok {
		return k, nil
	}
	return Invalid, fmt.Errorf("unknown channel key %s.%s", ch, sub)
}

// All returns every key in declaration order.
func All() []Key {
	out := make([]Key, 0, keyCount-1)
	for k := LocationX; k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

// Of returns the keys belonging to channel c in declaration order.
func Of(c Channel) []Key {
	var out []Key
	for k := LocationX; k < keyCount; k++ {
		if keys[k].channel == c {
			out = append(out, k)
		}
	}
	return out
}
