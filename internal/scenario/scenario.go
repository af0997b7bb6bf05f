package scenario

import (
	"github.com/ivlev/keyframe/internal/keyframe"
	"github.com/ivlev/keyframe/internal/scene"
	"gopkg.in/yaml.v3"
)

// Version is written into every exported scenario.
const Version = "1.0"

// Scenario describes a scene and the animations that drive it
type Scenario struct {
	Version    string      `yaml:"version"`
	Playback   Playback    `yaml:"playback,omitempty"`
	Objects    []Object    `yaml:"objects"`
	Animations []Animation `yaml:"animations"`
}

// Playback overrides the controller defaults. Zero values keep the default.
type Playback struct {
	FrameRate   float64 `yaml:"fps,omitempty"`
	TotalFrames int     `yaml:"frames,omitempty"`
	Speed       float64 `yaml:"speed,omitempty"`
	Loop        string  `yaml:"loop,omitempty"` // once, repeat, pingpong
}

// Object is a target in the scene
type Object struct {
	ID       string      `yaml:"id"`
	Position *scene.Vec3 `yaml:"position,omitempty"`
	Rotation *scene.Vec3 `yaml:"rotation,omitempty"`
	Scale    *scene.Vec3 `yaml:"scale,omitempty"`
	Material *Material   `yaml:"material,omitempty"`
	Visible  *bool       `yaml:"visible,omitempty"`
}

// Material is the initial surface of an object.
type Material struct {
	Color     string  `yaml:"color"` // "#rrggbb"
	Opacity   float64 `yaml:"opacity"`
	Roughness float64 `yaml:"roughness"`
	Metalness float64 `yaml:"metalness"`
	Emissive  float64 `yaml:"emissive"`
}

// UnmarshalYAML fills omitted fields with the scene defaults.
func (m *Material) UnmarshalYAML(value *yaml.Node) error {
	type plain Material
	def := scene.DefaultMaterial()
	p := plain{
		Color:     def.Color.Hex(),
		Opacity:   def.Opacity,
		Roughness: def.Roughness,
		Metalness: def.Metalness,
		Emissive:  def.Emissive,
	}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*m = Material(p)
	return nil
}

// Animation binds keyframe tracks to one object
type Animation struct {
	Name    string  `yaml:"name"`
	Target  string  `yaml:"target"`
	Enabled *bool   `yaml:"enabled,omitempty"`
	Tracks  []Track `yaml:"tracks"`
}

// Track is the keyframe series of one channel, e.g. "location.x"
type Track struct {
	Key       string     `yaml:"key"`
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Keyframe is a value at a frame. Mode defaults to linear.
type Keyframe struct {
	Frame  int              `yaml:"frame"`
	Value  float64          `yaml:"value"`
	Mode   string           `yaml:"mode,omitempty"`
	Easing string           `yaml:"easing,omitempty"`
	Left   *keyframe.Handle `yaml:"left,omitempty"`
	Right  *keyframe.Handle `yaml:"right,omitempty"`
}
