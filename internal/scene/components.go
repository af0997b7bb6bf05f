package scene

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
)

// Vec3 is a position, rotation (degrees) or scale triple.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

type NameData struct {
	ID string
}

type TransformData struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

type MaterialData struct {
	Color     colorful.Color
	Opacity   float64
	Roughness float64
	Metalness float64
	Emissive  float64
}

type VisibilityData struct {
	Visible bool
}

var (
	Name       = donburi.NewComponentType[NameData]()
	Transform  = donburi.NewComponentType[TransformData]()
	Material   = donburi.NewComponentType[MaterialData]()
	Visibility = donburi.NewComponentType[VisibilityData]()
)

// DefaultTransform is the identity transform.
func DefaultTransform() TransformData {
	return TransformData{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// DefaultMaterial is an opaque white surface.
func DefaultMaterial() MaterialData {
	return MaterialData{
		Color:     colorful.Color{R: 1, G: 1, B: 1},
		Opacity:   1,
		Roughness: 0.5,
	}
}
