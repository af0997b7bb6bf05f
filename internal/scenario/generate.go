package scenario

import (
	"fmt"

	"github.com/ivlev/keyframe/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
)

// Generator builds demo scenarios: a row of cubes that drop in one after
// another with a bounce, fade their material in and spin while they wait.
type Generator struct {
	TotalFrames int
	FrameRate   float64
	Spacing     float64 // distance between cubes on the x axis
	DropHeight  float64
	MinDwell    int // frames per cube
	MaxDwell    int
}

// NewGenerator creates a Generator with default settings
func NewGenerator(totalFrames int) *Generator {
	return &Generator{
		TotalFrames: totalFrames,
		FrameRate:   24,
		Spacing:     2,
		DropHeight:  5,
		MinDwell:    6,
		MaxDwell:    48,
	}
}

// Generate creates a scenario with count cubes
func (g *Generator) Generate(count int) (*Scenario, error) {
	if count <= 0 {
		return nil, fmt.Errorf("object count must be positive, got %d", count)
	}
	if g.TotalFrames < 2 {
		return nil, fmt.Errorf("at least 2 frames required, got %d", g.TotalFrames)
	}

	dwell := g.dwellFrames(count)
	visible := true

	sc := &Scenario{
		Version: Version,
		Playback: Playback{
			FrameRate:   g.FrameRate,
			TotalFrames: g.TotalFrames,
			Loop:        "repeat",
		},
	}

	for i := 0; i < count; i++ {
		id := fmt.Sprintf("cube_%d", i+1)
		x := (float64(i) - float64(count-1)/2) * g.Spacing

		// Spread hues around the wheel.
		hue := 360 * float64(i) / float64(count)
		sc.Objects = append(sc.Objects, Object{
			ID:       id,
			Position: &scene.Vec3{X: x, Y: g.DropHeight},
			Material: &Material{Color: colorful.Hsv(hue, 0.7, 0.9).Hex(), Opacity: 0, Roughness: 0.4},
			Visible:  &visible,
		})

		start := 1 + i*dwell
		land := min(start+dwell, g.TotalFrames)
		sc.Animations = append(sc.Animations, Animation{
			Name:   id + "_drop",
			Target: id,
			Tracks: []Track{
				{Key: "location.y", Keyframes: []Keyframe{
					{Frame: start, Value: g.DropHeight, Mode: "bounce"},
					{Frame: land, Value: 0},
				}},
				{Key: "material.opacity", Keyframes: []Keyframe{
					{Frame: start, Value: 0, Mode: "ease_out"},
					{Frame: land, Value: 1},
				}},
				{Key: "rotation.y", Keyframes: []Keyframe{
					{Frame: 1, Value: 0},
					{Frame: g.TotalFrames, Value: 360},
				}},
			},
		})
	}

	return sc, nil
}

// dwellFrames determines how long each cube takes to land
func (g *Generator) dwellFrames(count int) int {
	dwell := (g.TotalFrames - 1) / count

	// Clamp to min/max
	if dwell < g.MinDwell {
		dwell = g.MinDwell
	}
	if dwell > g.MaxDwell {
		dwell = g.MaxDwell
	}

	return dwell
}
