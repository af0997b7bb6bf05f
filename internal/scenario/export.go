package scenario

import (
	"github.com/ivlev/keyframe/internal/interp"
	"github.com/ivlev/keyframe/internal/keyframe"
	"github.com/ivlev/keyframe/internal/playback"
	"github.com/ivlev/keyframe/internal/scene"
)

// Export captures the session's current state as a scenario document.
// Object values are taken as they are now, so export before applying
// frames to keep the initial pose.
func (s *Session) Export() *Scenario {
	sc := &Scenario{
		Version:  Version,
		Playback: exportPlayback(s.Controller),
	}

	s.Scene.Each(func(obj *scene.Object) {
		t := obj.Transform()
		o := Object{
			ID:       obj.ID(),
			Position: &t.Position,
			Rotation: &t.Rotation,
			Scale:    &t.Scale,
		}
		if m, ok := obj.Material(); ok {
			o.Material = &Material{
				Color:     m.Color.Clamped().Hex(),
				Opacity:   m.Opacity,
				Roughness: m.Roughness,
				Metalness: m.Metalness,
				Emissive:  m.Emissive,
			}
		}
		if obj.HasVisibility() {
			visible := obj.Visible()
			o.Visible = &visible
		}
		sc.Objects = append(sc.Objects, o)
	})

	for _, a := range s.Engine.Animations() {
		anim := Animation{Name: a.Name, Target: a.TargetID}
		if !a.Enabled {
			enabled := false
			anim.Enabled = &enabled
		}
		for _, key := range s.Engine.Keys(a.ID) {
			track := Track{Key: key.String()}
			for _, kf := range s.Engine.Series(a.ID, key) {
				out := Keyframe{
					Frame: kf.Frame,
					Value: kf.Value,
					Mode:  kf.Interpolation.String(),
				}
				if kf.Easing != interp.Auto {
					out.Easing = kf.Easing.String()
				}
				// A bezier segment also reads the next keyframe's left handle,
				// so any non-flat handle is kept regardless of mode.
				if !flatHandles(kf) {
					left, right := kf.LeftHandle, kf.RightHandle
					out.Left, out.Right = &left, &right
				}
				track.Keyframes = append(track.Keyframes, out)
			}
			anim.Tracks = append(anim.Tracks, track)
		}
		sc.Animations = append(sc.Animations, anim)
	}

	return sc
}

// flatHandles reports whether kf still has the handles a new keyframe gets.
func flatHandles(kf keyframe.Keyframe) bool {
	return kf.LeftHandle == keyframe.Handle{X: -1, Y: kf.Value} &&
		kf.RightHandle == keyframe.Handle{X: 1, Y: kf.Value}
}

func exportPlayback(c *playback.Controller) Playback {
	return Playback{
		FrameRate:   c.FrameRate(),
		TotalFrames: c.TotalFrames(),
		Speed:       c.Speed(),
		Loop:        c.Loop().String(),
	}
}
