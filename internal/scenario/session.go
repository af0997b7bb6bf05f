package scenario

import (
	"fmt"

	"github.com/ivlev/keyframe/internal/channel"
	"github.com/ivlev/keyframe/internal/engine"
	"github.com/ivlev/keyframe/internal/interp"
	"github.com/ivlev/keyframe/internal/playback"
	"github.com/ivlev/keyframe/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
)

// Session is one loaded scenario: its own engine, scene and controller.
type Session struct {
	Engine     *engine.Engine
	Scene      *scene.Scene
	Controller *playback.Controller
}

// LoadFile reads and loads the scenario at path.
func LoadFile(path string) (*Session, error) {
	sc, err := ReadScenario(path)
	if err != nil {
		return nil, err
	}
	s, err := Load(sc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load builds a session from a scenario. Every channel name, mode and
// colour is validated; the first problem aborts loading.
func Load(sc *Scenario) (*Session, error) {
	s := &Session{
		Engine:     engine.New(),
		Scene:      scene.New(),
		Controller: playback.NewController(),
	}

	if err := applyPlayback(s.Controller, sc.Playback); err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	for i, o := range sc.Objects {
		if err := s.spawn(o); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}

	for i, a := range sc.Animations {
		if err := s.addAnimation(a); err != nil {
			return nil, fmt.Errorf("animation %d (%s): %w", i, a.Name, err)
		}
	}

	return s, nil
}

// Apply evaluates every animation at frame and writes the values into its
// target object. Animations whose target is gone are skipped.
func (s *Session) Apply(frame float64) {
	for _, a := range s.Engine.Animations() {
		obj, ok := s.Scene.Object(a.TargetID)
		if !ok {
			continue
		}
		s.Engine.Apply(a.ID, frame, obj)
	}
}

// ApplyCurrent applies the controller's current frame.
func (s *Session) ApplyCurrent() {
	s.Apply(s.Controller.Frame())
}

func applyPlayback(c *playback.Controller, p Playback) error {
	if p.TotalFrames != 0 {
		if err := c.SetTotalFrames(p.TotalFrames); err != nil {
			return err
		}
	}
	if p.FrameRate != 0 {
		if err := c.SetFrameRate(p.FrameRate); err != nil {
			return err
		}
	}
	if p.Speed != 0 {
		c.SetSpeed(p.Speed)
	}
	if p.Loop != "" {
		loop, err := playback.ParseLoopMode(p.Loop)
		if err != nil {
			return err
		}
		c.SetLoop(loop)
	}
	return nil
}

func (s *Session) spawn(o Object) error {
	obj, err := s.Scene.Spawn(o.ID, scene.Features{
		Material:   o.Material != nil,
		Visibility: o.Visible != nil,
	})
	if err != nil {
		return err
	}

	t := obj.Transform()
	if o.Position != nil {
		t.Position = *o.Position
	}
	if o.Rotation != nil {
		t.Rotation = *o.Rotation
	}
	if o.Scale != nil {
		t.Scale = *o.Scale
	}
	obj.SetTransform(t)

	if o.Material != nil {
		color := scene.DefaultMaterial().Color
		if o.Material.Color != "" {
			c, err := colorful.Hex(o.Material.Color)
			if err != nil {
				return fmt.Errorf("material color %q: %w", o.Material.Color, err)
			}
			color = c
		}
		obj.SetMaterial(scene.MaterialData{
			Color:     color,
			Opacity:   o.Material.Opacity,
			Roughness: o.Material.Roughness,
			Metalness: o.Material.Metalness,
			Emissive:  o.Material.Emissive,
		})
	}
	if o.Visible != nil {
		obj.SetVisible(*o.Visible)
	}
	return nil
}

func (s *Session) addAnimation(a Animation) error {
	if _, ok := s.Scene.Object(a.Target); !ok {
		return fmt.Errorf("unknown target object %q", a.Target)
	}

	anim := s.Engine.CreateAnimation(a.Target, a.Name)
	if a.Enabled != nil && !*a.Enabled {
		s.Engine.SetEnabled(anim.ID, false)
	}

	for _, track := range a.Tracks {
		key, err := channel.Parse(track.Key)
		if err != nil {
			return err
		}
		for _, kf := range track.Keyframes {
			if err := s.addKeyframe(anim.ID, key, kf); err != nil {
				return fmt.Errorf("%s frame %d: %w", key, kf.Frame, err)
			}
		}
	}
	return nil
}

func (s *Session) addKeyframe(id engine.AnimationID, key channel.Key, kf Keyframe) error {
	mode, err := interp.ParseMode(kf.Mode)
	if err != nil {
		return err
	}
	easing, err := interp.ParseEasing(kf.Easing)
	if err != nil {
		return err
	}

	added, ok := s.Engine.AddKeyframe(id, key, kf.Frame, kf.Value, mode)
	if !ok {
		return fmt.Errorf("keyframe rejected")
	}
	if easing != interp.Auto {
		s.Engine.SetEasing(id, added.ID, easing)
	}
	if kf.Left != nil || kf.Right != nil {
		left, right := added.LeftHandle, added.RightHandle
		if kf.Left != nil {
			left = *kf.Left
		}
		if kf.Right != nil {
			right = *kf.Right
		}
		s.Engine.SetHandles(id, added.ID, left, right)
	}
	return nil
}
