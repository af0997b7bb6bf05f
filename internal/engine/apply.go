package engine

import (
	"github.com/ivlev/keyframe/internal/channel"
)

// Capabilities a target object may expose. ApplyToTarget uses whichever
// ones the target implements and skips values for the rest.
type (
	Positioner interface {
		SetPosition(axis channel.Axis, v float64)
	}
	Rotator interface {
		SetRotation(axis channel.Axis, v float64)
	}
	Scaler interface {
		SetScale(axis channel.Axis, v float64)
	}
	MaterialSetter interface {
		SetMaterialParam(key channel.Key, v float64)
	}
	VisibilitySetter interface {
		SetVisible(visible bool)
	}
)

// ApplyToTarget writes evaluated values into the target's properties.
// Visibility is on when its value exceeds 0.5.
func ApplyToTarget(target any, values Values) {
	if target == nil {
		return
	}
	for key, v := range values {
		switch key.Channel() {
		case channel.Location:
			if t, ok := target.(Positioner); ok {
				t.SetPosition(key.Axis(), v)
			}
		case channel.Rotation:
			if t, ok := target.(Rotator); ok {
				t.SetRotation(key.Axis(), v)
			}
		case channel.Scale:
			if t, ok := target.(Scaler); ok {
				t.SetScale(key.Axis(), v)
			}
		case channel.Material:
			if t, ok := target.(MaterialSetter); ok {
				t.SetMaterialParam(key, v)
			}
		case channel.Visibility:
			if t, ok := target.(VisibilitySetter); ok {
				t.SetVisible(v > 0.5)
			}
		}
	}
}

// Apply evaluates the animation at frame and writes the result into target.
// It returns the applied values.
func (e *Engine) Apply(id AnimationID, frame float64, target any) Values {
	values := e.Evaluate(id, frame)
	ApplyToTarget(target, values)
	return values
}
