// Package interp computes values between two keyframes.
//
// Every function here is pure. Callers normalise the target frame into a
// segment parameter t with Normalize and hand the segment endpoints to
// Interpolate; frames outside the segment are the caller's concern.
package interp

import (
	"github.com/fogleman/ease"
)

// Segment holds the values bounding one keyframe interval.
type Segment struct {
	Mode   Mode
	Easing Easing

	From float64 // value of the earlier keyframe
	To   float64 // value of the later keyframe

	// Bezier control values: the earlier keyframe's right handle and the
	// later keyframe's left handle.
	OutHandle float64
	InHandle  float64
}

// Normalize maps frame f into the [f1, f2] interval as a 0..1 parameter.
// A zero-length interval yields 1.
func Normalize(f, f1, f2 float64) float64 {
	span := f2 - f1
	if span == 0 {
		return 1
	}
	return (f - f1) / span
}

// Interpolate evaluates the segment at t. The result is exactly From for
// t <= 0 and exactly To for t >= 1 in every mode.
func Interpolate(s Segment, t float64) float64 {
	if t <= 0 {
		return s.From
	}
	if t >= 1 {
		return s.To
	}

	switch s.Mode {
	case Constant:
		return s.From
	case Linear:
		return lerp(s.From, s.To, t)
	case Bezier:
		return bezier(s.From, s.OutHandle, s.InHandle, s.To, t)
	case EaseIn:
		return lerp(s.From, s.To, ease.InQuad(t))
	case EaseOut:
		return lerp(s.From, s.To, ease.OutQuad(t))
	case EaseInOut:
		return lerp(s.From, s.To, ease.InOutQuad(t))
	case Bounce:
		return lerp(s.From, s.To, bounce(s.Easing, t))
	case Elastic:
		return lerp(s.From, s.To, elastic(s.Easing, t))
	}
	return lerp(s.From, s.To, t)
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// bezier blends four control values with the cubic Bernstein basis.
func bezier(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

// bounce remaps t through the four-segment bounce curve. Auto bounces at
// the end of the segment.
func bounce(e Easing, t float64) float64 {
	switch e {
	case In:
		return 1 - outBounce(1-t)
	case InOut:
		if t < 0.5 {
			return (1 - outBounce(1-2*t)) / 2
		}
		return (1 + outBounce(2*t-1)) / 2
	}
	return outBounce(t)
}

// outBounce is the piecewise quadratic with breaks at 1/2.75, 2/2.75 and
// 2.5/2.75. ease.OutBounce splits at 4/11, 8/11 and 9/10 instead.
func outBounce(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	}
	t -= 2.625 / d
	return n*t*t + 0.984375
}

// elastic remaps t through a decaying sinusoid. Auto oscillates at the end
// of the segment.
func elastic(e Easing, t float64) float64 {
	switch e {
	case In:
		return ease.InElastic(t)
	case InOut:
		return ease.InOutElastic(t)
	}
	return ease.OutElastic(t)
}
