package engine

import (
	"math"
	"sync"
	"testing"

	"github.com/ivlev/keyframe/internal/channel"
	"github.com/ivlev/keyframe/internal/interp"
	"github.com/ivlev/keyframe/internal/keyframe"
)

func TestRegistry(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "spin")
	b := e.CreateAnimation("light", "fade")

	if a.ID == b.ID {
		t.Fatal("Animations must get distinct ids")
	}
	if !a.Enabled || a.TargetID != "cube" || a.Name != "spin" {
		t.Errorf("Unexpected animation: %+v", a)
	}

	got, ok := e.Animation(b.ID)
	if !ok || got.Name != "fade" {
		t.Errorf("Animation(%d) = %+v, %v", b.ID, got, ok)
	}
	if _, ok := e.Animation(999); ok {
		t.Error("Unknown animation should not be found")
	}
	if list := e.Animations(); len(list) != 2 || list[0].ID != a.ID {
		t.Errorf("Unexpected animation list: %+v", list)
	}

	if !e.RemoveAnimation(a.ID) || e.RemoveAnimation(a.ID) {
		t.Error("RemoveAnimation should succeed once")
	}
	if _, ok := e.Animation(a.ID); ok {
		t.Error("Removed animation still registered")
	}
}

func TestIndependentEngines(t *testing.T) {
	e1, e2 := New(), New()
	a := e1.CreateAnimation("cube", "move")
	e1.AddKeyframe(a.ID, channel.LocationX, 1, 5, interp.Linear)

	b := e2.CreateAnimation("cube", "move")
	if got := e2.KeyframeCount(b.ID); got != 0 {
		t.Errorf("Sessions must not share keyframes, got %d", got)
	}
}

func TestAddKeyframeUnknownAnimation(t *testing.T) {
	e := New()
	if kf, ok := e.AddKeyframe(42, channel.LocationX, 1, 1, interp.Linear); ok || kf != nil {
		t.Errorf("Expected failure for unknown animation, got %+v", kf)
	}
	a := e.CreateAnimation("cube", "move")
	if _, ok := e.AddKeyframe(a.ID, channel.Invalid, 1, 1, interp.Linear); ok {
		t.Error("Expected failure for invalid key")
	}
}

func TestRemoveKeyframeUnknown(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "move")
	e.AddKeyframe(a.ID, channel.LocationX, 1, 0, interp.Linear)
	e.AddKeyframe(a.ID, channel.LocationX, 10, 10, interp.Linear)
	before := e.Series(a.ID, channel.LocationX)

	if e.RemoveKeyframe(a.ID, 9999) {
		t.Error("Removing unknown keyframe should report false")
	}
	if e.RemoveKeyframe(77, before[0].ID) {
		t.Error("Removing from unknown animation should report false")
	}

	after := e.Series(a.ID, channel.LocationX)
	if len(after) != len(before) {
		t.Fatalf("Store changed: %d -> %d keyframes", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Keyframe %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestEvaluateSingleKeyframeHolds(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "hold")
	e.AddKeyframe(a.ID, channel.ScaleX, 10, 5, interp.Bezier)

	for _, f := range []float64{1, 10, 250} {
		values := e.Evaluate(a.ID, f)
		if got, ok := values[channel.ScaleX]; !ok || got != 5 {
			t.Errorf("Frame %v: expected 5, got %v (%v)", f, got, ok)
		}
	}
}

func TestEvaluateClampsOutsideRange(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "move")
	e.AddKeyframe(a.ID, channel.LocationY, 10, -2, interp.Linear)
	e.AddKeyframe(a.ID, channel.LocationY, 20, 8, interp.Elastic)

	tests := []struct {
		frame float64
		want  float64
	}{
		{1, -2},
		{9.99, -2},
		{10, -2},
		{15, 3},
		{20, 8},
		{21, 8},
		{500, 8},
	}
	for _, tt := range tests {
		got := e.Evaluate(a.ID, tt.frame)[channel.LocationY]
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Frame %v: expected %v, got %v", tt.frame, tt.want, got)
		}
	}
}

func TestEvaluateUsesEarlierKeyframeMode(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "steps")
	e.AddKeyframe(a.ID, channel.RotationZ, 1, 0, interp.Constant)
	e.AddKeyframe(a.ID, channel.RotationZ, 11, 90, interp.Linear)
	e.AddKeyframe(a.ID, channel.RotationZ, 21, 180, interp.Constant)

	tests := []struct {
		frame float64
		want  float64
	}{
		{5, 0},    // constant segment holds the earlier value
		{10.9, 0}, // up to the next keyframe
		{11, 90},  // exact keyframe hit
		{16, 135}, // linear segment
	}
	for _, tt := range tests {
		got := e.Evaluate(a.ID, tt.frame)[channel.RotationZ]
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Frame %v: expected %v, got %v", tt.frame, tt.want, got)
		}
	}
}

func TestEvaluateOmitsEmptySeries(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "move")
	kf, _ := e.AddKeyframe(a.ID, channel.LocationX, 1, 1, interp.Linear)
	e.AddKeyframe(a.ID, channel.MaterialOpacity, 1, 0.5, interp.Linear)
	e.RemoveKeyframe(a.ID, kf.ID)

	values := e.Evaluate(a.ID, 1)
	if _, ok := values[channel.LocationX]; ok {
		t.Error("Series without keyframes must be omitted")
	}
	if len(values) != 1 || values[channel.MaterialOpacity] != 0.5 {
		t.Errorf("Unexpected values: %v", values)
	}
	if s := values.Strings(); s["material.opacity"] != 0.5 {
		t.Errorf("Unexpected string keys: %v", s)
	}
}

func TestEvaluateDisabledAndUnknown(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "move")
	e.AddKeyframe(a.ID, channel.LocationX, 1, 1, interp.Linear)

	if !e.SetEnabled(a.ID, false) {
		t.Fatal("SetEnabled failed")
	}
	if got := e.Evaluate(a.ID, 1); len(got) != 0 {
		t.Errorf("Disabled animation should evaluate empty, got %v", got)
	}
	if got := e.Evaluate(12345, 1); got == nil || len(got) != 0 {
		t.Errorf("Unknown animation should evaluate empty, got %#v", got)
	}
}

func TestEvaluateBezierHandles(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "curve")
	k1, _ := e.AddKeyframe(a.ID, channel.LocationX, 0, 0, interp.Bezier)
	k2, _ := e.AddKeyframe(a.ID, channel.LocationX, 30, 30, interp.Linear)

	// Handles on the chord make the bezier segment linear.
	e.SetHandles(a.ID, k1.ID, keyframe.Handle{X: -10, Y: -10}, keyframe.Handle{X: 10, Y: 10})
	e.SetHandles(a.ID, k2.ID, keyframe.Handle{X: -10, Y: 20}, keyframe.Handle{X: 10, Y: 40})

	for f := 0; f <= 30; f += 3 {
		got := e.Evaluate(a.ID, float64(f))[channel.LocationX]
		if math.Abs(got-float64(f)) > 1e-9 {
			t.Errorf("Frame %d: expected %d, got %v", f, f, got)
		}
	}
}

func TestBake(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "move")
	e.AddKeyframe(a.ID, channel.LocationX, 1, 0, interp.Linear)
	e.AddKeyframe(a.ID, channel.LocationX, 10, 100, interp.Linear)

	if !e.Bake(a.ID, 1, 10) {
		t.Fatal("Bake failed")
	}

	series := e.Series(a.ID, channel.LocationX)
	if len(series) != 10 {
		t.Fatalf("Expected 10 baked keyframes, got %d", len(series))
	}
	for i, kf := range series {
		if kf.Frame != i+1 {
			t.Errorf("Keyframe %d at frame %d, expected %d", i, kf.Frame, i+1)
		}
		if kf.Interpolation != interp.Linear {
			t.Errorf("Frame %d baked as %v", kf.Frame, kf.Interpolation)
		}
	}
	if got := series[4].Value; math.Abs(got-400.0/9) > 1e-9 {
		t.Errorf("Frame 5: expected ~44.44, got %v", got)
	}
	t.Logf("Baked frame 5 = %.4f", series[4].Value)
}

func TestBakeResamplesCurves(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "ease")
	e.AddKeyframe(a.ID, channel.ScaleZ, 1, 1, interp.EaseInOut)
	e.AddKeyframe(a.ID, channel.ScaleZ, 21, 3, interp.Linear)
	e.AddKeyframe(a.ID, channel.Visible, 5, 1, interp.Constant)

	before := make(map[int]Values)
	for f := 1; f <= 21; f++ {
		before[f] = e.Evaluate(a.ID, float64(f))
	}

	if !e.Bake(a.ID, 21, 1) {
		t.Fatal("Bake with reversed range failed")
	}
	if got := e.KeyframeCount(a.ID); got != 42 {
		t.Errorf("Expected 42 keyframes (2 keys x 21 frames), got %d", got)
	}
	for f := 1; f <= 21; f++ {
		after := e.Evaluate(a.ID, float64(f))
		for k, v := range before[f] {
			if math.Abs(after[k]-v) > 1e-9 {
				t.Errorf("Frame %d %v: baked %v differs from curve %v", f, k, after[k], v)
			}
		}
	}
}

func TestBakeUnknownAndRange(t *testing.T) {
	e := New()
	if e.Bake(3, 1, 10) || e.BakeRange(3) {
		t.Error("Baking an unknown animation should report false")
	}

	a := e.CreateAnimation("cube", "move")
	e.AddKeyframe(a.ID, channel.LocationX, 5, 0, interp.Bounce)
	e.AddKeyframe(a.ID, channel.LocationX, 9, 10, interp.Linear)
	if !e.BakeRange(a.ID) {
		t.Fatal("BakeRange failed")
	}
	series := e.Series(a.ID, channel.LocationX)
	if len(series) != 5 || series[0].Frame != 5 || series[4].Frame != 9 {
		t.Errorf("Unexpected baked range: %+v", series)
	}
}

func TestConcurrentEditAndEvaluate(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "move")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for f := 1; f <= 200; f++ {
			e.AddKeyframe(a.ID, channel.LocationX, f, float64(f), interp.Linear)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			values := e.Evaluate(a.ID, float64(i))
			if v, ok := values[channel.LocationX]; ok && (v < 1 || v > 200) {
				t.Errorf("Value out of range: %v", v)
			}
		}
	}()
	wg.Wait()

	if got := e.KeyframeCount(a.ID); got != 200 {
		t.Errorf("Expected 200 keyframes, got %d", got)
	}
}

func TestBakeDisabledKeepsCurves(t *testing.T) {
	e := New()
	a := e.CreateAnimation("cube", "off")
	e.AddKeyframe(a.ID, channel.LocationX, 1, 0, interp.Linear)
	e.AddKeyframe(a.ID, channel.LocationX, 5, 8, interp.Linear)
	e.SetEnabled(a.ID, false)

	if !e.Bake(a.ID, 1, 5) {
		t.Fatal("Bake failed")
	}
	series := e.Series(a.ID, channel.LocationX)
	if len(series) != 5 || series[2].Value != 4 {
		t.Errorf("Disabled animation should bake its curve, got %+v", series)
	}
	if got, _ := e.Animation(a.ID); got.Enabled {
		t.Error("Bake must not enable the animation")
	}
	if got := e.Evaluate(a.ID, 3); len(got) != 0 {
		t.Errorf("Baked disabled animation should still evaluate empty, got %v", got)
	}
}
