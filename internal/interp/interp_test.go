package interp

import (
	"math"
	"testing"
)

func TestInterpolateEndpoints(t *testing.T) {
	easings := []Easing{Auto, In, Out, InOut}

	for _, mode := range Modes() {
		for _, e := range easings {
			t.Run(mode.String()+"/"+e.String(), func(t *testing.T) {
				seg := Segment{Mode: mode, Easing: e, From: -3.5, To: 12.25, OutHandle: 40, InHandle: -40}
				if got := Interpolate(seg, 0); got != seg.From {
					t.Errorf("t=0: expected %v, got %v", seg.From, got)
				}
				if got := Interpolate(seg, 1); got != seg.To {
					t.Errorf("t=1: expected %v, got %v", seg.To, got)
				}
			})
		}
	}
}

func TestInterpolateValues(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		t    float64
		want float64
	}{
		{"linear midpoint", Segment{Mode: Linear, From: 10, To: 20}, 0.5, 15},
		{"linear quarter", Segment{Mode: Linear, From: 0, To: 100}, 0.25, 25},
		{"constant holds", Segment{Mode: Constant, From: 1, To: 2}, 0.999, 1},
		{"ease_in midpoint", Segment{Mode: EaseIn, From: 0, To: 100}, 0.5, 25},
		{"ease_out midpoint", Segment{Mode: EaseOut, From: 0, To: 100}, 0.5, 75},
		{"ease_in_out quarter", Segment{Mode: EaseInOut, From: 0, To: 100}, 0.25, 12.5},
		{"ease_in_out three quarters", Segment{Mode: EaseInOut, From: 0, To: 100}, 0.75, 87.5},
		{"bounce first arc", Segment{Mode: Bounce, From: 0, To: 1}, 0.2, 7.5625 * 0.04},
		{"bounce second arc", Segment{Mode: Bounce, From: 0, To: 1}, 0.5, 0.765625},
		{"bounce first break", Segment{Mode: Bounce, From: 0, To: 1}, 1 / 2.75, 1},
		{"bounce in mirrors out", Segment{Mode: Bounce, Easing: In, From: 0, To: 1}, 0.5, 1 - 0.765625},
		{"bezier flat handles midpoint", Segment{Mode: Bezier, From: 0, To: 10, OutHandle: 0, InHandle: 10}, 0.5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.seg, tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBezierOnChordIsLinear(t *testing.T) {
	from, to := 10.0, 40.0
	seg := Segment{
		Mode:      Bezier,
		From:      from,
		To:        to,
		OutHandle: from + (to-from)/3,
		InHandle:  from + 2*(to-from)/3,
	}
	lin := Segment{Mode: Linear, From: from, To: to}

	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		b, l := Interpolate(seg, tt), Interpolate(lin, tt)
		if math.Abs(b-l) > 1e-9 {
			t.Errorf("t=%.2f: bezier %v differs from linear %v", tt, b, l)
		}
	}
}

func TestBezierEqualEndpointsIsFlat(t *testing.T) {
	// Handles sitting on the endpoint values of a flat segment keep the
	// curve on the endpoint value everywhere.
	seg := Segment{Mode: Bezier, From: 7, To: 7, OutHandle: 7, InHandle: 7}
	for i := 0; i <= 10; i++ {
		if got := Interpolate(seg, float64(i)/10); math.Abs(got-7) > 1e-12 {
			t.Errorf("t=%.1f: expected 7, got %v", float64(i)/10, got)
		}
	}
}

func TestElasticShape(t *testing.T) {
	seg := Segment{Mode: Elastic, From: 0, To: 1}
	overshoot := false
	for i := 1; i < 100; i++ {
		v := Interpolate(seg, float64(i)/100)
		if v > 1 {
			overshoot = true
		}
		if math.IsNaN(v) {
			t.Fatalf("NaN at t=%.2f", float64(i)/100)
		}
	}
	if !overshoot {
		t.Error("Elastic curve should overshoot the target before settling")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(5, 1, 9); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	if got := Normalize(3, 3, 3); got != 1 {
		t.Errorf("Zero-length interval should normalise to 1, got %v", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		parsed, err := ParseMode(m.String())
		if err != nil || parsed != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), parsed, err)
		}
	}
	if m, err := ParseMode(""); err != nil || m != Linear {
		t.Errorf("Empty mode should default to linear, got %v, %v", m, err)
	}
	if _, err := ParseMode("cubic"); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if e, err := ParseEasing("IN_OUT"); err != nil || e != InOut {
		t.Errorf("ParseEasing(IN_OUT) = %v, %v", e, err)
	}
}
