package engine

import (
	"sort"

	"github.com/ivlev/keyframe/internal/channel"
	"github.com/ivlev/keyframe/internal/interp"
	"github.com/ivlev/keyframe/internal/keyframe"
)

// Values maps each animated key to its value at one frame.
type Values map[channel.Key]float64

// Strings renders the values with "channel.subChannel" keys.
func (v Values) Strings() map[string]float64 {
	out := make(map[string]float64, len(v))
	for k, val := range v {
		out[k.String()] = val
	}
	return out
}

// Evaluate resolves every series of the animation at frame. Disabled or
// unknown animations yield an empty map.
func (e *Engine) Evaluate(id AnimationID, frame float64) Values {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.animations[id]
	if !ok || !a.Enabled {
		return Values{}
	}
	return evaluate(a.store, frame)
}

func evaluate(store *keyframe.Store, frame float64) Values {
	out := make(Values)
	for _, key := range store.Keys() {
		if v, ok := Sample(store.Series(key), frame); ok {
			out[key] = v
		}
	}
	return out
}

// Sample evaluates one ascending series at frame. A single keyframe holds
// its value everywhere; frames outside the series clamp to the nearest end.
// Between two keyframes the earlier one's mode governs.
func Sample(series []keyframe.Keyframe, frame float64) (float64, bool) {
	switch len(series) {
	case 0:
		return 0, false
	case 1:
		return series[0].Value, true
	}

	// If before first keyframe, use first keyframe
	first := series[0]
	if frame <= float64(first.Frame) {
		return first.Value, true
	}

	// If after last keyframe, use last keyframe
	last := series[len(series)-1]
	if frame >= float64(last.Frame) {
		return last.Value, true
	}

	// Find surrounding keyframes: prev.Frame <= frame < next.Frame
	i := sort.Search(len(series), func(i int) bool { return float64(series[i].Frame) > frame }) - 1
	prev, next := series[i], series[i+1]

	t := interp.Normalize(frame, float64(prev.Frame), float64(next.Frame))
	return interp.Interpolate(interp.Segment{
		Mode:      prev.Interpolation,
		Easing:    prev.Easing,
		From:      prev.Value,
		To:        next.Value,
		OutHandle: prev.RightHandle.Y,
		InHandle:  next.LeftHandle.Y,
	}, t), true
}
