package engine

import (
	"github.com/ivlev/keyframe/internal/interp"
)

// Bake resamples the animation at every integer frame in [start, end] and
// replaces its keyframes with one linear keyframe per animated key and
// frame. It reports false for an unknown animation. The Enabled flag is
// ignored: a disabled animation is baked and stays disabled.
func (e *Engine) Bake(id AnimationID, start, end int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.animations[id]
	if !ok {
		return false
	}
	if start > end {
		start, end = end, start
	}
	bake(a, start, end)
	return true
}

// BakeRange bakes the animation between its first and last keyframe.
// An animation without keyframes is left as is.
func (e *Engine) BakeRange(id AnimationID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.animations[id]
	if !ok {
		return false
	}
	first, last, ok := a.store.Range()
	if ok {
		bake(a, first, last)
	}
	return true
}

func bake(a *Animation, start, end int) {
	frames := make([]Values, 0, end-start+1)
	for f := start; f <= end; f++ {
		frames = append(frames, evaluate(a.store, float64(f)))
	}

	a.store.Clear()
	for i, values := range frames {
		for key, v := range values {
			a.store.Add(key, start+i, v, interp.Linear)
		}
	}
}
