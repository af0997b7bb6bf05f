package engine

import (
	"sort"
	"sync"

	"github.com/ivlev/keyframe/internal/channel"
	"github.com/ivlev/keyframe/internal/interp"
	"github.com/ivlev/keyframe/internal/keyframe"
)

// AnimationID identifies an animation within an Engine.
type AnimationID uint64

// Animation is a named set of keyframe series driving one target object.
type Animation struct {
	ID       AnimationID
	Name     string
	TargetID string
	Enabled  bool

	store *keyframe.Store
}

// Engine is the animation registry of one editing session. Editing and
// baking take the write lock and evaluation the read lock, so keyframes
// never change under an in-flight Evaluate. Hosts create one Engine per
// session.
type Engine struct {
	mu         sync.RWMutex
	animations map[AnimationID]*Animation
	nextAnim   AnimationID
	nextKf     keyframe.ID
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{
		animations: make(map[AnimationID]*Animation),
	}
}

func (e *Engine) newKeyframeID() keyframe.ID {
	e.nextKf++
	return e.nextKf
}

// CreateAnimation registers a new enabled animation for the target.
func (e *Engine) CreateAnimation(targetID, name string) *Animation {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextAnim++
	a := &Animation{
		ID:       e.nextAnim,
		Name:     name,
		TargetID: targetID,
		Enabled:  true,
		store:    keyframe.NewStore(e.newKeyframeID),
	}
	e.animations[a.ID] = a
	return a.copy()
}

// copy returns the animation metadata without the keyframe store.
func (a *Animation) copy() *Animation {
	out := *a
	out.store = nil
	return &out
}

// Animation returns the animation metadata for id.
func (e *Engine) Animation(id AnimationID) (*Animation, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.animations[id]
	if !ok {
		return nil, false
	}
	return a.copy(), true
}

// Animations returns every registered animation ordered by id.
func (e *Engine) Animations() []*Animation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*Animation, 0, len(e.animations))
	for _, a := range e.animations {
		out = append(out, a.copy())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RemoveAnimation drops an animation and its keyframes.
func (e *Engine) RemoveAnimation(id AnimationID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.animations[id]; !ok {
		return false
	}
	delete(e.animations, id)
	return true
}

// SetEnabled toggles whether an animation evaluates to any values.
func (e *Engine) SetEnabled(id AnimationID, enabled bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.animations[id]
	if !ok {
		return false
	}
	a.Enabled = enabled
	return true
}

// AddKeyframe inserts a keyframe, overwriting any keyframe already at the
// same key and frame. It reports false for an unknown animation or an
// invalid key.
func (e *Engine) AddKeyframe(id AnimationID, key channel.Key, frame int, value float64, mode interp.Mode) (*keyframe.Keyframe, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.animations[id]
	if !ok {
		return nil, false
	}
	kf := a.store.Add(key, frame, value, mode)
	return kf, kf != nil
}

// RemoveKeyframe deletes a keyframe by id. Unknown ids leave the store
// untouched and report false.
func (e *Engine) RemoveKeyframe(id AnimationID, kfID keyframe.ID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.animations[id]
	if !ok {
		return false
	}
	return a.store.Remove(kfID)
}

// SetHandles replaces the bezier handles of a keyframe.
func (e *Engine) SetHandles(id AnimationID, kfID keyframe.ID, left, right keyframe.Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.animations[id]
	if !ok {
		return false
	}
	return a.store.SetHandles(kfID, left, right)
}

// SetEasing changes the easing sub-mode of a keyframe.
func (e *Engine) SetEasing(id AnimationID, kfID keyframe.ID, easing interp.Easing) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.animations[id]
	if !ok {
		return false
	}
	return a.store.SetEasing(kfID, easing)
}

// Series returns the keyframes of one series in ascending frame order.
func (e *Engine) Series(id AnimationID, key channel.Key) []keyframe.Keyframe {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.animations[id]
	if !ok {
		return []keyframe.Keyframe{}
	}
	return a.store.Series(key)
}

// Keys returns the keys that have keyframes in the animation.
func (e *Engine) Keys(id AnimationID) []channel.Key {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.animations[id]
	if !ok {
		return nil
	}
	return a.store.Keys()
}

// KeyframeCount returns the number of keyframes in the animation.
func (e *Engine) KeyframeCount(id AnimationID) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.animations[id]
	if !ok {
		return 0
	}
	return a.store.Len()
}
