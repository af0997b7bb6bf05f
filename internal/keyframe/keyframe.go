package keyframe

import (
	"sort"

	"github.com/ivlev/keyframe/internal/channel"
	"github.com/ivlev/keyframe/internal/interp"
)

// ID identifies a keyframe within the engine that created it.
type ID uint64

// Handle is a bezier control point attached to a keyframe.
type Handle struct {
	X float64 `yaml:"x"` // frame offset relative to the keyframe
	Y float64 `yaml:"y"` // absolute control value
}

// Keyframe is one stored sample of a series.
type Keyframe struct {
	ID            ID
	Key           channel.Key
	Frame         int
	Value         float64
	Interpolation interp.Mode
	Easing        interp.Easing
	LeftHandle    Handle
	RightHandle   Handle
}

// Store keeps the keyframes of one animation, one ascending series per key.
// It is not safe for concurrent use; the engine serialises access.
type Store struct {
	nextID func() ID
	series map[channel.Key][]*Keyframe
	byID   map[ID]*Keyframe
}

// NewStore creates an empty store. nextID hands out keyframe identities;
// a nil nextID numbers keyframes from 1.
func NewStore(nextID func() ID) *Store {
	if nextID == nil {
		var n ID
		nextID = func() ID {
			n++
			return n
		}
	}
	return &Store{
		nextID: nextID,
		series: make(map[channel.Key][]*Keyframe),
		byID:   make(map[ID]*Keyframe),
	}
}

// Add inserts a keyframe, or overwrites value and mode of the keyframe
// already at (key, frame). The returned copy reflects the stored record.
// Invalid keys are ignored and yield nil.
func (s *Store) Add(key channel.Key, frame int, value float64, mode interp.Mode) *Keyframe {
	if !key.Valid() {
		return nil
	}

	list := s.series[key]
	i := sort.Search(len(list), func(i int) bool { return list[i].Frame >= frame })

	if i < len(list) && list[i].Frame == frame {
		kf := list[i]
		kf.Value = value
		kf.Interpolation = mode
		kf.LeftHandle = Handle{X: kf.LeftHandle.X, Y: value}
		kf.RightHandle = Handle{X: kf.RightHandle.X, Y: value}
		out := *kf
		return &out
	}

	kf := &Keyframe{
		ID:            s.nextID(),
		Key:           key,
		Frame:         frame,
		Value:         value,
		Interpolation: mode,
		LeftHandle:    Handle{X: -1, Y: value},
		RightHandle:   Handle{X: 1, Y: value},
	}

	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = kf
	s.series[key] = list
	s.byID[kf.ID] = kf

	out := *kf
	return &out
}

// Remove deletes the keyframe with the given id. It reports false when no
// such keyframe exists.
func (s *Store) Remove(id ID) bool {
	kf, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)

	list := s.series[kf.Key]
	for i, k := range list {
		if k.ID == id {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.series, kf.Key)
	} else {
		s.series[kf.Key] = list
	}
	return true
}

// Get returns a copy of the keyframe with the given id.
func (s *Store) Get(id ID) (Keyframe, bool) {
	kf, ok := s.byID[id]
	if !ok {
		return Keyframe{}, false
	}
	return *kf, true
}

// Series returns a copy of the keyframes of key in ascending frame order.
// A key with no keyframes yields an empty slice.
func (s *Store) Series(key channel.Key) []Keyframe {
	list := s.series[key]
	out := make([]Keyframe, len(list))
	for i, kf := range list {
		out[i] = *kf
	}
	return out
}

// Keys returns every key that has at least one keyframe, in key order.
func (s *Store) Keys() []channel.Key {
	keys := make([]channel.Key, 0, len(s.series))
	for k := range s.series {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the total number of keyframes.
func (s *Store) Len() int {
	return len(s.byID)
}

// Range returns the first and last keyframe frame across all series.
func (s *Store) Range() (first, last int, ok bool) {
	for _, list := range s.series {
		if len(list) == 0 {
			continue
		}
		f, l := list[0].Frame, list[len(list)-1].Frame
		if !ok || f < first {
			first = f
		}
		if !ok || l > last {
			last = l
		}
		ok = true
	}
	return first, last, ok
}

// SetHandles replaces the bezier handles of a keyframe.
func (s *Store) SetHandles(id ID, left, right Handle) bool {
	kf, ok := s.byID[id]
	if !ok {
		return false
	}
	kf.LeftHandle = left
	kf.RightHandle = right
	return true
}

// SetEasing changes the easing sub-mode of a keyframe.
func (s *Store) SetEasing(id ID, e interp.Easing) bool {
	kf, ok := s.byID[id]
	if !ok {
		return false
	}
	kf.Easing = e
	return true
}

// SetMode changes the interpolation mode of a keyframe.
func (s *Store) SetMode(id ID, m interp.Mode) bool {
	kf, ok := s.byID[id]
	if !ok {
		return false
	}
	kf.Interpolation = m
	return true
}

// Clear removes every keyframe.
func (s *Store) Clear() {
	s.series = make(map[channel.Key][]*Keyframe)
	s.byID = make(map[ID]*Keyframe)
}
