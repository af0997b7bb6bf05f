// Package playback holds the time cursor of an editing session and moves it
// forward when the host loop reports elapsed time.
package playback

import (
	"fmt"
	"strings"
)

// State is the transport state of a Controller.
type State uint8

const (
	Stopped State = iota
	Playing
	Paused
	// Stepping is reported to listeners while a single-frame step is in
	// progress. The controller never stays in it.
	Stepping
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stepping:
		return "stepping"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// LoopMode is the policy applied when the cursor leaves [1, TotalFrames].
type LoopMode uint8

const (
	Once LoopMode = iota
	Repeat
	PingPong
)

func (m LoopMode) String() string {
	switch m {
	case Once:
		return "once"
	case Repeat:
		return "repeat"
	case PingPong:
		return "pingpong"
	}
	return fmt.Sprintf("loop(%d)", uint8(m))
}

// ParseLoopMode resolves "once", "repeat" or "pingpong".
func ParseLoopMode(name string) (LoopMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "once":
		return Once, nil
	case "repeat", "":
		return Repeat, nil
	case "pingpong", "ping_pong", "ping-pong":
		return PingPong, nil
	}
	return Repeat, fmt.Errorf("unknown loop mode: %s", name)
}

func (m LoopMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *LoopMode) UnmarshalText(text []byte) error {
	parsed, err := ParseLoopMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

const (
	DefaultTotalFrames = 250
	DefaultFrameRate   = 24.0
)

// Snapshot is a read-only copy of the playback state.
type Snapshot struct {
	Frame       float64
	TotalFrames int
	FrameRate   float64
	Speed       float64
	Loop        LoopMode
	State       State
}

// IsPlaying reports whether the cursor advances on Update.
func (s Snapshot) IsPlaying() bool {
	return s.State == Playing
}

// Listener is notified after every state change and cursor move.
type Listener func(Snapshot)

// Controller owns the playback cursor. It is driven by a single host loop
// and is not safe for concurrent use.
type Controller struct {
	frame       float64
	totalFrames int
	frameRate   float64
	speed       float64
	loop        LoopMode
	state       State

	listeners []Listener
}

// NewController creates a stopped controller at frame 1 with 250 frames at
// 24 fps, unit speed and repeat looping.
func NewController() *Controller {
	return &Controller{
		frame:       1,
		totalFrames: DefaultTotalFrames,
		frameRate:   DefaultFrameRate,
		speed:       1,
		loop:        Repeat,
		state:       Stopped,
	}
}

// Subscribe registers a listener.
func (c *Controller) Subscribe(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, l := range c.listeners {
		l(snap)
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Frame:       c.frame,
		TotalFrames: c.totalFrames,
		FrameRate:   c.frameRate,
		Speed:       c.speed,
		Loop:        c.loop,
		State:       c.state,
	}
}

func (c *Controller) Frame() float64 { return c.frame }
func (c *Controller) TotalFrames() int { return c.totalFrames }
func (c *Controller) FrameRate() float64 { return c.frameRate }
func (c *Controller) Speed() float64 { return c.speed }
func (c *Controller) Loop() LoopMode { return c.loop }
func (c *Controller) State() State { return c.state }
func (c *Controller) IsPlaying() bool { return c.state == Playing }

// Play starts or resumes playback from the current cursor.
func (c *Controller) Play() {
	c.state = Playing
	c.notify()
}

// Pause halts playback and keeps the cursor.
func (c *Controller) Pause() {
	c.state = Paused
	c.notify()
}

// Stop halts playback and rewinds to frame 1.
func (c *Controller) Stop() {
	c.state = Stopped
	c.frame = 1
	c.notify()
}

// SetFrame moves the cursor, clamped into [1, TotalFrames]. Valid in any
// state.
func (c *Controller) SetFrame(f float64) {
	c.frame = c.clamp(f)
	c.notify()
}

// StepForward moves the cursor one frame ahead without changing whether
// playback is running.
func (c *Controller) StepForward() { c.step(1) }

// StepBackward moves the cursor one frame back.
func (c *Controller) StepBackward() { c.step(-1) }

func (c *Controller) step(delta float64) {
	prev := c.state
	c.state = Stepping
	c.frame = c.clamp(c.frame + delta)
	c.notify()
	c.state = prev
	c.notify()
}

// SetTotalFrames changes the frame range and re-clamps the cursor.
func (c *Controller) SetTotalFrames(n int) error {
	if n < 1 {
		return fmt.Errorf("total frames must be at least 1, got %d", n)
	}
	c.totalFrames = n
	c.frame = c.clamp(c.frame)
	c.notify()
	return nil
}

// SetFrameRate changes the frames-per-second used by Update.
func (c *Controller) SetFrameRate(fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("frame rate must be positive, got %v", fps)
	}
	c.frameRate = fps
	return nil
}

// SetSpeed sets the signed playback multiplier. Negative speeds play
// backwards.
func (c *Controller) SetSpeed(speed float64) {
	c.speed = speed
}

// SetLoop sets the boundary policy.
func (c *Controller) SetLoop(m LoopMode) {
	c.loop = m
}

// Update advances the cursor by deltaTime seconds. It does nothing unless
// the controller is playing. When the cursor leaves the frame range the loop
// policy decides where it lands; any overshoot past the boundary is
// discarded.
func (c *Controller) Update(deltaTime float64) {
	if c.state != Playing {
		return
	}

	c.frame += deltaTime * c.frameRate * c.speed

	top := float64(c.totalFrames)
	switch {
	case c.frame > top:
		c.crossed(top, 1)
	case c.frame < 1:
		c.crossed(1, top)
	}
	c.notify()
}

// crossed applies the loop policy after the cursor passed boundary. opposite
// is the other end of the range.
func (c *Controller) crossed(boundary, opposite float64) {
	switch c.loop {
	case Once:
		c.frame = boundary
		c.state = Stopped
	case Repeat:
		c.frame = opposite
	case PingPong:
		c.frame = boundary
		c.speed = -c.speed
	}
}

func (c *Controller) clamp(f float64) float64 {
	if f < 1 {
		return 1
	}
	if top := float64(c.totalFrames); f > top {
		return top
	}
	return f
}
