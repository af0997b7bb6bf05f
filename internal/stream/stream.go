// Package stream publishes applied object state to an MQTT broker, one
// message per tick.
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/ivlev/keyframe/internal/scene"
	"github.com/ivlev/keyframe/internal/system"
)

// Publisher delivers a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Frame is the message body sent per tick.
type Frame struct {
	Frame   float64       `json:"frame"`
	Objects []scene.State `json:"objects"`
}

// Encode renders a frame message as JSON.
func Encode(frame float64, states []scene.State) ([]byte, error) {
	if states == nil {
		states = []scene.State{}
	}
	buf := system.GetBuffer()
	defer system.PutBuffer(buf)

	if err := json.NewEncoder(buf).Encode(Frame{Frame: frame, Objects: states}); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	// The buffer goes back to the pool; the publisher may hold the payload.
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Streamer sends scene snapshots to a topic.
type Streamer struct {
	pub   Publisher
	topic string
	sent  int
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(pub Publisher, topic string) *Streamer {
	return &Streamer{pub: pub, topic: topic}
}

// SendFrame encodes the scene state at frame and publishes it.
func (s *Streamer) SendFrame(frame float64, sc *scene.Scene) error {
	payload, err := Encode(frame, sc.States())
	if err != nil {
		return err
	}
	if err := s.pub.Publish(s.topic, payload); err != nil {
		return fmt.Errorf("publish to %s: %w", s.topic, err)
	}
	s.sent++
	return nil
}

// Sent is the number of frames published so far.
func (s *Streamer) Sent() int {
	return s.sent
}
