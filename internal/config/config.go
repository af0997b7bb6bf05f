package config

import (
	"fmt"
	"time"

	"github.com/ivlev/keyframe/internal/playback"
)

type Config struct {
	ScenarioPaths []string
	OutputPath    string
	FPS           float64
	TotalFrames   int
	Speed         float64
	Loop          string
	TickRate      int           // host ticks per second
	Duration      time.Duration // 0 plays until stopped
	Frame         float64       // eval only
	BakeStart     int
	BakeEnd       int
	BakePlayback  bool
	Workers       int
	ShowStats     bool
	BuildVersion  string
	MQTT          MQTTConfig
}

type MQTTConfig struct {
	URL      string
	Topic    string
	ClientID string
	Username string
	Password string
	QoS      int
}

// Enabled reports whether state should be streamed.
func (m MQTTConfig) Enabled() bool {
	return m.URL != ""
}

// Validate checks values the flags cannot constrain. Zero FPS, frame count
// and speed mean "keep the scenario's value".
func (c *Config) Validate() error {
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %v", c.FPS)
	}
	if c.TotalFrames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.TotalFrames)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Loop != "" {
		if _, err := playback.ParseLoopMode(c.Loop); err != nil {
			return err
		}
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2, got %d", c.MQTT.QoS)
	}
	if c.MQTT.Enabled() && c.MQTT.Topic == "" {
		return fmt.Errorf("mqtt topic is required when a broker is set")
	}
	return nil
}

// Override applies the non-zero playback flags on top of the scenario.
func (c *Config) Override(ctrl *playback.Controller) error {
	if c.TotalFrames > 0 {
		if err := ctrl.SetTotalFrames(c.TotalFrames); err != nil {
			return err
		}
	}
	if c.FPS > 0 {
		if err := ctrl.SetFrameRate(c.FPS); err != nil {
			return err
		}
	}
	if c.Speed != 0 {
		ctrl.SetSpeed(c.Speed)
	}
	if c.Loop != "" {
		loop, err := playback.ParseLoopMode(c.Loop)
		if err != nil {
			return err
		}
		ctrl.SetLoop(loop)
	}
	return nil
}

// TickInterval is the wall-clock time between host ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
