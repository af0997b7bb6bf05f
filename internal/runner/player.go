// Package runner drives loaded scenarios: real-time playback from a ticker
// and offline baking of scenario files.
package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ivlev/keyframe/internal/scenario"
	"github.com/ivlev/keyframe/internal/stream"
)

// Player - хост-цикл одной сессии. На каждом тике сдвигает контроллер на
// прошедшее время, применяет кадр к сцене и при необходимости отправляет
// состояние в брокер.
type Player struct {
	session  *scenario.Session
	streamer *stream.Streamer
	interval time.Duration
	ticks    int
	failures int
}

// NewPlayer creates a player ticking every interval. streamer may be nil.
func NewPlayer(s *scenario.Session, streamer *stream.Streamer, interval time.Duration) *Player {
	return &Player{session: s, streamer: streamer, interval: interval}
}

// Ticks is the number of frames applied so far.
func (p *Player) Ticks() int {
	return p.ticks
}

// Published is the number of frames streamed so far.
func (p *Player) Published() int {
	if p.streamer == nil {
		return 0
	}
	return p.streamer.Sent()
}

// Tick advances playback by dt seconds and applies the resulting frame.
func (p *Player) Tick(dt float64) error {
	ctrl := p.session.Controller
	ctrl.Update(dt)
	frame := ctrl.Frame()
	p.session.Apply(frame)
	p.ticks++

	if p.streamer != nil {
		if err := p.streamer.SendFrame(frame, p.session.Scene); err != nil {
			return err
		}
	}
	return nil
}

// Run воспроизводит до остановки контроллера (режим once) или отмены ctx.
// Ошибки отправки логируются, воспроизведение продолжается.
func (p *Player) Run(ctx context.Context) error {
	if p.interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", p.interval)
	}

	ctrl := p.session.Controller
	ctrl.Play()
	if err := p.Tick(0); err != nil {
		p.warn(err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			ctrl.Pause()
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := p.Tick(dt); err != nil {
				p.warn(err)
			}
			if !ctrl.IsPlaying() {
				return nil
			}
		}
	}
}

func (p *Player) warn(err error) {
	p.failures++
	// First failure, then every 100th.
	if p.failures == 1 || p.failures%100 == 0 {
		log.Printf("[!] Ошибка отправки кадра (%d): %v", p.failures, err)
	}
}
