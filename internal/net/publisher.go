package net

import (
	"bytes"
	"image"
	"log"
	"sync"
	"time"

	"MathBoard/internal/export"
)

// Publisher encodes frames and hands them to a FrameHub at most once per
// interval. The newest frame offered within an interval wins.
type Publisher struct {
	hub      *FrameHub
	interval time.Duration

	mu      sync.Mutex
	last    time.Time
	pending image.Image
	timer   *time.Timer
}

func NewPublisher(hub *FrameHub, interval time.Duration) *Publisher {
	return &Publisher{hub: hub, interval: interval}
}

// Offer schedules a frame for publishing. Frames must not be modified after
// being offered.
func (p *Publisher) Offer(frame image.Image) {
	if frame == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = frame
	if p.timer != nil {
		return
	}
	wait := p.interval - time.Since(p.last)
	if wait < 0 {
		wait = 0
	}
	p.timer = time.AfterFunc(wait, p.flush)
}

func (p *Publisher) flush() {
	p.mu.Lock()
	frame := p.pending
	p.pending = nil
	p.timer = nil
	p.last = time.Now()
	p.mu.Unlock()

	if frame == nil {
		return
	}
	var buf bytes.Buffer
	if err := export.EncodePNG(&buf, frame); err != nil {
		log.Printf("[SHARE] Failed to encode frame: %v", err)
		return
	}
	p.hub.Publish(buf.Bytes())
}

// Stop cancels a scheduled publish.
func (p *Publisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.pending = nil
}
