package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"github.com/hashicorp/mdns"

	"MathBoard/internal/config"
	boardnet "MathBoard/internal/net"
)

// sharing publishes rendered frames to read-only viewers.
type sharing struct {
	hub  *boardnet.FrameHub
	pub  *boardnet.Publisher
	mdns *mdns.Server
}

func startSharing(cfg *config.Config, ws *Workspace) (*sharing, error) {
	hub := boardnet.NewFrameHub()
	hub.OnViewersChanged = func(n int) {
		fyne.Do(func() { ws.Status.SetViewers(n) })
	}
	port, err := hub.Start(cfg.Share.Port)
	if err != nil {
		return nil, fmt.Errorf("start frame hub: %w", err)
	}

	s := &sharing{hub: hub, pub: boardnet.NewPublisher(hub, cfg.Share.Interval)}
	ws.Canvas.OnFrame = s.pub.Offer

	if cfg.Share.MDNS {
		srv, err := boardnet.Advertise(port, cfg.ProblemID)
		if err != nil {
			log.Printf("[MDNS] Not advertising: %v", err)
		} else {
			s.mdns = srv
		}
	}

	url := boardnet.ShareURL(port)
	log.Printf("[SHARE] Board viewable at %s", url)
	ws.Status.SetShareURL(url)
	return s, nil
}

func (s *sharing) stop() {
	s.pub.Stop()
	if s.mdns != nil {
		if err := s.mdns.Shutdown(); err != nil {
			log.Printf("[MDNS] Shutdown: %v", err)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.hub.Shutdown(ctx); err != nil {
		log.Printf("[SHARE] Shutdown: %v", err)
	}
}
