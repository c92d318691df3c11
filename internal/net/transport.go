package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	// Viewers never send anything meaningful.
	readLimit = 512
)

// viewer is one read-only websocket client.
type viewer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// FrameHub serves the latest rendered frame to read-only viewers, over plain
// HTTP at /frame.png and as binary websocket messages at /ws.
type FrameHub struct {
	mu      sync.RWMutex
	viewers map[string]*viewer
	latest  []byte

	upgrader websocket.Upgrader
	server   *http.Server

	// OnViewersChanged is called with the new viewer count. It runs on a
	// network goroutine.
	OnViewersChanged func(n int)
}

func NewFrameHub() *FrameHub {
	return &FrameHub{
		viewers: make(map[string]*viewer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readLimit,
			WriteBufferSize: 64 * 1024,
			// Viewers are typically opened from a file or another host.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the hub's HTTP routes.
func (h *FrameHub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame.png", h.serveFrame)
	mux.HandleFunc("/ws", h.serveWS)
	return mux
}

// Publish replaces the latest frame and queues it for every viewer. A viewer
// that has not yet received the previous frame only gets the newest one.
func (h *FrameHub) Publish(png []byte) {
	h.mu.Lock()
	h.latest = png
	h.mu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, v := range h.viewers {
		select {
		case v.send <- png:
		default:
			select {
			case <-v.send:
			default:
			}
			select {
			case v.send <- png:
			default:
			}
		}
	}
}

// Latest returns the most recently published frame.
func (h *FrameHub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

func (h *FrameHub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

func (h *FrameHub) serveFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	frame := h.Latest()
	if frame == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(frame)
}

func (h *FrameHub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	v := &viewer{id: uuid.NewString(), conn: conn, send: make(chan []byte, 1)}
	if frame := h.Latest(); frame != nil {
		v.send <- frame
	}
	n := h.add(v)
	log.Printf("[SHARE] Viewer %s connected from %s, total: %d", v.id, r.RemoteAddr, n)

	go h.writeLoop(v)

	conn.SetReadLimit(readLimit)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	n = h.remove(v.id)
	log.Printf("[SHARE] Viewer %s disconnected, remaining: %d", v.id, n)
}

func (h *FrameHub) writeLoop(v *viewer) {
	defer v.conn.Close()
	for frame := range v.send {
		_ = v.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := v.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Printf("[SHARE] Write to viewer %s failed: %v", v.id, err)
			return
		}
	}
	_ = v.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
		time.Now().Add(time.Second))
}

func (h *FrameHub) add(v *viewer) int {
	h.mu.Lock()
	h.viewers[v.id] = v
	n := len(h.viewers)
	h.mu.Unlock()
	h.notify(n)
	return n
}

// remove drops a viewer and closes its queue, which ends its write loop.
func (h *FrameHub) remove(id string) int {
	h.mu.Lock()
	v, ok := h.viewers[id]
	if ok {
		delete(h.viewers, id)
		close(v.send)
	}
	n := len(h.viewers)
	h.mu.Unlock()
	if ok {
		h.notify(n)
	}
	return n
}

func (h *FrameHub) notify(n int) {
	if h.OnViewersChanged != nil {
		h.OnViewersChanged(n)
	}
}

// Start listens on port (0 picks a free one) and serves in the background.
// It returns the bound port.
func (h *FrameHub) Start(port int) (int, error) {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("listen on port %d: %w", port, err)
	}
	h.server = &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	bound := l.Addr().(*net.TCPAddr).Port
	log.Printf("[SHARE] Serving frames on port %d", bound)

	go func() {
		if err := h.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[SHARE] Server stopped: %v", err)
		}
	}()
	return bound, nil
}

// Shutdown stops the server and disconnects all viewers.
func (h *FrameHub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	for id, v := range h.viewers {
		delete(h.viewers, id)
		close(v.send)
	}
	h.mu.Unlock()

	if h.server == nil {
		return nil
	}
	return h.server.Shutdown(ctx)
}
