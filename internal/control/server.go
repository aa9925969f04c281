// Package control exposes the panel over HTTP: a websocket for switching
// effects, a websocket streaming frame snapshots, and a health endpoint.
package control

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/example/icled/internal/effects"
	"github.com/example/icled/internal/icled"
)

type Server struct {
	mu      sync.RWMutex
	drv     *icled.Driver
	sel     *effects.Selector
	log     zerolog.Logger
	start   time.Time
	clients map[*websocket.Conn]bool
}

func NewServer(drv *icled.Driver, sel *effects.Selector, log zerolog.Logger) *Server {
	return &Server{
		drv:     drv,
		sel:     sel,
		log:     log,
		start:   time.Now(),
		clients: map[*websocket.Conn]bool{},
	}
}

// Handler returns the mux serving /control, /frames and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/control", s.HandleControlWS)
	mux.HandleFunc("/frames", s.HandleFramesWS)
	mux.HandleFunc("/health", s.HandleHealth)
	return mux
}

// HandleControlWS accepts JSON messages of the form {"mode":"snake"} or
// {"next":true} and answers each with the resulting state.
func (s *Server) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	s.sendState(conn)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.applyControl(msg)
		s.sendState(conn)
	}
}

func (s *Server) applyControl(msg map[string]any) {
	if name, ok := msg["mode"].(string); ok {
		if m, ok := effects.ParseMode(name); ok {
			s.sel.Set(m)
			s.log.Info().Stringer("mode", m).Msg("mode set")
		} else {
			s.log.Warn().Str("mode", name).Msg("unknown mode requested")
		}
	}
	if v, ok := msg["next"].(bool); ok && v {
		m := s.sel.Next()
		s.log.Info().Stringer("mode", m).Msg("mode advanced")
	}
}

func (s *Server) sendState(conn *websocket.Conn) {
	state := map[string]any{
		"mode":   s.sel.Current().String(),
		"frames": s.drv.Frames(),
	}
	b, _ := json.Marshal(state)
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

// HandleFramesWS registers a client for the snapshot broadcast.
func (s *Server) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// BroadcastLoop pushes RGB snapshots to connected frame clients at the given
// rate until ctx is canceled.
func (s *Server) BroadcastLoop(ctx context.Context, fps int) error {
	if fps < 1 {
		fps = 1
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		s.broadcastFrame(s.drv.Snapshot(), s.drv.Frames())
	}
}

func (s *Server) broadcastFrame(rgb []byte, frameID uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.clients) == 0 {
		return
	}
	type frame struct {
		T       int64  `json:"t"`
		FrameID uint64 `json:"frame_id"`
		RGB     []byte `json:"rgb"`
	}
	b, _ := json.Marshal(frame{T: time.Now().UnixNano(), FrameID: frameID, RGB: rgb})
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			s.log.Debug().Err(err).Msg("write frame")
		}
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"uptime_s": time.Since(s.start).Seconds(),
		"count":    icled.LEDCount,
		"mode":     s.sel.Current().String(),
		"frames":   s.drv.Frames(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
