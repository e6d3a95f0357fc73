package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// ChangeEvent is published after every successful mutation.
type ChangeEvent struct {
	Revision int64  `json:"revision"`
	Action   string `json:"action"`
	Template string `json:"template"`
}

// broadcaster fans change events out to subscribers. Slow subscribers miss
// events rather than block writers.
type broadcaster struct {
	mu     sync.Mutex
	subs   map[chan ChangeEvent]struct{}
	closed bool
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[chan ChangeEvent]struct{})}
}

func (b *broadcaster) subscribe() (<-chan ChangeEvent, func()) {
	ch := make(chan ChangeEvent, 8)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[ch] = struct{}{}
	}
	b.mu.Unlock()
	return ch, func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
}

// closeAll ends every subscription and refuses new ones. Streams see a
// closed channel and return, which lets http.Server.Shutdown finish.
func (b *broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

func (b *broadcaster) publish(ev ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// handleEvents streams a "change" event after each mutation until the client goes away.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	// Streams outlive the server's WriteTimeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	events, unsubscribe := s.events.subscribe()
	defer unsubscribe()

	s.mu.Lock()
	hello := ChangeEvent{Revision: s.revision, Action: "connected", Template: string(s.ws.Template())}
	s.mu.Unlock()
	if err := sse.WriteEvent("hello", hello); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := sse.WriteEvent("change", ev); err != nil {
				return
			}
		}
	}
}
