package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/rewind/pkg/history"
)

// StreamManager handles active SSE connections
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // DocumentID -> Set of Channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

// Hooks returns lifecycle hooks that broadcast every event of a document to
// its subscribers.
func (sm *StreamManager) Hooks() history.LifecycleHooks {
	return history.LifecycleHooks{
		OnCommand: func(_ context.Context, e *history.Event) {
			b, err := json.Marshal(e)
			if err != nil {
				return
			}
			sm.Broadcast(e.Document, string(b))
		},
	}
}

func (sm *StreamManager) Subscribe(documentID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[documentID]; !ok {
		sm.subscribers[documentID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[documentID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		subs := sm.subscribers[documentID]
		if _, ok := subs[ch]; !ok {
			return // already closed by CloseDocument
		}
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(sm.subscribers, documentID)
		}
	}
}

// CloseDocument ends every stream of a closed document. Clients receive the
// events still buffered, then a "closed" event. It has the shape of a
// session.CloseHook.
func (sm *StreamManager) CloseDocument(_ context.Context, documentID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for ch := range sm.subscribers[documentID] {
		close(ch)
	}
	delete(sm.subscribers, documentID)
}

// Subscribers reports the number of open streams on a document.
func (sm *StreamManager) Subscribers(documentID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[documentID])
}

func (sm *StreamManager) Broadcast(documentID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[documentID] {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			slog.Warn("SSE: Client buffer full, dropping message", "document", documentID)
		}
	}
}

// SubscribeEvents handles the GET /documents/{id}/events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, id string) {
	if s.Streams == nil {
		writeError(w, http.StatusNotImplemented, "event streaming disabled")
		return
	}
	if _, err := s.Manager.Get(r.Context(), id); err != nil {
		s.fail(w, "SubscribeEvents", err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()
	s.Logger.Info("SSE: Subscribing to document", "document", id)

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE Client Disconnected", "document", id)
			return
		case msg, ok := <-ch:
			if !ok {
				fmt.Fprintf(w, "event: closed\ndata: %s\n\n", id)
				flusher.Flush()
				s.Logger.Info("SSE: Document closed", "document", id)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
