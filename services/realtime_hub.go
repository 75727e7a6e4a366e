package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Session events pushed to connected clients so the UI re-renders from
// state changes instead of polling.
const (
	EventScreenChanged  = "screen_changed"
	EventAnalyzing      = "analyzing"
	EventAnalysisReady  = "analysis_ready"
	EventAnalysisFailed = "analysis_failed"
	EventProgressSaved  = "progress_saved"
)

type SessionEvent struct {
	Type    string      `json:"type"`
	Screen  string      `json:"screen,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	// gorilla/websocket allows at most one concurrent writer per
	// connection; writeMu serializes broadcasts and keep-alive pings.
	writeMu sync.Mutex
}

// Write sends one message on the connection, serialized against all
// other writers.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast delivers ev to every connection the user has open. Write
// errors are ignored; a dead connection unregisters itself from its read
// loop.
func (h *RealtimeHub) Broadcast(userID uint, ev SessionEvent) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}
