package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// SessionMessage is the frame exchanged with live build sessions. Clients send
// "set_slot"/"clear_slot"/"evaluate"/"ping"; the server answers with
// "evaluation", "pong" or "error".
type SessionMessage struct {
	Type        string      `json:"type"`
	Slot        string      `json:"slot,omitempty"`
	ComponentID string      `json:"component_id,omitempty"`
	Data        interface{} `json:"data,omitempty"`
	Error       string      `json:"error,omitempty"`
	Timestamp   time.Time   `json:"timestamp,omitempty"`
}

// BuildSession is one connected client and its in-progress build. The build
// lives server-side so every mutation can be re-evaluated immediately.
type BuildSession struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan SessionMessage
	Close chan bool

	mu    sync.Mutex
	build models.Build
}

// NewBuildSession creates a session with an empty build.
func NewBuildSession(id string, conn *websocket.Conn) *BuildSession {
	return &BuildSession{
		ID:    id,
		Conn:  conn,
		Send:  make(chan SessionMessage, 64),
		Close: make(chan bool),
		build: models.NewBuild(),
	}
}

// SetSlot resolves the component, places it in the slot and returns a fresh
// evaluation of the whole build.
func (s *BuildSession) SetSlot(slot, componentID string) (*models.EvaluationResult, error) {
	slotName := models.SlotName(slot)
	if !models.ValidSlot(slotName) {
		return nil, fmt.Errorf("unknown slot %q", slot)
	}

	component, err := GetComponentCached(componentID)
	if err != nil {
		return nil, err
	}
	if !models.SlotAccepts(slotName, component.Type) {
		return nil, fmt.Errorf("component %s is a %s, not valid for slot %q", componentID, component.Type, slot)
	}

	s.mu.Lock()
	s.build.Set(slotName, component)
	result := EvaluateBuild(s.build)
	s.mu.Unlock()
	return &result, nil
}

// ClearSlot empties the slot and returns a fresh evaluation.
func (s *BuildSession) ClearSlot(slot string) (*models.EvaluationResult, error) {
	slotName := models.SlotName(slot)
	if !models.ValidSlot(slotName) {
		return nil, fmt.Errorf("unknown slot %q", slot)
	}

	s.mu.Lock()
	s.build.Remove(slotName)
	result := EvaluateBuild(s.build)
	s.mu.Unlock()
	return &result, nil
}

// Evaluate re-runs the checks without changing the build.
func (s *BuildSession) Evaluate() *models.EvaluationResult {
	s.mu.Lock()
	result := EvaluateBuild(s.build)
	s.mu.Unlock()
	return &result
}

// SessionHub tracks every live build session.
type SessionHub struct {
	sessions   map[string]*BuildSession
	register   chan *BuildSession
	unregister chan string
	mu         sync.RWMutex
	done       chan bool
}

var sessionHub *SessionHub

// InitSessionHub starts the hub's event loop.
func InitSessionHub() *SessionHub {
	sessionHub = &SessionHub{
		sessions:   make(map[string]*BuildSession),
		register:   make(chan *BuildSession),
		unregister: make(chan string),
		done:       make(chan bool),
	}

	go sessionHub.run()

	return sessionHub
}

func (h *SessionHub) run() {
	for {
		select {
		case <-h.done:
			return

		case session := <-h.register:
			h.mu.Lock()
			h.sessions[session.ID] = session
			total := len(h.sessions)
			h.mu.Unlock()
			log.Printf("[WS] Build session started: %s (total: %d)", session.ID, total)

		case sessionID := <-h.unregister:
			h.mu.Lock()
			if session, exists := h.sessions[sessionID]; exists {
				delete(h.sessions, sessionID)
				// Signal via Close rather than closing Send: the pumps and
				// handler still send on Send after teardown begins.
				close(session.Close)
			}
			total := len(h.sessions)
			h.mu.Unlock()
			log.Printf("[WS] Build session closed: %s (total: %d)", sessionID, total)
		}
	}
}

// Register adds a session to the hub.
func (h *SessionHub) Register(session *BuildSession) {
	h.register <- session
}

// Unregister removes a session from the hub.
func (h *SessionHub) Unregister(sessionID string) {
	h.unregister <- sessionID
}

// Count returns the number of live sessions.
func (h *SessionHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// GetSessionHub returns the hub, or nil before InitSessionHub.
func GetSessionHub() *SessionHub {
	return sessionHub
}

// SessionCount reports live sessions for the status endpoint.
func SessionCount() int {
	if sessionHub == nil {
		return 0
	}
	return sessionHub.Count()
}

// StopSessionHub shuts down the hub's event loop.
func StopSessionHub() {
	if sessionHub != nil {
		sessionHub.done <- true
	}
}
