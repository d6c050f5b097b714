package conversation

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// sessionTTL is how long an idle session survives before the sweeper drops
// it and cancels its scan.
const sessionTTL = 30 * time.Minute

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Manager hands out one Controller per session id and reaps idle ones.
type Manager struct {
	runner   ScanTasks
	reporter Reporter
	relay    LeadRelay
	log      *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(runner ScanTasks, reporter Reporter, relay LeadRelay, log *zap.Logger) *Manager {
	m := &Manager{
		runner:   runner,
		reporter: reporter,
		relay:    relay,
		log:      log,
		sessions: make(map[string]*session),
		stop:     make(chan struct{}),
	}
	go m.sweep()
	return m
}

// Get returns the controller for id, creating one on first sight. An empty
// id always creates a fresh anonymous session.
func (m *Manager) Get(id string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.lastSeen = time.Now()
			return s.ctrl
		}
	}
	ctrl := NewController(id, m.runner, m.reporter, m.relay, m.log)
	m.sessions[ctrl.ID] = &session{ctrl: ctrl, lastSeen: time.Now()}
	return ctrl
}

// Lookup returns an existing controller without creating one.
func (m *Manager) Lookup(id string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = time.Now()
	return s.ctrl, true
}

// Drop tears down a session and cancels its scan.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.ctrl.Close()
	}
}

// Stop halts the idle sweeper.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-sessionTTL)
			m.mu.Lock()
			var stale []*session
			for id, s := range m.sessions {
				if s.lastSeen.Before(cutoff) {
					stale = append(stale, s)
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
			for _, s := range stale {
				s.ctrl.Close()
			}
			if len(stale) > 0 {
				m.log.Info("swept idle sessions", zap.Int("count", len(stale)))
			}
		}
	}
}
