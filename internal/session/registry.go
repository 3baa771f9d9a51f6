package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"catalog-backend/internal/logging"
	"catalog-backend/internal/metrics"
	"github.com/google/uuid"
)

const DefaultIdle = 30 * time.Minute

type Factory func(id string) *Session

type held struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps sessions in memory only. A restart logs everyone out.
type Registry struct {
	factory Factory
	idle    time.Duration
	log     *slog.Logger
	now     func() time.Time
	newID   func() string

	mu       sync.Mutex
	sessions map[string]*held
}

func NewRegistry(factory Factory, idle time.Duration, log *slog.Logger) *Registry {
	if idle <= 0 {
		idle = DefaultIdle
	}
	return &Registry{
		factory:  factory,
		idle:     idle,
		log:      logging.OrDiscard(log),
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*held),
	}
}

// Get returns a live session and marks it as used.
func (r *Registry) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.now().Sub(h.lastSeen) > r.idle {
		r.dropLocked(id, h)
		return nil, false
	}
	h.lastSeen = r.now()
	return h.session, true
}

// Resolve returns the session for id, creating a new one when id is
// unknown or expired. created reports which happened.
func (r *Registry) Resolve(id string) (s *Session, created bool) {
	if s, ok := r.Get(id); ok {
		return s, false
	}
	return r.Create(), true
}

func (r *Registry) Create() *Session {
	id := r.newID()
	s := r.factory(id)

	r.mu.Lock()
	r.sessions[id] = &held{session: s, lastSeen: r.now()}
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.SetActiveSessions(n)
	r.log.Debug("session created", slog.Int("active", n))
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the configured timeout.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	dropped := 0
	for id, h := range r.sessions {
		if now.Sub(h.lastSeen) > r.idle {
			r.dropLocked(id, h)
			dropped++
		}
	}
	return dropped
}

// Run sweeps on every tick until ctx is done.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Info("sessions expired", slog.Int("count", n), slog.Int("active", r.Len()))
			}
		}
	}
}

// dropLocked requires r.mu.
func (r *Registry) dropLocked(id string, h *held) {
	delete(r.sessions, id)
	h.session.Close()
	metrics.SetActiveSessions(len(r.sessions))
}
