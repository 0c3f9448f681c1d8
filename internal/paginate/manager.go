package paginate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tkarpov/warroom/internal/render"
	"github.com/tkarpov/warroom/internal/wctx"
	"github.com/tkarpov/warroom/internal/wlog"
)

const (
	// DefaultIdleTimeout is how long a session survives without navigation.
	DefaultIdleTimeout = 3 * time.Minute

	eventBuffer = 16
)

// Manager tracks at most one pagination session per hosting message.
type Manager struct {
	idle   time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(idle time.Duration, logger *slog.Logger) *Manager {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		idle:     idle,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Open binds a rendered payload to a hosting message and starts serving navigation
// events. An existing session for the same message is stopped first; only one
// session per hosting message exists at a time.
func (m *Manager) Open(ctx context.Context, key string, out render.Output, update UpdateFunc) *Session {
	s := &Session{
		id:     wctx.GetUuidGenerator(ctx).NewString(),
		key:    key,
		out:    out,
		update: update,
		idle:   m.idle,
		clk:    wctx.GetClock(ctx),
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
	s.logger = wlog.NewBuilder(m.logger).WithComponent("paginate").WithSession(s.id).Build()
	s.onDone = func() {
		m.remove(key, s)
	}

	m.mu.Lock()
	if prev, ok := m.sessions[key]; ok {
		prev.Close()
	}
	m.sessions[key] = s
	m.mu.Unlock()

	go s.run()

	return s
}

// Dispatch routes a navigation event to the session hosting the message, if any.
func (m *Manager) Dispatch(key string, ev Event) bool {
	m.mu.Lock()
	s, ok := m.sessions[key]
	m.mu.Unlock()

	if !ok {
		return false
	}

	return s.Dispatch(ev)
}

// Close stops and forgets the session for a hosting message.
func (m *Manager) Close(key string) {
	m.mu.Lock()
	s, ok := m.sessions[key]
	delete(m.sessions, key)
	m.mu.Unlock()

	if ok {
		s.Close()
	}
}

// CloseAll stops every session; used at shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) remove(key string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.sessions[key]; ok && cur == s {
		delete(m.sessions, key)
	}
}
