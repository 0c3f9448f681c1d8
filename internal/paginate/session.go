package paginate

import (
	"log/slog"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/tkarpov/warroom/internal/render"
)

// Event is a navigation input on a pagination session.
type Event int

const (
	EventPrev Event = iota
	EventNext

	// EventToggleView switches between the player-facing and raw renderings. Both
	// derive from the payload the session was opened with; no re-fetch happens.
	EventToggleView
)

// View selects which of the two parallel renderings a session shows.
type View int

const (
	ViewPretty View = iota
	ViewDev
)

// NavState is what the hosting message needs to draw its controls.
type NavState struct {
	PrevEnabled bool
	NextEnabled bool
	View        View
	Index       int
	Count       int

	// Expired marks the terminal re-render after the idle timeout; all controls
	// are disabled.
	Expired bool
}

// UpdateFunc re-renders the hosting message to show a page. Failures are treated as
// best-effort: the platform boundary may have lost the message.
type UpdateFunc func(page render.Page, nav NavState) error

// Session binds one rendered payload to one hosting message. The page sequences are
// immutable for the session's life; the session owns the mutable cursor. Events are
// serialized through a single goroutine, so concurrent navigation on the same
// session observes a consistent state.
type Session struct {
	id     string
	key    string
	out    render.Output
	update UpdateFunc
	idle   time.Duration
	clk    clock.Clock
	logger *slog.Logger

	onDone func()

	events chan Event
	done   chan struct{}
	once   sync.Once

	mu    sync.Mutex
	index int
	view  View
}

// Id is the session's unique identifier, used in logs.
func (s *Session) Id() string {
	return s.id
}

// Key is the hosting message identity the session is bound to.
func (s *Session) Key() string {
	return s.key
}

// Dispatch hands a navigation event to the session without blocking the caller.
// Events beyond the buffer are dropped; false reports the drop or a closed session.
func (s *Session) Dispatch(ev Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// Close stops the session without a terminal re-render.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Current returns the page and control state at the session's cursor.
func (s *Session) Current() (render.Page, NavState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) pages() render.Pages {
	if s.view == ViewDev {
		return s.out.Dev
	}
	return s.out.Pretty
}

func (s *Session) currentLocked() (render.Page, NavState) {
	pages := s.pages()

	idx := s.index
	if idx > len(pages)-1 {
		idx = len(pages) - 1
	}
	if idx < 0 {
		idx = 0
	}

	return pages[idx], NavState{
		PrevEnabled: idx > 0,
		NextEnabled: idx < len(pages)-1,
		View:        s.view,
		Index:       idx,
		Count:       len(pages),
	}
}

// run serializes navigation events and arms the idle timer. One goroutine per
// session; state is only mutated here.
func (s *Session) run() {
	timer := s.clk.NewTimer(s.idle)
	defer timer.Stop()

	for {
		select {
		case ev := <-s.events:
			s.apply(ev)
			timer.Stop()
			timer.Reset(s.idle)
		case <-timer.C():
			s.expire()
			return
		case <-s.done:
			return
		}
	}
}

// apply transitions the cursor and re-renders. Transitions clamp at the sequence
// bounds; a clamped no-move still re-renders so controls stay accurate.
func (s *Session) apply(ev Event) {
	s.mu.Lock()

	switch ev {
	case EventPrev:
		if s.index > 0 {
			s.index--
		}
	case EventNext:
		if s.index < len(s.pages())-1 {
			s.index++
		}
	case EventToggleView:
		if s.view == ViewPretty {
			s.view = ViewDev
		} else {
			s.view = ViewPretty
		}
		if max := len(s.pages()) - 1; s.index > max {
			s.index = max
		}
	}

	page, nav := s.currentLocked()
	s.mu.Unlock()

	if err := s.update(page, nav); err != nil {
		s.logger.Warn("failed to update hosting message", "error", err)
	}
}

// expire performs the terminal re-render with controls disabled and releases the
// session. Best-effort: the hosting message may already be gone.
func (s *Session) expire() {
	s.mu.Lock()
	page, nav := s.currentLocked()
	s.mu.Unlock()

	nav.PrevEnabled = false
	nav.NextEnabled = false
	nav.Expired = true

	if err := s.update(page, nav); err != nil {
		s.logger.Debug("failed to disable controls on expiry", "error", err)
	}

	s.logger.Debug("session expired")
	s.Close()

	if s.onDone != nil {
		s.onDone()
	}
}
