// Package flight enforces the one-request-per-control discipline and
// discards responses that were superseded by a newer request.
package flight

import (
	"net/http"
	"sync"

	"github.com/nekogravitycat/court-booking-web/internal/pkg/apperror"
)

var (
	ErrInProgress    = apperror.New(http.StatusTooManyRequests, "a request for this action is already in progress")
	ErrStaleResponse = apperror.New(http.StatusConflict, "response superseded by a newer request")
)

// Guard allows at most one in-flight operation per key.
type Guard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{inFlight: make(map[string]struct{})}
}

// Acquire marks key as busy. It returns ErrInProgress if key is already busy.
// The returned release func must be called once the operation settles.
func (g *Guard) Acquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return nil, ErrInProgress
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}, nil
}

// Ticket identifies one request within a view.
type Ticket struct {
	view string
	gen  uint64
}

// Tracker remembers the latest request generation per view.
// Generations are unique across views so an entry can be dropped once its
// latest request finishes without a later request reusing the same number.
type Tracker struct {
	mu   sync.Mutex
	next uint64
	gens map[string]uint64
}

func NewTracker() *Tracker {
	return &Tracker{gens: make(map[string]uint64)}
}

// Begin starts a new request for view, superseding any earlier one.
func (t *Tracker) Begin(view string) Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.gens[view] = t.next
	return Ticket{view: view, gen: t.next}
}

// Current reports whether tk is still the latest request for its view.
func (t *Tracker) Current(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gens[tk.view] == tk.gen
}

// Finish releases the view entry if tk is still the latest request for it.
func (t *Tracker) Finish(tk Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gens[tk.view] == tk.gen {
		delete(t.gens, tk.view)
	}
}
