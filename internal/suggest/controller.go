package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"weatherboard/internal/model"
)

// State of the autocomplete machine.
type State int

const (
	Idle State = iota
	Debouncing
	Querying
	ShowingSuggestions
)

func (s State) String() string {
	switch s {
	case Debouncing:
		return "debouncing"
	case Querying:
		return "querying"
	case ShowingSuggestions:
		return "showing"
	default:
		return "idle"
	}
}

// Outcome of one input event.
type Outcome int

const (
	// Superseded: a newer keystroke arrived before this one settled.
	Superseded Outcome = iota
	// Hidden: the list was hidden (short input, zero matches, or a
	// swallowed lookup failure).
	Hidden
	// Shown: suggestions are showing.
	Shown
)

// Result is delivered on the ticket channel returned by Input once the
// input event settles.
type Result struct {
	Outcome    Outcome
	Candidates []model.GeocodeCandidate
}

// searcher is the geocoding dependency; both geocode.Client and
// geocode.Repository satisfy it.
type searcher interface {
	Search(ctx context.Context, query string) ([]model.GeocodeCandidate, error)
}

// Controller debounces keystroke input and drives suggestion lookups.
// Within one debounce window only the most recent keystroke triggers a
// query; earlier tickets observe Superseded. Lookup failures are swallowed:
// autocomplete is advisory and degrades to "no suggestions".
type Controller struct {
	clock    Clock
	debounce time.Duration
	minLen   int
	geocoder searcher

	mu          sync.Mutex
	state       State
	seq         uint64
	pending     string
	timer       Timer
	waiters     []chan Result
	suggestions []model.GeocodeCandidate
}

func NewController(geocoder searcher, clock Clock, debounce time.Duration, minLen int) *Controller {
	if clock == nil {
		clock = RealClock{}
	}
	return &Controller{
		clock:    clock,
		debounce: debounce,
		minLen:   minLen,
		geocoder: geocoder,
		state:    Idle,
	}
}

// Input feeds one keystroke's worth of query text. The returned channel
// receives exactly one Result when the event settles. A keystroke while
// debouncing resets the pending timer.
func (c *Controller) Input(query string) <-chan Result {
	ticket := make(chan Result, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersedeLocked()

	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < c.minLen {
		c.state = Idle
		c.suggestions = nil
		ticket <- Result{Outcome: Hidden}
		return ticket
	}

	c.state = Debouncing
	c.pending = trimmed
	c.waiters = append(c.waiters, ticket)

	seq := c.seq
	c.timer = c.clock.AfterFunc(c.debounce, func() { c.fire(seq) })
	return ticket
}

// fire runs when the debounce timer elapses without another keystroke.
func (c *Controller) fire(seq uint64) {
	c.mu.Lock()
	if seq != c.seq || c.state != Debouncing {
		c.mu.Unlock()
		return
	}
	query := c.pending
	c.state = Querying
	c.mu.Unlock()

	candidates, err := c.geocoder.Search(context.Background(), query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq || c.state != Querying {
		// A newer keystroke or dismissal won while we were querying; its
		// waiters were already answered.
		return
	}

	if err != nil || len(candidates) == 0 {
		c.state = Idle
		c.suggestions = nil
		c.notifyLocked(Result{Outcome: Hidden})
		return
	}

	c.state = ShowingSuggestions
	c.suggestions = candidates
	c.notifyLocked(Result{Outcome: Shown, Candidates: candidates})
}

// Select picks a visible suggestion by index, hides the list and returns
// the candidate so the caller can start the main load sequence.
func (c *Controller) Select(i int) (model.GeocodeCandidate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != ShowingSuggestions || i < 0 || i >= len(c.suggestions) {
		return model.GeocodeCandidate{}, false
	}
	candidate := c.suggestions[i]
	c.supersedeLocked()
	c.state = Idle
	c.suggestions = nil
	return candidate, true
}

// Dismiss forces Idle from any state and hides the list.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersedeLocked()
	c.state = Idle
	c.suggestions = nil
}

// State returns the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Suggestions returns the currently visible suggestion list.
func (c *Controller) Suggestions() []model.GeocodeCandidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suggestions
}

// supersedeLocked cancels the pending timer and answers outstanding tickets
// with Superseded. Callers must hold c.mu.
func (c *Controller) supersedeLocked() {
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.notifyLocked(Result{Outcome: Superseded})
}

// notifyLocked delivers res to all outstanding tickets. Callers must hold
// c.mu.
func (c *Controller) notifyLocked(res Result) {
	for _, w := range c.waiters {
		w <- res
	}
	c.waiters = nil
}
