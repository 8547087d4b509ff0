package suggest

import (
	"sync"
	"time"
)

// entry holds one client's controller and when it was last used.
type entry struct {
	controller *Controller
	lastSeen   time.Time
}

// Registry hands out one debounce controller per client key (the client IP
// in practice) and reaps controllers that have gone quiet.
type Registry struct {
	clock    Clock
	debounce time.Duration
	minLen   int
	geocoder searcher
	maxIdle  time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry(geocoder searcher, clock Clock, debounce time.Duration, minLen int, maxIdle time.Duration) *Registry {
	if clock == nil {
		clock = RealClock{}
	}
	return &Registry{
		clock:    clock,
		debounce: debounce,
		minLen:   minLen,
		geocoder: geocoder,
		maxIdle:  maxIdle,
		entries:  make(map[string]*entry),
	}
}

// Get returns the controller for key, creating one if it does not exist.
func (r *Registry) Get(key string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{controller: NewController(r.geocoder, r.clock, r.debounce, r.minLen)}
		r.entries[key] = e
	}
	e.lastSeen = r.clock.Now()
	return e.controller
}

// StartCleanup starts a background goroutine that removes controllers not
// seen for maxIdle.
func (r *Registry) StartCleanup() {
	go func() {
		for {
			time.Sleep(time.Minute)
			r.cleanup()
		}
	}()
}

func (r *Registry) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock.Now()
	for key, e := range r.entries {
		if now.Sub(e.lastSeen) > r.maxIdle {
			e.controller.Dismiss()
			delete(r.entries, key)
		}
	}
}

// Len reports the number of live controllers. Used primarily for testing.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
