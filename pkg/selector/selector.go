// Package selector narrows a fixed candidate list by a search term typed
// incrementally, filtering only once typing pauses.
package selector

import (
	"strings"
	"sync"
	"time"

	"github.com/juju/clock"

	"github.com/jingkaihe/volform/pkg/debounce"
)

// KeysFunc returns the searchable texts of an item.
type KeysFunc[T any] func(T) []string

// Config configures a Selector.
type Config[T any] struct {
	// Clock drives the debounce timer. Defaults to the wall clock.
	Clock clock.Clock
	// Delay is the quiescence window. Defaults to debounce.DefaultDelay.
	Delay time.Duration
	// Keys extracts the texts matched against the term. When nil no item
	// has keys, so only the empty term matches.
	Keys KeysFunc[T]
	// OnChange, if set, receives every new result set. It runs on the
	// debounce timer's goroutine, or the caller's for Flush.
	OnChange func(term string, results []T)
}

// Selector holds a candidate list and the results of the last settled
// search.
type Selector[T any] struct {
	items     []T
	keys      KeysFunc[T]
	onChange  func(string, []T)
	debouncer *debounce.Debouncer

	mu      sync.Mutex
	term    string
	results []T
}

// New creates a selector over items. Until a search settles every item
// matches.
func New[T any](items []T, cfg Config[T]) *Selector[T] {
	all := append([]T(nil), items...)
	keys := cfg.Keys
	if keys == nil {
		keys = noKeys[T]
	}
	return &Selector[T]{
		items:     all,
		keys:      keys,
		onChange:  cfg.OnChange,
		debouncer: debounce.New(cfg.Clock, cfg.Delay),
		results:   append([]T(nil), all...),
	}
}

// Search schedules filtering by term, superseding any search that has not
// settled yet.
func (s *Selector[T]) Search(term string) {
	s.debouncer.Trigger(func() { s.apply(term) })
}

// Flush settles a pending search immediately.
func (s *Selector[T]) Flush() bool {
	return s.debouncer.Flush()
}

// Stop discards a pending search.
func (s *Selector[T]) Stop() {
	s.debouncer.Stop()
}

// Term returns the term of the last settled search.
func (s *Selector[T]) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term
}

// Results returns the items matched by the last settled search.
func (s *Selector[T]) Results() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.results...)
}

func noKeys[T any](T) []string { return nil }

func (s *Selector[T]) apply(term string) {
	results := Filter(s.items, term, s.keys)

	s.mu.Lock()
	s.term = term
	s.results = results
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(term, append([]T(nil), results...))
	}
}

// Filter returns the items whose keys, joined by spaces, contain term
// ignoring case. An empty term matches every item. The full list is always
// scanned and input order is kept.
func Filter[T any](items []T, term string, keys KeysFunc[T]) []T {
	if keys == nil {
		keys = noKeys[T]
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle == "" || strings.Contains(strings.ToLower(strings.Join(keys(item), " ")), needle) {
			out = append(out, item)
		}
	}
	return out
}
