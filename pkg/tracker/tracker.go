// Package tracker turns raw screen metrics into published breakpoint state
// snapshots. A host (a bubbletea program, a resize signal handler) pushes
// width/height changes in; the tracker reclassifies and hands every
// subscriber a fresh immutable snapshot.
package tracker

import (
	"sync"

	"github.com/Dicklesworthstone/responsive_tui/pkg/breakpoint"
)

// Tracker owns the breakpoint configuration and the current state snapshot.
// All recomputation is synchronous: SetMetrics returns only after the new
// state has been published to every subscriber.
type Tracker struct {
	mu        sync.Mutex
	primary   breakpoint.Set
	landscape *breakpoint.Set
	platform  breakpoint.Platform
	allowed   []breakpoint.Platform

	state      breakpoint.State
	hasMetrics bool
	lastWidth  float64
	lastHeight float64
	notifying  bool

	subs    map[int]func(breakpoint.State)
	nextSub int
}

// Option configures a Tracker at construction time.
type Option func(*Tracker)

// WithLandscapeSet supplies an alternate set used in landscape orientation
// on landscape-eligible platforms.
func WithLandscapeSet(s breakpoint.Set) Option {
	return func(t *Tracker) { t.landscape = &s }
}

// WithPlatform overrides the detected host platform.
func WithPlatform(p breakpoint.Platform) Option {
	return func(t *Tracker) { t.platform = p }
}

// WithLandscapePlatforms overrides the platforms on which landscape
// breakpoints may activate.
func WithLandscapePlatforms(ps ...breakpoint.Platform) Option {
	return func(t *Tracker) { t.allowed = ps }
}

// New creates a Tracker classifying against the given primary set. Until
// the first SetMetrics call the tracker has no classification context and
// State returns the zero snapshot.
func New(primary breakpoint.Set, opts ...Option) *Tracker {
	t := &Tracker{
		primary:  primary,
		platform: breakpoint.CurrentPlatform(),
		allowed:  breakpoint.DefaultLandscapePlatforms(),
		subs:     make(map[int]func(breakpoint.State)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetMetrics reports new screen dimensions. Unchanged metrics are a no-op;
// otherwise the tracker reclassifies and publishes the new snapshot before
// returning. Calling SetMetrics from inside a subscriber callback is a
// programming error and panics: a half-published state must never trigger
// another publish.
func (t *Tracker) SetMetrics(width, height float64) {
	t.mu.Lock()
	if t.notifying {
		t.mu.Unlock()
		panic("tracker: SetMetrics called re-entrantly from a subscriber callback")
	}
	if t.hasMetrics && width == t.lastWidth && height == t.lastHeight {
		t.mu.Unlock()
		return
	}
	t.lastWidth = width
	t.lastHeight = height
	t.hasMetrics = true
	st := t.recomputeLocked()
	t.mu.Unlock()

	t.notify(st)
}

// SetPlatform changes the platform at runtime (a test harness override, or
// a host that learns its platform late) and re-evaluates the active set.
func (t *Tracker) SetPlatform(p breakpoint.Platform) {
	t.mu.Lock()
	if t.notifying {
		t.mu.Unlock()
		panic("tracker: SetPlatform called re-entrantly from a subscriber callback")
	}
	if p == t.platform {
		t.mu.Unlock()
		return
	}
	t.platform = p
	if !t.hasMetrics {
		t.mu.Unlock()
		return
	}
	st := t.recomputeLocked()
	t.mu.Unlock()

	t.notify(st)
}

// Reconfigure swaps in new breakpoint sets, typically after a live config
// reload. The sets themselves stay immutable; the tracker re-classifies the
// last seen metrics against the new configuration and publishes.
func (t *Tracker) Reconfigure(primary breakpoint.Set, landscape *breakpoint.Set, allowed []breakpoint.Platform) {
	t.mu.Lock()
	if t.notifying {
		t.mu.Unlock()
		panic("tracker: Reconfigure called re-entrantly from a subscriber callback")
	}
	t.primary = primary
	t.landscape = landscape
	if allowed != nil {
		t.allowed = allowed
	}
	if !t.hasMetrics {
		t.mu.Unlock()
		return
	}
	st := t.recomputeLocked()
	t.mu.Unlock()

	t.notify(st)
}

func (t *Tracker) recomputeLocked() breakpoint.State {
	t.state = breakpoint.NewState(t.lastWidth, t.lastHeight, t.primary, t.landscape, t.platform, t.allowed)
	return t.state
}

func (t *Tracker) notify(st breakpoint.State) {
	t.mu.Lock()
	t.notifying = true
	fns := make([]func(breakpoint.State), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}

	t.mu.Lock()
	t.notifying = false
	t.mu.Unlock()
}

// State returns the current snapshot. Before the first SetMetrics call it
// returns the zero state, against which name-based lookups panic.
func (t *Tracker) State() breakpoint.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Platform returns the platform currently in effect.
func (t *Tracker) Platform() breakpoint.Platform {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.platform
}

// Subscribe registers a callback invoked with every newly published
// snapshot. The returned cancel function removes the subscription.
func (t *Tracker) Subscribe(fn func(breakpoint.State)) (cancel func()) {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Resolve evaluates the conditions against the tracker's current snapshot.
func Resolve[T any](t *Tracker, conditions []breakpoint.Condition[T], def T) T {
	return breakpoint.Resolve(conditions, t.State(), def)
}
