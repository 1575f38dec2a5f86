// Package navigation decides where the client should be, given the
// onboarding status, the session and the current route.
//
// [Decide] is a pure function over [Inputs]. [Guard] wraps it with the
// reactive part: it is re-evaluated on every change, ignores repeated
// inputs, and owns the only timer of the session core, the settle delay
// before a freshly signed-in login screen is replaced by the home tabs.
package navigation

import (
	"sync"
	"time"

	"github.com/MKhiriev/nurse-notes/internal/logger"
)

// Navigator performs replace-style navigation.
type Navigator interface {
	Replace(path string)
}

// Timer is the part of *time.Timer the guard needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func()) Timer

// Option configures a [Guard].
type Option func(*Guard)

// WithAfterFunc replaces the timer factory.
func WithAfterFunc(fn AfterFunc) Option {
	return func(g *Guard) {
		g.afterFunc = fn
	}
}

// Guard applies [Decide] to a stream of inputs.
type Guard struct {
	nav         Navigator
	settleDelay time.Duration
	afterFunc   AfterFunc
	logger      *logger.Logger

	mu        sync.Mutex
	last      Inputs
	evaluated bool
	closed    bool
	pending   Timer
	// generation invalidates timers that were stopped too late.
	generation uint64
}

// NewGuard returns a guard that redirects through nav.
func NewGuard(nav Navigator, settleDelay time.Duration, logger *logger.Logger, opts ...Option) *Guard {
	g := &Guard{
		nav:         nav,
		settleDelay: settleDelay,
		logger:      logger,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate reacts to in. Inputs equal to the previous call are ignored.
// Otherwise any pending delayed redirect is cancelled and, once both stores
// are ready, the decision is applied.
func (g *Guard) Evaluate(in Inputs) {
	g.mu.Lock()

	if g.closed || (g.evaluated && g.last.Equal(in)) {
		g.mu.Unlock()
		return
	}

	g.cancelLocked()
	g.last = in
	g.evaluated = true

	if !Ready(in) {
		g.mu.Unlock()
		return
	}

	d := Decide(in)
	switch d.Action {
	case ActionRedirect:
		g.mu.Unlock()
		g.logger.Debug().Str("func", "*Guard.Evaluate").Str("from", in.Route.String()).Str("to", d.Target).Msg("redirect")
		g.nav.Replace(d.Target)
		return
	case ActionDelayedRedirect:
		gen := g.generation
		g.pending = g.afterFunc(g.settleDelay, func() { g.fire(gen, d.Target) })
	}

	g.mu.Unlock()
}

func (g *Guard) fire(gen uint64, target string) {
	g.mu.Lock()
	if g.closed || gen != g.generation || g.last.Route.First() != RouteLogin {
		g.mu.Unlock()
		return
	}
	g.pending = nil
	g.generation++
	g.mu.Unlock()

	g.logger.Debug().Str("func", "*Guard.fire").Str("to", target).Msg("delayed redirect")
	g.nav.Replace(target)
}

func (g *Guard) cancelLocked() {
	if g.pending != nil {
		g.pending.Stop()
		g.pending = nil
	}
	g.generation++
}

// Close cancels the pending redirect. Later evaluations are ignored.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cancelLocked()
	g.closed = true
}
