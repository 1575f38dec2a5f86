// Package onboarding tracks whether the user has completed the introductory
// screens. The flag is persisted under [store.KeyHasSeenOnboarding] and only
// ever moves from "not seen" to "seen".
//
// The gate is fail-open: any storage problem resolves to "not seen", so the
// user is shown onboarding again rather than being locked out of it.
package onboarding

import (
	"context"
	"sync"

	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/store"
)

const seenValue = "true"

// Tristate is a boolean that may not be determined yet.
type Tristate int8

const (
	Unknown Tristate = iota
	No
	Yes
)

// Bool returns the value and whether it is known.
func (t Tristate) Bool() (value, known bool) {
	return t == Yes, t != Unknown
}

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return "null"
	}
}

// Status is a snapshot of the gate.
type Status struct {
	HasSeen Tristate
	Loading bool
}

// Gate is the onboarding gate. It is safe for concurrent use.
type Gate struct {
	kv     store.KeyValueStore
	logger *logger.Logger

	mu     sync.RWMutex
	status Status
}

// NewGate returns a gate in the unresolved state {Unknown, Loading}.
func NewGate(kv store.KeyValueStore, logger *logger.Logger) *Gate {
	return &Gate{
		kv:     kv,
		logger: logger,
		status: Status{HasSeen: Unknown, Loading: true},
	}
}

// CheckStatus hydrates the gate from the key-value store. A missing key, any
// value other than "true", or a read failure resolve to not seen.
func (g *Gate) CheckStatus(ctx context.Context) Status {
	hasSeen := No

	value, found, err := g.kv.Get(ctx, store.KeyHasSeenOnboarding)
	switch {
	case err != nil:
		g.logger.Warn().Err(err).Str("func", "*Gate.CheckStatus").Msg("error reading onboarding flag, showing onboarding")
	case found && value == seenValue:
		hasSeen = Yes
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// MarkAsSeen may have resolved the gate while the read was in flight.
	if g.status.HasSeen == Yes {
		hasSeen = Yes
	}
	g.status = Status{HasSeen: hasSeen, Loading: false}

	return g.status
}

// MarkAsSeen persists the flag and marks the gate as seen. The in-memory
// state is updated even when the write fails; the failure is only logged.
func (g *Gate) MarkAsSeen(ctx context.Context) error {
	if err := g.kv.Set(ctx, store.KeyHasSeenOnboarding, seenValue); err != nil {
		g.logger.Warn().Err(err).Str("func", "*Gate.MarkAsSeen").Msg("error persisting onboarding flag")
	}

	g.mu.Lock()
	g.status = Status{HasSeen: Yes, Loading: false}
	g.mu.Unlock()

	return nil
}

// Status returns the current snapshot.
func (g *Gate) Status() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}
