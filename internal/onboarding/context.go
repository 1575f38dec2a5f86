package onboarding

import (
	"context"
	"errors"
)

type ctxKey struct{}

// ErrNoProvider is the panic value of [Use] when ctx carries no gate.
var ErrNoProvider = errors.New("onboarding.Use must be called within a context returned by onboarding.Provide")

// Provide returns a copy of ctx that carries gate.
func Provide(ctx context.Context, gate *Gate) context.Context {
	return context.WithValue(ctx, ctxKey{}, gate)
}

// Use returns the gate carried by ctx. It panics with [ErrNoProvider] when
// ctx was not derived from [Provide].
func Use(ctx context.Context) *Gate {
	gate, ok := ctx.Value(ctxKey{}).(*Gate)
	if !ok || gate == nil {
		panic(ErrNoProvider)
	}
	return gate
}
