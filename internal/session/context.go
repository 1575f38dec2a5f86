package session

import "context"

type ctxKey struct{}

// Provide returns a copy of ctx that carries s.
func Provide(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// Use returns the store carried by ctx. It panics with [ErrNoProvider] when
// ctx was not derived from [Provide].
func Use(ctx context.Context) *Store {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	if !ok || s == nil {
		panic(ErrNoProvider)
	}
	return s
}
