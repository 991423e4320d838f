package storage

import (
	"context"
	"log"
	"sync"
)

// Resolver owns the lazily-created source handle. It replaces the usual
// module-level storage global: request handlers share one Resolver and the
// mutex makes concurrent first-use safe. The handle survives failed
// reconnects so the next request can retry against the same client.
type Resolver struct {
	mu     sync.Mutex
	build  func() (TaskSource, error)
	source TaskSource
}

// NewResolver wires a source constructor. A nil build function means the
// process was configured without a live backend (mock mode); Resolve then
// always reports unavailable and every request serves fallback data.
func NewResolver(build func() (TaskSource, error)) *Resolver {
	return &Resolver{build: build}
}

// Resolve returns a connected source, or false when no live backend can be
// reached. Connection problems are logged and swallowed here; they must
// degrade the request to fallback data, never fail it.
func (r *Resolver) Resolve(ctx context.Context) (TaskSource, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.build == nil {
		return nil, false
	}

	if r.source == nil {
		src, err := r.build()
		if err != nil {
			log.Printf("storage: initializing source failed: %v", err)
			return nil, false
		}
		r.source = src
	}

	if !r.source.Connected() {
		if err := r.source.Connect(ctx); err != nil {
			log.Printf("storage: connecting to backend failed: %v", err)
			return nil, false
		}
	}

	return r.source, true
}

// Available reports whether a live source can currently be resolved. Used by
// the health and root endpoints to distinguish database mode from mock mode.
func (r *Resolver) Available(ctx context.Context) bool {
	_, ok := r.Resolve(ctx)
	return ok
}
