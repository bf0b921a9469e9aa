// Package provider defines the interface for fact sources.
// Each provider (catfact.ninja, uselessfacts) implements this interface to
// supply one random fact per call.
package provider

import "context"

// FactProvider is the interface for external fact APIs.
// Each implementation knows how to fetch and decode one fact.
//
// Go interface design tip: keep interfaces small. This has one real method —
// that's ideal. The bigger the interface, the harder it is to implement
// and mock. Go proverb: "The bigger the interface, the weaker the abstraction."
type FactProvider interface {
	// RandomFact fetches a single fact. It returns an error on any failure
	// (network, timeout, non-2xx status, malformed body) — deciding what to
	// do about that failure is the caller's job, not the provider's.
	RandomFact(ctx context.Context) (string, error)

	// Name returns a human-readable name for the provider.
	Name() string
}
