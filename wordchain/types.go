// Package wordchain defines options, results, and error definitions
// for single-pass longest word-chain construction.
package wordchain

import "errors"

// Sentinel errors for chain selection.
var (
	// ErrNoChain is returned when no valid token ever reached the registry,
	// so there is no chain to select or reconstruct.
	ErrNoChain = errors.New("wordchain: no valid tokens produced a chain")
)

// Option configures Builder behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe token processing.
// Both hooks default to no-ops; neither influences the outcome.
type Options struct {
	// OnInvalid is called when a token is skipped because one of its
	// boundary characters is not a letter. Diagnostic only, never fatal.
	OnInvalid func(token string)

	// OnDiscard is called when a valid token is dropped: either a
	// duplicate continuation (its parent already holds a child ending in
	// the same letter) or a superseded candidate (the registry already
	// holds an equally-deep or deeper chain for its terminal letter).
	OnDiscard func(token string)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnInvalid: func(string) {},
		OnDiscard: func(string) {},
	}
}

// WithOnInvalid registers a callback for skipped invalid tokens.
func WithOnInvalid(fn func(token string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInvalid = fn
		}
	}
}

// WithOnDiscard registers a callback for discarded valid tokens.
func WithOnDiscard(fn func(token string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// Result holds the outcome of a full scan:
//   - Total: number of tokens consumed, invalid ones included.
//   - Excluded: Total minus the length of the best chain.
//   - Chain: the best chain's tokens in root-to-leaf order.
type Result struct {
	Total    int
	Excluded int
	Chain    []string
}
