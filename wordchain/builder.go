package wordchain

// Builder — incremental longest word-chain construction
//
// Description:
//
//	The builder consumes tokens strictly in input order and maintains a
//	registry: for each terminal letter, the deepest chain node confirmed
//	to end in that letter. New tokens extend the registered chain for
//	their initial letter when one exists, or start a new root otherwise.
//
// Algorithm Outline (per token w):
//  1. Validate: skip w when either boundary rune is not a letter.
//  2. Attach: p = registry[first(w)]. If p exists and already has a
//     child ending in last(w), w is a duplicate continuation — drop it
//     ("earlier token wins"). Otherwise link a new node under p.
//     Without p the node becomes a root candidate of depth 1.
//  3. Resolve: compare the new node against registry[last(w)].
//     Strictly deeper (or no incumbent) — the node takes the slot; a
//     shallower incumbent is overwritten, not destroyed, and survives
//     as an ancestor while its children map holds descendants.
//     Not deeper — the node is superseded: unlinked from its parent and
//     left unreferenced. The registry does not change.
//
// Complexity:
//
//	Time   = O(n) over n tokens
//	Memory = O(live nodes)
//
// No step can fail: invalid tokens surface through OnInvalid, dropped
// candidates through OnDiscard, and the scan always terminates after
// consuming every token exactly once.
type Builder struct {
	opts     Options
	registry map[rune]*Node
	total    int
}

// NewBuilder returns an empty Builder, applying any number of
// functional Options. Each Builder owns its registry, so tests and
// concurrent callers construct one per input sequence.
func NewBuilder(opts ...Option) *Builder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{
		opts:     o,
		registry: make(map[rune]*Node),
	}
}

// Process consumes one token. Tokens must arrive in input order; no
// token is revisited once consumed.
func (b *Builder) Process(token string) {
	b.total++

	first, last, ok := boundaryRunes(token)
	if !ok {
		b.opts.OnInvalid(token)
		return
	}

	// Attachment: extend the deepest chain ending in the initial letter,
	// or start a new root when none exists yet.
	node := &Node{token: token, depth: 1}
	if parent, found := b.registry[first]; found {
		if parent.Child(last) != nil {
			// An earlier continuation already claimed this slot.
			b.opts.OnDiscard(token)
			return
		}
		node.parent = parent
		node.depth = parent.depth + 1
		parent.attach(last, node)
	}

	// Resolution: only a strictly deeper chain may claim the registry
	// slot for the terminal letter.
	if incumbent, found := b.registry[last]; found && node.depth <= incumbent.depth {
		if node.parent != nil {
			node.parent.detach(last)
		}
		b.opts.OnDiscard(token)

		return
	}
	b.registry[last] = node
}

// ProcessAll consumes tokens in order.
func (b *Builder) ProcessAll(tokens []string) {
	for _, tok := range tokens {
		b.Process(tok)
	}
}

// Total returns the number of tokens consumed so far, invalid ones
// included.
func (b *Builder) Total() int { return b.total }
