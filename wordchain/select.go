package wordchain

import "sort"

// BestLeaf filters the registry to leaf entries and returns the deepest
// one. A registered node with children cannot terminate the longest
// chain, because a strictly longer chain runs through its child.
//
// Ties on depth resolve to the smallest terminal letter; the registry
// keys are iterated in sorted order, so the result is deterministic for
// a fixed input sequence.
//
// Returns ErrNoChain when no leaf entry exists, which happens iff zero
// valid tokens were processed.
func (b *Builder) BestLeaf() (*Node, error) {
	letters := make([]rune, 0, len(b.registry))
	for r := range b.registry {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	var best *Node
	for _, r := range letters {
		node := b.registry[r]
		if !node.IsLeaf() {
			continue
		}
		if best == nil || node.depth > best.depth {
			best = node
		}
	}
	if best == nil {
		return nil, ErrNoChain
	}

	return best, nil
}

// Reconstruct walks parent links from leaf to its root and returns the
// chain tokens in root-to-leaf order. Always terminates in exactly
// leaf.Depth() steps.
func Reconstruct(leaf *Node) []string {
	chain := make([]string, leaf.depth)
	for n, i := leaf, leaf.depth-1; n != nil; n, i = n.parent, i-1 {
		chain[i] = n.token
	}

	return chain
}

// Result selects the best leaf, reconstructs its chain, and packages
// the three output values of the scan. Returns ErrNoChain when no
// valid token was processed.
func (b *Builder) Result() (*Result, error) {
	leaf, err := b.BestLeaf()
	if err != nil {
		return nil, err
	}
	chain := Reconstruct(leaf)

	return &Result{
		Total:    b.total,
		Excluded: b.total - len(chain),
		Chain:    chain,
	}, nil
}

// Longest runs the whole pipeline over tokens with a fresh Builder.
func Longest(tokens []string, opts ...Option) (*Result, error) {
	b := NewBuilder(opts...)
	b.ProcessAll(tokens)

	return b.Result()
}
