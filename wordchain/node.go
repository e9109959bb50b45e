package wordchain

import (
	"unicode"
	"unicode/utf8"
)

// Node is one token placed at a specific position in a candidate chain.
// A nil parent marks a root (depth 1). The children map holds at most
// one child per terminal letter; that map is the owning link downward,
// so unlinking a child from it releases the child for collection while
// the parent chain above stays reachable through immutable parent
// pointers.
type Node struct {
	token    string
	parent   *Node
	depth    int
	children map[rune]*Node
}

// Token returns the original token text.
func (n *Node) Token() string { return n.token }

// Parent returns the predecessor node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Depth is the number of tokens in the chain from root to n, inclusive.
func (n *Node) Depth() int { return n.depth }

// IsRoot reports whether n has no predecessor.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Child returns n's continuation ending in terminal, or nil.
func (n *Node) Child(terminal rune) *Node { return n.children[terminal] }

// attach links child under n keyed by its terminal letter.
// The caller guarantees the slot is free.
func (n *Node) attach(terminal rune, child *Node) {
	if n.children == nil {
		n.children = make(map[rune]*Node, 1)
	}
	n.children[terminal] = child
}

// detach frees the child slot for terminal, undoing attach.
func (n *Node) detach(terminal rune) {
	delete(n.children, terminal)
}

// boundaryRunes extracts the first and last rune of token, normalized
// to lower case. ok is false when the token is empty or either boundary
// rune is not a letter.
func boundaryRunes(token string) (first, last rune, ok bool) {
	first, _ = utf8.DecodeRuneInString(token)
	last, _ = utf8.DecodeLastRuneInString(token)
	if first == utf8.RuneError || last == utf8.RuneError {
		return 0, 0, false
	}
	if !unicode.IsLetter(first) || !unicode.IsLetter(last) {
		return 0, 0, false
	}

	return unicode.ToLower(first), unicode.ToLower(last), true
}
