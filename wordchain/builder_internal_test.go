package wordchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkForest walks every node reachable from the registry and verifies
// the structural invariants: a child is keyed by its own terminal
// letter, points back at its parent, and sits exactly one level deeper.
// Map keys are unique by construction, so a parent can never hold two
// children with the same terminal letter.
func checkForest(t *testing.T, b *Builder) {
	t.Helper()

	seen := make(map[*Node]bool)
	var walk func(n *Node)
	walk = func(n *Node) {
		if seen[n] {
			return
		}
		seen[n] = true

		if n.parent == nil {
			assert.Equal(t, 1, n.depth, "root %q must have depth 1", n.token)
		} else {
			assert.Equal(t, n.parent.depth+1, n.depth, "node %q depth mismatch", n.token)
		}
		for terminal, child := range n.children {
			_, last, ok := boundaryRunes(child.token)
			require.True(t, ok)
			assert.Equal(t, last, terminal, "child %q keyed by wrong letter", child.token)
			assert.Same(t, n, child.parent, "child %q has wrong parent", child.token)
			walk(child)
		}
		// ancestors stay reachable through immutable parent links
		if n.parent != nil {
			walk(n.parent)
		}
	}

	for terminal, node := range b.registry {
		_, last, ok := boundaryRunes(node.token)
		require.True(t, ok)
		assert.Equal(t, last, terminal, "registry entry %q under wrong letter", node.token)
		walk(node)
	}
}

func TestForestInvariants(t *testing.T) {
	inputs := [][]string{
		{"ab", "bc", "cd", "de"},
		{"aa", "ab", "ac", "ba", "ca", "ad", "da"},
		{"abba", "atla", "alla", "omega", "alfa", "a1", "dog"},
		{"x", "xx", "xy", "yx", "xz", "zx", "xyx"},
	}
	for _, tokens := range inputs {
		b := NewBuilder()
		b.ProcessAll(tokens)
		checkForest(t, b)
	}
}

// TestSuperseded_ChildSlotFreed verifies step-4 cleanup: a superseded
// candidate must not linger in its parent's children map.
func TestSuperseded_ChildSlotFreed(t *testing.T) {
	b := NewBuilder()
	// "ca" attaches under "ac" but ties with "ba" (both depth 3) and is
	// unlinked again; "ac" must end up a leaf.
	b.ProcessAll([]string{"aa", "ab", "ac", "ba", "ca"})

	ac := b.registry['c']
	require.NotNil(t, ac)
	assert.Equal(t, "ac", ac.token)
	assert.True(t, ac.IsLeaf(), "superseded child must be detached from %q", ac.token)
	checkForest(t, b)
}

// TestOverwritten_AncestorSurvives verifies that a replaced registry
// entry stays alive as an interior node of the deeper chain.
func TestOverwritten_AncestorSurvives(t *testing.T) {
	b := NewBuilder()
	b.ProcessAll([]string{"abba", "atla"})

	atla := b.registry['a']
	require.NotNil(t, atla)
	assert.Equal(t, "atla", atla.token)
	require.False(t, atla.IsRoot())
	assert.Equal(t, "abba", atla.Parent().Token())
	assert.Same(t, atla, atla.Parent().Child('a'))
}

func TestBoundaryRunes(t *testing.T) {
	cases := []struct {
		token       string
		first, last rune
		ok          bool
	}{
		{"dog", 'd', 'g', true},
		{"A", 'a', 'a', true},
		{"Ωmega", 'ω', 'a', true},
		{"a1", 0, 0, false},
		{"1b", 0, 0, false},
		{"", 0, 0, false},
		{"-", 0, 0, false},
		{"x-y", 'x', 'y', true},
	}
	for _, tc := range cases {
		first, last, ok := boundaryRunes(tc.token)
		assert.Equal(t, tc.ok, ok, "token %q", tc.token)
		if tc.ok {
			assert.Equal(t, tc.first, first, "token %q", tc.token)
			assert.Equal(t, tc.last, last, "token %q", tc.token)
		}
	}
}
