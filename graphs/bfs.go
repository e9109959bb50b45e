package graphs

import (
	"errors"
	"fmt"
)

// Unreached marks a vertex no path leads to.
const Unreached = -1

// Sentinel errors for traversal inputs.
var (
	// ErrBadOrder is returned when the vertex count is not positive.
	ErrBadOrder = errors.New("graphs: vertex count must be at least 1")

	// ErrVertexRange is returned when an edge endpoint or the source
	// vertex falls outside 1..n.
	ErrVertexRange = errors.New("graphs: vertex out of range")
)

// Edge is a directed arc between 1-indexed vertices.
type Edge struct {
	From, To int
}

// BFSDistances runs breadth-first search from source over the directed
// graph with vertices 1..n and returns the hop distance to every
// vertex; dist[i-1] belongs to vertex i and Unreached marks vertices
// no path leads to. Time and memory are O(n + len(edges)).
func BFSDistances(n int, edges []Edge, source int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrder, n)
	}
	if source < 1 || source > n {
		return nil, fmt.Errorf("%w: source %d with %d vertices", ErrVertexRange, source, n)
	}

	adjacency := make([][]int, n+1)
	for _, e := range edges {
		if e.From < 1 || e.From > n || e.To < 1 || e.To > n {
			return nil, fmt.Errorf("%w: edge %d->%d with %d vertices", ErrVertexRange, e.From, e.To, n)
		}
		adjacency[e.From] = append(adjacency[e.From], e.To)
	}

	dist := make([]int, n+1)
	for i := range dist {
		dist[i] = Unreached
	}
	dist[source] = 0

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[curr] {
			if dist[next] != Unreached {
				// Already reached along a path at most this long.
				continue
			}
			dist[next] = dist[curr] + 1
			queue = append(queue, next)
		}
	}

	return dist[1:], nil
}
