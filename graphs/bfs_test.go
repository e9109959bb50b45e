package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriel-vanca/infoarena/graphs"
)

func TestBFSDistances_Errors(t *testing.T) {
	_, err := graphs.BFSDistances(0, nil, 1)
	assert.ErrorIs(t, err, graphs.ErrBadOrder)

	_, err = graphs.BFSDistances(3, nil, 4)
	assert.ErrorIs(t, err, graphs.ErrVertexRange)

	_, err = graphs.BFSDistances(3, []graphs.Edge{{From: 1, To: 9}}, 1)
	assert.ErrorIs(t, err, graphs.ErrVertexRange)
}

func TestBFSDistances_Chain(t *testing.T) {
	edges := []graphs.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}
	dist, err := graphs.BFSDistances(4, edges, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, dist)
}

func TestBFSDistances_DirectionMatters(t *testing.T) {
	edges := []graphs.Edge{{From: 1, To: 2}, {From: 2, To: 3}}
	dist, err := graphs.BFSDistances(3, edges, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{graphs.Unreached, graphs.Unreached, 0}, dist)
}

func TestBFSDistances_ShortestOfTwoRoutes(t *testing.T) {
	// 1→2→3→4→5 and the shortcut 1→6→5
	edges := []graphs.Edge{
		{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 5},
		{From: 1, To: 6}, {From: 6, To: 5},
	}
	dist, err := graphs.BFSDistances(6, edges, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 2, 1}, dist)
}

func TestBFSDistances_SelfLoopAndCycle(t *testing.T) {
	edges := []graphs.Edge{
		{From: 1, To: 1}, {From: 1, To: 2}, {From: 2, To: 1}, {From: 2, To: 3},
	}
	dist, err := graphs.BFSDistances(3, edges, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, dist)
}
