// Package graphs holds the unweighted traversal routines of the
// archive: breadth-first search over a directed adjacency list with
// 1-indexed vertices, returning hop distances from a source vertex.
package graphs
