// Package infoarena is a library of classic competitive-programming
// algorithms — word chains, text justification, number theory, search
// and traversal — each exposed as a small, testable Go package.
//
// 🚀 What is infoarena?
//
//	A pure-Go rework of a set of archive solutions, brought together as:
//		• Word chains: longest letter-linked token chain in one pass
//		• Text layout: greedy full justification to a fixed width
//		• Number theory: prime sieve, factorisation, extended Euclid, fast exponentiation
//		• Search: step binary search with three query modes
//		• Traversal: unweighted BFS hop distances
//
// ✨ Why this shape?
//
//   - One package per algorithm family – minimal API, clear naming
//   - Explicit state – builders own their registries, no globals
//   - Pure Go – no cgo; deterministic, single-threaded cores
//   - Extensible – hook callbacks (OnInvalid, OnDiscard…) for custom logic
//
// Under the hood, everything is organized under these subpackages:
//
//	wordchain/ — incremental chain forest, registry, selector & reconstruction
//	textwrap/  — line packing and space distribution
//	numtheory/ — sieve, factor counts, Bézout coefficients, PowMod
//	search/    — LastIndexOf, LastLessEqual, FirstGreaterEqual
//	graphs/    — BFSDistances over 1-indexed adjacency lists
//	textio/    — whitespace token source and line sink for task files
//
// Quick ASCII example:
//
//	    abba ─▸ atla ─▸ alfa
//
//	each token starts with the letter the previous one ends in.
//
// The cmd/infoarena binary wires every package to the task-file
// convention (<task>.in → <task>.out) of the original archive.
//
//	go get github.com/gabriel-vanca/infoarena
package infoarena
