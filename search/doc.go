// Package search answers positional queries over a sorted int slice
// with a power-of-two step descent: instead of narrowing an interval,
// the index jumps forward (or backward) by halving strides seeded from
// the bit length of the slice, which keeps every query branch-light
// and exactly O(log n).
//
// Three query modes are provided, matching the archive task:
//   - LastIndexOf — last occurrence of a value, -1 when absent
//   - LastLessEqual — last index holding a value ≤ x
//   - FirstGreaterEqual — first index holding a value ≥ x
package search
