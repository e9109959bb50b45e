package search

import "math/bits"

// LastLessEqual returns the largest index i with a[i] <= x, or -1 when
// every element exceeds x. a must be sorted ascending.
func LastLessEqual(a []int, x int) int {
	idx := -1
	for step := topStep(len(a)); step > 0; step >>= 1 {
		if next := idx + step; next < len(a) && a[next] <= x {
			idx = next
		}
	}

	return idx
}

// FirstGreaterEqual returns the smallest index i with a[i] >= x, or
// len(a) when every element is below x. a must be sorted ascending.
func FirstGreaterEqual(a []int, x int) int {
	idx := len(a)
	for step := topStep(len(a)); step > 0; step >>= 1 {
		if next := idx - step; next >= 0 && a[next] >= x {
			idx = next
		}
	}

	return idx
}

// LastIndexOf returns the index of the last occurrence of x in sorted
// a, or -1 when x is absent.
func LastIndexOf(a []int, x int) int {
	idx := LastLessEqual(a, x)
	if idx < 0 || a[idx] != x {
		return -1
	}

	return idx
}

// topStep is the largest power of two covering n positions, so the
// first jump can reach any index from either end.
func topStep(n int) int {
	if n == 0 {
		return 0
	}

	return 1 << bits.Len(uint(n))
}
