package numtheory

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrSieveBound is returned when a sieve bound is below 2.
var ErrSieveBound = errors.New("numtheory: sieve bound must be at least 2")

// oddSieve marks odd composites up to n. Index i stands for the odd
// number 2i+1; a set bit means composite. Index 0 (the number 1) is
// left clear and reinterpreted as the prime 2 by the callers, which is
// why counts come out right without sieving evens at all.
type oddSieve struct {
	words []uint64
	half  int // indices in use: 0..half-1 cover the odds ≤ n
}

func newOddSieve(n int) oddSieve {
	half := (n + 1) / 2
	s := oddSieve{
		words: make([]uint64, (half+63)/64),
		half:  half,
	}

	// Composites start at (2i+1)^2 = 2(2i^2+2i)+1 and step by 2(2i+1).
	limit := int(math.Ceil(math.Sqrt(float64(n)))) / 2
	for i := 1; i <= limit; i++ {
		if s.marked(i) {
			continue
		}
		for j := 2 * i * (i + 1); j < half; j += 2*i + 1 {
			s.mark(j)
		}
	}

	return s
}

func (s oddSieve) mark(i int)        { s.words[i>>6] |= 1 << (uint(i) & 63) }
func (s oddSieve) marked(i int) bool { return s.words[i>>6]&(1<<(uint(i)&63)) != 0 }

func (s oddSieve) count() int {
	clear := 0
	for _, w := range s.words {
		clear += 64 - bits.OnesCount64(w)
	}
	// Trailing bits of the last word are outside 0..half-1.
	clear -= len(s.words)*64 - s.half

	return clear
}

// CountPrimes returns the number of primes ≤ n.
// Time O(n log log n), memory n/16 bytes.
func CountPrimes(n int) (int, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrSieveBound, n)
	}

	return newOddSieve(n).count(), nil
}

// Primes returns every prime ≤ n in increasing order.
func Primes(n int) ([]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSieveBound, n)
	}

	s := newOddSieve(n)
	primes := make([]int, 1, s.count())
	primes[0] = 2
	for i := 1; i < s.half; i++ {
		if !s.marked(i) {
			primes = append(primes, 2*i+1)
		}
	}

	return primes, nil
}
