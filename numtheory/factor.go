package numtheory

// DistinctPrimeFactors counts the distinct primes dividing n by trial
// division. The primes list needs to cover √n; any larger leftover
// factor is itself prime and counted once. n < 2 yields 0.
func DistinctPrimeFactors(n int, primes []int) int {
	if n < 2 {
		return 0
	}

	count := 0
	if n%2 == 0 {
		count++
		for n%2 == 0 {
			n /= 2
		}
	}
	for _, p := range primes {
		if n == 1 || p*p > n {
			break
		}
		if n%p == 0 {
			count++
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		count++
	}

	return count
}

// PairsWithGCDLCM returns how many unordered pairs of positive integers
// have exactly the given gcd and lcm. Each distinct prime of lcm/gcd
// may carry its full exponent on either side of the pair, so the count
// is 2^k over k distinct primes (and 1 when lcm == gcd). Values below
// 2 and incompatible pairs (lcm not a multiple of gcd) yield 0.
func PairsWithGCDLCM(gcd, lcm int, primes []int) uint64 {
	if lcm == gcd {
		return 1
	}
	if gcd > lcm {
		gcd, lcm = lcm, gcd
	}
	if gcd <= 1 || lcm <= 1 {
		return 0
	}
	if lcm%gcd != 0 {
		return 0
	}

	return 1 << DistinctPrimeFactors(lcm/gcd, primes)
}
