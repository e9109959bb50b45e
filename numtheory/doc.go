// Package numtheory collects the arithmetic routines shared by the
// archive tasks: an odd-only prime sieve, distinct prime factor
// counting, the extended Euclidean algorithm with Bézout coefficients,
// linear Diophantine solving, and modular fast exponentiation.
//
// ✨ Key pieces:
//   - CountPrimes / Primes — bit-packed sieve over odd numbers only,
//     halving both the work and the memory of a classic Eratosthenes run
//   - DistinctPrimeFactors / PairsWithGCDLCM — trial division against a
//     precomputed prime list, and the 2^k counting identity over the
//     distinct primes of lcm/gcd
//   - ExtendedGCD / SolveDiophantine — iterative coefficient tracking,
//     no recursion
//   - PowMod — square-and-multiply in O(log exp)
//
// All functions are pure and allocation-light; the sieve is the only
// one that allocates proportionally to its bound.
package numtheory
