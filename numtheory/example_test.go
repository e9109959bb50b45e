package numtheory_test

import (
	"fmt"

	"github.com/gabriel-vanca/infoarena/numtheory"
)

// ExampleCountPrimes counts the primes up to two million, the bound of
// the original sieve task.
func ExampleCountPrimes() {
	count, err := numtheory.CountPrimes(2_000_000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(count)
	// Output:
	// 148933
}

// ExamplePairsWithGCDLCM counts the pairs sharing gcd 2 and lcm 12:
// (2, 12), (4, 6), (6, 4) and (12, 2).
func ExamplePairsWithGCDLCM() {
	primes, err := numtheory.Primes(10_100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(numtheory.PairsWithGCDLCM(2, 12, primes))
	// Output:
	// 4
}

// ExampleSolveDiophantine finds one integer solution of 3x + 5y = 7.
func ExampleSolveDiophantine() {
	x, y, err := numtheory.SolveDiophantine(3, 5, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(3*x + 5*y)
	// Output:
	// 7
}
