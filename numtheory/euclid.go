package numtheory

import "errors"

// ErrNoSolution is returned when a linear Diophantine equation has no
// integer solutions.
var ErrNoSolution = errors.New("numtheory: equation has no integer solution")

// Bezout carries the result of the extended Euclidean algorithm:
// GCD = X*a + Y*b for the inputs a, b handed to ExtendedGCD.
type Bezout struct {
	GCD int64
	X   int64
	Y   int64
}

// ExtendedGCD runs the iterative extended Euclidean algorithm on a and
// b, tracking both coefficient sequences without recursion. The larger
// magnitude operand leads the iteration; the coefficients are swapped
// back afterwards so they always correspond to the original order.
func ExtendedGCD(a, b int64) Bezout {
	swapped := false
	if abs64(b) > abs64(a) {
		a, b = b, a
		swapped = true
	}

	xPrev, xCurr := int64(1), int64(0)
	yPrev, yCurr := int64(0), int64(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		xPrev, xCurr = xCurr, xPrev-q*xCurr
		yPrev, yCurr = yCurr, yPrev-q*yCurr
	}
	if swapped {
		xPrev, yPrev = yPrev, xPrev
	}

	return Bezout{GCD: a, X: xPrev, Y: yPrev}
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// SolveDiophantine returns one integer solution (x, y) of a*x + b*y = c,
// scaled from the Bézout coefficients. Returns ErrNoSolution when c is
// not a multiple of gcd(a, b), or when a = b = 0 with c ≠ 0.
func SolveDiophantine(a, b, c int64) (x, y int64, err error) {
	sol := ExtendedGCD(a, b)
	if sol.GCD == 0 {
		if c != 0 {
			return 0, 0, ErrNoSolution
		}

		return 0, 0, nil
	}
	if c%sol.GCD != 0 {
		return 0, 0, ErrNoSolution
	}
	multiplier := c / sol.GCD

	return sol.X * multiplier, sol.Y * multiplier, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
