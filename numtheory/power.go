package numtheory

import "errors"

// ErrZeroModulus is returned when PowMod is asked to reduce modulo 0.
var ErrZeroModulus = errors.New("numtheory: modulus must be positive")

// PowMod computes base^exp mod mod by binary exponentiation in
// O(log exp) multiplications. mod must stay below 2^32 so the
// intermediate squares fit in uint64.
func PowMod(base, exp, mod uint64) (uint64, error) {
	if mod == 0 {
		return 0, ErrZeroModulus
	}
	if mod == 1 {
		return 0, nil
	}

	result := uint64(1)
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}

	return result, nil
}
