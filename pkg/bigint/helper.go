package bigint

// Abs returns the absolute value of a.
func Abs(a BigInt) BigInt {
	return BigInt{neg: false, mag: a.mag}
}

// GCD returns the greatest common divisor of a and b as a
// non-negative BigInt, via the Euclidean algorithm on magnitudes.
func GCD(a, b BigInt) BigInt {
	x, y := Abs(a), Abs(b)
	for !y.IsZero() {
		_, r, _ := x.DivMod(y)
		x, y = y, r
	}
	return x
}

// Pow returns a raised to the non-negative integer power n by
// repeated squaring. Pow(a, 0) is 1 for any a, including 0.
func Pow(a BigInt, n uint64) BigInt {
	result := FromInt64(1)
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}
