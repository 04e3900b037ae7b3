// Package modarith implements fixed-width modular arithmetic: extended
// GCD, overflow-safe modular multiplication, modular inverse, modular
// exponentiation, and Miller-Rabin probable-primality testing. Unlike
// pkg/bigint, these routines operate directly on int64/uint64 rather
// than arbitrary-precision values.
package modarith

import (
	"math/rand/v2"
)

// ExtGCD returns (g, x, y) such that a*x + b*y = g, via the extended
// Euclidean algorithm. g carries whatever sign the iteration produces
// — it is not normalized to be non-negative — so callers that need
// |g| should take the absolute value themselves.
func ExtGCD(a, b int64) (g, x, y int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldR, oldS, oldT
}

// ModMul computes (a*b) mod m using binary doubling, avoiding the
// intermediate overflow a plain a*b would risk for inputs near the
// int64 range. m must be positive.
func ModMul(a, b, m int64) int64 {
	a = normMod(a, m)
	b = normMod(b, m)
	var result int64
	for b > 0 {
		if b&1 == 1 {
			result = addMod(result, a, m)
		}
		a = addMod(a, a, m)
		b >>= 1
	}
	return result
}

// addMod adds two values already reduced mod m, without overflowing,
// by subtracting m back out if the sum would have wrapped or exceeded
// it.
func addMod(a, b, m int64) int64 {
	// Both a and b are in [0, m) with m <= maxint64, so a+b < 2^64: it
	// always fits in uint64, but can overflow int64 when m is near
	// maxint64, hence the uint64 arithmetic.
	sum := uint64(a) + uint64(b)
	if sum >= uint64(m) {
		sum -= uint64(m)
	}
	return int64(sum)
}

// normMod reduces a into [0, m), handling negative a the way Euclidean
// modulo does (never returning a negative remainder).
func normMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ModInv returns the modular inverse of a mod m, or 0 if gcd(|a|, m)
// != 1 (no inverse exists).
func ModInv(a, m int64) int64 {
	g, x, _ := ExtGCD(a, m)
	if g != 1 && g != -1 {
		return 0
	}
	if g == -1 {
		x = -x
	}
	return normMod(x, m)
}

// ModPow computes base^exp mod m by square-and-multiply. exp must be
// non-negative; ModPow(base, 0, m) is 1 for any base, including 0,
// when m > 1. When m == 1 every result is 0.
func ModPow(base, exp, m int64) int64 {
	if m == 1 {
		return 0
	}
	result := int64(1)
	b := normMod(base, m)
	for exp > 0 {
		if exp&1 == 1 {
			result = ModMul(result, b, m)
		}
		b = ModMul(b, b, m)
		exp >>= 1
	}
	return result
}

// DefaultRounds is the default Miller-Rabin iteration count used by
// IsProbablePrime when the caller doesn't have a specific confidence
// target in mind.
const DefaultRounds = 20

// IsProbablePrime reports whether n passes k rounds of the Miller-Rabin
// test with uniformly random bases in [2, n-2]. Deterministic small
// cases (n <= 1, n == 4, n in {2,3}, even n, negative n) are handled
// directly; k <= 0 is treated as DefaultRounds.
func IsProbablePrime(n int64, k int) bool {
	if k <= 0 {
		k = DefaultRounds
	}
	switch {
	case n <= 1:
		return false
	case n == 2 || n == 3:
		return true
	case n == 4:
		return false
	case n%2 == 0:
		return false
	}

	d := n - 1
	r := 0
	for d%2 == 0 {
		d /= 2
		r++
	}

	rng := rand.New(rand.NewPCG(uint64(n), uint64(n)^0x9E3779B97F4A7C15))
	for i := 0; i < k; i++ {
		a := 2 + rng.Int64N(n-3) // uniform in [2, n-2]
		if !millerRabinRound(a, d, r, n) {
			return false
		}
	}
	return true
}

// millerRabinRound runs one Miller-Rabin witness check with base a
// against an odd n written as d*2^r + 1: compute a^d mod n, accept
// immediately on 1 or n-1, otherwise repeatedly square up to r-1 times,
// accepting on a squaring that hits n-1 and rejecting outright if a
// squaring ever hits 1 first.
func millerRabinRound(a, d int64, r int, n int64) bool {
	x := ModPow(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x = ModMul(x, x, n)
		if x == n-1 {
			return true
		}
		if x == 1 {
			return false
		}
	}
	return false
}
