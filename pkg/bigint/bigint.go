// Package bigint implements BigInt: a signed arbitrary-precision
// integer built from a sign flag and a limb.Vector magnitude. All
// arithmetic operations are pure — they return a new value and never
// mutate an operand — except the named Inc/Dec forms, which mutate
// their receiver in place the way a machine increment would.
package bigint

import (
	"errors"
	"fmt"

	"github.com/hun756/biginteger/pkg/limb"
	"github.com/hun756/biginteger/pkg/numfmt"
)

// ErrDivideByZero is returned by Div and Mod (and DivMod) when the
// divisor is zero.
var ErrDivideByZero = errors.New("bigint: division by zero")

// BigInt is a signed arbitrary-precision integer: a sign flag paired
// with a normalized limb.Vector magnitude. The zero value is not a
// valid BigInt; use Zero, FromInt64, or Parse.
//
// Invariant: when mag represents zero, neg is always false — there is
// no negative zero.
type BigInt struct {
	neg bool
	mag limb.Vector
}

// Zero returns the BigInt value 0.
func Zero() BigInt {
	return BigInt{mag: limb.Zero()}
}

// FromInt64 converts a machine integer to a BigInt.
func FromInt64(x int64) BigInt {
	if x == 0 {
		return Zero()
	}
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	return BigInt{neg: neg, mag: limb.FromUint64(u)}
}

// FromUint64 converts an unsigned machine integer to a BigInt.
func FromUint64(x uint64) BigInt {
	return BigInt{mag: limb.FromUint64(x)}
}

// Parse parses s as a signed integer, base-detecting from its prefix
// when base is 0. See numfmt.Parse for the exact grammar, including
// the lenient non-digit skipping preserved for bases <= 10.
func Parse(s string, base int) (BigInt, error) {
	p, err := numfmt.Parse(s, base)
	if err != nil {
		return BigInt{}, err
	}
	return BigInt{neg: p.Negative, mag: p.Magnitude}, nil
}

// String renders v in base 10, the BigInt default.
func (v BigInt) String() string {
	s, _ := numfmt.Render(v.mag, v.neg, 10)
	return s
}

// ToBase renders v in the given base (2, 8, 10, or 16).
func (v BigInt) ToBase(base int) (string, error) {
	return numfmt.Render(v.mag, v.neg, base)
}

// Sign returns -1, 0, or 1 according to v's sign.
func (v BigInt) Sign() int {
	if v.mag.IsZero() {
		return 0
	}
	if v.neg {
		return -1
	}
	return 1
}

// IsZero reports whether v is exactly 0.
func (v BigInt) IsZero() bool {
	return v.mag.IsZero()
}

// Bytes exports the magnitude's limb bytes, little-endian, one limb
// after another (low limb first, each limb's bytes low-byte first).
// The sign is dropped; callers that need it should consult Sign
// separately.
func (v BigInt) Bytes() []byte {
	limbs := v.mag.Limbs()
	out := make([]byte, 0, 4*len(limbs))
	for _, l := range limbs {
		out = append(out, byte(l), byte(l>>8), byte(l>>16), byte(l>>24))
	}
	return out
}

// Cmp compares v and o, returning -1, 0, or 1.
func (v BigInt) Cmp(o BigInt) int {
	if v.neg != o.neg {
		if v.neg {
			return -1
		}
		return 1
	}
	c := limb.Compare(v.mag, o.mag)
	if v.neg {
		return -c
	}
	return c
}

// Lt, Le, Gt, Ge, Eq, Ne are the named comparison operators built on
// top of Cmp, since Go has no operator overloading.
func (v BigInt) Lt(o BigInt) bool { return v.Cmp(o) < 0 }
func (v BigInt) Le(o BigInt) bool { return v.Cmp(o) <= 0 }
func (v BigInt) Gt(o BigInt) bool { return v.Cmp(o) > 0 }
func (v BigInt) Ge(o BigInt) bool { return v.Cmp(o) >= 0 }
func (v BigInt) Eq(o BigInt) bool { return v.Cmp(o) == 0 }
func (v BigInt) Ne(o BigInt) bool { return v.Cmp(o) != 0 }

// Neg returns -v.
func (v BigInt) Neg() BigInt {
	if v.mag.IsZero() {
		return v
	}
	return BigInt{neg: !v.neg, mag: v.mag}
}

// Add returns v + o. Same-sign operands add magnitudes with carry;
// opposite-sign operands subtract the smaller magnitude from the
// larger, taking the larger operand's sign.
func (v BigInt) Add(o BigInt) BigInt {
	if v.neg == o.neg {
		return BigInt{neg: v.neg, mag: addMag(v.mag, o.mag)}.normalized()
	}
	switch limb.Compare(v.mag, o.mag) {
	case 0:
		return Zero()
	case 1:
		return BigInt{neg: v.neg, mag: subMag(v.mag, o.mag)}.normalized()
	default:
		return BigInt{neg: o.neg, mag: subMag(o.mag, v.mag)}.normalized()
	}
}

// Sub returns v - o, implemented as v + (-o).
func (v BigInt) Sub(o BigInt) BigInt {
	return v.Add(o.Neg())
}

// Mul returns v * o via schoolbook multiplication with a 64-bit
// accumulator per partial product.
func (v BigInt) Mul(o BigInt) BigInt {
	if v.mag.IsZero() || o.mag.IsZero() {
		return Zero()
	}
	a, b := v.mag.Limbs(), o.mag.Limbs()
	out := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		var carry uint64
		for j, bj := range b {
			cur := uint64(out[i+j]) + uint64(ai)*uint64(bj) + carry
			out[i+j] = uint32(cur)
			carry = cur >> 32
		}
		k := i + len(b)
		for carry != 0 {
			cur := uint64(out[k]) + carry
			out[k] = uint32(cur)
			carry = cur >> 32
			k++
		}
	}
	return BigInt{neg: v.neg != o.neg, mag: limb.New(out)}.normalized()
}

// DivMod returns (v/o, v%o) via long division of magnitudes: at every
// step the largest multiple of the divisor fitting the current
// dividend prefix is found and subtracted. Quotient sign is the XOR of
// operand signs; remainder takes the dividend's sign. Fails with
// ErrDivideByZero when o is 0.
func (v BigInt) DivMod(o BigInt) (BigInt, BigInt, error) {
	if o.mag.IsZero() {
		return BigInt{}, BigInt{}, fmt.Errorf("%w", ErrDivideByZero)
	}
	if v.mag.IsZero() {
		return Zero(), Zero(), nil
	}

	qMag, rMag := divModMag(v.mag, o.mag)
	q := BigInt{neg: v.neg != o.neg, mag: qMag}.normalized()
	r := BigInt{neg: v.neg, mag: rMag}.normalized()
	return q, r, nil
}

// Div returns v / o (truncated toward zero).
func (v BigInt) Div(o BigInt) (BigInt, error) {
	q, _, err := v.DivMod(o)
	return q, err
}

// Mod returns v % o, taking the sign of the dividend.
func (v BigInt) Mod(o BigInt) (BigInt, error) {
	_, r, err := v.DivMod(o)
	return r, err
}

// Inc mutates v to v+1 and returns the new value (pre-increment).
func (v *BigInt) Inc() BigInt {
	*v = v.Add(FromInt64(1))
	return *v
}

// PostInc mutates v to v+1 and returns the prior value (post-increment).
func (v *BigInt) PostInc() BigInt {
	prior := *v
	v.Inc()
	return prior
}

// Dec mutates v to v-1 and returns the new value (pre-decrement).
func (v *BigInt) Dec() BigInt {
	*v = v.Sub(FromInt64(1))
	return *v
}

// PostDec mutates v to v-1 and returns the prior value (post-decrement).
func (v *BigInt) PostDec() BigInt {
	prior := *v
	v.Dec()
	return prior
}

// normalized collapses negative zero: any BigInt whose magnitude is
// zero must carry neg=false.
func (v BigInt) normalized() BigInt {
	if v.mag.IsZero() {
		v.neg = false
	}
	return v
}

// addMag adds two magnitudes limb-by-limb with carry.
func addMag(a, b limb.Vector) limb.Vector {
	al, bl := a.Limbs(), b.Limbs()
	if len(al) < len(bl) {
		al, bl = bl, al
	}
	out := make([]uint32, len(al))
	var carry uint64
	for i, x := range al {
		var y uint32
		if i < len(bl) {
			y = bl[i]
		}
		cur := uint64(x) + uint64(y) + carry
		out[i] = uint32(cur)
		carry = cur >> 32
	}
	if carry != 0 {
		out = append(out, uint32(carry))
	}
	return limb.New(out)
}

// subMag subtracts the smaller magnitude b from the larger magnitude
// a (caller guarantees a >= b) with borrow.
func subMag(a, b limb.Vector) limb.Vector {
	al, bl := a.Limbs(), b.Limbs()
	out := make([]uint32, len(al))
	var borrow int64
	for i, x := range al {
		var y uint32
		if i < len(bl) {
			y = bl[i]
		}
		cur := int64(x) - int64(y) - borrow
		if cur < 0 {
			cur += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(cur)
	}
	return limb.New(out)
}

// divModMag implements binary restoring division of magnitude a by
// magnitude b, returning (quotient, remainder) magnitudes: for each
// bit of the quotient from the top down, shift the running remainder
// left by one, drop in the next bit of the dividend, and subtract b if
// it still fits.
func divModMag(a, b limb.Vector) (limb.Vector, limb.Vector) {
	if limb.Compare(a, b) < 0 {
		return limb.Zero(), a.Clone()
	}

	nbits := a.Len() * 32
	quotient := make([]uint32, a.Len())
	remainder := limb.Zero()

	for i := nbits - 1; i >= 0; i-- {
		remainder = shiftLeft1(remainder)
		if bitAt(a, i) {
			remainder = setBit0(remainder)
		}
		if limb.Compare(remainder, b) >= 0 {
			remainder = subMag(remainder, b)
			quotient[i/32] |= 1 << uint(i%32)
		}
	}
	return limb.New(quotient), remainder
}

func bitAt(v limb.Vector, i int) bool {
	limbIdx := i / 32
	if limbIdx >= v.Len() {
		return false
	}
	return v.At(limbIdx)&(1<<uint(i%32)) != 0
}

func shiftLeft1(v limb.Vector) limb.Vector {
	limbs := v.Limbs()
	out := make([]uint32, len(limbs)+1)
	var carry uint32
	for i, l := range limbs {
		out[i] = l<<1 | carry
		carry = l >> 31
	}
	out[len(limbs)] = carry
	return limb.New(out)
}

func setBit0(v limb.Vector) limb.Vector {
	limbs := append([]uint32(nil), v.Limbs()...)
	limbs[0] |= 1
	return limb.New(limbs)
}
