// Package numfmt implements BaseCodec: the bidirectional mapping
// between signed decimal/octal/binary/hex strings and the little-endian
// limb.Vector magnitude a BigInt wraps.
package numfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hun756/biginteger/pkg/hexdigits"
	"github.com/hun756/biginteger/pkg/limb"
)

// Sentinel error kinds. Wrapped with fmt.Errorf for context and
// checkable with errors.Is.
var (
	ErrInvalidDigit = errors.New("numfmt: invalid digit for base")
	ErrInvalidFormat = errors.New("numfmt: no digits after prefix/sign stripping")
	ErrOutOfRange   = errors.New("numfmt: base out of range")
)

// supportedBase reports whether base is one numfmt can parse/render.
func supportedBase(base int) bool {
	switch base {
	case 2, 8, 10, 16:
		return true
	}
	return false
}

// Parsed holds the result of Parse: the magnitude and sign, separately,
// since limb.Vector carries no sign of its own.
type Parsed struct {
	Magnitude limb.Vector
	Negative  bool
}

// Parse parses s as a signed integer. If base is 0, the base is
// detected from s's prefix (0x/0X -> 16, 0b/0B -> 2, a leading 0
// followed by another digit -> 8, otherwise 10). If base is nonzero,
// it must be one of 2, 8, 10, 16, and takes precedence over any
// prefix — a prefix matching the supplied base is still stripped.
//
// Lenient by default: for bases 2, 8, 10, any character that is not a
// hex digit is treated as a separator and skipped (spaces, commas,
// dots...); a hex digit whose value is not below the active base (e.g.
// 'A' in base 10, '2' in base 2) is an InvalidDigit error, not skipped.
// Base 16 does not skip — any
// non-hex character is a hard InvalidDigit error, because base 16 is
// parsed by direct nibble-chunking (see parseHexDigits) rather than the
// generic multiply-accumulate loop the other bases share. ParseStrict
// rejects uniformly for callers who want that behavior for every base
// instead.
func Parse(s string, base int) (Parsed, error) {
	return parse(s, base, false)
}

// ParseStrict behaves like Parse but rejects any non-digit character
// for every base, including separators Parse would silently skip.
func ParseStrict(s string, base int) (Parsed, error) {
	return parse(s, base, true)
}

func parse(s string, base int, strict bool) (Parsed, error) {
	if base != 0 && !supportedBase(base) {
		return Parsed{}, fmt.Errorf("%w: %d", ErrOutOfRange, base)
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	detected, rest := stripPrefix(s, base)
	if base == 0 {
		base = detected
	}

	if rest == "" {
		return Parsed{Magnitude: limb.Zero(), Negative: false}, nil
	}

	var mag limb.Vector
	var err error
	if base == 16 {
		mag, err = parseHexDigits(rest, strict)
	} else {
		mag, err = parseGenericDigits(rest, base, strict)
	}
	if err != nil {
		return Parsed{}, err
	}

	if mag.IsZero() {
		negative = false
	}
	return Parsed{Magnitude: mag, Negative: negative}, nil
}

// stripPrefix consumes a base prefix from s. If explicitBase is 0,
// the prefix also determines the base (auto-detect); otherwise only a
// prefix matching explicitBase is stripped. Returns the detected base
// (meaningful only when explicitBase was 0) and the remaining digits.
func stripPrefix(s string, explicitBase int) (int, string) {
	hasPrefix := func(p string) bool {
		return len(s) >= len(p) && strings.EqualFold(s[:len(p)], p)
	}

	switch explicitBase {
	case 16:
		if hasPrefix("0x") {
			return 16, s[2:]
		}
		return 16, s
	case 2:
		if hasPrefix("0b") {
			return 2, s[2:]
		}
		return 2, s
	case 8:
		if len(s) >= 2 && s[0] == '0' && isDecimalDigit(s[1]) {
			return 8, s[1:]
		}
		if s == "0" {
			return 8, ""
		}
		return 8, s
	case 10:
		return 10, s
	default: // auto-detect
		switch {
		case hasPrefix("0x"):
			return 16, s[2:]
		case hasPrefix("0b"):
			return 2, s[2:]
		case len(s) >= 2 && s[0] == '0' && isDecimalDigit(s[1]):
			return 8, s[1:]
		case s == "0":
			return 10, ""
		default:
			return 10, s
		}
	}
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseGenericDigits implements the multiply-by-base, add-digit
// accumulation algorithm for bases 2, 8, 10, operating directly on the
// little-endian uint32-limb representation.
func parseGenericDigits(s string, base int, strict bool) (limb.Vector, error) {
	acc := []uint32{0}
	sawDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		nib := hexdigits.CharToNibble(c)
		if nib == hexdigits.InvalidNibble {
			if strict {
				return limb.Vector{}, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
			}
			continue // separator-like: lenient skip
		}
		if int(nib) >= base {
			return limb.Vector{}, fmt.Errorf("%w: %q in base %d", ErrInvalidDigit, c, base)
		}
		sawDigit = true
		acc = mulSmall(acc, uint32(base))
		acc = addSmall(acc, uint32(nib))
	}
	if !sawDigit {
		return limb.Zero(), nil
	}
	return limb.New(acc), nil
}

// parseHexDigits implements the direct nibble-chunking algorithm for
// base 16: chunk the hex string from the right into groups of 8
// characters, the leftmost (possibly shorter) group becomes the top
// limb. Chunks are stored in the order they are taken, so element 0 is
// least-significant without a separate reversal. Any non-hex
// character is a hard error — base 16 never skips separators, unlike
// the other three bases.
func parseHexDigits(s string, strict bool) (limb.Vector, error) {
	_ = strict // base16 is always strict about digit validity
	for i := 0; i < len(s); i++ {
		if !hexdigits.IsHexDigit(s[i]) {
			return limb.Vector{}, fmt.Errorf("%w: %q", ErrInvalidDigit, s[i])
		}
	}
	if s == "" {
		return limb.Zero(), nil
	}

	n := len(s)
	numLimbs := (n + 7) / 8
	limbs := make([]uint32, numLimbs)
	// Walk the string from the right in 8-character chunks; the first
	// chunk we take is least-significant (limbs[0]).
	pos := n
	for i := 0; i < numLimbs; i++ {
		start := pos - 8
		if start < 0 {
			start = 0
		}
		chunk := s[start:pos]
		var v uint32
		for j := 0; j < len(chunk); j++ {
			v = v<<4 | uint32(hexdigits.CharToNibble(chunk[j]))
		}
		limbs[i] = v
		pos = start
	}
	return limb.New(limbs), nil
}

// mulSmall multiplies the little-endian uint32 magnitude acc by a
// small factor (< 2^32), returning a new slice (not yet normalized).
func mulSmall(acc []uint32, factor uint32) []uint32 {
	carry := uint64(0)
	out := make([]uint32, len(acc))
	for i, limb := range acc {
		cur := uint64(limb)*uint64(factor) + carry
		out[i] = uint32(cur)
		carry = cur >> 32
	}
	for carry != 0 {
		out = append(out, uint32(carry))
		carry >>= 32
	}
	return out
}

// addSmall adds a small value (< 2^32) to the little-endian uint32
// magnitude acc, returning a new slice (not yet normalized).
func addSmall(acc []uint32, value uint32) []uint32 {
	out := append([]uint32(nil), acc...)
	carry := uint64(value)
	for i := 0; carry != 0; i++ {
		if i == len(out) {
			out = append(out, 0)
		}
		cur := uint64(out[i]) + carry
		out[i] = uint32(cur)
		carry = cur >> 32
	}
	return out
}

// divSmall divides the little-endian uint32 magnitude v by a small
// divisor (< 2^32), returning the quotient (not yet normalized) and
// the remainder. Used by Render for bases 2, 8, 10.
func divSmall(v limb.Vector, divisor uint32) ([]uint32, uint32) {
	n := v.Len()
	out := make([]uint32, n)
	var rem uint64
	for i := n - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(v.At(i))
		out[i] = uint32(cur / uint64(divisor))
		rem = cur % uint64(divisor)
	}
	return out, uint32(rem)
}

// Render renders a magnitude/sign pair in the given base: a leading
// '-' for negatives, a base-specific prefix, and canonical zero forms
// ("0", "00", "0x0", "0b0").
func Render(mag limb.Vector, negative bool, base int) (string, error) {
	if !supportedBase(base) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, base)
	}
	if mag.IsZero() {
		switch base {
		case 16:
			return "0x0", nil
		case 8:
			return "00", nil
		case 2:
			return "0b0", nil
		default:
			return "0", nil
		}
	}

	var body string
	if base == 16 {
		body = renderHex(mag)
	} else {
		body = renderGeneric(mag, base)
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	switch base {
	case 16:
		sb.WriteString("0x")
	case 8:
		sb.WriteByte('0')
	case 2:
		sb.WriteString("0b")
	}
	sb.WriteString(body)
	return sb.String(), nil
}

// renderGeneric implements repeated division by the target base,
// emitting remainders least-significant-digit-first and reversing.
func renderGeneric(mag limb.Vector, base int) string {
	v := mag
	var digits []byte
	for !v.IsZero() {
		q, r := divSmall(v, uint32(base))
		digits = append(digits, hexdigits.NibbleToChar(uint8(r), hexdigits.Lower))
		v = limb.New(q)
	}
	reverseBytes(digits)
	return string(digits)
}

// renderHex implements the direct-layout hex algorithm: the
// most-significant limb is printed with no leading zeros, every
// subsequent (lower) limb is zero-padded to 8 hex characters so each
// limb boundary stays visible in the output.
func renderHex(mag limb.Vector) string {
	var sb strings.Builder
	top := mag.Len() - 1
	sb.WriteString(hexWord(mag.At(top), false))
	for i := top - 1; i >= 0; i-- {
		sb.WriteString(hexWord(mag.At(i), true))
	}
	return sb.String()
}

func hexWord(w uint32, pad bool) string {
	var digits [8]byte
	for i := 7; i >= 0; i-- {
		digits[i] = hexdigits.NibbleToChar(uint8(w&0xF), hexdigits.Upper)
		w >>= 4
	}
	if pad {
		return string(digits[:])
	}
	i := 0
	for i < 7 && digits[i] == '0' {
		i++
	}
	return string(digits[i:])
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
