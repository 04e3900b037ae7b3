package bigint

import "testing"

func mustParseBig(t *testing.T, s string) BigInt {
	t.Helper()
	v, err := Parse(s, 10)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return v
}

func TestAddSameSign(t *testing.T) {
	a := FromInt64(123456789012345)
	b := FromInt64(987654321098765)
	got := a.Add(b)
	want := mustParseBig(t, "1111111110111110")
	if !got.Eq(want) {
		t.Errorf("Add = %s, want %s", got, want)
	}
}

func TestAddOppositeSignCollapsesToZero(t *testing.T) {
	a := FromInt64(42)
	b := FromInt64(-42)
	got := a.Add(b)
	if !got.IsZero() || got.Sign() != 0 {
		t.Errorf("Add = %s, want 0 with no negative-zero sign", got)
	}
}

func TestSubViaNegatedAdd(t *testing.T) {
	a := FromInt64(10)
	b := FromInt64(15)
	got := a.Sub(b)
	if got.Sign() >= 0 {
		t.Errorf("Sub = %s, want negative", got)
	}
	if got.String() != "-5" {
		t.Errorf("Sub = %s, want -5", got)
	}
}

func TestMulLargeMagnitudes(t *testing.T) {
	a := mustParseBig(t, "123456789012345678901234567890")
	b := mustParseBig(t, "987654321098765432109876543210")
	got := a.Mul(b)
	want := mustParseBig(t, "121932631137021795226185032733622923332237463801111263526900")
	if !got.Eq(want) {
		t.Errorf("Mul = %s, want %s", got, want)
	}
}

func TestMulZeroShortCircuits(t *testing.T) {
	a := mustParseBig(t, "999999999999999999999999999999")
	if got := a.Mul(Zero()); !got.IsZero() {
		t.Errorf("Mul by zero = %s, want 0", got)
	}
}

func TestMulSignXOR(t *testing.T) {
	a := FromInt64(-7)
	b := FromInt64(6)
	got := a.Mul(b)
	if got.String() != "-42" {
		t.Errorf("Mul = %s, want -42", got)
	}
	got2 := a.Mul(FromInt64(-6))
	if got2.String() != "42" {
		t.Errorf("Mul = %s, want 42", got2)
	}
}

func TestDivModTruncatedConvention(t *testing.T) {
	tests := []struct {
		a, b     int64
		wantQ, wantR string
	}{
		{7, 2, "3", "1"},
		{-7, 2, "-3", "-1"},
		{7, -2, "-3", "1"},
		{-7, -2, "3", "-1"},
	}
	for _, tt := range tests {
		q, r, err := FromInt64(tt.a).DivMod(FromInt64(tt.b))
		if err != nil {
			t.Fatalf("DivMod(%d,%d) error: %v", tt.a, tt.b, err)
		}
		if q.String() != tt.wantQ || r.String() != tt.wantR {
			t.Errorf("DivMod(%d,%d) = (%s,%s), want (%s,%s)", tt.a, tt.b, q, r, tt.wantQ, tt.wantR)
		}
	}
}

func TestDivModZeroDividend(t *testing.T) {
	q, r, err := Zero().DivMod(FromInt64(5))
	if err != nil {
		t.Fatal(err)
	}
	if !q.IsZero() || !r.IsZero() {
		t.Errorf("DivMod(0,5) = (%s,%s), want (0,0)", q, r)
	}
}

func TestDivModByZeroErrors(t *testing.T) {
	_, _, err := FromInt64(10).DivMod(Zero())
	if err == nil {
		t.Fatal("expected ErrDivideByZero")
	}
}

func TestDivModLargeMagnitude(t *testing.T) {
	a := mustParseBig(t, "123456789012345678901234567890")
	b := mustParseBig(t, "98765432109876543210")
	q, r, err := a.DivMod(b)
	if err != nil {
		t.Fatal(err)
	}
	// Reconstruct: a == q*b + r
	recon := q.Mul(b).Add(r)
	if !recon.Eq(a) {
		t.Errorf("q*b+r = %s, want %s", recon, a)
	}
}

func TestCompareOperators(t *testing.T) {
	a := FromInt64(5)
	b := FromInt64(10)
	neg := FromInt64(-5)
	if !a.Lt(b) || !b.Gt(a) || !a.Le(a) || !a.Ge(a) {
		t.Error("comparison operators disagree with expected ordering")
	}
	if !neg.Lt(a) {
		t.Error("negative should be less than positive")
	}
	if !a.Eq(FromInt64(5)) || a.Ne(b) == false {
		t.Error("Eq/Ne disagree")
	}
}

func TestIncDecPrePost(t *testing.T) {
	v := FromInt64(9)
	pre := v.Inc()
	if pre.String() != "10" || v.String() != "10" {
		t.Errorf("Inc = %s, v = %s, want both 10", pre, v)
	}
	v2 := FromInt64(9)
	post := v2.PostInc()
	if post.String() != "9" || v2.String() != "10" {
		t.Errorf("PostInc = %s, v2 = %s, want 9 then 10", post, v2)
	}
	v3 := FromInt64(1)
	preDec := v3.Dec()
	if preDec.String() != "0" || v3.String() != "0" {
		t.Errorf("Dec = %s, v3 = %s, want both 0", preDec, v3)
	}
}

func TestBytesExportDropsSign(t *testing.T) {
	pos := FromInt64(0x0102)
	neg := FromInt64(-0x0102)
	if string(pos.Bytes()) != string(neg.Bytes()) {
		t.Error("Bytes should ignore sign")
	}
	want := []byte{0x02, 0x01, 0x00, 0x00}
	got := pos.Bytes()
	if len(got) != len(want) {
		t.Fatalf("Bytes length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bytes[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestZeroCanonicality(t *testing.T) {
	z := Zero()
	if z.Sign() != 0 {
		t.Errorf("Zero().Sign() = %d, want 0", z.Sign())
	}
	if FromInt64(5).Sub(FromInt64(5)).Sign() != 0 {
		t.Error("5-5 should have sign 0")
	}
}

func TestAdditionCommutesAndAssociates(t *testing.T) {
	a := mustParseBig(t, "123456789012345678901234567890")
	b := mustParseBig(t, "-987654321098765432109876543210")
	c := FromInt64(42)
	if !a.Add(b).Eq(b.Add(a)) {
		t.Error("addition should commute")
	}
	lhs := a.Add(b).Add(c)
	rhs := a.Add(b.Add(c))
	if !lhs.Eq(rhs) {
		t.Errorf("addition should associate: %s != %s", lhs, rhs)
	}
}

func TestParseToStringRoundTrip(t *testing.T) {
	values := []string{"0", "-1", "170", "-170", "123456789012345678901234567890"}
	for _, s := range values {
		v, err := Parse(s, 10)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if v.String() != s {
			t.Errorf("round trip %q -> %q", s, v.String())
		}
	}
}
