package mpint

import "testing"

func TestMontMulAgreesWithPlainModMul(t *testing.T) {
	n := NewInt(13)
	mm := montgInit(n)
	nl := n.sigLen()
	t2 := make([]uint64, 2*nl+1)

	shiftBits := uint(2 * wordBits * nl)
	tmp := new(Int)
	Lsh(tmp, one, shiftBits)
	rr := new(Int)
	Mod(rr, tmp, n)

	a := NewInt(5)
	b := NewInt(8)

	aMont := new(Int)
	montMul(aMont, a, rr, n, mm, t2)
	bMont := new(Int)
	montMul(bMont, b, rr, n, mm, t2)

	prodMont := new(Int)
	montMul(prodMont, aMont, bMont, n, mm, t2)

	got := new(Int)
	montRed(got, prodMont, n, mm, t2)

	want := new(Int)
	Mul(want, a, b)
	Mod(want, want, n)

	if Cmp(got, want) != 0 {
		t.Errorf("Montgomery multiplication gave %v, want %v (plain a*b mod n)", got, want)
	}
}

func TestMontgInitIsModularInverse(t *testing.T) {
	n := NewInt(97)
	mm := montgInit(n)
	// n0 * mm == -1 mod 2^64, i.e. n0*mm + 1 == 0 mod 2^64
	product := n.limbs[0] * mm
	if product+1 != 0 {
		t.Errorf("n0*mm+1 = %d, want 0 (mod 2^64)", product+1)
	}
}

func TestMontgomeryCacheValidity(t *testing.T) {
	var mc MontgomeryCache
	if mc.Valid(NewInt(13)) {
		t.Error("a fresh cache should not be valid for any modulus")
	}
}
