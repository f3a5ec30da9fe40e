package mpint

import "math/bits"

// This file implements HAC Algorithm 14.20 (schoolbook long division),
// per spec.md §4.9: normalize so the divisor's top limb has its high bit
// set, estimate each quotient limb via a two-limb-by-one-limb divide
// capped at the limb maximum, correct the estimate downward until the
// Knuth invariant holds, subtract the scaled divisor, and fix up an
// over-large estimate by adding the divisor back once. Shape follows the
// classical Knuth Algorithm D long division every schoolbook bignum
// library implements this way; there is no teacher analog for long
// division specifically (see DESIGN.md). The add-back step reuses the
// digit layer's addVV; the scaled-divisor subtraction is mulSubVWW below,
// written in the same carry-propagation idiom as mulAddVWW.

// shlVU shifts x left by s (0 <= s < 64) bits into z (same length as x)
// and returns the bits shifted out the top.
func shlVU(z, x []uint64, s uint) uint64 {
	if s == 0 {
		copy(z, x)
		return 0
	}
	var carry uint64
	for i := 0; i < len(x); i++ {
		z[i] = (x[i] << s) | carry
		carry = x[i] >> (wordBits - s)
	}
	return carry
}

// shrVU shifts x right by s (0 <= s < 64) bits into z (same length as x).
func shrVU(z, x []uint64, s uint) {
	if s == 0 {
		copy(z, x)
		return
	}
	var carry uint64
	for i := len(x) - 1; i >= 0; i-- {
		z[i] = (x[i] >> s) | carry
		carry = x[i] << (wordBits - s)
	}
}

// mulSubVWW computes z[0:len(y)+1] -= qhat*y, where z has one more limb
// than y to absorb the top of the product, and returns the borrow out of
// that top limb (1 if the subtraction went negative, meaning qhat was one
// too large).
func mulSubVWW(z, y []uint64, qhat uint64) uint64 {
	var mulCarry, subBorrow uint64
	for i := 0; i < len(y); i++ {
		hi, lo := bits.Mul64(y[i], qhat)
		var c uint64
		lo, c = bits.Add64(lo, mulCarry, 0)
		mulCarry = hi + c
		z[i], subBorrow = bits.Sub64(z[i], lo, subBorrow)
	}
	z[len(y)], subBorrow = bits.Sub64(z[len(y)], mulCarry, subBorrow)
	return subBorrow
}

// divModAbs divides magnitude x by magnitude y (both significant-limb
// trimmed, y non-empty) and returns quotient and remainder magnitudes,
// each significant-limb trimmed.
func divModAbs(x, y []uint64) (q, r []uint64) {
	if len(x) < len(y) {
		return nil, append([]uint64(nil), x...)
	}
	if len(y) == 1 {
		d := y[0]
		qs := make([]uint64, len(x))
		var rem uint64
		for i := len(x) - 1; i >= 0; i-- {
			qs[i], rem = bits.Div64(rem, x[i], d)
		}
		var rs []uint64
		if rem != 0 {
			rs = []uint64{rem}
		}
		return trim(qs), rs
	}

	t := len(y)
	n := len(x)
	shift := uint(bits.LeadingZeros64(y[t-1]))

	yn := make([]uint64, t)
	shlVU(yn, y, shift)

	xn := make([]uint64, n+1)
	xn[n] = shlVU(xn[:n], x, shift)

	m := n - t
	qs := make([]uint64, m+1)

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		rhatOverflowed := false
		hi := xn[j+t]
		lo := xn[j+t-1]
		if hi == yn[t-1] {
			qhat = wordMax
			rhat = lo + yn[t-1]
			rhatOverflowed = rhat < lo // rhat overflowed: no correction can apply
		} else {
			qhat, rhat = bits.Div64(hi, lo, yn[t-1])
		}
		for !rhatOverflowed {
			hi2, lo2 := bits.Mul64(qhat, yn[t-2])
			if hi2 < rhat || (hi2 == rhat && lo2 <= xn[j+t-2]) {
				break
			}
			qhat--
			newRhat := rhat + yn[t-1]
			if newRhat < rhat {
				break
			}
			rhat = newRhat
		}
		borrow := mulSubVWW(xn[j:j+t+1], yn, qhat)
		if borrow != 0 {
			qhat--
			c := addVV(xn[j:j+t], xn[j:j+t], yn)
			xn[j+t] += c
		}
		qs[j] = qhat
	}

	rem := make([]uint64, t)
	shrVU(rem, xn[:t], shift)
	return trim(qs), trim(rem)
}

func trim(s []uint64) []uint64 {
	n := len(s)
	for n > 0 && s[n-1] == 0 {
		n--
	}
	return s[:n]
}

// DivMod computes q, r such that a = q*b + r with 0 <= |r| < |b|,
// sign(r) = sign(a), and sign(q) = sign(a)*sign(b), per spec.md §4.9. A
// zero remainder is canonicalized to sign +1. Dividing by zero is
// DivisionByZero.
func DivMod(q, r, a, b *Int) error {
	if b.IsZero() {
		return newErr("DivMod", DivisionByZero)
	}
	if cmpAbs(a, b) < 0 {
		r.Set(a)
		q.Zero()
		return nil
	}

	qm, rm := divModAbs(a.raw(), b.raw())

	q.limbs = qm
	q.neg = a.neg != b.neg
	q.normalizeSign()

	r.limbs = rm
	r.neg = a.neg
	r.normalizeSign()
	return nil
}

// DivModInt wraps DivMod with a synthesized one-limb divisor, returning
// the remainder directly as an int64 (it always fits, since |r| < |b|).
// Unlike ModInt, DivModInt does not reject a negative b (spec.md §9 notes
// this asymmetry is intentional and preserved from the source).
func DivModInt(q *Int, a *Int, b int64) (int64, error) {
	if b == 0 {
		return 0, newErr("DivModInt", DivisionByZero)
	}
	r := new(Int)
	if err := DivMod(q, r, a, NewInt(b)); err != nil {
		return 0, err
	}
	rv := int64(0)
	if !r.IsZero() {
		rv = int64(r.limbs[0])
		if r.neg {
			rv = -rv
		}
	}
	return rv, nil
}
