package mpint

import "github.com/ardentnum/mpint/mpint/trace"

// ExpMod computes x = a^e mod n using Montgomery multiplication and
// sliding-window exponentiation, per spec.md §4.12. n must be positive
// and odd; e must be non-negative. rr, if non-nil, caches R^2 mod N
// across calls sharing the same modulus (spec.md §3); it is computed and
// filled in on first use.
//
// If a is negative, the magnitude is used throughout and the documented
// final step (x <- n - x) is applied unconditionally, exactly as spec.md
// §4.12 states it (the spec does not condition this on the parity of e,
// and spec.md §9 does not list this as an open question left for
// implementer discretion, so the literal reading is followed here; see
// DESIGN.md).
func ExpMod(x, a, e, n *Int, rr *MontgomeryCache) error {
	return ExpModTraced(x, a, e, n, rr, nil)
}

// ExpModTraced is ExpMod with an optional step trace sink; passing nil
// for sink is equivalent to calling ExpMod directly.
func ExpModTraced(x, a, e, n *Int, rr *MontgomeryCache, sink *trace.Sink) error {
	if n.Sign() <= 0 {
		return newErr("ExpMod", BadInput)
	}
	if n.limbs == nil || n.sigLen() == 0 || n.limbs[0]&1 == 0 {
		return newErr("ExpMod", BadInput)
	}
	if e.Sign() < 0 {
		return newErr("ExpMod", BadInput)
	}

	nl := n.sigLen()
	mm := montgInit(n)
	t := make([]uint64, 2*nl+1)

	if rr == nil {
		rr = new(MontgomeryCache)
	}
	if !rr.Valid(n) {
		shiftBits := uint(2 * wordBits * nl)
		tmp := new(Int)
		Lsh(tmp, one, shiftBits)
		rrVal := new(Int)
		if err := Mod(rrVal, tmp, n); err != nil {
			return err
		}
		rr.rr = rrVal
		rr.n = nl
	}

	absA := a
	if a.Sign() < 0 {
		absA = new(Int).Set(a)
		absA.neg = false
	}
	aRed := new(Int)
	if err := Mod(aRed, absA, n); err != nil {
		return err
	}

	wbits := windowSizeForBits(e.Msb())
	tableSize := 1 << uint(wbits)
	table := make([]*Int, tableSize)

	table[1] = new(Int)
	montMul(table[1], aRed, rr.rr, n, mm, t)

	j0 := tableSize / 2
	if j0 >= 1 {
		top := new(Int).Set(table[1])
		for i := 0; i < wbits-1; i++ {
			montMul(top, top, top, n, mm, t)
		}
		table[j0] = top
		for j := j0 + 1; j < tableSize; j++ {
			table[j] = new(Int)
			montMul(table[j], table[j-1], table[1], n, mm, t)
		}
	}

	xMont := new(Int)
	montRed(xMont, rr.rr, n, mm, t) // X <- R mod N: Montgomery form of 1

	bitLen := e.Msb()
	windowVal := 0
	windowLen := 0
	buffering := false

	for i := bitLen - 1; i >= 0; i-- {
		bit := e.Bit(i)
		if !buffering {
			if bit == 0 {
				montMul(xMont, xMont, xMont, n, mm, t)
				sink.RecordWindowStep(0, 0, 1, false)
				continue
			}
			buffering = true
			windowVal = 1
			windowLen = 1
			if windowLen == wbits {
				montMul(xMont, xMont, xMont, n, mm, t)
				montMul(xMont, xMont, table[windowVal], n, mm, t)
				sink.RecordWindowStep(windowVal, windowLen, 1, true)
				buffering, windowVal, windowLen = false, 0, 0
			}
			continue
		}
		windowVal = windowVal*2 + int(bit)
		windowLen++
		if windowLen == wbits {
			for s := 0; s < wbits; s++ {
				montMul(xMont, xMont, xMont, n, mm, t)
			}
			montMul(xMont, xMont, table[windowVal], n, mm, t)
			sink.RecordWindowStep(windowVal, windowLen, wbits, true)
			buffering, windowVal, windowLen = false, 0, 0
		}
	}

	if buffering {
		for b := windowLen - 1; b >= 0; b-- {
			bit := (windowVal >> uint(b)) & 1
			montMul(xMont, xMont, xMont, n, mm, t)
			if bit == 1 {
				montMul(xMont, xMont, table[1], n, mm, t)
			}
		}
		sink.RecordWindowStep(windowVal, windowLen, windowLen, true)
	}

	montRed(x, xMont, n, mm, t)

	if a.Sign() < 0 && !x.IsZero() {
		Sub(x, n, x)
	}
	return nil
}
