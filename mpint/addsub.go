package mpint

// addAbs sets z = |x| + |y| (magnitudes only, sign untouched by the
// caller) per spec.md §4.7: grow to at least the larger operand's
// significant limb count, limb-wise add with carry, then grow by one more
// limb if a final carry remains. Aliasing of z with x or y is supported by
// staging into a temporary whenever z would be overwritten before it is
// fully read.
func addAbs(z, x, y *Int) {
	xn, yn := x.sigLen(), y.sigLen()
	if xn < yn {
		x, y = y, x
		xn, yn = yn, xn
	}
	xl := append([]uint64(nil), x.limbs[:xn]...)
	yl := append([]uint64(nil), y.limbs[:yn]...)

	z.grow(xn + 1)
	for i := xn; i < len(z.limbs); i++ {
		z.limbs[i] = 0
	}
	c := addVV(z.limbs[:xn], xl, yl)
	if c != 0 {
		z.limbs[xn] = c
	}
}

// subAbs sets z = |x| - |y|, requiring |x| >= |y|; violating that
// precondition is reported as NegativeValue, per spec.md §4.7.
func subAbs(z, x, y *Int) error {
	if cmpAbs(x, y) < 0 {
		return newErr("Sub", NegativeValue)
	}
	xn := x.sigLen()
	xl := append([]uint64(nil), x.limbs[:xn]...)
	yl := append([]uint64(nil), y.limbs[:y.sigLen()]...)

	z.grow(xn)
	for i := xn; i < len(z.limbs); i++ {
		z.limbs[i] = 0
	}
	subVV(z.limbs[:xn], xl, yl)
	z.normalizeSign()
	return nil
}

// Add sets z = x + y and returns z. Same-sign operands dispatch to an
// unsigned add; differing signs dispatch to an unsigned subtract of the
// smaller magnitude from the larger, with the result sign taken from the
// larger-magnitude operand (spec.md §4.7).
func Add(z, x, y *Int) *Int {
	if x.neg == y.neg {
		addAbs(z, x, y)
		z.neg = x.neg
		z.normalizeSign()
		return z
	}
	if cmpAbs(x, y) >= 0 {
		_ = subAbs(z, x, y)
		z.neg = x.neg
	} else {
		_ = subAbs(z, y, x)
		z.neg = y.neg
	}
	z.normalizeSign()
	return z
}

// Sub sets z = x - y and returns z.
func Sub(z, x, y *Int) *Int {
	negY := y.Clone()
	if !negY.IsZero() {
		negY.neg = !negY.neg
	}
	return Add(z, x, negY)
}

// AddInt sets z = x + v for a small signed v and returns z.
func AddInt(z, x *Int, v int64) *Int {
	return Add(z, x, NewInt(v))
}

// SubInt sets z = x - v for a small signed v and returns z.
func SubInt(z, x *Int, v int64) *Int {
	return Sub(z, x, NewInt(v))
}
