package mpint

// Mul sets z = x * y using schoolbook multiplication (spec.md §4.8): a
// fresh zeroed result of |x|+|y| limbs, then for each limb of y the
// multiply-accumulate primitive is applied against x, shifted into place.
// Result sign is the product of the operand signs, canonicalized to +1 for
// a zero result. A temporary absorbs the case where z aliases x or y.
func Mul(z, x, y *Int) *Int {
	xn, yn := x.sigLen(), y.sigLen()
	if xn == 0 || yn == 0 {
		z.Zero()
		return z
	}

	xl := append([]uint64(nil), x.limbs[:xn]...)
	yl := append([]uint64(nil), y.limbs[:yn]...)
	neg := x.neg != y.neg

	res := make([]uint64, xn+yn)
	for j := 0; j < yn; j++ {
		if yl[j] == 0 {
			continue
		}
		mulAddVWWAt(res, j, xl, yl[j])
	}

	z.limbs = res
	z.neg = neg
	z.normalizeSign()
	return z
}

// MulInt sets z = x * v for a small signed v and returns z.
func MulInt(z, x *Int, v int64) *Int {
	return Mul(z, x, NewInt(v))
}
