package mpint

// This file implements the constant-time-style primitives spec.md §4.3
// requires for higher-level scalar-multiplication code: every limb of
// every operand is touched on every call, regardless of the condition
// bit, so neither the branch taken nor the memory-access pattern depends
// on secret data. No pointer swap is ever used for CondSwap, since that
// would itself leak which operand ended up where on a later access.

// condMask returns 0 if cond == 0, all-ones (2^64-1) if cond == 1. cond
// must already be coerced to {0, 1}.
func condMask(cond uint8) uint64 {
	return -uint64(cond & 1)
}

// CondAssignRaw sets dst[i] = dst[i] if cond==0, src[i] if cond==1, for
// every i in range(dst), using masked arithmetic rather than a branch.
// len(src) must equal len(dst).
func CondAssignRaw(dst, src []uint64, cond uint8) {
	mask := condMask(cond)
	for i := range dst {
		dst[i] = (dst[i] &^ mask) | (src[i] & mask)
	}
}

// CondAssign sets X = Y if cond == 1, leaves X unchanged if cond == 0,
// per spec.md §4.3. X is grown to at least Y's significant length first;
// every limb of the grown X is touched by the same masked-arithmetic
// pass regardless of cond, and the sign is updated via the same mask.
func CondAssign(x, y *Int, cond uint8) {
	yn := y.sigLen()
	x.grow(yn)
	mask := condMask(cond)

	for i := 0; i < yn; i++ {
		x.limbs[i] = (x.limbs[i] &^ mask) | (y.limbs[i] & mask)
	}
	for i := yn; i < len(x.limbs); i++ {
		x.limbs[i] &^= mask
	}

	xNeg := uint64(0)
	if x.neg {
		xNeg = 1
	}
	yNeg := uint64(0)
	if y.neg {
		yNeg = 1
	}
	x.neg = ((xNeg &^ mask) | (yNeg & mask)) != 0
	x.normalizeSign()
}

// CondSwap exchanges X and Y if cond == 1, leaves both unchanged if
// cond == 0, per spec.md §4.3. Both operands are grown to the same
// length first; every limb pair receives exactly two reads and two
// writes regardless of cond.
func CondSwap(x, y *Int, cond uint8) {
	n := x.sigLen()
	if yn := y.sigLen(); yn > n {
		n = yn
	}
	x.grow(n)
	y.grow(n)
	mask := condMask(cond)

	for i := 0; i < n; i++ {
		d := (x.limbs[i] ^ y.limbs[i]) & mask
		x.limbs[i] ^= d
		y.limbs[i] ^= d
	}

	xNeg := uint64(0)
	if x.neg {
		xNeg = 1
	}
	yNeg := uint64(0)
	if y.neg {
		yNeg = 1
	}
	d := (xNeg ^ yNeg) & mask
	x.neg = (xNeg ^ d) != 0
	y.neg = (yNeg ^ d) != 0
}
