// Package mpint implements arbitrary-precision signed integer arithmetic
// for use inside public-key cryptography primitives: RSA, Diffie-Hellman,
// DSA and related schemes. It supplies the full set of arithmetic
// operations, Montgomery-based modular exponentiation, a probabilistic
// primality test, prime generation, and the constant-time conditional
// primitives higher-level scalar-multiplication code needs to avoid
// data-dependent memory traces.
//
// Every operation here is synchronous and allocates no global state. A
// *Int is mutable; concurrent mutation of the same value requires external
// exclusion, but independent values may be used freely in parallel.
package mpint

// Int is an arbitrary-precision signed integer: a sign and a little-endian
// sequence of 64-bit limbs, limb 0 least significant. The allocated limb
// slice may carry trailing zero limbs above the true magnitude (scratch
// space left by a previous grow); every operation recomputes the
// significant limb count from the top on entry rather than trusting
// len(limbs).
//
// The zero value is a valid, already-zero Int.
type Int struct {
	neg   bool // true for negative values; canonical zero has neg == false
	limbs []uint64
}

// NewInt returns a new Int initialized from a small signed value.
func NewInt(v int64) *Int {
	z := new(Int)
	z.SetInt64(v)
	return z
}

// sigLen returns the significant limb count: one more than the index of
// the highest nonzero limb, or 0 for the value zero.
func (x *Int) sigLen() int {
	n := len(x.limbs)
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	return n
}

// IsZero reports whether x represents the value 0.
func (x *Int) IsZero() bool {
	return x.sigLen() == 0
}

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// normalizeSign enforces the invariant that zero is always represented
// with neg == false (spec.md §3: "After an operation whose documented
// result is 0, sign is +1").
func (x *Int) normalizeSign() {
	if x.sigLen() == 0 {
		x.neg = false
	}
}

// grow ensures len(x.limbs) >= n, preserving existing limb values and
// zero-filling any newly allocated limbs. It is where an Int's limb buffer
// is enlarged (other functions also allocate scratch slices directly).
// Since Go's allocator panics rather than returning an error on OOM, grow
// cannot observe allocation failure and never reports AllocationFailed;
// the Kind exists to keep the operation
// vocabulary (and the error Kind) aligned with spec.md §4.2 for callers
// that wrap mpint behind their own allocator.
func (x *Int) grow(n int) {
	if len(x.limbs) >= n {
		return
	}
	nl := make([]uint64, n)
	copy(nl, x.limbs)
	x.limbs = nl
}

// shrink reallocates x's limb buffer to max(minLimbs, x.sigLen()),
// zeroizing the limbs above the new length before release.
func (x *Int) shrink(minLimbs int) {
	n := x.sigLen()
	if minLimbs > n {
		n = minLimbs
	}
	if len(x.limbs) == n {
		return
	}
	nl := make([]uint64, n)
	copy(nl, x.limbs)
	zeroize(x.limbs)
	x.limbs = nl
}

// zeroize overwrites s with zeros before it is released, per spec.md's
// "zeroize-on-free" invariant for limb buffers.
func zeroize(s []uint64) {
	for i := range s {
		s[i] = 0
	}
}

// Zero resets x to the value 0, zeroizing and releasing any limb buffer.
func (x *Int) Zero() {
	zeroize(x.limbs)
	x.limbs = nil
	x.neg = false
}

// Set copies src into dst. Copying x into itself is a no-op. dst ends up
// independently owning its own limb buffer.
func (dst *Int) Set(src *Int) *Int {
	if dst == src {
		return dst
	}
	n := src.sigLen()
	if n == 0 {
		dst.Zero()
		return dst
	}
	dst.limbs = append(dst.limbs[:0], src.limbs[:n]...)
	dst.neg = src.neg
	return dst
}

// Clone returns an independent copy of x.
func (x *Int) Clone() *Int {
	return new(Int).Set(x)
}

// Swap exchanges the contents of x and y in place without reallocating
// either buffer.
func Swap(x, y *Int) {
	x.limbs, y.limbs = y.limbs, x.limbs
	x.neg, y.neg = y.neg, x.neg
}

// raw returns x's limbs truncated to its significant length; callers must
// not retain or mutate the returned slice beyond the current operation.
func (x *Int) raw() []uint64 {
	return x.limbs[:x.sigLen()]
}
