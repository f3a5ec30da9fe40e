package mpint

import "math/bits"

// Mod sets z = a mod b, canonicalized into [0, b), per spec.md §4.10: b
// must be strictly positive; the DivMod remainder is then nudged into
// range by adding or subtracting b.
func Mod(z, a, b *Int) error {
	if b.Sign() <= 0 {
		return newErr("Mod", NegativeValue)
	}
	q := new(Int)
	if err := DivMod(q, z, a, b); err != nil {
		return err
	}
	for z.Sign() < 0 {
		Add(z, z, b)
	}
	for Cmp(z, b) >= 0 {
		Sub(z, z, b)
	}
	return nil
}

// ModInt computes a mod b for a positive single-limb-sized b, walking a's
// limbs top-down through a half-limb window (spec.md §4.10). Unlike
// DivModInt, ModInt rejects a non-positive divisor (the asymmetry is
// intentional and preserved from the source per spec.md §9).
func ModInt(a *Int, b int64) (int64, error) {
	if b <= 0 {
		return 0, newErr("ModInt", NegativeValue)
	}
	d := uint64(b)
	var y uint64
	n := a.sigLen()
	for i := n - 1; i >= 0; i-- {
		limb := a.limbs[i]
		hi := limb >> 32
		lo := limb & 0xFFFFFFFF
		_, y = bits.Div64(y>>32, y<<32|hi, d)
		_, y = bits.Div64(y>>32, y<<32|lo, d)
	}
	if a.neg && y != 0 {
		y = d - y
	}
	return int64(y), nil
}
