package mpint

// GCD sets z = gcd(|a|, |b|) using the binary GCD algorithm (HAC 14.54),
// per spec.md §4.13: extract the common factor of 2^k, then repeatedly
// halve whichever operand is even and reduce the larger by the smaller,
// restoring the 2^k factor at the end.
func GCD(z, a, b *Int) *Int {
	x := a.Clone()
	x.neg = false
	y := b.Clone()
	y.neg = false

	if x.IsZero() {
		z.Set(y)
		return z
	}
	if y.IsZero() {
		z.Set(x)
		return z
	}

	k := uint(0)
	for x.Bit(0) == 0 && y.Bit(0) == 0 {
		Rsh(x, x, 1)
		Rsh(y, y, 1)
		k++
	}

	t := new(Int)
	for !x.IsZero() {
		for x.Bit(0) == 0 {
			Rsh(x, x, 1)
		}
		for y.Bit(0) == 0 {
			Rsh(y, y, 1)
		}
		if Cmp(x, y) >= 0 {
			Sub(t, x, y)
		} else {
			Sub(t, y, x)
		}
		Rsh(t, t, 1)
		if Cmp(x, y) >= 0 {
			x.Set(t)
		} else {
			y.Set(t)
		}
	}

	Lsh(z, y, k)
	return z
}

// InvMod sets z = a^-1 mod n and returns z, or NotAcceptable if a and n
// are not coprime. n must be positive. The algorithm is the binary
// extended Euclidean method of HAC 14.61/14.64: (U1, U2) track TU and
// (V1, V2) track TV; whenever U1 or U2 (resp. V1 or V2) is odd, TB is
// added to the first and TA subtracted from the second before halving,
// keeping both exactly divisible by 2. The loop terminates when TU
// reaches 0, at which point V1 holds a Bezout coefficient for a that is
// then normalized into [0, n).
func InvMod(z, a, n *Int) error {
	if n.Sign() <= 0 {
		return newErr("InvMod", NegativeValue)
	}
	g := new(Int)
	GCD(g, a, n)
	if CmpInt(g, 1) != 0 {
		return newErr("InvMod", NotAcceptable)
	}

	ta := new(Int)
	if err := Mod(ta, a, n); err != nil {
		return err
	}
	tu := ta.Clone()
	tb := n.Clone()
	tv := n.Clone()

	u1, u2 := NewInt(1), NewInt(0)
	v1, v2 := NewInt(0), NewInt(1)

	for {
		for tu.Bit(0) == 0 && !tu.IsZero() {
			Rsh(tu, tu, 1)
			if u1.Bit(0) != 0 || u2.Bit(0) != 0 {
				Add(u1, u1, tb)
				Sub(u2, u2, ta)
			}
			Rsh(u1, u1, 1)
			Rsh(u2, u2, 1)
		}

		for tv.Bit(0) == 0 && !tv.IsZero() {
			Rsh(tv, tv, 1)
			if v1.Bit(0) != 0 || v2.Bit(0) != 0 {
				Add(v1, v1, tb)
				Sub(v2, v2, ta)
			}
			Rsh(v1, v1, 1)
			Rsh(v2, v2, 1)
		}

		if Cmp(tu, tv) >= 0 {
			Sub(tu, tu, tv)
			Sub(u1, u1, v1)
			Sub(u2, u2, v2)
		} else {
			Sub(tv, tv, tu)
			Sub(v1, v1, u1)
			Sub(v2, v2, u2)
		}

		if tu.IsZero() {
			break
		}
	}

	for v1.Sign() < 0 {
		Add(v1, v1, n)
	}
	for Cmp(v1, n) >= 0 {
		Sub(v1, v1, n)
	}
	z.Set(v1)
	return nil
}
