package mpint

import "github.com/ardentnum/mpint/mpint/trace"

// This file implements spec.md §4.14: trial division against the small
// prime table, a Miller-Rabin probabilistic test (HAC 4.24), IsPrime, and
// GenPrime. NotAcceptable is the internal signal a rejected candidate
// raises during GenPrime's search; GenPrime itself never lets it escape
// to its caller (spec.md §7) — only a genuine failure from the
// randomness source or from ExpMod does.

// IsPrime reports whether x is prime using trial division by the small
// prime table followed by a Miller-Rabin test whose round count is sized
// from x's bit length (spec.md §4.14). x must be positive; the randomness
// source r supplies Miller-Rabin's witnesses.
func IsPrime(x *Int, r Rand) (bool, error) {
	return IsPrimeTraced(x, r, nil)
}

// IsPrimeTraced is IsPrime with an optional round trace sink; passing nil
// for sink is equivalent to calling IsPrime directly.
func IsPrimeTraced(x *Int, r Rand, sink *trace.Sink) (bool, error) {
	if x.Sign() <= 0 {
		return false, nil
	}
	if CmpInt(x, 1) == 0 {
		return false, nil
	}
	if CmpInt(x, 2) == 0 {
		return true, nil
	}
	if x.Bit(0) == 0 {
		return false, nil
	}

	for _, p := range smallPrimes {
		if CmpInt(x, int64(p)) == 0 {
			return true, nil
		}
		rem, _ := ModInt(x, int64(p))
		if rem == 0 {
			return false, nil
		}
	}

	rounds := millerRabinRounds(x.BitLen())
	return millerRabinTest(x, rounds, r, sink)
}

// millerRabinTest runs rounds independent Miller-Rabin witness checks
// against odd candidate n > smallPrimes' largest entry, per HAC
// Algorithm 4.24: write n-1 = 2^s*d with d odd, then for each witness a
// compute y = a^d mod n; n is declared composite the moment a witness
// fails to ever hit n-1 across the s-1 repeated squarings, and composite
// immediately if a repeated square ever hits 1 without having passed
// through n-1 first (a nontrivial square root of 1, impossible mod a
// prime).
func millerRabinTest(n *Int, rounds int, r Rand, sink *trace.Sink) (bool, error) {
	nm1 := new(Int)
	Sub(nm1, n, one)
	s := nm1.Lsb()
	d := new(Int)
	Rsh(d, nm1, uint(s))

	var mc MontgomeryCache
	for i := 0; i < rounds; i++ {
		a, err := randomWitness(n, r)
		if err != nil {
			return false, err
		}
		witness, _ := WriteString(a, 10)
		y := new(Int)
		if err := ExpMod(y, a, d, n, &mc); err != nil {
			return false, err
		}
		if CmpInt(y, 1) == 0 || Cmp(y, nm1) == 0 {
			sink.RecordRabinRound(witness, true)
			continue
		}

		composite := true
		for j := 0; j < s-1; j++ {
			Mul(y, y, y)
			if err := Mod(y, y, n); err != nil {
				return false, err
			}
			if Cmp(y, nm1) == 0 {
				composite = false
				break
			}
			if CmpInt(y, 1) == 0 {
				sink.RecordRabinRound(witness, false)
				return false, nil
			}
		}
		sink.RecordRabinRound(witness, !composite)
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// randomWitness draws a uniform witness a in [2, n-2] for Miller-Rabin,
// rejecting and redrawing any sample that falls outside the range.
func randomWitness(n *Int, r Rand) (*Int, error) {
	bitLen := n.BitLen()
	upper := new(Int)
	SubInt(upper, n, 2)
	for {
		a := new(Int)
		if err := SetRandom(a, bitLen, r); err != nil {
			return nil, err
		}
		if CmpInt(a, 2) < 0 {
			continue
		}
		if Cmp(a, upper) > 0 {
			continue
		}
		return a, nil
	}
}

// checkPrimality wraps IsPrime as a single error value: nil when x is
// prime, a NotAcceptable *Error when it is not, or the underlying error
// when the test itself failed (a bad randomness read, say). GenPrime
// treats NotAcceptable as "draw another candidate" and anything else as
// fatal.
func checkPrimality(x *Int, r Rand) error {
	prime, err := IsPrime(x, r)
	if err != nil {
		return err
	}
	if !prime {
		return newErr("GenPrime", NotAcceptable)
	}
	return nil
}

func isNotAcceptable(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == NotAcceptable
}

// GenPrime searches for a random nbits-bit prime, per spec.md §4.14.
// nbits must be in [3, MaxPrimeBits]. The top bit and the bottom two bits
// of the initial candidate are forced to 1, so that candidate has exactly
// nbits significant bits and is 3 mod 4; every later candidate stays odd.
//
// In non-safe mode the search advances by repeatedly adding 2 and
// retrying is_prime, exactly as spec.md §4.14 describes, rather than
// resampling a fresh random candidate on every rejection.
//
// In safe mode the candidate is additionally adjusted so X ≡ 2 (mod 3);
// combined with the X ≡ 3 (mod 4) already forced, that is the unique
// residue 11 (mod 12). Y = (X-1)/2 is tracked alongside X, and a
// rejected candidate advances X by 12 and Y by 6 together, which
// preserves both residues without resampling, per spec.md §4.14.
func GenPrime(nbits int, safe bool, r Rand) (*Int, error) {
	if nbits < 3 || nbits > MaxPrimeBits {
		return nil, newErr("GenPrime", BadInput)
	}

	candidate := new(Int)
	if err := SetRandom(candidate, nbits, r); err != nil {
		return nil, err
	}
	candidate.SetBit(nbits-1, 1)
	candidate.SetBit(0, 1)
	candidate.SetBit(1, 1)

	if !safe {
		for {
			if err := checkPrimality(candidate, r); err != nil {
				if isNotAcceptable(err) {
					AddInt(candidate, candidate, 2)
					continue
				}
				return nil, err
			}
			return candidate, nil
		}
	}

	rem, err := ModInt(candidate, 3)
	if err != nil {
		return nil, err
	}
	// (11 mod 12) mod 3 == 2, so the adjustment below only ever needs to
	// add a multiple of 4 to candidate to reach residue 2 mod 3 while
	// leaving the established 3 mod 4 residue untouched.
	switch rem {
	case 0:
		AddInt(candidate, candidate, 8)
	case 1:
		AddInt(candidate, candidate, 4)
	}

	y := new(Int)
	Rsh(y, candidate, 1)

	for {
		if err := checkPrimality(candidate, r); err != nil {
			if isNotAcceptable(err) {
				AddInt(candidate, candidate, 12)
				AddInt(y, y, 6)
				continue
			}
			return nil, err
		}
		if err := checkPrimality(y, r); err != nil {
			if isNotAcceptable(err) {
				AddInt(candidate, candidate, 12)
				AddInt(y, y, 6)
				continue
			}
			return nil, err
		}
		return candidate, nil
	}
}
