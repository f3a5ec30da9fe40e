package mpint

// ============================================================================
// Digit layer constants
// ============================================================================
// These values define the fixed-width "limb" the rest of the package is
// built on. The design is digit-agnostic (spec.md §1 declares the exact
// width out of scope); mpint fixes it to a 64-bit limb and does not expose
// a narrower fallback.

const (
	wordBits  = 64         // W: bits per limb
	wordBytes = wordBits / 8
	wordMax   = ^uint64(0) // 2^W - 1
)

// ============================================================================
// Montgomery / exponentiation constants
// ============================================================================

const (
	// maxWindowSize caps the sliding window used by ExpMod regardless of
	// exponent size. The spec's size-selected window never exceeds this.
	// spec.md §6 classifies this as build-time environmental
	// configuration, not a runtime setting, so it is a package constant
	// rather than a config.Config field.
	maxWindowSize = 6
)

// windowSizeForBits picks the sliding window size from the exponent's bit
// length, per spec.md §4.12.
func windowSizeForBits(bits int) int {
	switch {
	case bits <= 23:
		return 1
	case bits <= 79:
		return 3
	case bits <= 239:
		return 4
	case bits <= 671:
		return 5
	default:
		return maxWindowSize
	}
}

// ============================================================================
// Primality constants
// ============================================================================

// MaxPrimeBits bounds nbits for GenPrime. This mirrors the compile-time
// upper bound the original C source ties to its static limb-buffer size;
// here it is a generous constant rather than a derived build constant,
// since mpint has no static buffer cap (spec.md §9 notes the exact source
// bound is implementation-defined and should not be guessed at). Per
// spec.md §6 this is build-time environmental configuration, so it stays
// a package constant rather than a config.Config field.
const MaxPrimeBits = 1 << 16

// millerRabinRounds selects the number of Miller-Rabin rounds from the
// candidate's bit length, per spec.md §4.14.
func millerRabinRounds(bits int) int {
	switch {
	case bits >= 1300:
		return 2
	case bits >= 850:
		return 3
	case bits >= 650:
		return 4
	case bits >= 350:
		return 8
	case bits >= 250:
		return 12
	case bits >= 150:
		return 18
	default:
		return 27
	}
}

// smallPrimes lists every prime from 3 through 997, used for trial
// division before Miller-Rabin (spec.md §4.14).
var smallPrimes = []uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149,
	151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227,
	229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307,
	311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383, 389,
	397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463, 467,
	479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569, 571,
	577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647, 653,
	659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739, 743, 751,
	757, 761, 769, 773, 787, 797, 809, 811, 821, 823, 827, 829, 839, 853,
	857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937, 941, 947,
	953, 967, 971, 977, 983, 991, 997,
}

// ============================================================================
// Randomness interface constants
// ============================================================================

// MaxRandomBytes bounds a single FillRandom call, mirroring the
// compile-time cap on the original C source's rng buffer. Per spec.md §6
// this is build-time environmental configuration, so it stays a package
// constant rather than a config.Config field.
const MaxRandomBytes = 1 << 20
