package service

import (
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/ardentnum/mpint/config"
	"github.com/ardentnum/mpint/mpint"
)

// Service dispatches arithmetic requests to mpint. It is safe for
// concurrent use: the only mutable state is the Montgomery cache map,
// guarded by a mutex, matching the request/response HTTP model that holds
// no other session state (see api.Server).
type Service struct {
	rand mpint.Rand

	// extraRounds is config.Math.MillerRabinExtra: additional independent
	// IsPrime confirmations run atop mpint's own size-selected minimum.
	extraRounds int

	mu        sync.Mutex
	montCache map[string]*mpint.MontgomeryCache
}

// NewService creates a Service with no extra Miller-Rabin rounds. A nil
// rand defaults to crypto/rand.
func NewService(r mpint.Rand) *Service {
	return newService(r, 0)
}

// NewServiceFromConfig creates a Service honoring cfg.Math.MillerRabinExtra.
// It always uses crypto/rand, matching the service/CLI/API's use of a real
// randomness source; NewService remains the entry point for tests that
// supply a deterministic Rand.
func NewServiceFromConfig(cfg *config.Config) *Service {
	return newService(nil, cfg.Math.MillerRabinExtra)
}

func newService(r mpint.Rand, extraRounds int) *Service {
	if r == nil {
		r = rand.Reader
	}
	if extraRounds < 0 {
		extraRounds = 0
	}
	return &Service{
		rand:        r,
		extraRounds: extraRounds,
		montCache:   make(map[string]*mpint.MontgomeryCache),
	}
}

// ParseOperand parses s in the given radix (radix <= 0 defaults to 10).
func ParseOperand(s string, radix int) (*mpint.Int, error) {
	if radix <= 0 {
		radix = 10
	}
	v := new(mpint.Int)
	if err := mpint.ReadString(v, s, radix); err != nil {
		return nil, fmt.Errorf("parsing operand %q (radix %d): %w", s, radix, err)
	}
	return v, nil
}

func render(x *mpint.Int) (Result, error) {
	dec, err := mpint.WriteString(x, 10)
	if err != nil {
		return Result{}, err
	}
	hex, err := mpint.WriteString(x, 16)
	if err != nil {
		return Result{}, err
	}
	return Result{Decimal: dec, Hex: hex}, nil
}

// Add computes a+b.
func (s *Service) Add(a, b *mpint.Int) (Result, error) {
	z := new(mpint.Int)
	mpint.Add(z, a, b)
	return render(z)
}

// Sub computes a-b.
func (s *Service) Sub(a, b *mpint.Int) (Result, error) {
	z := new(mpint.Int)
	mpint.Sub(z, a, b)
	return render(z)
}

// Mul computes a*b.
func (s *Service) Mul(a, b *mpint.Int) (Result, error) {
	z := new(mpint.Int)
	mpint.Mul(z, a, b)
	return render(z)
}

// DivMod computes a = q*b + r.
func (s *Service) DivMod(a, b *mpint.Int) (DivModResult, error) {
	var q, r mpint.Int
	if err := mpint.DivMod(&q, &r, a, b); err != nil {
		return DivModResult{}, err
	}
	qr, err := render(&q)
	if err != nil {
		return DivModResult{}, err
	}
	rr, err := render(&r)
	if err != nil {
		return DivModResult{}, err
	}
	return DivModResult{Quotient: qr, Remainder: rr}, nil
}

// Mod computes a mod n, canonicalized into [0, n).
func (s *Service) Mod(a, n *mpint.Int) (Result, error) {
	z := new(mpint.Int)
	if err := mpint.Mod(z, a, n); err != nil {
		return Result{}, err
	}
	return render(z)
}

// GCD computes gcd(a, b).
func (s *Service) GCD(a, b *mpint.Int) (Result, error) {
	z := new(mpint.Int)
	mpint.GCD(z, a, b)
	return render(z)
}

// InvMod computes the modular inverse of a mod n.
func (s *Service) InvMod(a, n *mpint.Int) (Result, error) {
	z := new(mpint.Int)
	if err := mpint.InvMod(z, a, n); err != nil {
		return Result{}, err
	}
	return render(z)
}

// ExpMod computes a^e mod n, reusing a cached Montgomery factor for
// repeated requests against the same modulus.
func (s *Service) ExpMod(a, e, n *mpint.Int) (Result, error) {
	z := new(mpint.Int)
	cache := s.cacheFor(n)
	if err := mpint.ExpMod(z, a, e, n, cache); err != nil {
		return Result{}, err
	}
	return render(z)
}

func (s *Service) cacheFor(n *mpint.Int) *mpint.MontgomeryCache {
	key := n.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	cache, ok := s.montCache[key]
	if !ok {
		cache = new(mpint.MontgomeryCache)
		s.montCache[key] = cache
	}
	return cache
}

// IsPrime reports whether x passes Miller-Rabin primality testing, run
// once plus s.extraRounds additional independent confirmations.
func (s *Service) IsPrime(x *mpint.Int) (PrimeResult, error) {
	ok, err := s.isPrimeConfirmed(x)
	if err != nil {
		return PrimeResult{}, err
	}
	return PrimeResult{IsPrime: ok}, nil
}

// isPrimeConfirmed runs mpint.IsPrime 1+s.extraRounds times, each drawing
// fresh Miller-Rabin witnesses. Miller-Rabin only ever mistakes a
// composite for prime, never the reverse, so repeating the test on a
// candidate that already passed can only tighten the error bound.
func (s *Service) isPrimeConfirmed(x *mpint.Int) (bool, error) {
	for i := 0; i <= s.extraRounds; i++ {
		ok, err := mpint.IsPrime(x, s.rand)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// GenPrime generates a random nbits-bit prime, optionally a safe prime,
// then applies s.extraRounds additional confirmations atop mpint's own
// search before returning it.
func (s *Service) GenPrime(nbits int, safe bool) (Result, error) {
	p, err := mpint.GenPrime(nbits, safe, s.rand)
	if err != nil {
		return Result{}, err
	}
	if s.extraRounds > 0 {
		ok, err := s.isPrimeConfirmed(p)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{}, fmt.Errorf("GenPrime: candidate failed extra confirmation rounds")
		}
	}
	return render(p)
}

// Convert re-renders x in outputRadix.
func (s *Service) Convert(x *mpint.Int, outputRadix int) (ConvertResult, error) {
	if outputRadix <= 0 {
		outputRadix = 10
	}
	str, err := mpint.WriteString(x, outputRadix)
	if err != nil {
		return ConvertResult{}, err
	}
	return ConvertResult{Value: str, Radix: outputRadix}, nil
}
