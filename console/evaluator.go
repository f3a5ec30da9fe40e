package console

import (
	"crypto/rand"
	"fmt"

	"github.com/ardentnum/mpint/mpint"
	"github.com/ardentnum/mpint/mpint/trace"
)

// Evaluator evaluates console expressions against mpint, keeping a value
// history so later expressions can reference earlier results via $1, $2,
// the same way the teacher's ExpressionEvaluator lets debugger expressions
// reference earlier watch values.
type Evaluator struct {
	rand         mpint.Rand
	valueHistory []*mpint.Int
	Sink         *trace.Sink
	montCache    map[string]*mpint.MontgomeryCache
}

// NewEvaluator creates an Evaluator. A nil rand defaults to crypto/rand.
func NewEvaluator(r mpint.Rand) *Evaluator {
	if r == nil {
		r = rand.Reader
	}
	return &Evaluator{
		rand:      r,
		montCache: make(map[string]*mpint.MontgomeryCache),
	}
}

// EvaluateExpression lexes, parses and evaluates expr, recording the
// result in the value history so it becomes available as $<n>.
func (e *Evaluator) EvaluateExpression(expr string) (*mpint.Int, error) {
	tokens := NewLexer(expr).TokenizeAll()
	n, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}
	result, err := n.eval(e)
	if err != nil {
		return nil, err
	}
	e.valueHistory = append(e.valueHistory, result)
	return result, nil
}

// GetValue returns a value from history by its 1-based number.
func (e *Evaluator) GetValue(number int) (*mpint.Int, error) {
	if number < 1 || number > len(e.valueHistory) {
		return nil, fmt.Errorf("value $%d not in history", number)
	}
	return e.valueHistory[number-1], nil
}

// ValueCount returns how many results have been recorded.
func (e *Evaluator) ValueCount() int { return len(e.valueHistory) }

// Reset clears the value history and cached Montgomery factors.
func (e *Evaluator) Reset() {
	e.valueHistory = e.valueHistory[:0]
	e.montCache = make(map[string]*mpint.MontgomeryCache)
}

func (n binaryNode) eval(e *Evaluator) (*mpint.Int, error) {
	// "a ^ b mod n" is evaluated as a single modular exponentiation rather
	// than materializing a^b first: the sizes involved in public-key
	// cryptography make the literal power uncomputable in practice.
	if n.op == "mod" {
		if pow, ok := n.left.(binaryNode); ok && pow.op == "^" {
			a, err := pow.left.eval(e)
			if err != nil {
				return nil, err
			}
			exp, err := pow.right.eval(e)
			if err != nil {
				return nil, err
			}
			mod, err := n.right.eval(e)
			if err != nil {
				return nil, err
			}
			return e.expMod(a, exp, mod)
		}
	}

	left, err := n.left.eval(e)
	if err != nil {
		return nil, err
	}
	right, err := n.right.eval(e)
	if err != nil {
		return nil, err
	}

	z := new(mpint.Int)
	switch n.op {
	case "+":
		mpint.Add(z, left, right)
	case "-":
		mpint.Sub(z, left, right)
	case "*":
		mpint.Mul(z, left, right)
	case "/":
		if err := mpint.DivMod(z, new(mpint.Int), left, right); err != nil {
			return nil, err
		}
	case "%":
		var r mpint.Int
		if err := mpint.DivMod(new(mpint.Int), &r, left, right); err != nil {
			return nil, err
		}
		z = &r
	case "mod":
		if err := mpint.Mod(z, left, right); err != nil {
			return nil, err
		}
	case "^":
		if err := naivePow(z, left, right); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown operator: %s", n.op)
	}
	return z, nil
}

// naivePow computes x**k for small, non-cryptographic exponents, rejecting
// anything large enough to be a modular-exponentiation mistake.
func naivePow(z, x, k *mpint.Int) error {
	if k.Sign() < 0 {
		return fmt.Errorf("^: negative exponent not supported outside modular exponentiation")
	}
	const maxExponent = 1 << 20
	if mpint.CmpInt(k, maxExponent) > 0 {
		return fmt.Errorf("^: exponent too large for direct exponentiation, use \"mod\" for modular exponentiation")
	}
	exp := k.Int64()
	z.SetInt64(1)
	base := new(mpint.Int).Set(x)
	for i := int64(0); i < exp; i++ {
		mpint.Mul(z, z, base)
	}
	return nil
}

func (e *Evaluator) expMod(a, exp, n *mpint.Int) (*mpint.Int, error) {
	key := n.String()
	cache, ok := e.montCache[key]
	if !ok {
		cache = new(mpint.MontgomeryCache)
		e.montCache[key] = cache
	}
	z := new(mpint.Int)
	if err := mpint.ExpModTraced(z, a, exp, n, cache, e.Sink); err != nil {
		return nil, err
	}
	return z, nil
}

func (n callNode) eval(e *Evaluator) (*mpint.Int, error) {
	args := make([]*mpint.Int, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(e)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	z := new(mpint.Int)
	switch n.name {
	case "add":
		if err := requireArgs(n.name, args, 2); err != nil {
			return nil, err
		}
		mpint.Add(z, args[0], args[1])
	case "sub":
		if err := requireArgs(n.name, args, 2); err != nil {
			return nil, err
		}
		mpint.Sub(z, args[0], args[1])
	case "mul":
		if err := requireArgs(n.name, args, 2); err != nil {
			return nil, err
		}
		mpint.Mul(z, args[0], args[1])
	case "gcd":
		if err := requireArgs(n.name, args, 2); err != nil {
			return nil, err
		}
		mpint.GCD(z, args[0], args[1])
	case "invmod":
		if err := requireArgs(n.name, args, 2); err != nil {
			return nil, err
		}
		if err := mpint.InvMod(z, args[0], args[1]); err != nil {
			return nil, err
		}
	case "modexp", "expmod":
		if err := requireArgs(n.name, args, 3); err != nil {
			return nil, err
		}
		return e.expMod(args[0], args[1], args[2])
	case "isprime":
		if err := requireArgs(n.name, args, 1); err != nil {
			return nil, err
		}
		ok, err := mpint.IsPrimeTraced(args[0], e.rand, e.Sink)
		if err != nil {
			return nil, err
		}
		if ok {
			z.SetInt64(1)
		}
	case "genprime":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("genprime expects 1 or 2 arguments, got %d", len(args))
		}
		nbits, err := intArg(args[0])
		if err != nil {
			return nil, err
		}
		safe := len(args) == 2 && args[1].Sign() != 0
		p, err := mpint.GenPrime(nbits, safe, e.rand)
		if err != nil {
			return nil, err
		}
		z = p
	default:
		return nil, fmt.Errorf("unknown function: %s", n.name)
	}
	return z, nil
}

func requireArgs(name string, args []*mpint.Int, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func intArg(x *mpint.Int) (int, error) {
	v := x.Int64()
	if v <= 0 || v > (1<<20) {
		return 0, fmt.Errorf("argument out of range: %d", v)
	}
	return int(v), nil
}
