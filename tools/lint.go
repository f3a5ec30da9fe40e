package tools

import (
	"crypto/rand"
	"fmt"

	"github.com/ardentnum/mpint/mpint"
	"github.com/ardentnum/mpint/vectorfile"
)

// LintLevel represents the severity of a lint finding.
type LintLevel int

const (
	LintError   LintLevel = iota // A vector's computed result disagrees with its expected value
	LintWarning                  // A value entry doesn't round-trip through its own radix
	LintInfo                     // Informational notes, e.g. an unused radix tag
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Finding is a single lint result, the numeric analog of the teacher's
// assembly LintIssue.
type Finding struct {
	Level   LintLevel
	Line    int
	Message string
	Code    string
}

func (f *Finding) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", f.Line, f.Level, f.Message, f.Code)
}

// LintVectors checks every entry of a vectorfile-shaped file against the
// round-trip and expected-result checks: a value entry must
// render back to itself through WriteString/ReadString in its own radix,
// and an operation vector with an expected result must match what mpint
// actually computes.
func LintVectors(path string) ([]Finding, error) {
	entries, err := vectorfile.Load(path)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, e := range entries {
		switch e.Kind {
		case vectorfile.KindValue:
			findings = append(findings, checkRoundTrip(e)...)
		case vectorfile.KindVector:
			findings = append(findings, checkVector(e)...)
		}
	}
	return findings, nil
}

func checkRoundTrip(e vectorfile.Entry) []Finding {
	rendered, err := mpint.WriteString(e.Value, e.Radix)
	if err != nil {
		return []Finding{{Level: LintError, Line: e.Line, Message: err.Error(), Code: "WRITE_FAILED"}}
	}
	again := new(mpint.Int)
	if err := mpint.ReadString(again, rendered, e.Radix); err != nil {
		return []Finding{{Level: LintError, Line: e.Line, Message: err.Error(), Code: "READ_FAILED"}}
	}
	if mpint.Cmp(again, e.Value) != 0 {
		return []Finding{{
			Level:   LintWarning,
			Line:    e.Line,
			Message: fmt.Sprintf("value does not round-trip through radix %d: rendered %q", e.Radix, rendered),
			Code:    "ROUNDTRIP_MISMATCH",
		}}
	}
	return nil
}

func checkVector(e vectorfile.Entry) []Finding {
	if !e.HasExpected {
		return nil
	}
	got, err := evalVector(e.Op, e.Args)
	if err != nil {
		return []Finding{{Level: LintError, Line: e.Line, Message: err.Error(), Code: "EVAL_FAILED"}}
	}
	if mpint.Cmp(got, e.Expected) != 0 {
		gotStr, _ := mpint.WriteString(got, 10)
		return []Finding{{
			Level:   LintError,
			Line:    e.Line,
			Message: fmt.Sprintf("%s: expected %v, got %s", e.Op, e.Expected, gotStr),
			Code:    "VECTOR_MISMATCH",
		}}
	}
	return nil
}

// evalVector dispatches a vector-file operation name to the mpint
// function it names, mirroring spec.md §4's named operations. isprime's
// result is rendered as 1 (prime) or 0 (composite) so it fits the same
// *mpint.Int comparison path as every other operation.
func evalVector(op string, args []*mpint.Int) (*mpint.Int, error) {
	z := new(mpint.Int)
	switch op {
	case "add":
		if len(args) != 2 {
			return nil, fmt.Errorf("add takes 2 arguments, got %d", len(args))
		}
		return mpint.Add(z, args[0], args[1]), nil
	case "sub":
		if len(args) != 2 {
			return nil, fmt.Errorf("sub takes 2 arguments, got %d", len(args))
		}
		return mpint.Sub(z, args[0], args[1]), nil
	case "mul":
		if len(args) != 2 {
			return nil, fmt.Errorf("mul takes 2 arguments, got %d", len(args))
		}
		return mpint.Mul(z, args[0], args[1]), nil
	case "divmod":
		if len(args) != 2 {
			return nil, fmt.Errorf("divmod takes 2 arguments, got %d", len(args))
		}
		r := new(mpint.Int)
		if err := mpint.DivMod(z, r, args[0], args[1]); err != nil {
			return nil, err
		}
		return z, nil
	case "mod":
		if len(args) != 2 {
			return nil, fmt.Errorf("mod takes 2 arguments, got %d", len(args))
		}
		if err := mpint.Mod(z, args[0], args[1]); err != nil {
			return nil, err
		}
		return z, nil
	case "gcd":
		if len(args) != 2 {
			return nil, fmt.Errorf("gcd takes 2 arguments, got %d", len(args))
		}
		return mpint.GCD(z, args[0], args[1]), nil
	case "invmod":
		if len(args) != 2 {
			return nil, fmt.Errorf("invmod takes 2 arguments, got %d", len(args))
		}
		if err := mpint.InvMod(z, args[0], args[1]); err != nil {
			return nil, err
		}
		return z, nil
	case "modexp":
		if len(args) != 3 {
			return nil, fmt.Errorf("modexp takes 3 arguments, got %d", len(args))
		}
		if err := mpint.ExpMod(z, args[0], args[1], args[2], nil); err != nil {
			return nil, err
		}
		return z, nil
	case "isprime":
		if len(args) != 1 {
			return nil, fmt.Errorf("isprime takes 1 argument, got %d", len(args))
		}
		prime, err := mpint.IsPrime(args[0], rand.Reader)
		if err != nil {
			return nil, err
		}
		if prime {
			return mpint.NewInt(1), nil
		}
		return mpint.NewInt(0), nil
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}
