// Package console implements an interactive expression console for mpint:
// a REPL that evaluates expressions such as "3^7 mod 13", "gcd(462,1071)",
// "isprime(2^521-1)" and "invmod(3,11)" and keeps a scrollback of results
// addressable as $1, $2, ... It is structurally the teacher's debugger
// package repurposed from inspecting a running ARM machine to inspecting
// mpint arithmetic: the same expression-lexer/parser shape, the same
// command history, and the same tview panel layout, pointed at a
// different domain.
package console

import (
	"fmt"

	"github.com/ardentnum/mpint/mpint/trace"
)

// Console wires an Evaluator and a History together and is the model
// half of the TUI (see TUI in tui.go). It can also be driven headlessly,
// which is what the package's tests do.
type Console struct {
	Eval    *Evaluator
	History *History
	lastErr error
}

// NewConsole creates a Console with a fresh Evaluator and a History sized
// to historySize (<=0 uses the Evaluator/History defaults).
func NewConsole(historySize int) *Console {
	return &Console{
		Eval:    NewEvaluator(nil),
		History: NewHistory(historySize),
	}
}

// EnableTrace turns on sliding-window/Miller-Rabin tracing for subsequent
// expressions.
func (c *Console) EnableTrace() *trace.Sink {
	c.Eval.Sink = trace.NewSink()
	return c.Eval.Sink
}

// Execute evaluates one line of input, recording it in history regardless
// of whether it succeeded, and returns a rendering of the result or the
// error that occurred.
func (c *Console) Execute(line string) (string, error) {
	c.History.Add(line)
	if c.Eval.Sink != nil {
		c.Eval.Sink.Reset()
	}

	result, err := c.Eval.EvaluateExpression(line)
	if err != nil {
		c.lastErr = err
		return "", err
	}
	c.lastErr = nil

	return fmt.Sprintf("$%d = %s", c.Eval.ValueCount(), result.String()), nil
}

// LastError returns the error from the most recent Execute call, if any.
func (c *Console) LastError() error { return c.lastErr }
