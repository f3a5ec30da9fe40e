// Package trace records observational step traces for mpint's
// exponentiation and primality routines: one entry per sliding-window
// step of ExpMod, one entry per Miller-Rabin round. Recording never
// changes control flow or the memory-access pattern of the traced
// routine — a Sink is simply appended to after each step completes, the
// same way a flag- or register-change tracker sits beside an execute
// loop rather than inside it.
package trace

import "fmt"

// WindowStep is one step of ExpMod's sliding-window exponentiation: the
// window value consumed (0 during a lone squaring), how many squarings
// were applied before the table multiply, and whether a table multiply
// happened at all.
type WindowStep struct {
	Sequence    int
	WindowValue int
	WindowLen   int
	Squarings   int
	TableMul    bool
}

// RabinRound is one Miller-Rabin witness round: the base tested and
// whether that round passed (did not prove compositeness).
type RabinRound struct {
	Round   int
	Witness string // decimal rendering of the witness base
	Passed  bool
}

// Sink receives trace events. A nil *Sink (the zero value used via a nil
// pointer receiver) silently discards everything, so callers that don't
// want tracing overhead can pass nil without a branch at every call site.
type Sink struct {
	windowSteps []WindowStep
	rabinRounds []RabinRound
	nextWindow  int
	nextRound   int
}

// NewSink returns an empty, enabled Sink.
func NewSink() *Sink {
	return &Sink{}
}

// RecordWindowStep appends a sliding-window step. A nil Sink is a no-op.
func (s *Sink) RecordWindowStep(windowValue, windowLen, squarings int, tableMul bool) {
	if s == nil {
		return
	}
	s.windowSteps = append(s.windowSteps, WindowStep{
		Sequence:    s.nextWindow,
		WindowValue: windowValue,
		WindowLen:   windowLen,
		Squarings:   squarings,
		TableMul:    tableMul,
	})
	s.nextWindow++
}

// RecordRabinRound appends a Miller-Rabin round. A nil Sink is a no-op.
func (s *Sink) RecordRabinRound(witness string, passed bool) {
	if s == nil {
		return
	}
	s.rabinRounds = append(s.rabinRounds, RabinRound{
		Round:   s.nextRound,
		Witness: witness,
		Passed:  passed,
	})
	s.nextRound++
}

// WindowSteps returns the recorded sliding-window steps, in order.
func (s *Sink) WindowSteps() []WindowStep {
	if s == nil {
		return nil
	}
	return s.windowSteps
}

// RabinRounds returns the recorded Miller-Rabin rounds, in order.
func (s *Sink) RabinRounds() []RabinRound {
	if s == nil {
		return nil
	}
	return s.rabinRounds
}

// Reset clears all recorded events without discarding the Sink itself.
func (s *Sink) Reset() {
	if s == nil {
		return
	}
	s.windowSteps = s.windowSteps[:0]
	s.rabinRounds = s.rabinRounds[:0]
	s.nextWindow = 0
	s.nextRound = 0
}

// String renders a short human-readable summary, used by the console's
// trace panel.
func (s *Sink) String() string {
	if s == nil {
		return "(no trace)"
	}
	return fmt.Sprintf("%d window steps, %d Miller-Rabin rounds", len(s.windowSteps), len(s.rabinRounds))
}
