package exercise

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operation is one of the three drill operation kinds.
type Operation string

const (
	Addition       Operation = "Addition"
	Soustraction   Operation = "Soustraction"
	Multiplication Operation = "Multiplication"
)

// ParseOperation normalizes a raw operation label from the backend.
// Matching is a case-insensitive prefix check: "add…" is Addition,
// "sou…" or "sub…" is Soustraction, "mul…" is Multiplication.
// Anything else returns false; callers drop such rows from metrics.
func ParseOperation(raw string) (Operation, bool) {
	o := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(o, "add"):
		return Addition, true
	case strings.HasPrefix(o, "sou"), strings.HasPrefix(o, "sub"):
		return Soustraction, true
	case strings.HasPrefix(o, "mul"):
		return Multiplication, true
	}
	return "", false
}

// Symbol returns the display symbol for an operation label.
func Symbol(raw string) string {
	op, ok := ParseOperation(raw)
	if !ok {
		return "?"
	}
	switch op {
	case Addition:
		return "+"
	case Soustraction:
		return "-"
	default:
		return "×"
	}
}

// Exercise is one arithmetic drill instance. Immutable once generated
// for a session.
type Exercise struct {
	Operation  Operation
	OperandOne float64
	OperandTwo float64

	// Solution is the server-supplied expected answer, when present.
	Solution *float64

	// ParcoursID identifies the course/track the exercise belongs to.
	ParcoursID int
}

// Expected returns the expected solution: the server-supplied value when
// present, otherwise derived from the operation semantics.
func (e Exercise) Expected() float64 {
	if e.Solution != nil {
		return *e.Solution
	}
	switch e.Operation {
	case Addition:
		return e.OperandOne + e.OperandTwo
	case Soustraction:
		return e.OperandOne - e.OperandTwo
	default:
		return e.OperandOne * e.OperandTwo
	}
}

// Text renders the exercise as a prompt string.
func (e Exercise) Text() string {
	return fmt.Sprintf("%s %s %s",
		trimFloat(e.OperandOne), Symbol(string(e.Operation)), trimFloat(e.OperandTwo))
}

// ParseAnswer parses a raw user answer. A comma decimal separator reads
// as a point. The second return is false when the input is not a finite
// number; parse failures are never an error condition, they evaluate to
// incorrect downstream.
func ParseAnswer(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Evaluate checks a raw answer against the exercise. Correctness is exact
// equality of the parsed value and the expected solution; unparseable
// input is incorrect.
func (e Exercise) Evaluate(raw string) (value float64, correct bool) {
	v, ok := ParseAnswer(raw)
	if !ok {
		return 0, false
	}
	return v, v == e.Expected()
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
