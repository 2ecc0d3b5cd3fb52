package exercise

import "math"

// CorrectionNone is the correction-state marker stamped on every freshly
// submitted observation. The review flow creates separate correction
// records server-side; it never mutates the original row.
const CorrectionNone = "NON"

// Observation is one submitted attempt, buffered client-side during a
// session and made durable by the batch flush.
type Observation struct {
	EntrainementID int
	ParcoursID     int
	OperandOne     float64
	OperandTwo     float64
	Operation      Operation
	Proposition    float64
	TempsSeconds   int
	Correction     string

	// Parsed is false when the raw input was not a finite number; the
	// Proposition is then a placeholder zero and the row must evaluate
	// to incorrect regardless of the true solution.
	Parsed bool
}

// Mistake is a client-only record of an incorrect answer, kept to enrich
// the review display. The server's review item list remains the truth for
// what is still wrong.
type Mistake struct {
	Operation  Operation
	ParcoursID int
	Expected   float64
	UserAnswer float64 // NaN when the raw input did not parse
	OperandOne float64
	OperandTwo float64
}

// NewMistake builds a Mistake from an exercise and the raw user value.
// When parsed is false the user answer is preserved as NaN.
func NewMistake(e Exercise, value float64, parsed bool) Mistake {
	if !parsed {
		value = math.NaN()
	}
	return Mistake{
		Operation:  e.Operation,
		ParcoursID: e.ParcoursID,
		Expected:   e.Expected(),
		UserAnswer: value,
		OperandOne: e.OperandOne,
		OperandTwo: e.OperandTwo,
	}
}
