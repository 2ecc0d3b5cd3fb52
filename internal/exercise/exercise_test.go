package exercise

import (
	"math"
	"testing"
)

func TestParseOperation_Prefixes(t *testing.T) {
	tests := []struct {
		raw  string
		want Operation
		ok   bool
	}{
		{"Addition", Addition, true},
		{"addition", Addition, true},
		{"ADD", Addition, true},
		{"Soustraction", Soustraction, true},
		{"sub", Soustraction, true},
		{"  soustr  ", Soustraction, true},
		{"Multiplication", Multiplication, true},
		{"mult", Multiplication, true},
		{"Division", "", false},
		{"", "", false},
		{"  ", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseOperation(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseOperation(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExpected_DerivedFromOperands(t *testing.T) {
	tests := []struct {
		op   Operation
		a, b float64
		want float64
	}{
		{Addition, 7, 5, 12},
		{Soustraction, 7, 5, 2},
		{Multiplication, 7, 5, 35},
	}

	for _, tt := range tests {
		e := Exercise{Operation: tt.op, OperandOne: tt.a, OperandTwo: tt.b}
		if got := e.Expected(); got != tt.want {
			t.Errorf("Expected() %s %v,%v = %v, want %v", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestExpected_ServerSolutionWins(t *testing.T) {
	sol := 99.0
	e := Exercise{Operation: Addition, OperandOne: 2, OperandTwo: 2, Solution: &sol}

	if got := e.Expected(); got != 99 {
		t.Errorf("Expected() = %v, want server-supplied 99", got)
	}
}

func TestEvaluate_Correct(t *testing.T) {
	e := Exercise{Operation: Multiplication, OperandOne: 6, OperandTwo: 7}

	v, correct := e.Evaluate("42")
	if !correct {
		t.Error("expected correct")
	}
	if v != 42 {
		t.Errorf("value = %v, want 42", v)
	}
}

func TestEvaluate_NonNumericNeverPanics(t *testing.T) {
	e := Exercise{Operation: Addition, OperandOne: 1, OperandTwo: 1}

	for _, raw := range []string{"", "abc", "1..2", "NaN", "Inf", "-Inf", "  "} {
		v, correct := e.Evaluate(raw)
		if correct {
			t.Errorf("Evaluate(%q) reported correct", raw)
		}
		if v != 0 {
			t.Errorf("Evaluate(%q) value = %v, want 0", raw, v)
		}
	}
}

func TestParseAnswer_CommaDecimal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"3,5", 3.5, true},
		{"-0,25", -0.25, true},
		{" 1,0 ", 1, true},
		{"3,5,0", 0, false},
		{",", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAnswer(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAnswer(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEvaluate_CommaDecimalCorrect(t *testing.T) {
	e := Exercise{Operation: Addition, OperandOne: 1.5, OperandTwo: 2}

	if _, correct := e.Evaluate("3,5"); !correct {
		t.Error("comma decimal must evaluate like a point decimal")
	}
}

func TestEvaluate_ExactEquality(t *testing.T) {
	e := Exercise{Operation: Soustraction, OperandOne: 10, OperandTwo: 4}

	if _, correct := e.Evaluate("6.0001"); correct {
		t.Error("near miss must be incorrect")
	}
	if _, correct := e.Evaluate("6.0"); !correct {
		t.Error("6.0 parses to the exact expected value")
	}
}

func TestNewMistake_PreservesRawValue(t *testing.T) {
	e := Exercise{Operation: Addition, OperandOne: 3, OperandTwo: 4, ParcoursID: 2}

	m := NewMistake(e, 8, true)
	if m.UserAnswer != 8 || m.Expected != 7 {
		t.Errorf("mistake = %+v, want user 8 expected 7", m)
	}

	m = NewMistake(e, 0, false)
	if !math.IsNaN(m.UserAnswer) {
		t.Errorf("unparseable answer should be NaN, got %v", m.UserAnswer)
	}
}

func TestText(t *testing.T) {
	e := Exercise{Operation: Multiplication, OperandOne: 6, OperandTwo: 9}
	if got := e.Text(); got != "6 × 9" {
		t.Errorf("Text() = %q", got)
	}
}
