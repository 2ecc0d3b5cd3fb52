package results

import (
	"testing"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
)

func fp(v float64) *float64 { return &v }

func row(op, etat string, tempsSec float64) backend.ObservationRow {
	return backend.ObservationRow{Operation: op, Etat: etat, TempsSeconds: fp(tempsSec)}
}

func TestRowCorrect_EtatMarkerWins(t *testing.T) {
	r := backend.ObservationRow{Etat: "VRAI", Proposition: fp(1), Solution: fp(2)}
	if !RowCorrect(r) {
		t.Error("explicit VRAI must win over mismatched values")
	}

	r = backend.ObservationRow{Etat: "FAUX", Proposition: fp(2), Solution: fp(2)}
	if RowCorrect(r) {
		t.Error("explicit FAUX must win over matching values")
	}
}

func TestRowCorrect_FallbackEquality(t *testing.T) {
	r := backend.ObservationRow{Proposition: fp(7), Solution: fp(7)}
	if !RowCorrect(r) {
		t.Error("equal proposition/solution should be correct")
	}

	r = backend.ObservationRow{Proposition: fp(7)}
	if RowCorrect(r) {
		t.Error("missing solution never matches")
	}
}

func TestComputeMetrics_PartitionDropsUnknownOps(t *testing.T) {
	rows := []backend.ObservationRow{
		row("Addition", "VRAI", 2),
		row("addition", "FAUX", 4),
		row("Soustraction", "VRAI", 1),
		row("multiplication", "VRAI", 3),
		row("Division", "VRAI", 9), // dropped
		row("", "VRAI", 9),         // dropped
	}

	m := ComputeMetrics(rows)
	got := m.Addition.Count + m.Soustraction.Count + m.Multiplication.Count
	if got != 4 {
		t.Errorf("partitioned %d rows, want 4 of %d", got, len(rows))
	}
}

func TestComputeMetrics_SuccessRateBounds(t *testing.T) {
	m := ComputeMetrics([]backend.ObservationRow{
		row("Addition", "VRAI", 1),
		row("Addition", "VRAI", 1),
		row("Addition", "FAUX", 1),
	})
	if m.Addition.SuccessRate != 67 {
		t.Errorf("SuccessRate = %d, want 67", m.Addition.SuccessRate)
	}

	// Empty bucket is 0, never NaN.
	if m.Soustraction.SuccessRate != 0 || m.Soustraction.Count != 0 {
		t.Errorf("empty bucket = %+v, want zeroes", m.Soustraction)
	}
}

func TestComputeMetrics_AvgOverParseableOnly(t *testing.T) {
	rows := []backend.ObservationRow{
		{Operation: "Addition", Etat: "VRAI", TempsSeconds: fp(2)},
		{Operation: "Addition", Etat: "VRAI", TempsSeconds: fp(4)},
		{Operation: "Addition", Etat: "VRAI"}, // no time value
	}
	m := ComputeMetrics(rows)
	if m.Addition.AvgTimeSec != 3 {
		t.Errorf("AvgTimeSec = %v, want 3 over the two parseable rows", m.Addition.AvgTimeSec)
	}
}

func TestComputeMetrics_BarTimeDenominatorFloor(t *testing.T) {
	// All averages below 1: the denominator floors to 1, bars equal the raw averages.
	m := ComputeMetrics([]backend.ObservationRow{row("Addition", "VRAI", 0.5)})
	if m.Addition.BarTime != 0.5 {
		t.Errorf("BarTime = %v, want 0.5", m.Addition.BarTime)
	}

	m = ComputeMetrics([]backend.ObservationRow{
		row("Addition", "VRAI", 2),
		row("Soustraction", "VRAI", 8),
	})
	if m.Soustraction.BarTime != 1 || m.Addition.BarTime != 0.25 {
		t.Errorf("bars = %v / %v, want 1 / 0.25", m.Soustraction.BarTime, m.Addition.BarTime)
	}
}

func TestComputeBreakdown(t *testing.T) {
	rows := []backend.ObservationRow{
		{Operation: "Addition", Score: fp(10), BonusVitesse: fp(1.4), BonusMarge: fp(2)},
		{Operation: "Soustraction", Score: fp(5), BonusVitesse: fp(0.4)},
	}
	b := ComputeBreakdown(rows)
	if b.Base != 15 || b.Vitesse != 2 || b.Precision != 2 || b.Total != 19 {
		t.Errorf("breakdown = %+v", b)
	}
}

func TestCountMistakes(t *testing.T) {
	rows := []backend.ObservationRow{
		row("Addition", "VRAI", 1),
		row("Addition", "FAUX", 1),
		row("Multiplication", "FAUX", 1),
	}
	if got := CountMistakes(rows); got != 2 {
		t.Errorf("CountMistakes = %d, want 2", got)
	}
}
