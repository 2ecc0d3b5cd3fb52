// Package results reconciles a finished session against the backend's
// authoritative observation rows: per-operation metrics, the score
// breakdown, and the mistake count that gates the review offer.
package results

import (
	"math"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/exercise"
)

// OperationMetrics aggregates one operation bucket.
type OperationMetrics struct {
	SuccessRate int     // percent, rounded; 0 for an empty bucket
	AvgTimeSec  float64 // mean over rows with a parseable time, 0 if none
	ErrorMargin float64 // mean over rows with a parseable margin, 0 if none
	Count       int
	BarTime     float64 // 0..1, this bucket's avg time over the max bucket avg
}

// Metrics holds the three operation buckets. Rows with unrecognized
// operation labels are dropped, so the buckets partition at most the
// full row set.
type Metrics struct {
	Addition       OperationMetrics
	Soustraction   OperationMetrics
	Multiplication OperationMetrics
}

// ByOperation returns the bucket for op.
func (m Metrics) ByOperation(op exercise.Operation) OperationMetrics {
	switch op {
	case exercise.Addition:
		return m.Addition
	case exercise.Soustraction:
		return m.Soustraction
	default:
		return m.Multiplication
	}
}

// ScoreBreakdown is the additive score decomposition summed over every
// row of the session.
type ScoreBreakdown struct {
	Base      int
	Vitesse   int
	Precision int
	Total     int
}

// RowCorrect evaluates a row's correctness: the explicit Etat marker
// when present, else string-form equality of proposition and solution.
// A missing solution never equals anything.
func RowCorrect(r backend.ObservationRow) bool {
	switch r.Etat {
	case "VRAI":
		return true
	case "FAUX":
		return false
	}
	if r.Proposition == nil || r.Solution == nil {
		return false
	}
	return *r.Proposition == *r.Solution
}

// ComputeMetrics folds the authoritative rows into per-operation
// buckets and derives the relative time bars.
func ComputeMetrics(rows []backend.ObservationRow) Metrics {
	buckets := map[exercise.Operation][]backend.ObservationRow{}
	for _, r := range rows {
		op, ok := exercise.ParseOperation(r.Operation)
		if !ok {
			continue
		}
		buckets[op] = append(buckets[op], r)
	}

	m := Metrics{
		Addition:       computeBucket(buckets[exercise.Addition]),
		Soustraction:   computeBucket(buckets[exercise.Soustraction]),
		Multiplication: computeBucket(buckets[exercise.Multiplication]),
	}

	// Relative time bars; the denominator is floored to 1 so an
	// all-zero session divides cleanly.
	maxAvg := math.Max(1, math.Max(m.Addition.AvgTimeSec,
		math.Max(m.Soustraction.AvgTimeSec, m.Multiplication.AvgTimeSec)))
	m.Addition.BarTime = m.Addition.AvgTimeSec / maxAvg
	m.Soustraction.BarTime = m.Soustraction.AvgTimeSec / maxAvg
	m.Multiplication.BarTime = m.Multiplication.AvgTimeSec / maxAvg

	return m
}

func computeBucket(rows []backend.ObservationRow) OperationMetrics {
	total := len(rows)
	if total == 0 {
		return OperationMetrics{}
	}

	correct := 0
	var times, margins []float64
	for _, r := range rows {
		if RowCorrect(r) {
			correct++
		}
		if r.TempsSeconds != nil {
			times = append(times, *r.TempsSeconds)
		}
		if r.MargeErreur != nil {
			margins = append(margins, *r.MargeErreur)
		}
	}

	return OperationMetrics{
		SuccessRate: int(math.Round(float64(correct) / float64(total) * 100)),
		AvgTimeSec:  mean(times),
		ErrorMargin: mean(margins),
		Count:       total,
	}
}

// SumSessionScore totals the per-row base score.
func SumSessionScore(rows []backend.ObservationRow) int {
	sum := 0.0
	for _, r := range rows {
		if r.Score != nil {
			sum += *r.Score
		}
	}
	return int(math.Round(sum))
}

// ComputeBreakdown sums base score, speed bonus, and precision bonus
// across all rows. Only meaningful for a non-empty row set.
func ComputeBreakdown(rows []backend.ObservationRow) ScoreBreakdown {
	var base, vitesse, precision float64
	for _, r := range rows {
		if r.Score != nil {
			base += *r.Score
		}
		if r.BonusVitesse != nil {
			vitesse += *r.BonusVitesse
		}
		if r.BonusMarge != nil {
			precision += *r.BonusMarge
		}
	}
	return ScoreBreakdown{
		Base:      int(math.Round(base)),
		Vitesse:   int(math.Round(vitesse)),
		Precision: int(math.Round(precision)),
		Total:     int(math.Round(base + vitesse + precision)),
	}
}

// CountMistakes returns how many rows fail the correctness test.
func CountMistakes(rows []backend.ObservationRow) int {
	n := 0
	for _, r := range rows {
		if !RowCorrect(r) {
			n++
		}
	}
	return n
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
