package training

import "github.com/Tnecniv1/Calcul-Pixel/internal/exercise"

// Buffer accumulates observation records during a session. It is
// append-only and ordered; records are never mutated or reordered after
// append. Only the Runner touches it.
type Buffer struct {
	obs []exercise.Observation
}

// Append adds one observation at the end.
func (b *Buffer) Append(o exercise.Observation) {
	b.obs = append(b.obs, o)
}

// Len returns the number of buffered observations.
func (b *Buffer) Len() int {
	return len(b.obs)
}

// DrainAll removes and returns the full sequence. Called exactly once,
// at session end, immediately before the batch flush.
func (b *Buffer) DrainAll() []exercise.Observation {
	out := b.obs
	b.obs = nil
	return out
}
