package training

import (
	"time"

	"github.com/Tnecniv1/Calcul-Pixel/internal/training"
)

// sessionReadyMsg is sent when session creation and exercise generation
// complete.
type sessionReadyMsg struct {
	Err error
}

// answerMsg is sent after the runner processed a submitted answer.
type answerMsg struct {
	Result training.Result
	Err    error
}

// flushDoneMsg is sent when the batched observation submit returns.
type flushDoneMsg struct {
	Err error
}

// feedbackDoneMsg dismisses the per-answer feedback overlay.
type feedbackDoneMsg struct{}

// timerTickMsg updates the elapsed-time display every second.
type timerTickMsg time.Time
