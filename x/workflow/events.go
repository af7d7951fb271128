package workflow

import "fmt"

// KindPhaseChanged is the kind of the PhaseChanged notification.
const KindPhaseChanged = "phase_changed"

// PhaseChanged is emitted on every workflow advancement, including the one
// caused by the tally.
type PhaseChanged struct {
	Previous Phase
	Next     Phase
}

func (PhaseChanged) Kind() string {
	return KindPhaseChanged
}

func (e PhaseChanged) String() string {
	return fmt.Sprintf("phase changed from %s to %s", e.Previous, e.Next)
}
