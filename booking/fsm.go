// Package booking implements the appointment booking workflow: the wizard
// state machine patients walk through and the persist-then-notify transaction
// that turns a finished draft into a stored appointment.
package booking

// State represents the current state of a booking dialog.
type State string

const (
	StateClosed          State = "closed"
	StateSelectingSlot   State = "selecting_slot"
	StateEnteringDetails State = "entering_details"
	StateReviewing       State = "reviewing"
	StateSubmitting      State = "submitting"
	StateCompleted       State = "completed"
	StateFailed          State = "failed"
)

// FSM manages state transitions for the booking dialog. Field guards (a slot
// must be picked before details, details before review) live in the Wizard;
// the FSM only knows which edges exist.
type FSM struct {
	transitions map[State][]State
}

// NewFSM creates the booking FSM with its predefined transitions.
func NewFSM() *FSM {
	return &FSM{
		transitions: map[State][]State{
			StateClosed:          {StateSelectingSlot},
			StateSelectingSlot:   {StateEnteringDetails, StateClosed},
			StateEnteringDetails: {StateReviewing, StateSelectingSlot, StateClosed},
			StateReviewing:       {StateSubmitting, StateEnteringDetails, StateClosed},
			// No edits while a submission is in flight; only an outcome
			// or an explicit close leaves this state.
			StateSubmitting: {StateCompleted, StateFailed, StateClosed},
			StateCompleted:  {StateClosed},
			// A failed submission keeps the draft, so the patient may
			// retry (confirm again) or go back and edit.
			StateFailed: {StateSubmitting, StateEnteringDetails, StateClosed},
		},
	}
}

// CanTransition checks if the transition is allowed.
func (f *FSM) CanTransition(from, to State) bool {
	for _, s := range f.transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// back maps a state to the step it returns to, if back navigation exists.
func back(from State) (State, bool) {
	switch from {
	case StateEnteringDetails:
		return StateSelectingSlot, true
	case StateReviewing:
		return StateEnteringDetails, true
	default:
		return "", false
	}
}
