package quote

import "errors"

// Wizard steps, in order.
const (
	StepDetails  = 1
	StepMenu     = 2
	StepServices = 3
	StepReview   = 4
	StepConfirm  = 5
)

// ErrInvalidJump is returned for a direct jump that is not "review step to
// an earlier step".
var ErrInvalidJump = errors.New("jump only allowed from the review step to an earlier step")

// Wizard is the step controller behind the quote form. Leaving step 1
// requires the gating fields to validate; everything after that moves
// freely in both directions.
type Wizard struct {
	step int
	form *FormFields
	exit func()
}

// NewWizard creates a wizard at step 1. exit is invoked when the user backs
// out of step 1; the wizard itself stays put and defines nothing beyond the
// callback.
func NewWizard(form *FormFields, exit func()) *Wizard {
	return &Wizard{step: StepDetails, form: form, exit: exit}
}

// Step returns the current step (1..5).
func (w *Wizard) Step() int {
	return w.step
}

// Next advances one step. From step 1 it first runs the gate check: on
// failure the wizard stays at step 1 and the populated error map is the
// observable outcome. At the last step Next is a no-op. Returns whether the
// step changed.
func (w *Wizard) Next() bool {
	switch {
	case w.step == StepDetails:
		if _, ok := w.form.ValidateAll(); !ok {
			return false
		}
		w.step = StepMenu
		return true
	case w.step < StepConfirm:
		w.step++
		return true
	}
	return false
}

// Back moves one step back. At step 1 it delegates to the exit callback
// instead of moving.
func (w *Wizard) Back() {
	if w.step == StepDetails {
		if w.exit != nil {
			w.exit()
		}
		return
	}
	w.step--
}

// JumpTo sets the step directly. Only the review step may jump, and only
// backwards; no re-validation happens on the way down. Reaching review
// already implies the step-1 gate passed at least once.
func (w *Wizard) JumpTo(target int) error {
	if w.step != StepReview || target < StepDetails || target >= w.step {
		return ErrInvalidJump
	}
	w.step = target
	return nil
}
