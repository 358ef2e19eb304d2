package quote

import "testing"

func TestWizardGateRefusesInvalidForm(t *testing.T) {
	f := validForm()
	f.Values[FieldCustomerPhone] = "123"
	w := NewWizard(f, nil)

	if w.Next() {
		t.Fatal("Next() advanced past step 1 with an invalid phone")
	}
	if w.Step() != StepDetails {
		t.Errorf("Step() = %d, want %d", w.Step(), StepDetails)
	}
	if f.Errors[FieldCustomerPhone] == "" {
		t.Error("gate check did not populate the error map")
	}

	f.Values[FieldCustomerPhone] = "0901234567"
	if !w.Next() {
		t.Fatal("Next() refused a corrected form")
	}
	if w.Step() != StepMenu {
		t.Errorf("Step() = %d, want %d", w.Step(), StepMenu)
	}
}

func TestWizardForwardIsUnconditionalAfterGate(t *testing.T) {
	w := NewWizard(validForm(), nil)

	for want := StepMenu; want <= StepConfirm; want++ {
		if !w.Next() {
			t.Fatalf("Next() stuck at %d", w.Step())
		}
		if w.Step() != want {
			t.Fatalf("Step() = %d, want %d", w.Step(), want)
		}
	}

	// Terminal for forward movement.
	if w.Next() {
		t.Error("Next() at the last step should be a no-op")
	}
	if w.Step() != StepConfirm {
		t.Errorf("Step() = %d after no-op Next, want %d", w.Step(), StepConfirm)
	}
}

func TestWizardBack(t *testing.T) {
	w := NewWizard(validForm(), nil)
	w.Next()
	w.Next()

	w.Back()
	if w.Step() != StepMenu {
		t.Errorf("Step() = %d, want %d", w.Step(), StepMenu)
	}
}

func TestWizardBackAtStepOneExits(t *testing.T) {
	exited := false
	w := NewWizard(validForm(), func() { exited = true })

	w.Back()
	if !exited {
		t.Error("exit callback not invoked")
	}
	if w.Step() != StepDetails {
		t.Errorf("Step() = %d, wizard itself must stay at step 1", w.Step())
	}
}

func TestWizardJumpFromReview(t *testing.T) {
	w := NewWizard(validForm(), nil)
	for w.Step() != StepReview {
		w.Next()
	}

	if err := w.JumpTo(StepMenu); err != nil {
		t.Fatalf("JumpTo(StepMenu) from review: %v", err)
	}
	if w.Step() != StepMenu {
		t.Errorf("Step() = %d, want %d", w.Step(), StepMenu)
	}
}

func TestWizardJumpRejected(t *testing.T) {
	w := NewWizard(validForm(), nil)

	// Not at review.
	if err := w.JumpTo(StepDetails); err == nil {
		t.Error("JumpTo allowed from step 1")
	}

	for w.Step() != StepReview {
		w.Next()
	}

	// Forward and self jumps are refused even at review.
	if err := w.JumpTo(StepConfirm); err == nil {
		t.Error("forward jump allowed")
	}
	if err := w.JumpTo(StepReview); err == nil {
		t.Error("self jump allowed")
	}
	if err := w.JumpTo(0); err == nil {
		t.Error("jump below step 1 allowed")
	}
}

func TestWizardNoRevalidationOnJumpBack(t *testing.T) {
	f := validForm()
	w := NewWizard(f, nil)
	for w.Step() != StepReview {
		w.Next()
	}

	// Break a gating field, then jump back: no gate runs on the way down.
	f.Values[FieldCustomerPhone] = "123"
	if err := w.JumpTo(StepServices); err != nil {
		t.Fatalf("JumpTo: %v", err)
	}
	if w.Step() != StepServices {
		t.Errorf("Step() = %d, want %d", w.Step(), StepServices)
	}
}
