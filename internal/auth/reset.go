package auth

import (
	"context"
)

// Reset wizard steps. Advancement is strictly linear; closing the wizard
// resets it to the first step.
const (
	ResetStepEmail = iota + 1
	ResetStepCode
	ResetStepPassword
)

// ResetWizard is the three-step forgot-password flow.
type ResetWizard struct {
	svc   *Service
	step  int
	email string
}

func NewResetWizard(svc *Service) *ResetWizard {
	return &ResetWizard{svc: svc, step: ResetStepEmail}
}

func (w *ResetWizard) Step() int {
	return w.step
}

// SubmitEmail validates the address and advances to the code step. The
// "sent" code is cosmetic, as in the source.
func (w *ResetWizard) SubmitEmail(email string) error {
	if w.step != ResetStepEmail {
		return invalid("Reset already in progress")
	}
	if email == "" {
		return invalid("Please enter your email address")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	w.email = email
	w.step = ResetStepCode
	return nil
}

// SubmitCode accepts any code of at least four characters and advances.
func (w *ResetWizard) SubmitCode(code string) error {
	if w.step != ResetStepCode {
		return invalid("Enter your email address first")
	}
	if code == "" {
		return invalid("Please enter the reset code")
	}
	if len(code) < 4 {
		return invalid("Reset code must be at least 4 characters")
	}
	w.step = ResetStepPassword
	return nil
}

// SubmitNewPassword validates the pair, rewrites the directory credential
// for the wizard's email if it exists, and resets the wizard.
func (w *ResetWizard) SubmitNewPassword(ctx context.Context, password, confirm string) error {
	if w.step != ResetStepPassword {
		return invalid("Verify the reset code first")
	}
	if password == "" || confirm == "" {
		return invalid("Please fill in all password fields")
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return invalid("Passwords do not match")
	}

	if err := w.svc.wait(ctx); err != nil {
		return err
	}

	// A missing account is absorbed silently, exactly as the source did.
	if user, ok := w.svc.store.UserByEmail(w.email); ok {
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		if err := w.svc.store.SetPassword(ctx, user.ID, hash); err != nil {
			return err
		}
	}

	w.Reset()
	return nil
}

// Reset returns the wizard to its initial step, the close-the-dialog rule.
func (w *ResetWizard) Reset() {
	w.step = ResetStepEmail
	w.email = ""
}
