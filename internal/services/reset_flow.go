package services

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// ResetStep is the current step of a password-reset flow.
type ResetStep string

const (
	StepAwaitingIdentifier  ResetStep = "AwaitingIdentifier"
	StepAwaitingOtp         ResetStep = "AwaitingOtp"
	StepAwaitingNewPassword ResetStep = "AwaitingNewPassword"
	StepDone                ResetStep = "Done"
)

// resetTransitions is the authoritative step machine for the reset flow.
// Each method may only move the flow along one of these edges; anything else
// is rejected with ErrFlowState.
var resetTransitions = map[ResetStep]ResetStep{
	StepAwaitingIdentifier:  StepAwaitingOtp,
	StepAwaitingOtp:         StepAwaitingNewPassword,
	StepAwaitingNewPassword: StepDone,
}

// ResetFlow walks a user through password recovery: identifier, then OTP,
// then the new password. The OTP lives only in this value and is regenerated
// on resend; it is never written to the store, so abandoning the flow
// discards it.
type ResetFlow struct {
	accounts   *AccountService
	step       ResetStep
	identifier string
	otp        string
}

// NewResetFlow starts a password-reset flow at the identifier step.
func (s *AccountService) NewResetFlow() *ResetFlow {
	return &ResetFlow{
		accounts: s,
		step:     StepAwaitingIdentifier,
	}
}

// Step returns the flow's current step.
func (f *ResetFlow) Step() ResetStep { return f.step }

// advance moves the flow to next, rejecting any edge the step machine does
// not define.
func (f *ResetFlow) advance(next ResetStep) error {
	if resetTransitions[f.step] != next {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrFlowState, f.step, next)
	}
	f.step = next
	return nil
}

// guard rejects a call made outside the step it belongs to.
func (f *ResetFlow) guard(want ResetStep) error {
	if f.step != want {
		return fmt.Errorf("%w: flow is at %s, expected %s", ErrFlowState, f.step, want)
	}
	return nil
}

// SubmitIdentifier checks the account exists and issues the OTP. The code is
// returned for display to the user, standing in for out-of-band delivery.
func (f *ResetFlow) SubmitIdentifier(identifier string) (string, error) {
	if err := f.guard(StepAwaitingIdentifier); err != nil {
		return "", err
	}
	if _, res := f.accounts.validate.ClassifyIdentifier(identifier); !res.OK {
		return "", fmt.Errorf("%w: %s", ErrValidation, res.Reason)
	}
	user, err := f.accounts.findUser(identifier)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("%w: no account found for %s", ErrNotFound, identifier)
	}

	f.identifier = identifier
	f.otp = generateOtp()
	if err := f.advance(StepAwaitingOtp); err != nil {
		return "", err
	}
	f.accounts.logger.Info("reset otp issued", zap.String("identifier", identifier))
	return f.otp, nil
}

// ResendOtp replaces the pending code with a fresh one. Only valid while the
// flow is waiting for the OTP.
func (f *ResetFlow) ResendOtp() (string, error) {
	if err := f.guard(StepAwaitingOtp); err != nil {
		return "", err
	}
	f.otp = generateOtp()
	f.accounts.logger.Info("reset otp reissued", zap.String("identifier", f.identifier))
	return f.otp, nil
}

// SubmitOtp verifies the code. A wrong or malformed code fails with
// ErrInvalidOtp and leaves the flow where it is; retries are unlimited.
func (f *ResetFlow) SubmitOtp(code string) error {
	if err := f.guard(StepAwaitingOtp); err != nil {
		return err
	}
	if res := f.accounts.validate.CheckOtp(code); !res.OK {
		return fmt.Errorf("%w: %s", ErrInvalidOtp, res.Reason)
	}
	if code != f.otp {
		return fmt.Errorf("%w: the code does not match", ErrInvalidOtp)
	}
	return f.advance(StepAwaitingNewPassword)
}

// SubmitNewPassword sets the account's new password and completes the flow.
// The users record is updated, and so is the session snapshot when the reset
// account is the one currently logged in.
func (f *ResetFlow) SubmitNewPassword(newPassword, confirm string) error {
	if err := f.guard(StepAwaitingNewPassword); err != nil {
		return err
	}
	if res := f.accounts.validate.CheckPassword(newPassword); !res.OK {
		return fmt.Errorf("%w: %s", ErrValidation, res.Reason)
	}
	if newPassword != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if err := f.accounts.updatePassword(f.identifier, newPassword); err != nil {
		return err
	}
	f.otp = ""
	return f.advance(StepDone)
}

// generateOtp returns a random 4-digit code, 1000-9999.
func generateOtp() string {
	return fmt.Sprintf("%04d", 1000+rand.Intn(9000))
}
