package services_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundrypro/internal/services"
)

func TestResetFlowHappyPath(t *testing.T) {
	accounts, st := newAccountService(t)

	_, err := accounts.Signup("user@test.com", "Abc123!", "Abc123!")
	require.NoError(t, err)

	flow := accounts.NewResetFlow()
	assert.Equal(t, services.StepAwaitingIdentifier, flow.Step())

	otp, err := flow.SubmitIdentifier("user@test.com")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), otp)
	assert.Equal(t, services.StepAwaitingOtp, flow.Step())

	require.NoError(t, flow.SubmitOtp(otp))
	assert.Equal(t, services.StepAwaitingNewPassword, flow.Step())

	require.NoError(t, flow.SubmitNewPassword("Xyz789#", "Xyz789#"))
	assert.Equal(t, services.StepDone, flow.Step())

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Xyz789#", users[0].Password)

	// Old password no longer works, new one does.
	_, err = accounts.Login("user@test.com", "Abc123!")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = accounts.Login("user@test.com", "Xyz789#")
	assert.NoError(t, err)
}

func TestResetFlowUnknownAccount(t *testing.T) {
	accounts, _ := newAccountService(t)

	flow := accounts.NewResetFlow()
	_, err := flow.SubmitIdentifier("nobody@test.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, services.StepAwaitingIdentifier, flow.Step())
}

func TestResetFlowWrongOtpDoesNotAdvance(t *testing.T) {
	accounts, _ := newAccountService(t)

	_, err := accounts.Signup("user@test.com", "Abc123!", "Abc123!")
	require.NoError(t, err)

	flow := accounts.NewResetFlow()
	otp, err := flow.SubmitIdentifier("user@test.com")
	require.NoError(t, err)

	// Codes are 1000-9999, so 0000 is always wrong.
	err = flow.SubmitOtp("0000")
	assert.ErrorIs(t, err, services.ErrInvalidOtp)
	assert.Equal(t, services.StepAwaitingOtp, flow.Step())

	// Malformed codes are rejected the same way.
	err = flow.SubmitOtp("12ab")
	assert.ErrorIs(t, err, services.ErrInvalidOtp)
	assert.Equal(t, services.StepAwaitingOtp, flow.Step())

	// Retries are unlimited; the right code still works.
	assert.NoError(t, flow.SubmitOtp(otp))
}

func TestResetFlowResendReplacesCode(t *testing.T) {
	accounts, _ := newAccountService(t)

	_, err := accounts.Signup("user@test.com", "Abc123!", "Abc123!")
	require.NoError(t, err)

	flow := accounts.NewResetFlow()
	_, err = flow.SubmitIdentifier("user@test.com")
	require.NoError(t, err)

	fresh, err := flow.ResendOtp()
	require.NoError(t, err)
	assert.NoError(t, flow.SubmitOtp(fresh))
}

func TestResetFlowRejectsOutOfOrderCalls(t *testing.T) {
	accounts, _ := newAccountService(t)

	_, err := accounts.Signup("user@test.com", "Abc123!", "Abc123!")
	require.NoError(t, err)

	flow := accounts.NewResetFlow()

	// Nothing but the identifier is accepted at the start.
	assert.ErrorIs(t, flow.SubmitOtp("1234"), services.ErrFlowState)
	assert.ErrorIs(t, flow.SubmitNewPassword("Xyz789#", "Xyz789#"), services.ErrFlowState)
	_, err = flow.ResendOtp()
	assert.ErrorIs(t, err, services.ErrFlowState)

	otp, err := flow.SubmitIdentifier("user@test.com")
	require.NoError(t, err)

	// The identifier step cannot be repeated.
	_, err = flow.SubmitIdentifier("user@test.com")
	assert.ErrorIs(t, err, services.ErrFlowState)

	require.NoError(t, flow.SubmitOtp(otp))
	require.NoError(t, flow.SubmitNewPassword("Xyz789#", "Xyz789#"))

	// A finished flow accepts nothing further.
	assert.ErrorIs(t, flow.SubmitOtp(otp), services.ErrFlowState)
	assert.ErrorIs(t, flow.SubmitNewPassword("Abc123!", "Abc123!"), services.ErrFlowState)
}

func TestResetFlowUpdatesLiveSession(t *testing.T) {
	accounts, st := newAccountService(t)

	_, err := accounts.Signup("user@test.com", "Abc123!", "Abc123!")
	require.NoError(t, err)
	_, err = accounts.Login("user@test.com", "Abc123!")
	require.NoError(t, err)

	flow := accounts.NewResetFlow()
	otp, err := flow.SubmitIdentifier("user@test.com")
	require.NoError(t, err)
	require.NoError(t, flow.SubmitOtp(otp))
	require.NoError(t, flow.SubmitNewPassword("Xyz789#", "Xyz789#"))

	session, err := st.Session()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Xyz789#", session.Password, "session snapshot follows the reset")
}

func TestResetFlowPasswordValidation(t *testing.T) {
	accounts, _ := newAccountService(t)

	_, err := accounts.Signup("user@test.com", "Abc123!", "Abc123!")
	require.NoError(t, err)

	flow := accounts.NewResetFlow()
	otp, err := flow.SubmitIdentifier("user@test.com")
	require.NoError(t, err)
	require.NoError(t, flow.SubmitOtp(otp))

	assert.ErrorIs(t, flow.SubmitNewPassword("short", "short"), services.ErrValidation)
	assert.ErrorIs(t, flow.SubmitNewPassword("Xyz789#", "Other1!"), services.ErrValidation)
	assert.Equal(t, services.StepAwaitingNewPassword, flow.Step())

	assert.NoError(t, flow.SubmitNewPassword("Xyz789#", "Xyz789#"))
}
