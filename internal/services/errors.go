package services

import "errors"

// Error taxonomy for the account and order managers. Every operation returns
// one of these (possibly wrapped with detail); callers branch with errors.Is.
// All of them are recoverable: the store is left untouched and the user may
// re-attempt.
var (
	// ErrValidation indicates bad input shape or range; re-prompt the same form.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateAccount indicates a signup conflict on the identifier.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrNotFound indicates no matching account or order.
	ErrNotFound = errors.New("not found")
	// ErrAuth indicates a wrong credential.
	ErrAuth = errors.New("incorrect credential")
	// ErrInvalidOtp indicates a wrong or malformed OTP; retries are unlimited.
	ErrInvalidOtp = errors.New("invalid otp")
	// ErrEmptySelection indicates continue was pressed with no service selected.
	ErrEmptySelection = errors.New("no service selected")
	// ErrUnknownService indicates an order references a service missing from
	// the catalog. This is an internal-consistency fault: the selection step
	// only offers catalog entries, so it should be unreachable.
	ErrUnknownService = errors.New("unknown service")
	// ErrUnauthenticated indicates a protected operation was attempted with
	// no active session; the caller maps this to a login redirect.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrFlowState indicates a multi-step flow was called out of order.
	ErrFlowState = errors.New("step out of order")
)
