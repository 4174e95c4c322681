package domain

import "fanvote/pkg/serrors"

// Error kinds returned by domain operations. Callers discover them with
// errors.Is; the message attached to each error is for humans only.
var (
	// ErrValidation reports malformed input such as blank or overlong text,
	// out of range dates or non-positive amounts.
	ErrValidation = serrors.NewKind("VALIDATION")
	// ErrInvalidState reports an operation not permitted in the current
	// lifecycle state.
	ErrInvalidState = serrors.NewKind("INVALID_STATE")
	// ErrLockedOrganization reports a structural change attempted on a
	// locked organization.
	ErrLockedOrganization = serrors.NewKind("LOCKED_ORGANIZATION")
	// ErrExpiredOption reports a vote cast on, or removed from, an option
	// that is no longer active.
	ErrExpiredOption = serrors.NewKind("EXPIRED_OPTION")
	// ErrInsufficientBudget reports a vote attempted with nothing left to spend.
	ErrInsufficientBudget = serrors.NewKind("INSUFFICIENT_BUDGET")
	// ErrAlreadyRedeemed reports a second redemption of a code.
	ErrAlreadyRedeemed = serrors.NewKind("ALREADY_REDEEMED")
	// ErrExpired reports a code redeemed after its expiry.
	ErrExpired = serrors.NewKind("EXPIRED")
	// ErrInvariantViolation reports a state that correct callers can never
	// reach, e.g. removing a vote from a zero count.
	ErrInvariantViolation = serrors.NewKind("INVARIANT_VIOLATION")
	// ErrNotFound reports a missing entity.
	ErrNotFound = serrors.ErrNotFound
)

func invalid(msgFmt string, args ...any) error {
	return serrors.With(ErrValidation, msgFmt, args...)
}

func invalidState(msgFmt string, args ...any) error {
	return serrors.With(ErrInvalidState, msgFmt, args...)
}

func violation(msgFmt string, args ...any) error {
	return serrors.With(ErrInvariantViolation, msgFmt, args...)
}
