package monies

import "errors"

// ErrInvalidAmount rejects a non-numeric or non-positive amount presented to
// a recording operation. It is enforced at the caller boundary (ParseAmount);
// the ledger operations themselves do not re-check.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnknownLoan reports a repayment against a loan id that does not exist.
// RepayLoan itself ignores unknown ids without any state change; this error
// is only returned by lookup helpers so callers can warn the user.
var ErrUnknownLoan = errors.New("unknown loan")
