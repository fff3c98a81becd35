// Package executor implements one function per stablecoin instruction
// (spec §4.D), each mutating a *types.GlobalState under the invariants
// in spec §3. Every handler returns a single error kind from this file;
// there is no other control-flow exit.
package executor

import "fmt"

// Kind is the error taxonomy from spec §7. It is not a Go error type
// itself — callers match on the sentinel/struct below, never on
// exception-style unwinding (spec §9 re-architecture pointers).
type Kind uint8

const (
	KindCryptoInvalid Kind = iota
	KindNonceMismatch
	KindOverflow
	KindUnderflow
	KindInsufficientBalance
	KindThresholdNotMet
	KindProofInvalid
	KindReplay
	KindInvalidArgument
	KindCircuitBreakerTripped
	KindNotFound
	KindRateLimited
	KindEmptyBlock
	KindInvalidTxRoot
	KindInvalidStateRoot
	KindMissingParentBlock
	KindMissingParentState
	KindInvalidBlockTx
)

// Error is a structured, user-visible execution failure: a kind plus a
// short message naming the offending field (spec §7), never a stack
// trace.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

func ErrCryptoInvalid(msg string) *Error { return newErr(KindCryptoInvalid, "crypto invalid: %s", msg) }

func ErrNonceMismatch(expected, got uint64) *Error {
	return newErr(KindNonceMismatch, "nonce mismatch: expected %d, got %d", expected, got)
}

func ErrOverflow(field string) *Error { return newErr(KindOverflow, "overflow: %s", field) }

func ErrUnderflow(field string) *Error { return newErr(KindUnderflow, "underflow: %s", field) }

func ErrInsufficientBalance(asset string) *Error {
	return newErr(KindInsufficientBalance, "insufficient balance: %s", asset)
}

func ErrThresholdNotMet(msg string) *Error { return newErr(KindThresholdNotMet, "threshold not met: %s", msg) }

func ErrProofInvalid(msg string) *Error { return newErr(KindProofInvalid, "proof invalid: %s", msg) }

func ErrReplay(msg string) *Error { return newErr(KindReplay, "replay detected: %s", msg) }

func ErrInvalidArgument(field string) *Error {
	return newErr(KindInvalidArgument, "invalid argument: %s", field)
}

func ErrCircuitBreakerTripped() *Error {
	return newErr(KindCircuitBreakerTripped, "circuit breaker active")
}

func ErrNotFound(what string) *Error { return newErr(KindNotFound, "not found: %s", what) }

func ErrRateLimited(msg string) *Error { return newErr(KindRateLimited, "rate limited: %s", msg) }

func ErrEmptyBlock() *Error { return newErr(KindEmptyBlock, "empty block: no transaction committed") }

func ErrInvalidTxRoot() *Error { return newErr(KindInvalidTxRoot, "transactions root mismatch") }

func ErrInvalidStateRoot() *Error { return newErr(KindInvalidStateRoot, "state root mismatch") }

func ErrMissingParentBlock(hash string) *Error {
	return newErr(KindMissingParentBlock, "missing parent block: %s", hash)
}

func ErrMissingParentState(hash string) *Error {
	return newErr(KindMissingParentState, "missing parent state: %s", hash)
}

func ErrInvalidBlockTx(index int, cause error) *Error {
	return newErr(KindInvalidBlockTx, "invalid block tx at index %d: %v", index, cause)
}
