package bullboard

import "fmt"

// MalformedAmountError reports a string that could not be parsed into an
// Amount. The offending input is preserved for diagnostics.
type MalformedAmountError struct {
	Input  string
	Reason string
}

func (e *MalformedAmountError) Error() string {
	return fmt.Sprintf("malformed amount %q: %s", e.Input, e.Reason)
}

// CurrencyMismatchError reports arithmetic between two incompatible
// currencies. It usually means the caller mixed up two currency buckets,
// which would silently corrupt totals if allowed through.
type CurrencyMismatchError struct {
	A, B Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s != %s", e.A, e.B)
}

// LedgerNotFoundError reports a read on a ledger that no event was ever
// appended to.
type LedgerNotFoundError struct {
	LedgerID string
}

func (e *LedgerNotFoundError) Error() string {
	return fmt.Sprintf("ledger %q not found", e.LedgerID)
}

// CorruptEventError reports a persisted payload that does not deserialize
// into any known event shape.
type CorruptEventError struct {
	Payload string
	Err     error
}

func (e *CorruptEventError) Error() string {
	return fmt.Sprintf("corrupt event payload %q: %v", e.Payload, e.Err)
}

func (e *CorruptEventError) Unwrap() error { return e.Err }

// SchemaError reports a failure to create or migrate the durable backend's
// schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema initialization failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// StorageError wraps a failure of the underlying persistence or serialization
// layer, so callers never depend on backend-specific error types.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
