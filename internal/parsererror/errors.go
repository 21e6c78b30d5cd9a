// Package parsererror defines the typed errors the field extractors return
// when a fragment cannot be turned into a transaction. These errors are
// diagnostic only: the pipeline logs and drops the fragment, it never
// surfaces them to the caller of the parse entry point.
package parsererror

import "fmt"

// MissingFieldError indicates a fragment lacked a field the active grammar
// requires (for the legacy grammar, the TID reference; for both, the amount).
type MissingFieldError struct {
	Grammar string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q not found in fragment", e.Grammar, e.Field)
}

// NoAmountError indicates the MTN grammar found no amount phrase and the
// fragment did not state an explicit zero-UGX receipt.
type NoAmountError struct {
	Grammar string
}

func (e *NoAmountError) Error() string {
	return fmt.Sprintf("%s: no amount phrase found in fragment", e.Grammar)
}

// FragmentTooShortError indicates a fragment below the minimum length
// threshold, almost always a split artifact rather than real content.
type FragmentTooShortError struct {
	Length int
	Min    int
}

func (e *FragmentTooShortError) Error() string {
	return fmt.Sprintf("fragment length %d below minimum %d", e.Length, e.Min)
}

// UnparseableError wraps a lower-level failure (for example a malformed
// numeric literal) encountered while extracting a field.
type UnparseableError struct {
	Grammar string
	Field   string
	Value   string
	Err     error
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s=%q: %v", e.Grammar, e.Field, e.Value, e.Err)
}

func (e *UnparseableError) Unwrap() error {
	return e.Err
}
