// Package errs provides the typed errors shared by the logistics domain, application and
// adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) that errors.Is can match
//   - a struct carrying the details of the failure
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels map onto the failure classes callers react to:
//   - ErrObjectNotFound: a referenced id does not resolve
//   - ErrObjectAlreadyExists: a uniqueness key is already taken
//   - ErrInvalidStateTransition: an operation is not allowed from the current status
//   - ErrVersionIsInvalid: the record changed since it was loaded
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: input validation
package errs
