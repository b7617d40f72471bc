// Package errs provides the error taxonomy shared by the stock and delivery-order
// model, the use cases and the HTTP adapter.
//
// Every error kind follows the same pattern:
//   - a sentinel (ErrObjectNotFound, ErrObjectAlreadyExists, ErrValueIsInvalid,
//     ErrValueIsOutOfRange, ErrValueIsRequired) that callers match with errors.Is
//   - a struct carrying the details (parameter name, identifier, optional cause)
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// NotFound and AlreadyExists are returned by operations addressed by key; the
// value errors are returned by constructors and command validation.
package errs
