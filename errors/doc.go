// Package errors provides structured error handling.
//
// This package extends Go's standard error handling with error codes,
// classification (retryable vs permanent), context metadata, and JSON
// serialization. It maintains full compatibility with the standard library
// errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	// Simple error
//	err := errors.New(errors.CodeNotFound, "user not found")
//
//	// Formatted error
//	err := errors.Newf(errors.CodeDecodeFailed, "unknown kind %q", name)
//
// Wrapping errors:
//
//	if err := fetch(ctx, url); err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "fetch failed")
//	}
//
// Attaching context:
//
//	err = errors.WithContext(err, "element", xml)
//
// Inspecting errors:
//
//	if errors.GetCode(err) == errors.CodeDecodeFailed {
//	    // diagnose with the attached context
//	}
//	if errors.IsRetryable(err) {
//	    // safe to reissue
//	}
//
// Errors are immutable once created: WithContext and friends return new
// values and never mutate their argument.
package errors
