package rerror

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var rich rerror.RichError
//	if rerror.As(err, &rich) {
//	    name := rich.Name()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
// This is a convenience wrapper around the standard library errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// GetName extracts the name of an error.
// Returns "" if err is nil.
//
// The name of the outermost RichError found by errors.As is returned; errors
// that do not wrap a RichError are named after their dynamic type.
//
// Example:
//
//	if rerror.GetName(err) == "NOT_FOUND" {
//	    // Handle not found
//	}
func GetName(err error) string {
	if err == nil {
		return ""
	}

	var rich RichError
	if stderrors.As(err, &rich) {
		return rich.Name()
	}

	return nameOf(err)
}

// Why returns the human readable cause chain of err.
// Returns "" if err is nil. For errors that are not a RichError this is
// "type: message".
func Why(err error) string {
	if err == nil {
		return ""
	}
	return why(chainOf(err))
}

// Stacks returns the combined stack listing of err's chain.
// Returns "" if err is nil or carries no stack.
func Stacks(err error) string {
	if err == nil {
		return ""
	}
	return stacks(chainOf(err))
}

// HasCause reports whether err's chain contains an error named name.
// Returns false if err is nil.
//
// Example:
//
//	if rerror.HasCause(err, "TIMEOUT") {
//	    // Some layer below timed out
//	}
func HasCause(err error, name string) bool {
	if err == nil {
		return false
	}
	return hasCause(chainOf(err), name)
}
