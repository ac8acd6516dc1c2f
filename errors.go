package rerror

import "fmt"

// RichError extends the standard error interface with a name, an optional
// message, and a link to the error that caused it.
//
// RichError values are immutable once constructed. They are compatible with
// standard library error handling (errors.Is, errors.As, errors.Unwrap).
type RichError interface {
	error
	fmt.Stringer

	// Name returns the name identifying the kind of error.
	Name() string

	// Message returns the human-readable message, or "" if none was given.
	Message() string

	// Cause returns the error that caused this one, or nil.
	Cause() error

	// Chain returns the cause chain, starting with the error itself.
	// The returned slice is a copy.
	Chain() []error

	// Stack returns the call site trace captured at construction.
	// Returns "" if no trace could be captured.
	Stack() string

	// Why returns a one-line summary of the cause chain,
	// e.g. "FOO: I failed <- BAR: I messed up".
	Why() string

	// Stacks returns the stack of every error in the chain, joined by "\n<- ".
	Stacks() string

	// HasCause reports whether any error in the chain has the given name.
	HasCause(name string) bool

	// ToJSON returns the serializable projection of the error.
	ToJSON() *ErrorResponse

	// Unwrap returns the cause for errors.Is and errors.As compatibility.
	Unwrap() error
}
