package rerror

// richError is the concrete implementation of RichError.
// It is private to enforce construction through package functions.
type richError struct {
	name    string
	message string
	cause   error
	chain   []error
	origin  origin
}

var _ RichError = (*richError)(nil)

func newRichError(p params, o origin) *richError {
	e := &richError{
		name:    p.name,
		message: p.message,
		cause:   p.cause,
		origin:  o,
	}
	e.chain = buildChain(e, p.cause)
	return e
}

// invalidArgs builds the INVALID_ARGS error reported for a failed
// construction. It reuses the origin of the failed call.
func invalidArgs(message string, o origin, cause error) *richError {
	return newRichError(params{name: NameInvalidArgs, message: message, cause: cause}, o)
}

// Error returns "NAME" or "NAME: message". The cause is not included; use
// Why for the whole chain.
func (e *richError) Error() string {
	return summary(e.name, e.message)
}

// String returns the same text as Error.
func (e *richError) String() string {
	return e.Error()
}

// Name returns the error name.
func (e *richError) Name() string {
	return e.name
}

// Message returns the error message.
func (e *richError) Message() string {
	return e.message
}

// Cause returns the error this one was created from, if any.
func (e *richError) Cause() error {
	return e.cause
}

// Chain returns a copy of the cause chain.
func (e *richError) Chain() []error {
	chain := make([]error, len(e.chain))
	copy(chain, e.chain)
	return chain
}

// Stack returns the call site trace captured at construction.
func (e *richError) Stack() string {
	return e.origin.String()
}

// Why returns the human readable cause chain.
func (e *richError) Why() string {
	return why(e.chain)
}

// Stacks returns the stacks of every error in the chain.
func (e *richError) Stacks() string {
	return stacks(e.chain)
}

// HasCause reports whether name appears anywhere in the chain, including
// the error itself.
func (e *richError) HasCause(name string) bool {
	return hasCause(e.chain, name)
}

// Unwrap returns the cause for standard library compatibility.
func (e *richError) Unwrap() error {
	return e.cause
}
