package rerror

import "fmt"

// New creates a RichError from options, which must be either the error name
// as a string, an Options value (or pointer), or a map[string]any record
// with the keys "name", "message" and "cause".
//
// If options are malformed, New returns a nil RichError and an error named
// INVALID_ARGS whose stack points at the caller.
//
// Example:
//
//	err, _ := rerror.New("NOT_FOUND")
//
//	err, invalid := rerror.New(rerror.Options{
//	    Name:    "LOAD_FAILED",
//	    Message: "could not load config",
//	    Cause:   ioErr,
//	})
func New(options any) (RichError, error) {
	o := callers(1)
	e, invalid := build(options, o)
	if invalid != nil {
		return nil, invalid
	}
	return e, nil
}

// MustNew is like New but panics with the INVALID_ARGS error if options are
// malformed. It is intended for package-level sentinel errors.
//
// Example:
//
//	var ErrNotFound = rerror.MustNew("NOT_FOUND")
func MustNew(options any) RichError {
	o := callers(1)
	e, invalid := build(options, o)
	if invalid != nil {
		panic(invalid)
	}
	return e
}

// Newf creates a RichError with a formatted message.
// If name is blank or the formatted message is whitespace-only, the
// INVALID_ARGS error is returned in its place.
//
// Example:
//
//	err := rerror.Newf("NAME_TOO_LONG", "%d characters (max %d)", len(name), maxLen)
func Newf(name, format string, args ...any) RichError {
	o := callers(1)
	e, invalid := build(Options{Name: name, Message: fmt.Sprintf(format, args...)}, o)
	if invalid != nil {
		return invalid
	}
	return e
}

// build validates options and constructs the error, or the INVALID_ARGS
// error describing why it could not.
func build(options any, o origin) (*richError, *richError) {
	p, failure := parseOptions(options)
	if failure != "" {
		return nil, invalidArgs(failure, o, nil)
	}
	return newRichError(p, o), nil
}
