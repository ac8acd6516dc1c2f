package rerror

import "fmt"

// Wrap creates a RichError named name whose cause is err.
// The wrapped error is accessible via Cause() and Unwrap() and is part of the
// chain, so it is compatible with errors.Is and errors.As.
//
// Returns nil if err is nil. If name is blank or message is whitespace-only,
// an INVALID_ARGS error caused by err is returned instead, so err is never
// lost.
//
// Example:
//
//	cfg, err := loadConfig(path)
//	if err != nil {
//	    return rerror.Wrap(err, "CONFIG_FAILED", "failed to load configuration")
//	}
func Wrap(err error, name, message string) RichError {
	if err == nil {
		return nil
	}
	return wrap(err, name, message, callers(1))
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(input); err != nil {
//	    return rerror.Wrapf(err, "INVALID_INPUT", "validation failed for field %s", field)
//	}
func Wrapf(err error, name, format string, args ...any) RichError {
	if err == nil {
		return nil
	}
	return wrap(err, name, fmt.Sprintf(format, args...), callers(1))
}

func wrap(err error, name, message string, o origin) RichError {
	p, failure := parseOptions(Options{Name: name, Message: message, Cause: err})
	switch failure {
	case "":
		return newRichError(p, o)
	case MsgCauseType:
		// err is a nil pointer behind an interface and cannot be kept.
		return invalidArgs(failure, o, nil)
	default:
		return invalidArgs(failure, o, err)
	}
}
