package rerror

import (
	"reflect"
	"strings"
)

// Options describes a rich error to construct.
//
// Name is required and must contain something other than whitespace.
// Message is optional; an empty Message means no message, a whitespace-only
// Message is rejected. Cause is optional and may be any non-nil error,
// including another RichError.
type Options struct {
	Name    string
	Message string
	Cause   error
}

// params holds validated construction arguments.
type params struct {
	name    string
	message string
	cause   error
}

// parseOptions validates the argument given to New. It accepts a string
// (the name), Options, *Options, or a map[string]any record with the keys
// "name", "message" and "cause".
//
// On failure it returns the message of the first failing check.
func parseOptions(options any) (params, string) {
	switch o := options.(type) {
	case string:
		if isBlank(o) {
			return params{}, MsgNameBlank
		}
		return params{name: o}, ""
	case Options:
		return o.validate()
	case *Options:
		if o == nil {
			return params{}, MsgOptionsType
		}
		return o.validate()
	case map[string]any:
		return parseRecord(o)
	default:
		return params{}, MsgOptionsType
	}
}

func (o Options) validate() (params, string) {
	if isBlank(o.Name) {
		return params{}, MsgNameBlank
	}
	if o.Message != "" && isBlank(o.Message) {
		return params{}, MsgMessageBlank
	}
	if o.Cause != nil && isNilError(o.Cause) {
		return params{}, MsgCauseType
	}
	return params{name: o.Name, message: o.Message, cause: o.Cause}, ""
}

// parseRecord validates a loosely typed record. A missing key is absent;
// a key holding nil is present with the wrong type.
func parseRecord(record map[string]any) (params, string) {
	var p params

	name, ok := record["name"].(string)
	if !ok {
		return params{}, MsgNameType
	}
	if isBlank(name) {
		return params{}, MsgNameBlank
	}
	p.name = name

	if raw, present := record["message"]; present {
		message, ok := raw.(string)
		if !ok {
			return params{}, MsgMessageType
		}
		if isBlank(message) {
			return params{}, MsgMessageBlank
		}
		p.message = message
	}

	if raw, present := record["cause"]; present {
		cause, ok := raw.(error)
		if !ok || isNilError(cause) {
			return params{}, MsgCauseType
		}
		p.cause = cause
	}

	return p, ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isNilError reports whether err holds a nil pointer or other nil value
// behind a non-nil interface.
func isNilError(err error) bool {
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
