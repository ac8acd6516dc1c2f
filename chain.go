package rerror

import (
	"fmt"
	"strings"
)

// buildChain returns the cause chain of self. A RichError cause contributes
// its whole chain; any other error is a leaf.
func buildChain(self RichError, cause error) []error {
	if cause == nil {
		return []error{self}
	}

	rich, ok := cause.(RichError)
	if !ok {
		return []error{self, cause}
	}

	tail := rich.Chain()
	chain := make([]error, 0, len(tail)+1)
	chain = append(chain, self)
	return append(chain, tail...)
}

// chainOf returns the chain of err, treating errors that are not a
// RichError as a chain of one.
func chainOf(err error) []error {
	if rich, ok := err.(RichError); ok {
		return rich.Chain()
	}
	return []error{err}
}

// nameOf returns the name of a chain element. Errors without a Name method
// are named after their dynamic type.
func nameOf(err error) string {
	if named, ok := err.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", err)
}

// messageOf returns the message of a chain element, falling back to Error.
func messageOf(err error) string {
	if m, ok := err.(interface{ Message() string }); ok {
		return m.Message()
	}
	return err.Error()
}

// stackOf returns the rendered stack of a chain element, or "" if it has none.
func stackOf(err error) string {
	if s, ok := err.(interface{ Stack() string }); ok {
		return s.Stack()
	}
	return ""
}

// summary formats "name" or "name: message".
func summary(name, message string) string {
	if message == "" {
		return name
	}
	return name + ": " + message
}

func why(chain []error) string {
	var b strings.Builder
	for i, err := range chain {
		if i > 0 {
			b.WriteString(" <- ")
		}
		b.WriteString(summary(nameOf(err), messageOf(err)))
	}
	return b.String()
}

func stacks(chain []error) string {
	var b strings.Builder
	for i, err := range chain {
		if i > 0 {
			b.WriteString("\n<- ")
		}
		b.WriteString(stackOf(err))
	}
	return b.String()
}

func hasCause(chain []error, name string) bool {
	for _, err := range chain {
		if nameOf(err) == name {
			return true
		}
	}
	return false
}
