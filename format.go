package rerror

import (
	"fmt"
	"io"
	"log/slog"
)

// Format implements fmt.Formatter.
//
//	%s, %v  NAME: message
//	%q      quoted NAME: message
//	%+v     the cause chain followed by the stacks of the chain
func (e *richError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Why())
			if st := e.Stacks(); st != "" {
				_, _ = io.WriteString(s, "\n")
				_, _ = io.WriteString(s, st)
			}
			return
		}
		_, _ = io.WriteString(s, e.String())
	case 's':
		_, _ = io.WriteString(s, e.String())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.String())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.String())
	}
}

// LogValue implements slog.LogValuer. The error is logged as a group of
// name, message and why; stacks are left out.
func (e *richError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", e.name),
		slog.String("message", e.message),
		slog.String("why", e.Why()),
	)
}
