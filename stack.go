package rerror

import (
	"runtime"
	"strconv"
	"strings"
)

const (
	// maxStackDepth bounds the number of frames captured per error.
	maxStackDepth = 32

	// stackHeader replaces the capture frames at the top of a rendered stack.
	stackHeader = "Error"
)

// origin is the raw call stack captured when an error is constructed.
// Frames are resolved only when the stack is rendered.
type origin []uintptr

// callers captures the current call stack. With skip 0 the first frame is
// the caller of callers.
func callers(skip int) origin {
	pc := make([]uintptr, maxStackDepth)
	// +1 for runtime.Callers, +1 for callers.
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	return origin(pc[:n])
}

// String renders the stack as a header line followed by one line per frame:
//
//	Error
//	    at main.load (/src/app/main.go:42)
//	    at main.main (/src/app/main.go:17)
//
// An empty origin renders as "".
func (o origin) String() string {
	if len(o) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(stackHeader)

	frames := runtime.CallersFrames(o)
	for {
		fr, more := frames.Next()
		b.WriteString("\n    at ")
		b.WriteString(fr.Function)
		b.WriteString(" (")
		b.WriteString(fr.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(fr.Line))
		b.WriteByte(')')
		if !more {
			break
		}
	}
	return b.String()
}
