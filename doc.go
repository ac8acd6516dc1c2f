// Package rerror provides rich errors.
//
// A rich error carries a name identifying the kind of failure, an optional
// human-readable message, an optional cause, and the call site it was created
// at. When failures cross several layers, each layer wraps the error it
// received, and the resulting chain can be inspected, summarized and
// serialized without losing where things went wrong.
//
// # Features
//
//   - Caller-chosen names instead of a fixed taxonomy
//   - Cause chains that flatten nested rich errors and keep foreign errors as leaves
//   - Call site capture at construction
//   - One-line chain summaries (Why) and combined stack listings (Stacks)
//   - JSON and YAML projections with a fixed shape
//   - Compatibility with errors.Is, errors.As, errors.Unwrap, fmt and log/slog
//
// # Quick Start
//
// Creating errors:
//
//	// Name only
//	err, _ := rerror.New("NOT_FOUND")
//
//	// Name, message and cause
//	err, invalid := rerror.New(rerror.Options{
//	    Name:    "LOAD_FAILED",
//	    Message: "could not load user",
//	    Cause:   dbErr,
//	})
//
//	// Sentinel errors
//	var ErrTimeout = rerror.MustNew("TIMEOUT")
//
// New validates its argument. Malformed input, such as a blank name, yields
// an error named INVALID_ARGS instead of a rich error:
//
//	_, invalid := rerror.New(rerror.Options{Name: "  "})
//	fmt.Println(invalid)
//	// INVALID_ARGS: expected required option name to consist of something other than whitespace
//
// Wrapping errors:
//
//	user, err := repo.Get(ctx, id)
//	if err != nil {
//	    return rerror.Wrap(err, "LOAD_FAILED", "could not load user")
//	}
//
// Inspecting chains:
//
//	err.Why()                // "LOAD_FAILED: could not load user <- DB_ERROR: connection refused"
//	err.HasCause("DB_ERROR") // true
//	err.Chain()              // [err, dbErr]
//	fmt.Printf("%+v", err)   // chain summary followed by every stack in the chain
//
// The package-level Why, Stacks, HasCause and ToJSON functions accept any
// error; errors that are not rich errors are treated as a chain of one, named
// after their dynamic type.
//
// # Cause Chains
//
// The chain of an error always starts with the error itself. A rich cause
// contributes its own chain; any other error ends the chain, even if it wraps
// further errors itself. For all i > 0, chain[i] is the cause of chain[i-1].
//
// # Stacks
//
// Stack returns the call site captured at construction, rendered as:
//
//	Error
//	    at main.load (/src/app/main.go:42)
//	    at main.main (/src/app/main.go:17)
//
// Frames inside this package are never shown; the first frame is the line
// that called New, Wrap, or one of their variants. The stack is not part of
// Error() or %v output.
//
// # JSON Serialization
//
// Rich errors marshal to exactly four keys:
//
//	{"name":"LOAD_FAILED","message":"could not load user","why":"...","stacks":"..."}
//
// Causes are not serialized as objects; their names and messages appear in
// why and their stacks in stacks.
//
// # Concurrency
//
// Rich errors are immutable after construction and safe for concurrent use.
// Construction touches no shared state.
package rerror
