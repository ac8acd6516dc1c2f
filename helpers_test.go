package rerror

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := MustNew("NOT_FOUND")
	wrapped := Wrap(sentinel, "QUERY_FAILED", "query failed")

	require.True(t, Is(wrapped, sentinel))

	other := MustNew("NOT_FOUND")
	require.False(t, Is(wrapped, other))
}

func TestIs_StandardLibraryCompatibility(t *testing.T) {
	stdErr := stderrors.New("standard sentinel")
	wrapped := Wrap(stdErr, "INTERNAL", "internal error")

	require.True(t, stderrors.Is(wrapped, stdErr))
	require.True(t, Is(wrapped, stdErr))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("layer: %w", MustNew("NOT_FOUND"))

	var rich RichError
	require.True(t, As(err, &rich))
	require.Equal(t, "NOT_FOUND", rich.Name())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("cause")
	err := Wrap(cause, "FOO", "")

	require.Equal(t, cause, Unwrap(err))
	require.Nil(t, Unwrap(cause))
}

func TestGetName(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rich error",
			err:  MustNew("NOT_FOUND"),
			want: "NOT_FOUND",
		},
		{
			name: "wrapped rich error",
			err:  Wrap(MustNew("TIMEOUT"), "DB_ERROR", "db timeout"),
			want: "DB_ERROR",
		},
		{
			name: "rich error behind fmt.Errorf",
			err:  fmt.Errorf("context: %w", MustNew("TIMEOUT")),
			want: "TIMEOUT",
		},
		{
			name: "standard error",
			err:  stderrors.New("standard"),
			want: "*errors.errorString",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetName(tt.err))
		})
	}
}

func TestWhy(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rich chain",
			err:  Wrap(MustNew(Options{Name: "B", Message: "inner"}), "A", "outer"),
			want: "A: outer <- B: inner",
		},
		{
			name: "standard error",
			err:  stderrors.New("boom"),
			want: "*errors.errorString: boom",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Why(tt.err))
		})
	}
}

func TestStacks(t *testing.T) {
	err := Wrap(MustNew("INNER"), "OUTER", "")
	require.Equal(t, err.Stacks(), Stacks(err))

	require.Equal(t, "", Stacks(stderrors.New("no stack")))
	require.Equal(t, "", Stacks(nil))
}

func TestHasCause(t *testing.T) {
	err := Wrap(MustNew("INNER"), "OUTER", "")

	require.True(t, HasCause(err, "OUTER"))
	require.True(t, HasCause(err, "INNER"))
	require.False(t, HasCause(err, "MISSING"))

	require.True(t, HasCause(stderrors.New("x"), "*errors.errorString"))
	require.False(t, HasCause(nil, ""))
}
