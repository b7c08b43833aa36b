package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeWrite, "failed to save", errors.New("permission denied")),
			expected: "[WRITE_ERROR] failed to save: permission denied",
		},
		{
			name:     "read error constructor",
			err:      NewReadError("hosts/a.txt", errors.New("is a directory")),
			expected: "[READ_ERROR] failed to read file data from: hosts/a.txt: is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewScanError("./hosts", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeAllowList, Message: "test error"}
	err2 := &Error{Code: ErrCodeAllowList, Message: "another error"}
	err3 := &Error{Code: ErrCodeRead, Message: "read error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}
	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewWriteError("out.txt", errors.New("denied")))

	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("plain"), ""},
		{"domain error", NewAllowListError("allow.txt", nil), ErrCodeAllowList},
		{"wrapped domain error", wrapped, ErrCodeWrite},
		{"joined errors", errors.Join(errors.New("first"), NewScanError("hosts", nil)), ErrCodeScan},
		{"multi-wrapped", fmt.Errorf("%w and %w", errors.New("plain"), NewReadError("a.txt", nil)), ErrCodeRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
