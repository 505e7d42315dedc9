// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/scfldr/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "template_invalid_error",
			code:    errors.ErrTemplateInvalid,
			message: "bad mode value",
			wantStr: "[TEMPLATE_INVALID] bad mode value",
		},
		{
			name:    "root_conflict_error",
			code:    errors.ErrRootConflict,
			message: "output directory is not empty",
			wantStr: "[ROOT_CONFLICT] output directory is not empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrDirCreate, "failed to create directory")

	if !stderrors.Is(err, inner) {
		t.Error("Wrap() should preserve the wrapped error chain")
	}

	want := "[DIR_CREATE] failed to create directory: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapNil(t *testing.T) {
	if errors.Wrap(nil, errors.ErrFileWrite, "msg") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if errors.Wrapf(nil, errors.ErrFileWrite, "msg %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrTemplateParse, "line %d: bad yaml", 3)

	if !errors.IsErrorCode(err, errors.ErrTemplateParse) {
		t.Error("IsErrorCode() should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrRootConflict) {
		t.Error("IsErrorCode() should not match a different code")
	}

	// Works through wrapping too
	wrapped := fmt.Errorf("loading template: %w", err)
	if !errors.IsErrorCode(wrapped, errors.ErrTemplateParse) {
		t.Error("IsErrorCode() should unwrap")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}

	err := errors.New(errors.ErrPathConflict, "expected directory, found file")
	if got := errors.GetErrorCode(err); got != errors.ErrPathConflict {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrPathConflict)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "write failed").
		WithDetail("path", "out/a.txt")

	if err.Details["path"] != "out/a.txt" {
		t.Errorf("WithDetail() detail = %v, want %q", err.Details["path"], "out/a.txt")
	}
}
