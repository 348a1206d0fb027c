package errors

import (
	"fmt"
	"os"
	"testing"
)

func TestConflictErrorChainingAndGetters(t *testing.T) {
	err := NewConflictError("doc:1", 3, 5).WithDetail("hint", "refetch before retry")

	if err.Key() != "doc:1" || err.Expected() != 3 || err.Actual() != 5 {
		t.Fatalf("unexpected field values: %+v", err)
	}
	if err.Code() != ErrorCodeConflict {
		t.Fatalf("Code() = %v, want %v", err.Code(), ErrorCodeConflict)
	}
	if !IsConflictError(err) {
		t.Fatalf("IsConflictError should report true")
	}
	if _, ok := err.Details()["hint"]; !ok {
		t.Fatalf("WithDetail did not persist")
	}
}

func TestAsHelpersDistinguishTypes(t *testing.T) {
	conflict := NewConflictError("k", 1, 2)
	notFound := NewNotFoundError("k")

	if _, ok := AsNotFoundError(conflict); ok {
		t.Fatalf("AsNotFoundError should not match a ConflictError")
	}
	if _, ok := AsConflictError(notFound); ok {
		t.Fatalf("AsConflictError should not match a NotFoundError")
	}

	wrapped := fmt.Errorf("wrapped: %w", notFound)
	if nfe, ok := AsNotFoundError(wrapped); !ok || nfe.Key() != "k" {
		t.Fatalf("AsNotFoundError should unwrap through fmt.Errorf, got ok=%v", ok)
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := NewRequiredFieldError("key")
	if GetErrorCode(err) != ErrorCodeProgrammer {
		t.Fatalf("GetErrorCode = %v, want %v", GetErrorCode(err), ErrorCodeProgrammer)
	}

	plain := fmt.Errorf("not ours")
	if GetErrorCode(plain) != "" {
		t.Fatalf("GetErrorCode of a foreign error should be empty, got %q", GetErrorCode(plain))
	}
	if details := GetErrorDetails(plain); len(details) != 0 {
		t.Fatalf("GetErrorDetails of a foreign error should be empty, got %v", details)
	}
}

func TestClassifyFileErrorNotExist(t *testing.T) {
	_, statErr := os.Stat("/nonexistent/path/that/should/not/exist")
	err := ClassifyFileError(statErr, "/nonexistent/path/that/should/not/exist", "k", "read")

	ioErr, ok := AsIOError(err)
	if !ok {
		t.Fatalf("ClassifyFileError should produce an *IOError, got %T", err)
	}
	if ioErr.Path() != "/nonexistent/path/that/should/not/exist" || ioErr.Key() != "k" || ioErr.Op() != "read" {
		t.Fatalf("unexpected IOError fields: %+v", ioErr)
	}
}

func TestProgrammerErrorHelpers(t *testing.T) {
	err := NewInvalidLimitError(-1)
	if err.Field() != "limit" || err.Rule() != "positive" || err.Provided() != -1 {
		t.Fatalf("unexpected NewInvalidLimitError fields: %+v", err)
	}

	view := NewUnregisteredViewError("byType")
	if view.Field() != "viewName" || view.Provided() != "byType" {
		t.Fatalf("unexpected NewUnregisteredViewError fields: %+v", view)
	}
}

func TestViewErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("map callback panicked")
	err := NewViewError(cause, "view map callback failed").WithViewName("byType")

	if err.ViewName() != "byType" {
		t.Fatalf("ViewName() = %q, want byType", err.ViewName())
	}
	if err.Unwrap() != cause {
		t.Fatalf("Unwrap() did not return the original cause")
	}
}
