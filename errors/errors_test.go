package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorCancelled, "cancelled"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid capacity", ErrInvalidCapacity, true},
		{"invalid fill line", ErrInvalidFillLine, true},
		{"nil item", ErrNilItem, true},
		{"nil sink", ErrNilSink, true},
		{"self drain", ErrSelfDrain, true},
		{"nil handler", ErrNilHandler, true},
		{"wrapped invalid", fmt.Errorf("offer: %w", ErrNilItem), true},
		{"plain error", errors.New("boom"), false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: errors.New("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: errors.New("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsCancelled(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"context canceled", context.Canceled, true},
		{"context deadline", context.DeadlineExceeded, true},
		{"wrapped context canceled", fmt.Errorf("offer wait: %w", context.Canceled), true},
		{"classified cancelled", &ClassifiedError{Class: ErrorCancelled, Err: errors.New("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: context.Canceled}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCancelled(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil defaults to transient", nil, ErrorTransient},
		{"cancelled wins over invalid wrapping", WrapCancelled(context.Canceled, "Queue", "Offer", "wait"), ErrorCancelled},
		{"invalid sentinel", ErrSelfDrain, ErrorInvalid},
		{"fatal classified", WrapFatal(errors.New("corrupt"), "Queue", "drain", "copy"), ErrorFatal},
		{"unknown is transient", errors.New("mystery"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestWrapHelpers(t *testing.T) {
	base := errors.New("base failure")

	t.Run("Wrap format", func(t *testing.T) {
		err := Wrap(base, "Queue", "Offer", "insert")
		expected := "Queue.Offer: insert failed: base failure"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should unwrap to base")
		}
	})

	t.Run("Wrap nil returns nil", func(t *testing.T) {
		if Wrap(nil, "Queue", "Offer", "insert") != nil {
			t.Error("expected nil")
		}
		if WrapTransient(nil, "a", "b", "c") != nil {
			t.Error("expected nil")
		}
		if WrapInvalid(nil, "a", "b", "c") != nil {
			t.Error("expected nil")
		}
		if WrapCancelled(nil, "a", "b", "c") != nil {
			t.Error("expected nil")
		}
		if WrapFatal(nil, "a", "b", "c") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("classified errors carry class and unwrap", func(t *testing.T) {
		err := WrapInvalid(ErrNilSink, "Queue", "DrainTo", "validate sink")

		var ce *ClassifiedError
		if !errors.As(err, &ce) {
			t.Fatal("expected ClassifiedError in chain")
		}
		if ce.Class != ErrorInvalid {
			t.Errorf("expected invalid class, got %v", ce.Class)
		}
		if ce.Component != "Queue" || ce.Operation != "DrainTo" {
			t.Errorf("unexpected component/operation: %s/%s", ce.Component, ce.Operation)
		}
		if !errors.Is(err, ErrNilSink) {
			t.Error("classified error should unwrap to sentinel")
		}
	})
}
