package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("error_returns_message", func(t *testing.T) {
		if ErrAccountNotFound.Error() != "Account not found" {
			t.Errorf("unexpected message: %s", ErrAccountNotFound.Error())
		}
	})

	t.Run("wrap_preserves_code_and_kind", func(t *testing.T) {
		internal := fmt.Errorf("disk full")
		wrapped := Wrap(ErrStoreFailure, internal)

		if wrapped.Code != ErrStoreFailure.Code || wrapped.Kind != KindStorage {
			t.Errorf("unexpected wrapped error: %+v", wrapped)
		}
		if !stderrors.Is(wrapped, internal) {
			t.Error("expected errors.Is to see the internal error")
		}
	})

	t.Run("with_message_overrides_message_only", func(t *testing.T) {
		custom := WithMessage(ErrInvalidInput, "amount must be positive")

		if custom.Message != "amount must be positive" {
			t.Errorf("unexpected message: %s", custom.Message)
		}
		if custom.Code != ErrInvalidInput.Code || custom.Kind != KindValidation {
			t.Errorf("expected code and kind preserved, got %+v", custom)
		}
	})

	t.Run("errors_as_finds_app_error", func(t *testing.T) {
		err := fmt.Errorf("service call: %w", Wrap(ErrStoreUnavailable, fmt.Errorf("database is locked")))

		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			t.Fatal("expected errors.As to find the AppError")
		}
		if appErr.Kind != KindUnavailable {
			t.Errorf("expected KindUnavailable, got %d", appErr.Kind)
		}
	})
}
