package errors

import (
	"fmt"
	"testing"
)

func TestGateError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeHookNotFound, "hook not found")
	if err.Code != ErrCodeHookNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeHookNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeCommandFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeHookNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("hook", "check-yaml").WithDetail("exitCode", 1)
	if detailed.Details["hook"] != "check-yaml" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test HookNotFound
	err := HookNotFound("check-json")
	if err.Code != ErrCodeHookNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeHookNotFound, err.Code)
	}
	if err.Details["hook"] != "check-json" {
		t.Error("HookNotFound should include hook detail")
	}

	// Test HookFailed
	err = HookFailed("trailing-whitespace", 1)
	if err.Code != ErrCodeHookFailed {
		t.Errorf("expected code %s, got %s", ErrCodeHookFailed, err.Code)
	}
	if err.Details["exitCode"] != 1 {
		t.Error("HookFailed should include exitCode detail")
	}

	// Test HooksFailed
	err = HooksFailed([]string{"check-yaml", "go-fmt"})
	if err.Code != ErrCodeHookFailed {
		t.Errorf("expected code %s, got %s", ErrCodeHookFailed, err.Code)
	}
	if ids, ok := err.Details["failed"].([]string); !ok || len(ids) != 2 {
		t.Error("HooksFailed should include the failing ids")
	}

	// Test CommandTimedOut
	err = CommandTimedOut("git clone https://example.com/hooks")
	if err.Code != ErrCodeCommandTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeCommandTimeout, err.Code)
	}

	// Test GitNotInstalled
	err = GitNotInstalled()
	if err.Code != ErrCodeGitNotInstalled {
		t.Errorf("expected code %s, got %s", ErrCodeGitNotInstalled, err.Code)
	}

	// Test CheckoutFailed
	err = CheckoutFailed("https://example.com/hooks", "v1.0.0", fmt.Errorf("boom"))
	if err.Code != ErrCodeGitCheckoutFail {
		t.Errorf("expected code %s, got %s", ErrCodeGitCheckoutFail, err.Code)
	}
	if err.Details["rev"] != "v1.0.0" {
		t.Error("CheckoutFailed should include rev detail")
	}
}
