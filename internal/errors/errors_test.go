package errors

import (
	"fmt"
	"testing"
)

func TestCalcError_Error(t *testing.T) {
	err := &CalcError{
		Code:    ErrDivideByZero,
		Message: "Error: I cannot be zero (or near zero).",
	}

	expected := "DIVIDE_BY_ZERO: Error: I cannot be zero (or near zero)."
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("solve is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Message != "solve is required" {
		t.Errorf("Message = %q, want %q", err.Message, "solve is required")
	}
}

func TestNewDomainViolation(t *testing.T) {
	err := NewDomainViolation("f", "Error: f>0.")

	if err.Code != ErrDomainViolation {
		t.Errorf("Code = %q, want %q", err.Code, ErrDomainViolation)
	}
	if err.Message != "Error: f>0." {
		t.Errorf("Message = %q, want %q", err.Message, "Error: f>0.")
	}
	if err.Details["quantity"] != "f" {
		t.Errorf("Details[quantity] = %v, want %q", err.Details["quantity"], "f")
	}
}

func TestNewDivideByZero(t *testing.T) {
	err := NewDivideByZero("Error: R2 cannot be zero (or near zero).")

	if err.Code != ErrDivideByZero {
		t.Errorf("Code = %q, want %q", err.Code, ErrDivideByZero)
	}
	if err.Message != "Error: R2 cannot be zero (or near zero)." {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewInternal(t *testing.T) {
	err := NewInternal(fmt.Errorf("disk full"))
	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}

	err = NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	err := NewDomainViolation("tau", "tau>0")

	if !Is(err, ErrDomainViolation) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, ErrDivideByZero) {
		t.Error("Is() = true, want false for non-matching code")
	}
	if Is(fmt.Errorf("plain error"), ErrDomainViolation) {
		t.Error("Is() = true, want false for non-CalcError")
	}
	if Is(nil, ErrDomainViolation) {
		t.Error("Is() = true, want false for nil")
	}
}
