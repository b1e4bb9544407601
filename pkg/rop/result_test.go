package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestCarryFailure_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Fail[string](errors.New("boom"))
	out := CarryFailure[string, int](in)

	if out.Id() != in.Id() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected id and createdAt to be carried, got %v/%v", out.Id(), out.CreatedAt())
	}
	if !out.IsFailure() || out.Err() == nil {
		t.Fatalf("expected failure, got success=%v err=%v", out.IsSuccess(), out.Err())
	}

	cancelled := CarryFailure[string, int](Cancel[string](context.Canceled))
	if !cancelled.IsCancel() || cancelled.IsFailure() {
		t.Fatalf("expected cancel to survive the carry")
	}
}

func TestResult_States(t *testing.T) {
	t.Parallel()

	ok := Success(3)
	if !ok.IsSuccess() || ok.IsFailure() || ok.IsCancel() || ok.Result() != 3 {
		t.Fatalf("unexpected success state: %+v", ok)
	}
	if ok.Id() == uuid.Nil {
		t.Fatalf("expected a generated id")
	}

	var empty Result[int]
	if !empty.IsEmpty() {
		t.Fatalf("expected zero Result to be empty")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")

	if n := len(GetErrors(nil)); n != 0 {
		t.Fatalf("expected no errors, got %d", n)
	}
	if n := len(GetErrors(a)); n != 1 {
		t.Fatalf("expected 1 error, got %d", n)
	}
	if n := len(GetErrors(errors.Join(a, b))); n != 2 {
		t.Fatalf("expected 2 errors, got %d", n)
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	if !IsCancellationError(fmt.Errorf("solving: %w", context.DeadlineExceeded)) {
		t.Fatalf("expected wrapped deadline to count as cancellation")
	}
	if IsCancellationError(errors.New("other")) {
		t.Fatalf("expected plain error not to count as cancellation")
	}
}
