package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one pipeline step: a value, a failure or a cancellation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func newResult[T any](r T, err error, isSuccess, isCancel bool) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		err:       err,
		isSuccess: isSuccess,
		isCancel:  isCancel,
	}
}

func Success[T any](r T) Result[T] {
	return newResult(r, nil, true, false)
}

func Fail[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, false)
}

func Cancel[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, true)
}

// CarryFailure moves a failed or cancelled result to another value type,
// keeping its id and creation time.
func CarryFailure[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isCancel:  from.isCancel,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports a failed result; cancellations are not failures.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel && r.err != nil
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports the zero Result, which was never produced by a constructor.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
