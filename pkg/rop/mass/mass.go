package mass

import (
	"context"

	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop/solo"
)

// Trying runs solo.Try in its own goroutine. onCancel is called when ctx is
// done before the result could be handed over.
func Trying[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	ch := make(chan rop.Result[Out], 1)
	out := make(chan rop.Result[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- solo.Try(ctx, input, onTryExecute)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				select {
				case out <- pr:
					return
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
		}

		if onCancel != nil {
			onCancel(ctx, input)
		}
	}()

	return out
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finalizing collapses every result read from inputCh with handlers and
// forwards the values. onSuccessResult observes each delivered value.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out],
	onSuccessResult func(ctx context.Context, out Out)) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)

				select {
				case <-ctx.Done():
					return
				case out <- res:
					if onSuccessResult != nil {
						onSuccessResult(ctx, res)
					}
				}
			}
		}
	}()

	return out
}
