package lite

import (
	"context"
	"sync"

	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop/core"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop/mass"
)

// Turnout starts lines workers that move results from inputCh through engine.
// The returned channel is closed once every worker has stopped. Output order
// is not preserved when lines > 1.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out],
	lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Try[In, Out any](
	onTryExecute func(ctx context.Context, r In) (Out, error)) func(ctx context.Context,
	input rop.Result[In]) <-chan rop.Result[Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers mass.FinallyHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, nil)
}
