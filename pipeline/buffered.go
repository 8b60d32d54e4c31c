package pipeline

import "context"

// Buffered maps each value through fn with a sliding admission window of
// width n, preserving input order. fn is called for up to n values ahead of
// the consumer; its results are yielded in exactly the order the inputs were
// pulled from the source, regardless of when any background work that fn
// started completes.
//
// fn is expected to start work and return a handle to it quickly; if fn
// itself blocks (e.g. on an admission slot), admission of further values
// blocks with it. The consumer pulling the next result is what frees window
// capacity for admitting the value n positions ahead.
func Buffered[I, O any](p *Pipeline[I], n int, fn func(context.Context, I) (O, error)) *Pipeline[O] {
	if n <= 0 {
		n = 1
	}
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			source := p.create(ctx)
			admitCtx, cancel := context.WithCancel(ctx)
			out := make(chan result[O], n)

			go func() {
				defer close(out)
				for {
					val, ok, err := source.Next(admitCtx)
					if err != nil {
						select {
						case out <- result[O]{err: err}:
						case <-admitCtx.Done():
						}
						return
					}
					if !ok {
						return
					}
					o, err := fn(admitCtx, val)
					if err != nil {
						select {
						case out <- result[O]{err: err}:
						case <-admitCtx.Done():
						}
						return
					}
					select {
					case out <- result[O]{val: o, ok: true}:
					case <-admitCtx.Done():
						return
					}
				}
			}()

			return &channelIter[O]{
				ch: out,
				closer: func() error {
					cancel()
					return source.Close()
				},
			}
		},
	}
}
