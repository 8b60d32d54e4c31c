package joiner

import (
	"context"
	"fmt"
	"io"

	"github.com/allada/pconcat/source"
)

// produce drives an open stream to completion. Chunks are filled to
// chunkSize except possibly the last one, allocated fresh per read, and
// never touched again after they are sent; ownership moves to the receiver.
//
// The out channel is closed before the return value is observable, so the
// consumer always sees end-of-stream before the join result. The stream is
// closed exactly once; on a clean read its Close result is the task's
// terminal outcome (for a subprocess, the exit status).
func produce(ctx context.Context, st source.Stream, out chan<- []byte, chunkSize int) error {
	defer close(out)

	for {
		buf := make([]byte, chunkSize)
		n, err := io.ReadFull(st, buf)
		if n > 0 {
			select {
			case out <- buf[:n]:
			case <-ctx.Done():
				_ = st.Close()
				return ctx.Err()
			}
		}
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			return st.Close()
		default:
			_ = st.Close()
			return fmt.Errorf("read source: %w", err)
		}
	}
}
