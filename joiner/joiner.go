package joiner

import (
	"context"
	stderrors "errors"

	"golang.org/x/sync/errgroup"

	"github.com/allada/pconcat/errors"
	"github.com/allada/pconcat/logger"
	"github.com/allada/pconcat/pipeline"
	"github.com/allada/pconcat/task"
	"github.com/allada/pconcat/writer"
)

// Defaults mirror the flag defaults of the CLI.
const (
	DefaultParallel   = 16
	DefaultBufferSize = 1 << 30 // 1GiB per-task buffer budget
	DefaultChunkSize  = 2 * 1024 * 1024
)

// Options configures a run.
type Options struct {
	// Parallel is the maximum number of tasks in flight (launched but not
	// yet joined) at any instant.
	Parallel int
	// BufferSize is the per-task buffer byte budget. Total buffered bytes
	// across the run stay below Parallel * BufferSize.
	BufferSize int64
	// ChunkSize is the chunk capacity. The task channel depth is
	// BufferSize / ChunkSize, minimum 1.
	ChunkSize int64
	// Logger receives per-task progress events. Defaults to the global
	// logger tagged with the joiner component.
	Logger *logger.Logger
}

func (o *Options) applyDefaults() {
	if o.Parallel == 0 {
		o.Parallel = DefaultParallel
	}
	if o.BufferSize == 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Logger == nil {
		o.Logger = logger.WithComponent("joiner")
	}
}

// channelDepth converts the buffer byte budget into a task channel depth.
func (o *Options) channelDepth() int {
	depth := int(o.BufferSize / o.ChunkSize)
	if depth < 1 {
		depth = 1
	}
	return depth
}

// pending pairs a launched task with its bounded chunk channel and its
// worker's join handle. The channel is closed by the worker before the join
// result is delivered, so a consumer that drains the channel and then reads
// done always sees every buffered chunk first.
type pending struct {
	task   task.Task
	chunks <-chan []byte
	done   <-chan error
}

// Run admits tasks with a sliding window of width Parallel, runs each task's
// byte source on its own worker, and forwards all output to w strictly in
// task submission order. It returns the total bytes written.
//
// The first failure (admission, launch, source, or writer) aborts the run:
// no further tasks are admitted, every already-launched worker is still
// joined, and buffered output of undrained tasks is discarded. Chunks the
// failing task buffered before its failure are written first, so the
// destination holds a correct prefix.
func Run(ctx context.Context, tasks *pipeline.Pipeline[task.Task], w writer.Writer, opts Options) (int64, error) {
	opts.applyDefaults()
	if opts.Parallel < 1 {
		return 0, errors.InvalidConfig("parallel must be >= 1")
	}
	if opts.ChunkSize < 1 {
		return 0, errors.InvalidConfig("chunk size must be >= 1")
	}

	log := opts.Logger
	depth := opts.channelDepth()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := new(errgroup.Group)

	// One slot per in-flight task, acquired at admission and released after
	// join. This is what bounds concurrency; the admission window only
	// orders the handles.
	slots := make(chan struct{}, opts.Parallel)

	launch := func(ctx context.Context, t task.Task) (*pending, error) {
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		st, err := t.Source.Open(ctx)
		if err != nil {
			<-slots
			return nil, errors.LaunchFailed(t.Index, t.Record, err)
		}
		log.Debug("task launched", logger.Fields(
			logger.FieldTask, t.Index+1,
			logger.FieldRecord, t.Record,
		))

		chunks := make(chan []byte, depth)
		done := make(chan error, 1)
		workers.Go(func() error {
			err := produce(ctx, st, chunks, int(opts.ChunkSize))
			done <- err
			return err
		})
		return &pending{task: t, chunks: chunks, done: done}, nil
	}

	pairs := pipeline.Buffered(tasks, opts.Parallel, launch).Iter(runCtx)
	defer pairs.Close()

	var written int64
	var runErr error

	for runErr == nil {
		p, ok, err := pairs.Next(runCtx)
		if err != nil {
			runErr = err
			break
		}
		if !ok {
			break
		}

		n, err := drainOne(p, w)
		written += n
		<-slots
		if err != nil {
			runErr = err
			break
		}
		log.Debug("task drained", logger.Fields(
			logger.FieldTask, p.task.Index+1,
			logger.FieldBytes, n,
		))
	}

	// Stop admitting and join every already-launched worker. Their buffered
	// output, if any, is discarded.
	cancel()
	if waitErr := workers.Wait(); runErr == nil && waitErr != nil {
		runErr = errors.Internal(waitErr)
	}

	if runErr != nil && stderrors.Is(runErr, context.Canceled) && ctx.Err() != nil {
		runErr = errors.Interrupted(runErr)
	}
	return written, runErr
}

// drainOne forwards one task's chunks to the writer until its channel
// closes, then joins the worker. A writer failure aborts immediately; the
// task's remaining chunks are abandoned for the caller to clean up.
func drainOne(p *pending, w writer.Writer) (int64, error) {
	var written int64
	for chunk := range p.chunks {
		if err := w.WriteChunk(chunk); err != nil {
			return written, errors.WriterFailed(err)
		}
		written += int64(len(chunk))
	}
	if err := <-p.done; err != nil {
		return written, errors.SourceFailed(p.task.Index, p.task.Record, err)
	}
	return written, nil
}
