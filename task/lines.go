package task

import (
	"bufio"
	"context"
	"io"

	"github.com/allada/pconcat/pipeline"
)

// maxRecordSize bounds a single input record. Command lines and object keys
// are small; 1 MiB leaves generous headroom.
const maxRecordSize = 1 << 20

// Records builds a lazy pipeline of input records from a line-oriented
// stream, one record per line. The final line need not be newline-terminated.
func Records(r io.Reader) *pipeline.Pipeline[string] {
	return pipeline.FromFunc(func(_ context.Context) pipeline.Iterator[string] {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 64*1024), maxRecordSize)
		return &lineIter{sc: sc}
	})
}

type lineIter struct {
	sc *bufio.Scanner
}

func (it *lineIter) Next(_ context.Context) (string, bool, error) {
	if it.sc.Scan() {
		return it.sc.Text(), true, nil
	}
	if err := it.sc.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

func (it *lineIter) Close() error { return nil }

// FromReader combines Records and Parse: one task per input line.
func FromReader(r io.Reader, parse Parser) *pipeline.Pipeline[Task] {
	return Parse(Records(r), parse)
}
