// Package writer implements the output sink of pconcat.
//
// Two variants exist: a plain file writer and, on Linux, a zero-copy pipe
// writer that gifts chunk pages straight into the kernel pipe buffer with
// vmsplice(2). Both produce byte-identical output; the pipe variant is a
// performance optimization only.
package writer

import (
	"fmt"
	"os"
)

// Writer appends chunks to the destination. WriteChunk consumes the chunk:
// ownership of the slice transfers to the writer and the caller must not
// read or modify it afterwards. Each chunk is fully written before
// WriteChunk returns.
type Writer interface {
	WriteChunk(chunk []byte) error
	Close() error
}

// New selects the writer variant for the destination. A non-empty path gets
// the file variant (created or truncated). An empty path means standard
// output; when stdout is a pipe, the zero-copy variant is used.
func New(path string) (Writer, error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // destination path comes from the operator
		if err != nil {
			return nil, fmt.Errorf("writer: open %s: %w", path, err)
		}
		return &fileWriter{f: f, ownsFile: true}, nil
	}
	if isPipe(os.Stdout) {
		return newPipeWriter(os.Stdout), nil
	}
	return &fileWriter{f: os.Stdout}, nil
}

func isPipe(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeNamedPipe != 0
}
