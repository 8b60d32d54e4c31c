// Package source defines the byte-source boundary of pconcat.
//
// A Source is anything that can be driven to produce a finite sequence of
// bytes and a terminal success/failure outcome: a spawned subprocess's
// stdout, a streamed S3 object body. The core is agnostic to what produces
// the bytes.
package source

import (
	"context"
	"io"
)

// Source opens a finite stream of bytes.
type Source interface {
	// Open acquires the underlying resource (starts the process, issues the
	// fetch) and returns its byte stream. A failure here means the task never
	// produced anything.
	Open(ctx context.Context) (Stream, error)

	// String returns a short description of the source for logs and errors.
	String() string
}

// Stream is an open byte source. Read yields the source's bytes until
// io.EOF; mid-stream failures surface as read errors. Close releases the
// underlying resource and reports the source's terminal outcome (e.g. a
// non-zero exit status), so it must be called exactly once, after reading
// has stopped.
type Stream interface {
	io.Reader
	Close() error
}
