package writer

import (
	"fmt"
	"os"
)

// fileWriter appends chunks with ordinary write(2) calls. Also serves as the
// stdout fallback when the destination is not a pipe.
type fileWriter struct {
	f        *os.File
	ownsFile bool
}

func (w *fileWriter) WriteChunk(chunk []byte) error {
	for len(chunk) > 0 {
		n, err := w.f.Write(chunk)
		if err != nil {
			return fmt.Errorf("writer: write %s: %w", w.f.Name(), err)
		}
		chunk = chunk[n:]
	}
	return nil
}

func (w *fileWriter) Close() error {
	if !w.ownsFile {
		return nil
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("writer: close %s: %w", w.f.Name(), err)
	}
	return nil
}
