package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	chunks := [][]byte{[]byte("AAA"), []byte("BBBBB"), []byte("CC"), {}}
	var want bytes.Buffer
	for _, c := range chunks {
		want.Write(c)
		if err := w.WriteChunk(c); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Errorf("got %q, want %q", got, want.Bytes())
	}
}

func TestNewTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	if err := os.WriteFile(path, []byte("stale contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteChunk([]byte("new")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("destination not truncated: %q", got)
	}
}

func TestNewBadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "no-such-dir", "out.bin")); err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}

func TestFileWriterClosedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteChunk([]byte("late")); err == nil {
		t.Fatal("expected error writing after close")
	}
}
