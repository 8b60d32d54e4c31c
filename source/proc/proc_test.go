package proc_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/allada/pconcat/source/proc"
)

func TestParse(t *testing.T) {
	src, err := proc.Parse(`echo "hello world" trailer`)
	if err != nil {
		t.Fatal(err)
	}
	if src.String() != `echo "hello world" trailer` {
		t.Errorf("String() = %q", src.String())
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := proc.Parse(""); err == nil {
		t.Error("expected error for empty command")
	}
	if _, err := proc.Parse("   "); err == nil {
		t.Error("expected error for whitespace-only command")
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	if _, err := proc.Parse(`echo "unterminated`); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func TestOpenEcho(t *testing.T) {
	src, err := proc.Parse("echo hello world")
	if err != nil {
		t.Fatal(err)
	}
	st, err := src.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(st)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello world" {
		t.Errorf("got %q", out)
	}
}

func TestOpenQuoting(t *testing.T) {
	src, err := proc.Parse(`echo "a b" c`)
	if err != nil {
		t.Fatal(err)
	}
	st, err := src.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	out, _ := io.ReadAll(st)
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(out)) != "a b c" {
		t.Errorf("got %q, want %q", strings.TrimSpace(string(out)), "a b c")
	}
}

func TestOpenNonZeroExit(t *testing.T) {
	src, err := proc.Parse("sh -c 'printf X; exit 3'")
	if err != nil {
		t.Fatal(err)
	}
	st, err := src.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(st)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "X" {
		t.Errorf("partial output = %q, want X", out)
	}
	err = st.Close()
	if err == nil {
		t.Fatal("expected failure outcome for exit 3")
	}
	if !strings.Contains(err.Error(), "exit status 3") {
		t.Errorf("error should identify exit status: %v", err)
	}
}

func TestOpenMissingBinary(t *testing.T) {
	src, err := proc.Parse("definitely-not-a-real-binary-xyz")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.Open(context.Background()); err == nil {
		t.Fatal("expected launch error for missing binary")
	}
}

func TestOpenContextCancelKills(t *testing.T) {
	src, err := proc.Parse("sleep 30")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	st, err := src.Open(ctx)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	cancel()
	_, _ = io.ReadAll(st)
	_ = st.Close()
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Fatalf("canceled command took too long to die: %v", elapsed)
	}
}
