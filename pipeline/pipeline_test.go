package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	p := FromSlice([]int{})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFrom_Iterator(t *testing.T) {
	iter := &sliceIter[string]{items: []string{"a", "b"}}
	p := From[string](iter)
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestMap(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	strs := Map(p, func(_ context.Context, n int) (string, error) {
		return fmt.Sprintf("#%d", n), nil
	})
	got, err := Collect(context.Background(), strs)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#1", "#2", "#3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestMap_Error(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	fail := Map(p, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("bad value")
		}
		return n, nil
	})
	got, err := Collect(context.Background(), fail)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1] before error, got %v", got)
	}
}

func TestDrain(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	var sum int
	err := Drain(context.Background(), p, func(_ context.Context, n int) error {
		sum += n
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestDrain_SinkError(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	sinkErr := errors.New("sink failed")
	var seen []int
	err := Drain(context.Background(), p, func(_ context.Context, n int) error {
		if n == 2 {
			return sinkErr
		}
		seen = append(seen, n)
		return nil
	})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if !intSliceEqual(seen, []int{1}) {
		t.Errorf("expected [1] before error, got %v", seen)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
