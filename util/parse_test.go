package util

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1024", 1024},
		{"512KB", 512 * 1024},
		{"2MB", 2 * 1024 * 1024},
		{"1GB", 1 << 30},
		{"1gb", 1 << 30},
		{" 16 MB ", 16 * 1024 * 1024},
		{"100B", 100},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := ParseSize(c.in)
		if err != nil {
			t.Errorf("ParseSize(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12XB", "-5MB", "MB"} {
		if _, err := ParseSize(in); err == nil {
			t.Errorf("ParseSize(%q): expected error", in)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("AKIAEXAMPLEKEY", 4); got != "AKIA***" {
		t.Errorf("got %q", got)
	}
	if got := MaskSecret("ab", 4); got != "***" {
		t.Errorf("short secret should be fully masked, got %q", got)
	}
}
