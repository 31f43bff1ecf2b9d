package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"  v0.48.0 ", "0.48.0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeVersion(tt.in); got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidVersion(t *testing.T) {
	valid := []string{"1.2", "1.2.3", "0.48.0", "10.0.0.1"}
	invalid := []string{"", "abc", "7", "1.", ".1", "1.2.x", "1..2", "v1.2.3"}

	for _, v := range valid {
		if !validVersion(v) {
			t.Errorf("validVersion(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if validVersion(v) {
			t.Errorf("validVersion(%q) = true, want false", v)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.10.0", "1.9.0", 1},
		{"1.9.0", "1.10.0", -1},
		{"2.0", "1.99.99", 1},
		{"1.2.0", "1.2", 1},
		{"0.48.0", "0.48.1", -1},
	}
	for _, tt := range tests {
		if got := compareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("compareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSortedVersionsDesc(t *testing.T) {
	rows := map[string]Row{
		"1.9.0":  {},
		"1.10.0": {},
		"0.5.2":  {},
		"2.0.0":  {},
	}
	want := []string{"2.0.0", "1.10.0", "1.9.0", "0.5.2"}
	if diff := cmp.Diff(want, sortedVersionsDesc(rows)); diff != "" {
		t.Errorf("sortedVersionsDesc() mismatch (-want +got):\n%s", diff)
	}
}
