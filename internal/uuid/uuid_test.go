package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	if a == b {
		t.Fatal("expected distinct ids")
	}
	if !IsValid(a) {
		t.Fatalf("generated id %q is not valid", a)
	}
	if a[14] != '7' {
		t.Errorf("expected version 7, got %q", a)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"canonical", "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", true},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
		{"braced", "{0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d}", false},
		{"no_hyphens", "0190b6c87d2e7a3b8c4d1e2f3a4b5c6d", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.in); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse(strings.ToUpper("0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d" {
		t.Errorf("expected lowercase canonical form, got %q", got)
	}
	if _, err := Parse("nope"); err == nil {
		t.Error("expected error for invalid input")
	}
}
