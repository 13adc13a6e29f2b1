package utils

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 50); got != "hello" {
		t.Fatalf("expected 'hello', got %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello" {
		t.Fatalf("expected 'hello', got %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Truncate("hello", -1); got != "" {
		t.Fatalf("expected empty string for negative max, got %q", got)
	}
}
