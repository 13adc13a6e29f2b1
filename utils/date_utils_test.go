package utils

import (
	"testing"
	"time"
)

func TestParseDateAcceptedForms(t *testing.T) {
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2024-05-01",
		"2024-05-01T15:04:05Z",
		"2024-05-01T15:04:05",
		"2024-05-01T15:04:05.123456",
	} {
		got, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q) returned error: %v", input, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseDateRejectsOtherForms(t *testing.T) {
	for _, input := range []string{"", "05/01/2024", "May 1 2024", "2024-13-40"} {
		if _, err := ParseDate(input); err == nil {
			t.Fatalf("ParseDate(%q) should have failed", input)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2024-05-01" {
		t.Fatalf("expected '2024-05-01', got %q", got)
	}
}
