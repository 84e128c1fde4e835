package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2026, 8, 30, 15, 42, 10, 0, time.UTC)
	got := BeginningOfDay(ts)
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if day.Year() != 2026 || day.Month() != time.August || day.Day() != 30 {
		t.Fatalf("unexpected date: %v", day)
	}

	if _, err := ParseDay("30/08/2026"); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}
