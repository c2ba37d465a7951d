package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2026-09-01", false},
		{"2026-1-1", true},
		{"01/09/2026", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParseDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}

	got, err := ParseDate("2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2026 || got.Month() != time.September || got.Day() != 1 {
		t.Errorf("ParseDate() = %v", got)
	}
	if got.Location() != time.Local {
		t.Errorf("ParseDate() location = %v, want local", got.Location())
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"08:30", false},
		{"23:59", false},
		{"24:00", true},
		{"8h30", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParseClock(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2026-09-01", "14:30")
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("CombineDateTime() = %v, want %v", got, want)
	}

	if _, err := CombineDateTime("bad", "14:30"); err == nil {
		t.Error("expected error for bad date")
	}
	if _, err := CombineDateTime("2026-09-01", "bad"); err == nil {
		t.Error("expected error for bad clock")
	}
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 9, 1, 23, 59, 0, 0, time.Local)
	if got := DayKey(ts.UnixMilli()); got != "2026-09-01" {
		t.Errorf("DayKey() = %s, want 2026-09-01", got)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	ts := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	if got := FormatDisplayDate(ts); got != "01/09/2026" {
		t.Errorf("FormatDisplayDate() = %s, want 01/09/2026", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir available")
	}

	if got := ExpandHome("~/x/y"); got != filepath.Join(home, "x/y") {
		t.Errorf("ExpandHome(~/x/y) = %s", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %s", got)
	}
	if got := ExpandHome("relative"); got != "relative" {
		t.Errorf("ExpandHome(relative) = %s", got)
	}
}
