package domain

import (
	"testing"
	"time"
)

func TestDateKeyRoundTrip(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	key := DateKey(date)
	if key != "2024-03-09" {
		t.Errorf("DateKey() = %q, want %q", key, "2024-03-09")
	}

	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey() error = %v", err)
	}
	if !parsed.Equal(date) {
		t.Errorf("ParseDateKey() = %v, want %v", parsed, date)
	}
}

func TestParseDateKeyRejectsGarbage(t *testing.T) {
	for _, key := range []string{"", "09-03-2024", "2024/03/09", "yesterday"} {
		if _, err := ParseDateKey(key); err == nil {
			t.Errorf("ParseDateKey(%q) expected error", key)
		}
	}
}

func TestDayKey(t *testing.T) {
	// 2024-03-09 is a Saturday
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := DayKey(date); got != "saturday" {
		t.Errorf("DayKey() = %q, want %q", got, "saturday")
	}
}

func TestNormalizeDayKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"monday", "monday", false},
		{"Monday", "monday", false},
		{" FRIDAY ", "friday", false},
		{"someday", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeDayKey(tt.in)
		if tt.wantErr {
			if err != ErrInvalidDay {
				t.Errorf("NormalizeDayKey(%q) error = %v, want ErrInvalidDay", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeDayKey(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDayKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
