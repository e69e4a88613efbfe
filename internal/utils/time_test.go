package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: ""},
		{name: "Local returns local", timezone: "Local"},
		{name: "valid timezone UTC", timezone: "UTC"},
		{name: "valid timezone Asia/Tokyo", timezone: "Asia/Tokyo"},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestPreviousDay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2026-03-02", "2026-03-01"},
		{"2026-03-01", "2026-02-28"},
		{"2024-03-01", "2024-02-29"},
		{"2026-01-01", "2025-12-31"},
	}
	for _, tt := range tests {
		got, err := PreviousDay(tt.in)
		if err != nil {
			t.Fatalf("PreviousDay(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("PreviousDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := PreviousDay("03/02/2026"); err == nil {
		t.Error("PreviousDay() should reject malformed dates")
	}
}

func TestNextOccurrence(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		hhmm string
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2026, 5, 10, 20, 15, 0, 0, loc),
			hhmm: "22:00",
			want: time.Date(2026, 5, 10, 22, 0, 0, 0, loc),
		},
		{
			name: "already passed rolls to tomorrow",
			now:  time.Date(2026, 5, 10, 23, 5, 0, 0, loc),
			hhmm: "22:00",
			want: time.Date(2026, 5, 11, 22, 0, 0, 0, loc),
		},
		{
			name: "exactly now rolls to tomorrow",
			now:  time.Date(2026, 5, 10, 22, 0, 0, 0, loc),
			hhmm: "22:00",
			want: time.Date(2026, 5, 11, 22, 0, 0, 0, loc),
		},
		{
			name: "month boundary",
			now:  time.Date(2026, 5, 31, 23, 30, 0, 0, loc),
			hhmm: "06:30",
			want: time.Date(2026, 6, 1, 6, 30, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(tt.now, tt.hhmm)
			if err != nil {
				t.Fatalf("NextOccurrence() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NextOccurrence(time.Now(), "25:00"); err == nil {
		t.Error("NextOccurrence() should reject 25:00")
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "00:00"},
		{0, "00:00"},
		{1500 * time.Millisecond, "00:02"},
		{119 * time.Second, "01:59"},
		{25 * time.Minute, "25:00"},
		{90*time.Minute + 5*time.Second, "01:30:05"},
	}
	for _, tt := range tests {
		if got := FormatRemaining(tt.in); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2026-02-28") {
		t.Error("ValidDate(2026-02-28) = false")
	}
	for _, bad := range []string{"", "2026-02-30", "2026/02/28", "yesterday"} {
		if ValidDate(bad) {
			t.Errorf("ValidDate(%q) = true", bad)
		}
	}
}
