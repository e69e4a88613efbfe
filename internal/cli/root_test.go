package cli

import (
	"testing"
	"time"

	"github.com/julianstephens/lifeboost/internal/countdown"
	"github.com/julianstephens/lifeboost/internal/models"
)

func TestFormatStatus(t *testing.T) {
	target := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	tests := []struct {
		name   string
		status countdown.Status
		want   string
	}{
		{
			name:   "running",
			status: countdown.Status{Name: "hydration", Mode: models.ModeRunning, Period: 1800, Target: target, Remaining: 90 * time.Second},
			want:   "Hydration: running, 01:30 left (due 10:30)",
		},
		{
			name:   "expired",
			status: countdown.Status{Name: "meditation", Mode: models.ModeExpired, Period: 120},
			want:   "Meditation: complete",
		},
		{
			name:   "idle minutes",
			status: countdown.Status{Name: "workout", Mode: models.ModeIdle, Period: 1500},
			want:   "Workout: idle (25 min)",
		},
		{
			name:   "idle seconds",
			status: countdown.Status{Name: "meditation", Mode: models.ModeIdle, Period: 90},
			want:   "Meditation: idle (90 s)",
		},
		{
			name:   "idle daily",
			status: countdown.Status{Name: "bedtime", Mode: models.ModeIdle, Period: 86400},
			want:   "Bedtime: idle (every 24h)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStatus(tt.status); got != tt.want {
				t.Errorf("FormatStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
