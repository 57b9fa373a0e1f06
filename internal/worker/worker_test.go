package worker

import (
	"testing"
	"time"
)

func TestUntilNextRollup(t *testing.T) {
	s := NewScheduler(nil, Config{RollupHourUTC: 2}, nil)

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "before rollup hour",
			now:  time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC),
			want: time.Hour,
		},
		{
			name: "after rollup hour waits for tomorrow",
			now:  time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC),
			want: 23 * time.Hour,
		},
		{
			name: "exactly at rollup hour waits a full day",
			now:  time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC),
			want: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.untilNextRollup(tt.now); got != tt.want {
				t.Errorf("untilNextRollup(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestNewSchedulerDefaults(t *testing.T) {
	s := NewScheduler(nil, Config{}, nil)

	if s.config.WorkerID == "" {
		t.Error("expected a generated worker ID")
	}
	if s.config.SweepInterval != 15*time.Minute {
		t.Errorf("SweepInterval = %v, want 15m", s.config.SweepInterval)
	}
}
