package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

func TestRemaining(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	start := types.TimeString("14:00")

	tests := []struct {
		name         string
		now          time.Time
		duration     int
		wantFinished bool
		wantHours    int
		wantMinutes  int
		wantSeconds  int
	}{
		{
			name:        "at session start the full duration remains",
			now:         time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC),
			duration:    2,
			wantHours:   2,
			wantMinutes: 0,
			wantSeconds: 0,
		},
		{
			name:        "mid session",
			now:         time.Date(2025, 10, 15, 14, 30, 15, 0, time.UTC),
			duration:    2,
			wantHours:   1,
			wantMinutes: 29,
			wantSeconds: 45,
		},
		{
			name:        "before session start counts down to the end",
			now:         time.Date(2025, 10, 15, 13, 0, 0, 0, time.UTC),
			duration:    1,
			wantHours:   2,
			wantMinutes: 0,
			wantSeconds: 0,
		},
		{
			name:         "exactly at session end",
			now:          time.Date(2025, 10, 15, 16, 0, 0, 0, time.UTC),
			duration:     2,
			wantFinished: true,
		},
		{
			name:         "long after session end stays clamped at zero",
			now:          time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC),
			duration:     2,
			wantFinished: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Remaining(date, start, tt.duration, tt.now)

			assert.Equal(t, tt.wantFinished, c.Finished)
			assert.Equal(t, tt.wantHours, c.Hours)
			assert.Equal(t, tt.wantMinutes, c.Minutes)
			assert.Equal(t, tt.wantSeconds, c.Seconds)

			if tt.wantFinished {
				assert.Equal(t, time.Duration(0), c.Remaining)
			}
		})
	}
}

func TestRemaining_IsPure(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	first := Remaining(date, types.TimeString("14:00"), 2, now)
	second := Remaining(date, types.TimeString("14:00"), 2, now)

	assert.Equal(t, first, second)
}
