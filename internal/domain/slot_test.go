package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

func TestNewSlotCatalog(t *testing.T) {
	tests := []struct {
		name      string
		openTime  string
		closeTime string
		wantErr   bool
		wantSize  int
	}{
		{
			name:      "default club hours",
			openTime:  "09:00",
			closeTime: "22:00",
			wantSize:  13,
		},
		{
			name:      "short day",
			openTime:  "10:00",
			closeTime: "12:00",
			wantSize:  2,
		},
		{
			name:      "open not a whole hour",
			openTime:  "09:30",
			closeTime: "22:00",
			wantErr:   true,
		},
		{
			name:      "open equals close",
			openTime:  "09:00",
			closeTime: "09:00",
			wantErr:   true,
		},
		{
			name:      "open after close",
			openTime:  "22:00",
			closeTime: "09:00",
			wantErr:   true,
		},
		{
			name:      "malformed open time",
			openTime:  "9am",
			closeTime: "22:00",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := NewSlotCatalog(types.TimeString(tt.openTime), types.TimeString(tt.closeTime))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, catalog.Size())
		})
	}
}

func TestSlotCatalog_SlotsForDay(t *testing.T) {
	catalog := MustDefaultSlotCatalog()

	slots := catalog.SlotsForDay()

	require.Len(t, slots, 13)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])

	// Слоты идут подряд с шагом в час
	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, 60, cur-prev)
	}
}

func TestSlotCatalog_Contains(t *testing.T) {
	catalog := MustDefaultSlotCatalog()

	tests := []struct {
		name string
		time string
		want bool
	}{
		{"first slot", "09:00", true},
		{"last slot", "21:00", true},
		{"middle slot", "14:00", true},
		{"closing hour is not bookable", "22:00", false},
		{"before opening", "08:00", false},
		{"not a whole hour", "14:30", false},
		{"malformed", "garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Contains(types.TimeString(tt.time)))
		})
	}
}

func TestSlotCatalog_SpanHours(t *testing.T) {
	catalog := MustDefaultSlotCatalog()

	tests := []struct {
		name     string
		start    string
		duration int
		want     []int
	}{
		{
			name:     "single hour",
			start:    "14:00",
			duration: 1,
			want:     []int{14},
		},
		{
			name:     "two hours block both",
			start:    "14:00",
			duration: 2,
			want:     []int{14, 15},
		},
		{
			name:     "four hours",
			start:    "09:00",
			duration: 4,
			want:     []int{9, 10, 11, 12},
		},
		{
			name:     "last slot with long duration is clipped to the grid",
			start:    "21:00",
			duration: 4,
			want:     []int{21},
		},
		{
			name:     "span past closing keeps only in-grid hours",
			start:    "20:00",
			duration: 3,
			want:     []int{20, 21},
		},
		{
			name:     "malformed start",
			start:    "whenever",
			duration: 2,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.SpanHours(types.TimeString(tt.start), tt.duration))
		})
	}
}
