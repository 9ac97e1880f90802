package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:00", false},
		{"valid evening", "21:00", false},
		{"midnight", "00:00", false},
		{"last minute of day", "23:59", false},
		{"missing leading zero", "9:00", true},
		{"hour out of range", "24:00", true},
		{"minutes out of range", "12:60", true},
		{"with seconds", "09:00:00", true},
		{"empty", "", true},
		{"garbage", "noon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("14:30")
	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_Hour(t *testing.T) {
	assert.Equal(t, 14, TimeString("14:00").Hour())
	assert.Equal(t, 0, TimeString("00:30").Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
}

func TestTimeString_AddHours(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		hours   int
		want    string
		wantErr error
	}{
		{"simple add", "09:00", 2, "11:00", nil},
		{"to last hour", "21:00", 2, "23:00", nil},
		{"crossing midnight is rejected", "22:00", 3, "", ErrOutOfRange},
		{"exactly midnight is rejected", "22:00", 2, "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeString(tt.start).AddHours(tt.hours)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, TimeString(tt.want), got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("21:00").IsAfter("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    TimeString
		wantErr bool
	}{
		{"string with seconds", "09:00:00", TimeString("09:00"), false},
		{"plain string", "14:00", TimeString("14:00"), false},
		{"bytes", []byte("21:00:00"), TimeString("21:00"), false},
		{"time value", time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC), TimeString("18:30"), false},
		{"nil resets", nil, TimeString(""), false},
		{"unsupported type", 42, TimeString(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
