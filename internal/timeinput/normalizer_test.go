package timeinput

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	return loc
}

func TestNormalize_ISOStartEnd(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	start, end, err := n.Normalize(Input{
		Start: "2026-09-14T09:30:00",
		End:   "2026-09-14T10:00:00",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, loc), end)
}

func TestNormalize_ISOWithoutSeconds(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	start, end, err := n.Normalize(Input{
		Start: "2026-09-14T09:30",
		End:   "2026-09-14T10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, loc), end)
}

func TestNormalize_ISOZSuffixIsBusinessLocal(t *testing.T) {
	// Суффикс Z отбрасывается: агент шлет местное время с ложной меткой UTC
	loc := chicago(t)
	n := NewNormalizer(loc)

	start, _, err := n.Normalize(Input{
		Start: "2026-09-14T09:30:00Z",
		End:   "2026-09-14T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, loc), start)
}

func TestNormalize_RangeMeridiemInheritance(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	tests := []struct {
		name      string
		timeRange string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "left endpoint inherits AM from right",
			timeRange: "9:45-10:15 AM",
			wantStart: time.Date(2026, 9, 14, 9, 45, 0, 0, loc),
			wantEnd:   time.Date(2026, 9, 14, 10, 15, 0, 0, loc),
		},
		{
			name:      "left endpoint inherits PM from right",
			timeRange: "1-2 PM",
			wantStart: time.Date(2026, 9, 14, 13, 0, 0, 0, loc),
			wantEnd:   time.Date(2026, 9, 14, 14, 0, 0, 0, loc),
		},
		{
			name:      "both endpoints explicit",
			timeRange: "11:30 AM - 12:30 PM",
			wantStart: time.Date(2026, 9, 14, 11, 30, 0, 0, loc),
			wantEnd:   time.Date(2026, 9, 14, 12, 30, 0, 0, loc),
		},
		{
			name:      "en dash separator",
			timeRange: "9:45–10:15 AM",
			wantStart: time.Date(2026, 9, 14, 9, 45, 0, 0, loc),
			wantEnd:   time.Date(2026, 9, 14, 10, 15, 0, 0, loc),
		},
		{
			name:      "em dash separator",
			timeRange: "9:45—10:15 AM",
			wantStart: time.Date(2026, 9, 14, 9, 45, 0, 0, loc),
			wantEnd:   time.Date(2026, 9, 14, 10, 15, 0, 0, loc),
		},
		{
			name:      "24-hour endpoints",
			timeRange: "14:00-15:30",
			wantStart: time.Date(2026, 9, 14, 14, 0, 0, 0, loc),
			wantEnd:   time.Date(2026, 9, 14, 15, 30, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := n.Normalize(Input{Date: "2026-09-14", TimeRange: tt.timeRange})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNormalize_TwelveHourEdgeCases(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	// 12 AM — полночь, 12 PM — полдень
	start, _, err := n.Normalize(Input{Date: "2026-09-14", Time: "12:00 AM"})
	require.NoError(t, err)
	assert.Equal(t, 0, start.Hour())

	start, _, err = n.Normalize(Input{Date: "2026-09-14", Time: "12:00 PM"})
	require.NoError(t, err)
	assert.Equal(t, 12, start.Hour())

	// Час без минут
	start, _, err = n.Normalize(Input{Date: "2026-09-14", Time: "9 AM"})
	require.NoError(t, err)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 0, start.Minute())
}

func TestNormalize_TimePlusDuration(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	start, end, err := n.Normalize(Input{
		Date:            "2026-09-14",
		Time:            "09:30",
		DurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 15, 0, 0, loc), end)
}

func TestNormalize_DefaultDuration(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	start, end, err := n.Normalize(Input{Date: "2026-09-14", Time: "2:00 PM"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 14, 0, 0, 0, loc), start)
	assert.Equal(t, 30*time.Minute, end.Sub(start))
}

func TestNormalize_PrecedenceISOOverOtherFields(t *testing.T) {
	loc := chicago(t)
	n := NewNormalizer(loc)

	// Явная пара start/end выигрывает у date+time_range
	start, end, err := n.Normalize(Input{
		Start:     "2026-09-14T09:00:00",
		End:       "2026-09-14T09:30:00",
		Date:      "2026-12-25",
		TimeRange: "1-2 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, loc), end)
}

func TestNormalize_Malformed(t *testing.T) {
	n := NewNormalizer(chicago(t))

	tests := []struct {
		name string
		in   Input
	}{
		{"empty input", Input{}},
		{"bad date", Input{Date: "14.09.2026", Time: "09:00"}},
		{"bad time", Input{Date: "2026-09-14", Time: "quarter past nine"}},
		{"range without separator", Input{Date: "2026-09-14", TimeRange: "9:45 AM"}},
		{"range with bad endpoint", Input{Date: "2026-09-14", TimeRange: "9:45-later AM"}},
		{"bad iso start", Input{Start: "next tuesday", End: "2026-09-14T10:00:00"}},
		{"hour 13 with meridiem", Input{Date: "2026-09-14", Time: "13:00 PM"}},
		{"hour out of range 24h", Input{Date: "2026-09-14", Time: "25:00"}},
		{"negative duration", Input{Date: "2026-09-14", Time: "09:00", DurationMinutes: -15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := n.Normalize(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}
