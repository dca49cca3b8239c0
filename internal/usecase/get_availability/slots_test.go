package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greensheets/booking-service/internal/calendar"
	"github.com/greensheets/booking-service/internal/config"
	"github.com/greensheets/booking-service/internal/domain"
)

func testCalendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.New(config.CalendarConfig{
		Timezone:         "America/Chicago",
		OpenHour:         9,
		CloseHour:        17,
		WorkingDays:      []string{"mon", "tue", "wed", "thu", "fri"},
		IncrementMinutes: 15,
		LeadMinutes:      120,
		ServiceDurations: map[string]int{"consultation": 30, "cleaning": 60},
	})
	require.NoError(t, err)
	return cal
}

func TestGenerateCandidates_SingleDayBounds(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	// Понедельник, 30-минутные слоты: 09:00 .. 16:30, всего 31
	dayStart := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)
	slots := generateCandidates(cal, 30*time.Minute, dayStart, cal.NextDay(dayStart))

	require.Len(t, slots, 31)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 0, 0, 0, loc), slots[0].Start)
	assert.Equal(t, time.Date(2026, 9, 14, 16, 30, 0, 0, loc), slots[len(slots)-1].Start)
	assert.Equal(t, time.Date(2026, 9, 14, 17, 0, 0, 0, loc), slots[len(slots)-1].End)

	// Каждый слот ровно 30 минут, порядок строго возрастающий
	for i, s := range slots {
		assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
		if i > 0 {
			assert.True(t, slots[i-1].Start.Before(s.Start))
		}
	}
}

func TestGenerateCandidates_LongerDurationFewerSlots(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	dayStart := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)
	slots := generateCandidates(cal, 60*time.Minute, dayStart, cal.NextDay(dayStart))

	// Последний 60-минутный слот начинается в 16:00
	require.NotEmpty(t, slots)
	assert.Equal(t, time.Date(2026, 9, 14, 16, 0, 0, 0, loc), slots[len(slots)-1].Start)
	require.Len(t, slots, 29)
}

func TestGenerateCandidates_NonWorkingDayEmpty(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	// Суббота
	dayStart := time.Date(2026, 9, 19, 0, 0, 0, 0, loc)
	slots := generateCandidates(cal, 30*time.Minute, dayStart, cal.NextDay(dayStart))
	assert.Empty(t, slots)
}

func TestGenerateCandidates_WeekSkipsWeekend(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	weekStart, weekEnd := cal.WeekWindow(time.Date(2026, 9, 16, 0, 0, 0, 0, loc))
	slots := generateCandidates(cal, 30*time.Minute, weekStart, weekEnd)

	// 5 рабочих дней по 31 слоту
	require.Len(t, slots, 5*31)
	for _, s := range slots {
		wd := s.Start.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestGenerateCandidates_FirstSlotOfEachDayPresent(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	weekStart, weekEnd := cal.WeekWindow(time.Date(2026, 9, 14, 0, 0, 0, 0, loc))
	slots := generateCandidates(cal, 30*time.Minute, weekStart, weekEnd)

	starts := make(map[string]bool)
	for _, s := range slots {
		starts[s.Start.Format(time.RFC3339)] = true
	}
	for day := 14; day <= 18; day++ {
		first := time.Date(2026, 9, day, 9, 0, 0, 0, loc)
		assert.True(t, starts[first.Format(time.RFC3339)], "missing 09:00 slot on day %d", day)
	}
}

func TestGenerateCandidates_Deterministic(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	dayStart := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)
	a := generateCandidates(cal, 30*time.Minute, dayStart, cal.NextDay(dayStart))
	b := generateCandidates(cal, 30*time.Minute, dayStart, cal.NextDay(dayStart))
	assert.Equal(t, a, b)
}

func TestSubtractBusy(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	dayStart := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)
	candidates := generateCandidates(cal, 30*time.Minute, dayStart, cal.NextDay(dayStart))

	busy := []domain.Interval{
		{
			Start: time.Date(2026, 9, 14, 9, 0, 0, 0, loc),
			End:   time.Date(2026, 9, 14, 9, 30, 0, 0, loc),
		},
	}
	free := subtractBusy(candidates, busy)

	// Выпадают 09:00 и перекрывающий 09:15; слот 09:30 остается —
	// касание границ не конфликт
	require.Len(t, free, len(candidates)-2)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, loc), free[0].Start)

	for _, s := range free {
		assert.False(t, s.OverlapsAny(busy))
	}
}

func TestSubtractBusy_NoBusyReturnsAll(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	dayStart := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)
	candidates := generateCandidates(cal, 30*time.Minute, dayStart, cal.NextDay(dayStart))
	assert.Equal(t, candidates, subtractBusy(candidates, nil))
}

func TestEffectiveWindowStart(t *testing.T) {
	cal := testCalendar(t)
	loc := cal.Location()

	windowStart := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)

	// now + 120 минут внутри окна: отсечка поднимается и округляется
	// вверх до шага 15 минут
	now := time.Date(2026, 9, 14, 8, 5, 0, 0, loc)
	got := effectiveWindowStart(cal, windowStart, now)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 15, 0, 0, loc), got)

	// now задолго до окна: окно не трогаем
	now = time.Date(2026, 9, 1, 12, 0, 0, 0, loc)
	assert.Equal(t, windowStart, effectiveWindowStart(cal, windowStart, now))
}
