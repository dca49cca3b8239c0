// Package calendar бизнес-календарь: рабочие часы, рабочие дни, шаг слотов
// и минимальное время до записи. Чистые функции без I/O; конфигурация
// неизменяема после создания.
package calendar

import (
	"fmt"
	"time"

	"github.com/greensheets/booking-service/internal/config"
)

// Calendar business hours and booking policy for a single location
type Calendar struct {
	location         *time.Location
	openHour         int
	closeHour        int
	workingDays      map[time.Weekday]bool
	incrementMinutes int
	leadMinutes      int
	serviceDurations map[string]time.Duration
}

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

// New builds a Calendar from configuration.
// An empty working_days list defaults to Monday through Friday.
func New(cfg config.CalendarConfig) (*Calendar, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar: load timezone %q: %w", cfg.Timezone, err)
	}

	days := make(map[time.Weekday]bool, len(cfg.WorkingDays))
	if len(cfg.WorkingDays) == 0 {
		for d := time.Monday; d <= time.Friday; d++ {
			days[d] = true
		}
	}
	for _, name := range cfg.WorkingDays {
		wd, ok := weekdayNames[normalizeDayName(name)]
		if !ok {
			return nil, fmt.Errorf("calendar: unknown working day %q", name)
		}
		days[wd] = true
	}

	durations := make(map[string]time.Duration, len(cfg.ServiceDurations))
	for service, minutes := range cfg.ServiceDurations {
		durations[service] = time.Duration(minutes) * time.Minute
	}

	return &Calendar{
		location:         loc,
		openHour:         cfg.OpenHour,
		closeHour:        cfg.CloseHour,
		workingDays:      days,
		incrementMinutes: cfg.IncrementMinutes,
		leadMinutes:      cfg.LeadMinutes,
		serviceDurations: durations,
	}, nil
}

// Location returns the business time zone
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Increment returns the step between candidate slot starts
func (c *Calendar) Increment() time.Duration {
	return time.Duration(c.incrementMinutes) * time.Minute
}

// LeadTime returns the minimum notice required before a bookable start
func (c *Calendar) LeadTime() time.Duration {
	return time.Duration(c.leadMinutes) * time.Minute
}

// DurationFor returns the configured duration of a service
func (c *Calendar) DurationFor(service string) (time.Duration, error) {
	d, ok := c.serviceDurations[service]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownService, service)
	}
	return d, nil
}

// KnowsService reports whether the service is configured
func (c *Calendar) KnowsService(service string) bool {
	_, ok := c.serviceDurations[service]
	return ok
}

// IsWorkingDay reports whether the business is open on the date's weekday
func (c *Calendar) IsWorkingDay(date time.Time) bool {
	return c.workingDays[date.In(c.location).Weekday()]
}

// DayWindow returns the (open, close) timestamps of a calendar date
func (c *Calendar) DayWindow(date time.Time) (time.Time, time.Time) {
	d := date.In(c.location)
	openAt := time.Date(d.Year(), d.Month(), d.Day(), c.openHour, 0, 0, 0, c.location)
	closeAt := time.Date(d.Year(), d.Month(), d.Day(), c.closeHour, 0, 0, 0, c.location)
	return openAt, closeAt
}

// WeekWindow returns (mondayMidnight, mondayMidnight+7d) for the week
// containing t. The week is always anchored to Monday, whichever day is
// passed in.
func (c *Calendar) WeekWindow(t time.Time) (time.Time, time.Time) {
	d := t.In(c.location)
	// time.Weekday нумерует с воскресенья, неделя здесь начинается с понедельника
	offset := (int(d.Weekday()) + 6) % 7
	monday := time.Date(d.Year(), d.Month(), d.Day()-offset, 0, 0, 0, 0, c.location)
	return monday, monday.AddDate(0, 0, 7)
}

// NextDay returns midnight of the calendar day after date.
// Day walks must advance through here, not via duration arithmetic,
// so DST shifts cannot skip or duplicate a day's first slot.
func (c *Calendar) NextDay(date time.Time) time.Time {
	d := date.In(c.location)
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, c.location)
}

// RoundUpToIncrement rounds t up to the next increment boundary
func (c *Calendar) RoundUpToIncrement(t time.Time) time.Time {
	d := t.In(c.location)
	floored := time.Date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), 0, 0, c.location)
	if floored.Before(d) {
		floored = floored.Add(time.Minute)
	}
	if rem := floored.Minute() % c.incrementMinutes; rem != 0 {
		floored = floored.Add(time.Duration(c.incrementMinutes-rem) * time.Minute)
	}
	return floored
}

func normalizeDayName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r == ' ' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
