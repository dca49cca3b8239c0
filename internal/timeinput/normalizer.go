// Package timeinput нормализует разнородные форматы времени от голосового
// агента в каноническую пару (start, end). Никогда не обращается к
// календарю или бронированиям — только парсинг.
package timeinput

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/greensheets/booking-service/internal/domain"
)

// Input слабоструктурированный запрос времени.
// Формы в порядке приоритета:
//  1. Start + End — явные ISO datetime, без дальнейших преобразований
//  2. Date + TimeRange — "9:45-10:15 AM" (дефис, en-dash или em-dash)
//  3. Date + Time (+ DurationMinutes, по умолчанию 30)
type Input struct {
	Start           string
	End             string
	Date            string
	Time            string
	TimeRange       string
	DurationMinutes int
}

// Normalizer парсит входные данные в бизнес-таймзоне
type Normalizer struct {
	location *time.Location
}

// NewNormalizer создает normalizer для указанной таймзоны
func NewNormalizer(location *time.Location) *Normalizer {
	return &Normalizer{location: location}
}

var (
	clock12h = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)\s*$`)
	clock24h = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)

	dashReplacer = strings.NewReplacer("—", "-", "–", "-")

	isoLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}
)

// Normalize приводит вход к канонической паре (start, end).
// Любой нераспознанный токен — ошибка ErrMalformedInput с именем поля,
// частичных результатов не бывает.
func (n *Normalizer) Normalize(in Input) (time.Time, time.Time, error) {
	switch {
	case in.Start != "" && in.End != "":
		return n.normalizeISO(in)
	case in.Date != "" && in.TimeRange != "":
		return n.normalizeRange(in)
	case in.Date != "" && in.Time != "":
		return n.normalizeStartDuration(in)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: need ISO start/end, or date+time_range, or date+time", ErrMalformedInput)
	}
}

func (n *Normalizer) normalizeISO(in Input) (time.Time, time.Time, error) {
	start, err := n.parseISO(in.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: field \"start\": %v", ErrMalformedInput, err)
	}
	end, err := n.parseISO(in.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: field \"end\": %v", ErrMalformedInput, err)
	}
	return start, end, nil
}

func (n *Normalizer) normalizeRange(in Input) (time.Time, time.Time, error) {
	date, err := n.parseDate(in.Date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	rng := dashReplacer.Replace(in.TimeRange)
	parts := strings.SplitN(rng, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: field \"time_range\": %q has no range separator", ErrMalformedInput, in.TimeRange)
	}

	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])

	// Левая граница без AM/PM наследует меридием правой: "9:45-10:15 AM"
	if hasMeridiem(right) && !hasMeridiem(left) {
		fields := strings.Fields(right)
		left = left + " " + fields[len(fields)-1]
	}

	startClock, err := parseClock(left)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: field \"time_range\": %v", ErrMalformedInput, err)
	}
	endClock, err := parseClock(right)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: field \"time_range\": %v", ErrMalformedInput, err)
	}

	return n.at(date, startClock), n.at(date, endClock), nil
}

func (n *Normalizer) normalizeStartDuration(in Input) (time.Time, time.Time, error) {
	date, err := n.parseDate(in.Date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startClock, err := parseClock(in.Time)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: field \"time\": %v", ErrMalformedInput, err)
	}

	minutes := in.DurationMinutes
	if minutes == 0 {
		minutes = domain.DefaultDurationMinutes
	}
	if minutes < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: field \"duration_min\": must be positive", ErrMalformedInput)
	}

	start := n.at(date, startClock)
	return start, start.Add(time.Duration(minutes) * time.Minute), nil
}

func (n *Normalizer) parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(s), n.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field \"date\": %q is not a YYYY-MM-DD date", ErrMalformedInput, s)
	}
	return d, nil
}

func (n *Normalizer) parseISO(s string) (time.Time, error) {
	// Суффикс Z отбрасывается: время интерпретируется в бизнес-таймзоне
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, n.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO datetime like 2025-11-06T10:00:00", s)
}

// clockTime время суток без даты
type clockTime struct {
	hour, minute int
}

func (n *Normalizer) at(date time.Time, c clockTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.hour, c.minute, 0, 0, n.location)
}

func hasMeridiem(s string) bool {
	u := strings.ToUpper(s)
	return strings.Contains(u, "AM") || strings.Contains(u, "PM")
}

// parseClock разбирает одиночное время: 12-часовое с AM/PM или 24-часовое HH:MM
func parseClock(s string) (clockTime, error) {
	if hasMeridiem(s) {
		return parseClock12h(s)
	}
	return parseClock24h(s)
}

func parseClock12h(s string) (clockTime, error) {
	m := clock12h.FindStringSubmatch(s)
	if m == nil {
		return clockTime{}, fmt.Errorf("%q is not a 12-hour time like \"9:00 AM\"", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return clockTime{}, fmt.Errorf("%q is out of range for a 12-hour time", s)
	}

	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return clockTime{hour: hour, minute: minute}, nil
}

func parseClock24h(s string) (clockTime, error) {
	m := clock24h.FindStringSubmatch(s)
	if m == nil {
		return clockTime{}, fmt.Errorf("%q is not a 24-hour time like \"09:00\"", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return clockTime{}, fmt.Errorf("%q is out of range for a 24-hour time", s)
	}
	return clockTime{hour: hour, minute: minute}, nil
}
