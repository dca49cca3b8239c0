package get_availability

import (
	"time"

	"github.com/greensheets/booking-service/internal/calendar"
	"github.com/greensheets/booking-service/internal/domain"
)

// generateCandidates перечисляет слоты-кандидаты в окне [windowStart, windowEnd).
// Обход по календарным дням: нерабочие дни пропускаются, внутри рабочего дня
// курсор идет от открытия с шагом increment, пока слот целиком помещается до
// закрытия. Переход между днями — только через calendar.NextDay (целый
// календарный день), чтобы не потерять и не задвоить первый слот дня.
// Функция чистая: порядок по возрастанию start, результат конечен и
// воспроизводим.
func generateCandidates(cal *calendar.Calendar, duration time.Duration, windowStart, windowEnd time.Time) []domain.Slot {
	increment := cal.Increment()
	slots := make([]domain.Slot, 0)

	for day := windowStart.In(cal.Location()); day.Before(windowEnd); day = cal.NextDay(day) {
		if !cal.IsWorkingDay(day) {
			continue
		}

		openAt, closeAt := cal.DayWindow(day)
		for cur := openAt; !cur.Add(duration).After(closeAt); cur = cur.Add(increment) {
			if cur.Before(windowStart) {
				continue
			}
			if cur.Add(duration).After(windowEnd) {
				break
			}
			slots = append(slots, domain.Slot{Start: cur, End: cur.Add(duration)})
		}
	}

	return slots
}

// subtractBusy возвращает кандидатов, не пересекающих ни один занятый
// интервал, с сохранением порядка
func subtractBusy(candidates []domain.Slot, busy []domain.Interval) []domain.Slot {
	if len(busy) == 0 {
		return candidates
	}

	free := make([]domain.Slot, 0, len(candidates))
	for _, slot := range candidates {
		if !slot.OverlapsAny(busy) {
			free = append(free, slot)
		}
	}
	return free
}

// effectiveWindowStart поднимает начало окна до now + leadTime,
// округленного вверх до границы шага, чтобы ни один кандидат не начинался
// раньше минимального уведомления
func effectiveWindowStart(cal *calendar.Calendar, windowStart, now time.Time) time.Time {
	cutoff := cal.RoundUpToIncrement(now.Add(cal.LeadTime()))
	if cutoff.After(windowStart) {
		return cutoff
	}
	return windowStart
}
