// Package ics рендерит подтвержденную запись в VCALENDAR вложение,
// которое вызывающий слой отдает клиенту вместе с подтверждением.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/greensheets/booking-service/internal/domain"
)

const prodID = "-//greensheets//booking-service//EN"

// Render сериализует запись в ICS текст с одним VEVENT
func Render(appt *domain.Appointment, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID)

	event := cal.AddEvent(fmt.Sprintf("appt-%d@greensheets", appt.ID))
	event.SetDtStampTime(now.UTC())
	event.SetStartAt(appt.Start)
	event.SetEndAt(appt.End)
	event.SetSummary(titleCase(appt.Service))
	event.SetDescription(fmt.Sprintf("%s | %s", appt.CustomerName, appt.CustomerPhone))

	return cal.Serialize()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
