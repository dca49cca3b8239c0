package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greensheets/booking-service/internal/domain"
)

func TestRender(t *testing.T) {
	loc, _ := time.LoadLocation("America/Chicago")
	appt := &domain.Appointment{
		ID:            42,
		Service:       "consultation",
		CustomerName:  "Dana Whitfield",
		CustomerPhone: "+1-312-555-0142",
		Start:         time.Date(2026, 9, 14, 9, 30, 0, 0, loc),
		End:           time.Date(2026, 9, 14, 10, 0, 0, 0, loc),
	}
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	out := Render(appt, now)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "UID:appt-42@greensheets")
	assert.Contains(t, out, "SUMMARY:Consultation")
	assert.Contains(t, out, "Dana Whitfield")
}

func TestRender_StableUIDPerAppointment(t *testing.T) {
	loc, _ := time.LoadLocation("America/Chicago")
	appt := &domain.Appointment{
		ID:      7,
		Service: "cleaning",
		Start:   time.Date(2026, 9, 14, 9, 30, 0, 0, loc),
		End:     time.Date(2026, 9, 14, 10, 30, 0, 0, loc),
	}
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	a := Render(appt, now)
	b := Render(appt, now)
	assert.Equal(t, a, b)
}
