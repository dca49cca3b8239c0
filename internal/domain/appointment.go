package domain

import "time"

// Appointment represents a persisted reservation of a time slot.
// Appointments are created exactly once and never mutated; start and end
// are wall-clock timestamps in the business time zone.
type Appointment struct {
	ID            int64
	Service       string
	CustomerName  string
	CustomerPhone string
	Start         time.Time
	End           time.Time
	CreatedAt     time.Time
}

// Interval returns the busy interval occupied by the appointment
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.Start, End: a.End}
}
