// Package domain holds appointment core types independent of transport or storage
package domain

import "time"

// DefaultLeadDays is the reminder schedule applied when a caller does not
// override it: one week out, three days out, the day before
var DefaultLeadDays = []int{7, 3, 1}

// Appointment is one scheduled visit owned by a chat (a LINE group or a
// direct conversation)
type Appointment struct {
	ID     string
	ChatID string

	Title    string
	At       time.Time
	Location string
	Building string
	Contact  string
	Phone    string

	// Confidence is the extraction score the parser attached when this
	// record was created from free text; 1.0 for manually entered records
	Confidence float64

	// LeadDays and Notified run in lockstep: Notified[i] reports whether
	// the LeadDays[i] reminder has been sent
	LeadDays []int
	Notified []bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeadIndexDue returns the index of the first unsent lead window that
// matches daysLeft, or -1 when nothing is due
func (a Appointment) LeadIndexDue(daysLeft int) int {
	for i, d := range a.LeadDays {
		if d == daysLeft && i < len(a.Notified) && !a.Notified[i] {
			return i
		}
	}
	return -1
}

// DaysUntil counts whole calendar days from now's date to the appointment
// date, negative for past appointments
func (a Appointment) DaysUntil(now time.Time) int {
	ny, nm, nd := now.Date()
	ay, am, ad := a.At.In(now.Location()).Date()
	from := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
