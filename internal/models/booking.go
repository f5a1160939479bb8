package models

import "time"

// Status is the booking approval state. Pending is the only non-terminal
// state; approved and rejected are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether the transition s -> target is legal.
// Only pending -> approved and pending -> rejected are.
func (s Status) CanTransitionTo(target Status) bool {
	if s != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

// Party is a nested participant reference on a booking. The backend may
// omit a party entirely.
type Party struct {
	Name string `json:"name"`
}

// Display returns the party name, or "N/A" when the backend sent none.
func (p Party) Display() string {
	if p.Name == "" {
		return "N/A"
	}
	return p.Name
}

// Booking is a lesson request between a student and an instructor.
type Booking struct {
	ID         string    `json:"id"`
	Student    Party     `json:"student"`
	Instructor Party     `json:"instructor"`
	Skill      Party     `json:"skill"`
	Date       time.Time `json:"date"`
	Status     Status    `json:"status"`
}

func (b Booking) Key() string { return b.ID }
