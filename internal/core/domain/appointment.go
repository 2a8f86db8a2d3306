package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// AppointmentStatus represents the lifecycle state of a booking request.
type AppointmentStatus string

const (
	AppointmentPending  AppointmentStatus = "pending"
	AppointmentApproved AppointmentStatus = "approved"
	AppointmentRejected AppointmentStatus = "rejected"
)

// UpdatedBySystem is recorded when a transition happens without a known actor.
const UpdatedBySystem = "system"

var ErrInvalidStatus = errors.New("invalid appointment status")
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentStatuses lists every status a transition may target.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentPending,
	AppointmentApproved,
	AppointmentRejected,
}

// Valid reports whether s is a known appointment status. Transitions are
// validated against the target status only: re-applying a terminal status
// is an idempotent last-writer-wins update, not an error.
func (s AppointmentStatus) Valid() bool {
	for _, known := range AppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment is a visit request submitted from the public site and
// managed from the back office.
type Appointment struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	Reference string            `json:"reference" bson:"reference"`
	Name      string            `json:"name" bson:"name"`
	Email     string            `json:"email" bson:"email"`
	Phone     string            `json:"phone" bson:"phone"`
	Service   string            `json:"service" bson:"service"`
	Date      string            `json:"date" bson:"date"`
	Note      string            `json:"note,omitempty" bson:"note,omitempty"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
	UpdatedBy string            `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
}

// NotifiableEmail reports whether addr is plausible enough to attempt a
// delivery: parseable, no embedded whitespace, and a dotted domain.
// Stored records predate validation, so the workflow re-checks before
// handing an address to the mail provider.
func NotifiableEmail(addr string) bool {
	if addr == "" || strings.ContainsAny(addr, " \t\r\n") {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}
	at := strings.LastIndex(addr, "@")
	return strings.Contains(addr[at+1:], ".")
}
