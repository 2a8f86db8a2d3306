package domain

import "testing"

func TestAppointmentStatus_Valid(t *testing.T) {
	for _, status := range AppointmentStatuses {
		if !status.Valid() {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	for _, status := range []AppointmentStatus{"", "bogus", "Approved", "done"} {
		if status.Valid() {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}

func TestNotifiableEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@mail.example.org",
	}
	for _, addr := range valid {
		if !NotifiableEmail(addr) {
			t.Fatalf("expected %q to be notifiable", addr)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"two words@example.com",
		"jane @example.com",
		"@example.com",
		"jane@",
	}
	for _, addr := range invalid {
		if NotifiableEmail(addr) {
			t.Fatalf("expected %q to be rejected", addr)
		}
	}
}
