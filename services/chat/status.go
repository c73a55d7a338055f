package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	appointmentRepo "medassist/database/repository/appointment"
)

var (
	phonePattern  = regexp.MustCompile(`\d{10,}`)
	apptIDPattern = regexp.MustCompile(`[A-F0-9]{8}`)
)

// StatusService answers "where is my appointment" queries by extracting a phone
// number or an appointment identifier from the utterance. Phone is checked first:
// any 10-digit run would otherwise also match the hex identifier pattern.
type StatusService struct {
	Appointments appointmentRepo.Repository
}

// Check extracts the lookup key and formats a human-readable summary.
func (s *StatusService) Check(ctx context.Context, query string) (string, error) {
	if phone := phonePattern.FindString(query); phone != "" {
		appts, err := s.Appointments.FindActiveByPhone(ctx, phone)
		if err != nil {
			return "", fmt.Errorf("appointment lookup by phone: %w", err)
		}
		if len(appts) == 0 {
			return "No scheduled appointments found for this phone number.", nil
		}
		lines := make([]string, 0, len(appts))
		for _, appt := range appts {
			lines = append(lines, fmt.Sprintf("- %s: %s on %s at %s (Status: %s)",
				appt.AppointmentID, appt.DoctorName, appt.Date, appt.Time, appt.Status))
		}
		return fmt.Sprintf("Your appointments associated with phone %s:\n%s", phone, strings.Join(lines, "\n")), nil
	}

	if id := apptIDPattern.FindString(strings.ToUpper(query)); id != "" {
		appt, err := s.Appointments.FindByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("appointment lookup by id: %w", err)
		}
		if appt == nil {
			return fmt.Sprintf("No appointment found with ID %s", id), nil
		}
		return fmt.Sprintf("Appointment %s: %s on %s at %s - Status: %s",
			appt.AppointmentID, appt.DoctorName, appt.Date, appt.Time, appt.Status), nil
	}

	return "Please provide your phone number or appointment ID to check status.", nil
}
