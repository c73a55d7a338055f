package appointmentRepo

import (
	"context"

	"medassist/models"
)

// Repository exposes the appointment collection operations the dialog engine and
// the REST surface need. Records are only ever inserted and status-transitioned.
type Repository interface {
	// Insert persists a new appointment and returns its short identifier.
	Insert(ctx context.Context, appt *models.Appointment) (string, error)

	// FindByID looks up a single appointment by its 8-character identifier. Returns
	// (nil, nil) when no record matches.
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)

	// FindActiveByPhone returns the non-cancelled appointments for a patient phone,
	// sorted by composed date-time ascending.
	FindActiveByPhone(ctx context.Context, phone string) ([]models.Appointment, error)

	// FindBooked returns the scheduled or confirmed appointments for a doctor on a
	// calendar date (YYYY-MM-DD).
	FindBooked(ctx context.Context, doctorName, date string) ([]models.Appointment, error)

	// UpdateStatus transitions an appointment to the given status.
	UpdateStatus(ctx context.Context, appointmentID, status string) error
}
