package booking

import (
	"context"
	"strings"

	appointmentRepo "medassist/database/repository/appointment"
)

// SlotGrid is the fixed daily set of bookable time labels, in offer order.
var SlotGrid = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// AvailabilityEngine computes the free subset of the slot grid for a doctor and
// date by subtracting scheduled and confirmed bookings.
type AvailabilityEngine struct {
	Appointments appointmentRepo.Repository
}

// AvailableSlots returns the grid labels not already taken for the doctor on the
// given date (YYYY-MM-DD), grid order preserved. Booked times are truncated to the
// hour before comparison.
func (e *AvailabilityEngine) AvailableSlots(ctx context.Context, doctorName, date string) ([]string, error) {
	booked, err := e.Appointments.FindBooked(ctx, doctorName, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, appt := range booked {
		if appt.Time == "" {
			continue
		}
		hour := strings.SplitN(appt.Time, ":", 2)[0]
		taken[hour+":00"] = true
	}

	free := make([]string, 0, len(SlotGrid))
	for _, slot := range SlotGrid {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}

// InGrid reports whether a resolved time label is one of the offered slots.
func InGrid(label string) bool {
	for _, slot := range SlotGrid {
		if slot == label {
			return true
		}
	}
	return false
}
