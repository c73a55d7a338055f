package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medassist/models"
)

type fakeAppointmentRepo struct {
	byID    map[string]*models.Appointment
	byPhone map[string][]models.Appointment
	err     error

	statuses map[string]string
}

func (r *fakeAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) (string, error) {
	return appt.AppointmentID, nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byID[appointmentID], nil
}

func (r *fakeAppointmentRepo) FindActiveByPhone(ctx context.Context, phone string) ([]models.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byPhone[phone], nil
}

func (r *fakeAppointmentRepo) FindBooked(ctx context.Context, doctorName, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	if r.statuses == nil {
		r.statuses = map[string]string{}
	}
	r.statuses[appointmentID] = status
	return nil
}

func TestStatusCheckByPhone(t *testing.T) {
	repo := &fakeAppointmentRepo{byPhone: map[string][]models.Appointment{
		"9876543210": {
			{AppointmentID: "A1B2C3D4", DoctorName: "Dr. Sudeep Kumar", Date: "2025-09-16", Time: "10:00", Status: models.StatusScheduled},
			{AppointmentID: "E5F6A7B8", DoctorName: "Dr. Manoj Joshi", Date: "2025-09-18", Time: "14:00", Status: models.StatusConfirmed},
		},
	}}
	svc := &StatusService{Appointments: repo}

	reply, err := svc.Check(context.Background(), "check status for 9876543210")
	require.NoError(t, err)
	assert.Contains(t, reply, "Your appointments associated with phone 9876543210:")
	assert.Contains(t, reply, "- A1B2C3D4: Dr. Sudeep Kumar on 2025-09-16 at 10:00 (Status: scheduled)")
	assert.Contains(t, reply, "- E5F6A7B8: Dr. Manoj Joshi on 2025-09-18 at 14:00 (Status: confirmed)")
}

func TestStatusCheckByPhoneNoMatches(t *testing.T) {
	svc := &StatusService{Appointments: &fakeAppointmentRepo{}}

	reply, err := svc.Check(context.Background(), "any appointments for 9999999999?")
	require.NoError(t, err)
	assert.Equal(t, "No scheduled appointments found for this phone number.", reply)
}

func TestStatusCheckByID(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[string]*models.Appointment{
		"A1B2C3D4": {AppointmentID: "A1B2C3D4", DoctorName: "Dr. Sudeep Kumar", Date: "2025-09-16", Time: "10:00", Status: models.StatusScheduled},
	}}
	svc := &StatusService{Appointments: repo}

	reply, err := svc.Check(context.Background(), "what happened to a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "Appointment A1B2C3D4: Dr. Sudeep Kumar on 2025-09-16 at 10:00 - Status: scheduled", reply)
}

func TestStatusCheckByIDNotFound(t *testing.T) {
	svc := &StatusService{Appointments: &fakeAppointmentRepo{}}

	reply, err := svc.Check(context.Background(), "status of DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "No appointment found with ID DEADBEEF", reply)
}

func TestStatusCheckNoKeyPresent(t *testing.T) {
	svc := &StatusService{Appointments: &fakeAppointmentRepo{}}

	reply, err := svc.Check(context.Background(), "check my appointment please")
	require.NoError(t, err)
	assert.Equal(t, "Please provide your phone number or appointment ID to check status.", reply)
}

// A ten-digit phone number also matches the hex identifier shape once
// uppercased, so phone extraction must run first.
func TestStatusPhoneOutranksID(t *testing.T) {
	repo := &fakeAppointmentRepo{byPhone: map[string][]models.Appointment{
		"1234567890": {{AppointmentID: "A1B2C3D4", DoctorName: "Dr. Sudeep Kumar", Date: "2025-09-16", Time: "10:00", Status: models.StatusScheduled}},
	}}
	svc := &StatusService{Appointments: repo}

	reply, err := svc.Check(context.Background(), "status for 1234567890")
	require.NoError(t, err)
	assert.Contains(t, reply, "Your appointments associated with phone 1234567890:")
}

func TestStatusLookupFailure(t *testing.T) {
	svc := &StatusService{Appointments: &fakeAppointmentRepo{err: errors.New("connection reset")}}

	_, err := svc.Check(context.Background(), "status for 9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appointment lookup by phone")
}
