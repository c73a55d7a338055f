// Package notification delivers appointment reminders to patients.
package notification

import (
	"context"

	"go.uber.org/zap"

	"medassist/models"
	"medassist/utils"
)

// NotificationService sends an appointment reminder to a patient.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService writes reminders to the structured log. It stands in
// until an SMS or email gateway is wired; the worker and queue plumbing are
// identical either way.
type LogNotificationService struct{}

func NewLogNotificationService() *LogNotificationService {
	return &LogNotificationService{}
}

func (s *LogNotificationService) SendAppointmentReminder(ctx context.Context, p models.ReminderPayload) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("appointmentID", p.AppointmentID),
		zap.String("patient", p.PatientName),
		zap.String("phone", p.PatientPhone),
		zap.String("email", p.PatientEmail),
		zap.String("doctor", p.DoctorName),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}
