package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "medassist/database/repository/appointment"
	doctorRepo "medassist/database/repository/doctor"
	"medassist/models"
	"medassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bookingKeywords gate entry into the dialog while no flow is active.
var bookingKeywords = []string{"book", "appointment", "schedule", "see a doctor"}

// ReminderScheduler enqueues an appointment reminder to fire before the visit.
// The flow treats scheduling as best effort: a failed enqueue never fails a commit.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// Flow is the eight-step booking state machine. It owns no session state itself:
// callers pass the per-session BookingState in and persist it after each turn.
type Flow struct {
	Doctors      doctorRepo.Repository
	Appointments appointmentRepo.Repository
	Availability *AvailabilityEngine
	Extractors   []NameExtractor
	Reminders    ReminderScheduler // optional
	Now          func() time.Time  // defaults to time.Now
}

// NewFlow wires a Flow with the default extractor strategies.
func NewFlow(doctors doctorRepo.Repository, appointments appointmentRepo.Repository, reminders ReminderScheduler) *Flow {
	return &Flow{
		Doctors:      doctors,
		Appointments: appointments,
		Availability: &AvailabilityEngine{Appointments: appointments},
		Extractors:   DefaultNameExtractors(),
		Reminders:    reminders,
	}
}

func (f *Flow) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Collect advances the dialog by one user utterance. An empty reply with a nil
// error means the utterance is not a booking query and the caller should fall
// through to other routing. A non-nil error means a store failure the caller maps
// to an internal-error reply; the dialog state is left untouched in that case.
func (f *Flow) Collect(ctx context.Context, st *models.BookingState, input string) (string, error) {
	if !st.Active() && !containsAny(strings.ToLower(input), bookingKeywords) {
		return "", nil
	}

	switch st.Step {
	case models.StepDoctorSelection:
		return f.handleDoctorSelection(ctx, st, input)
	case models.StepPatientName:
		return f.handlePatientName(st, input)
	case models.StepPatientPhone:
		return f.handlePatientPhone(st, input)
	case models.StepPatientEmail:
		return f.handlePatientEmail(st, input)
	case models.StepAppointmentReason:
		return f.handleAppointmentReason(st, input)
	case models.StepPreferredDate:
		return f.handlePreferredDate(ctx, st, input)
	case models.StepTimeSelection:
		return f.handleTimeSelection(st, input)
	case models.StepConfirmation:
		return f.handleConfirmation(ctx, st, input)
	}

	st.Reset()
	return "Sorry, I lost track of your booking. Let's start over. Which doctor would you like to see?", nil
}

func (f *Flow) handleDoctorSelection(ctx context.Context, st *models.BookingState, input string) (string, error) {
	name, ok := ExtractDoctorName(f.Extractors, input)
	if !ok {
		return "I'd be happy to help you book an appointment! Could you please tell me which doctor you'd like to see? For example: 'Dr. Sudeep Kumar' or 'Dr. Manoj Joshi'.", nil
	}

	doctor, err := f.Doctors.FindByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("doctor lookup: %w", err)
	}
	if doctor == nil {
		return fmt.Sprintf("I couldn't find a doctor named '%s' in our system. Could you please check the spelling or try a different doctor's name?", name), nil
	}

	st.Doctor = doctor
	st.Step = models.StepPatientName
	return fmt.Sprintf("Great! I found %s, %s. Now I need to collect some information from you. What's your full name?", doctor.Name, doctor.Specialty), nil
}

func (f *Flow) handlePatientName(st *models.BookingState, input string) (string, error) {
	name, err := ValidateName(input)
	if err != nil {
		return hintOf(err), nil
	}
	st.PatientName = name
	st.Step = models.StepPatientPhone
	return fmt.Sprintf("Thank you, %s. What's your phone number?", name), nil
}

func (f *Flow) handlePatientPhone(st *models.BookingState, input string) (string, error) {
	phone, err := ValidatePhone(input)
	if err != nil {
		return hintOf(err), nil
	}
	st.PatientPhone = phone
	st.Step = models.StepPatientEmail
	return "Perfect! What's your email address?", nil
}

func (f *Flow) handlePatientEmail(st *models.BookingState, input string) (string, error) {
	email, err := ValidateEmail(input)
	if err != nil {
		return hintOf(err), nil
	}
	st.PatientEmail = email
	st.Step = models.StepAppointmentReason
	return "Great! Could you briefly tell me the reason for your visit or any specific concerns?", nil
}

func (f *Flow) handleAppointmentReason(st *models.BookingState, input string) (string, error) {
	reason, err := ValidateReason(input)
	if err != nil {
		return hintOf(err), nil
	}
	st.Reason = reason
	st.Step = models.StepPreferredDate
	return "Thank you. When would you prefer to have your appointment? You can say 'tomorrow', 'next week', or a specific date like 'September 25th'.", nil
}

func (f *Flow) handlePreferredDate(ctx context.Context, st *models.BookingState, input string) (string, error) {
	target, err := ResolveDate(input, f.now())
	if err != nil {
		return "I couldn't understand that date. Please try saying 'tomorrow', 'next Monday', or a specific date like 'September 25th'.", nil
	}

	date := target.Format("2006-01-02")
	slots, err := f.Availability.AvailableSlots(ctx, st.Doctor.Name, date)
	if err != nil {
		return "", fmt.Errorf("availability check: %w", err)
	}
	if len(slots) == 0 {
		next := target.AddDate(0, 0, 1)
		return fmt.Sprintf("Sorry, %s has no available slots on %s. Would you like to try %s instead?",
			st.Doctor.Name, longDate(target), longDate(next)), nil
	}

	st.Date = date
	st.Step = models.StepTimeSelection

	var lines []string
	for _, slot := range slots {
		lines = append(lines, "- "+slot)
	}
	return fmt.Sprintf("Available time slots for %s:\n\n%s\n\nWhich time would you prefer?",
		longDate(target), strings.Join(lines, "\n")), nil
}

func (f *Flow) handleTimeSelection(st *models.BookingState, input string) (string, error) {
	label, err := ResolveTime(input)
	if err != nil || !InGrid(label) {
		return "Please specify a time like '10:00 AM', '2:30 PM', or just '10' for 10 AM.", nil
	}

	st.Time = label
	st.Step = models.StepConfirmation
	return fmt.Sprintf(`Please confirm your appointment details:

- Patient: %s
- Doctor: %s (%s)
- Date: %s
- Time: %s
- Reason: %s
- Phone: %s
- Email: %s

Type 'YES' to confirm or 'NO' to cancel.`,
		st.PatientName, st.Doctor.Name, st.Doctor.Specialty,
		longDateString(st.Date), st.Time, st.Reason, st.PatientPhone, st.PatientEmail), nil
}

func (f *Flow) handleConfirmation(ctx context.Context, st *models.BookingState, input string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y", "confirm", "ok":
		appt, err := f.createAppointmentRecord(ctx, st)
		if err != nil {
			// State stays at confirmation so the user may retry.
			utils.GetLogger().Error("appointment creation failed", zap.Error(err))
			return "Sorry, there was an error creating your appointment. Please try again or contact our support team.", nil
		}
		reply := fmt.Sprintf(`Appointment confirmed!

- Appointment ID: %s
- Patient: %s
- Doctor: %s
- Date & Time: %s at %s
- Reason: %s

You will receive a confirmation SMS and email shortly. For changes, please call us at least 24 hours in advance.

Thank you for choosing our healthcare services!`,
			appt.AppointmentID, appt.PatientName, appt.DoctorName,
			longDateString(appt.Date), appt.Time, appt.Reason)
		st.Reset()
		return reply, nil

	case "no", "n", "cancel":
		st.Reset()
		return "Appointment cancelled. Is there anything else I can help you with?", nil

	default:
		return "Please type 'YES' to confirm your appointment or 'NO' to cancel.", nil
	}
}

// createAppointmentRecord builds and persists the record. Identifier collisions
// are not checked; the 8-hex-character space is treated as large enough for the
// expected volume.
func (f *Flow) createAppointmentRecord(ctx context.Context, st *models.BookingState) (*models.Appointment, error) {
	now := f.now()
	appt := &models.Appointment{
		AppointmentID:   strings.ToUpper(uuid.NewString()[:8]),
		DoctorID:        st.Doctor.ID,
		DoctorName:      st.Doctor.Name,
		DoctorSpecialty: st.Doctor.Specialty,
		DoctorPhone:     st.Doctor.Phone,
		PatientName:     st.PatientName,
		PatientPhone:    st.PatientPhone,
		PatientEmail:    st.PatientEmail,
		DateTime:        fmt.Sprintf("%sT%s:00.000+00:00", st.Date, st.Time),
		Date:            st.Date,
		Time:            st.Time,
		Reason:          st.Reason,
		Status:          models.StatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := f.Appointments.Insert(ctx, appt); err != nil {
		return nil, err
	}
	f.scheduleReminder(ctx, appt)
	return appt, nil
}

func (f *Flow) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if f.Reminders == nil {
		return
	}
	visit, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return
	}
	fireAt := visit.Add(-24 * time.Hour)
	if fireAt.Before(f.now()) {
		fireAt = f.now()
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.AppointmentID,
		PatientName:   appt.PatientName,
		PatientPhone:  appt.PatientPhone,
		PatientEmail:  appt.PatientEmail,
		DoctorName:    appt.DoctorName,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	if err := f.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule appointment reminder",
			zap.String("appointmentId", appt.AppointmentID), zap.Error(err))
	}
}

func hintOf(err error) string {
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.Hint
	}
	return err.Error()
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func longDate(t time.Time) string {
	return t.Format("January 02, 2006")
}

func longDateString(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return longDate(t)
}
