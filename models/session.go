package models

// BookingStep indexes the ordered booking dialog. The flow advances by exactly one
// step per accepted answer and only returns to StepDoctorSelection on a confirmed
// commit or an explicit cancellation.
type BookingStep int

const (
	StepDoctorSelection BookingStep = iota
	StepPatientName
	StepPatientPhone
	StepPatientEmail
	StepAppointmentReason
	StepPreferredDate
	StepTimeSelection
	StepConfirmation
)

// String returns the dialog name of the step, matching the field it collects.
func (s BookingStep) String() string {
	switch s {
	case StepDoctorSelection:
		return "doctor_selection"
	case StepPatientName:
		return "patient_name"
	case StepPatientPhone:
		return "patient_phone"
	case StepPatientEmail:
		return "patient_email"
	case StepAppointmentReason:
		return "appointment_reason"
	case StepPreferredDate:
		return "preferred_date"
	case StepTimeSelection:
		return "time_selection"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// BookingState is the per-session dialog state. Invariant: a field is set exactly
// when its step has been passed. The struct is JSON-serializable so it can live in
// either the in-memory or the Redis session store.
type BookingState struct {
	Step         BookingStep `json:"step"`
	Doctor       *Doctor     `json:"doctor,omitempty"`
	PatientName  string      `json:"patientName,omitempty"`
	PatientPhone string      `json:"patientPhone,omitempty"`
	PatientEmail string      `json:"patientEmail,omitempty"`
	Reason       string      `json:"reason,omitempty"`
	Date         string      `json:"date,omitempty"` // YYYY-MM-DD
	Time         string      `json:"time,omitempty"` // HH:MM slot label
}

// Reset clears all collected fields and returns the dialog to the first step.
func (b *BookingState) Reset() {
	*b = BookingState{}
}

// Active reports whether a booking dialog is in progress.
func (b *BookingState) Active() bool {
	return b.Step > StepDoctorSelection
}

// SessionState is everything the assistant remembers about one conversation token.
type SessionState struct {
	Booking BookingState `json:"booking"`
}
