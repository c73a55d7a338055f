package models

// ReminderPayload is the message enqueued when a booking commits, consumed by the
// reminder worker shortly before the visit.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientName   string `json:"patientName"`
	PatientPhone  string `json:"patientPhone"`
	PatientEmail  string `json:"patientEmail"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
