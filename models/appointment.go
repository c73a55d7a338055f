package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses. Records are never deleted, only transitioned.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment is a booked visit as persisted in the appointments collection.
// AppointmentID is the short 8-character token handed to the patient; the Mongo _id
// stays internal.
type Appointment struct {
	AppointmentID   string             `json:"appointmentId" bson:"appointment_id"`
	DoctorID        primitive.ObjectID `json:"doctorId" bson:"doctor_id"`
	DoctorName      string             `json:"doctorName" bson:"doctor_name"`
	DoctorSpecialty string             `json:"doctorSpecialty" bson:"doctor_specialty"`
	DoctorPhone     string             `json:"doctorPhone" bson:"doctor_phone"`
	PatientName     string             `json:"patientName" bson:"patient_name"`
	PatientPhone    string             `json:"patientPhone" bson:"patient_phone"`
	PatientEmail    string             `json:"patientEmail" bson:"patient_email"`
	DateTime        string             `json:"appointmentDatetime" bson:"appointment_datetime"`
	Date            string             `json:"appointmentDate" bson:"appointment_date"` // YYYY-MM-DD
	Time            string             `json:"appointmentTime" bson:"appointment_time"` // HH:MM slot label
	Reason          string             `json:"reason" bson:"reason"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updated_at"`
}
