package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medassist/database"
	"medassist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements Repository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a repository over the appointments collection.
func NewMongoAppointmentRepo() Repository {
	return &MongoAppointmentRepo{coll: database.HospitalDB().Collection("appointments")}
}

func (r *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return "", fmt.Errorf("error creating appointment: %w", err)
	}
	return appt.AppointmentID, nil
}

func (r *MongoAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"appointment_id": appointmentID}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) FindActiveByPhone(ctx context.Context, phone string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"patient_phone": phone,
		"status":        bson.M{"$in": []string{models.StatusScheduled, models.StatusConfirmed}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "appointment_datetime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments for phone %s: %w", phone, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (r *MongoAppointmentRepo) FindBooked(ctx context.Context, doctorName, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctor_name":      doctorName,
		"appointment_date": date,
		"status":           bson.M{"$in": []string{models.StatusScheduled, models.StatusConfirmed}},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for %s on %s: %w", doctorName, date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return appts, nil
}

func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"appointment_id": appointmentID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", appointmentID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", appointmentID)
	}
	return nil
}
