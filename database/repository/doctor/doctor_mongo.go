package doctorRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"medassist/database"
	"medassist/models"
	"medassist/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// nameAliases lists the field names under which a doctor's display name may be
// stored, in lookup priority order.
var nameAliases = []string{"doctor_name", "doctorName", "name", "fullName", "full_name"}

// MongoDoctorRepo implements Repository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a repository over the hospital documents collection.
func NewMongoDoctorRepo() Repository {
	return &MongoDoctorRepo{coll: database.HospitalDB().Collection("documents")}
}

func (r *MongoDoctorRepo) FindByName(ctx context.Context, name string) (*models.Doctor, error) {
	if name == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Exact match attempts across the aliases, then regex attempts.
	for _, field := range nameAliases {
		doc, err := r.findOne(ctx, bson.M{field: name})
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return decodeDoctor(doc), nil
		}
	}
	for _, field := range nameAliases {
		filter := bson.M{field: bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}}
		doc, err := r.findOne(ctx, filter)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return decodeDoctor(doc), nil
		}
	}
	return nil, nil
}

func (r *MongoDoctorRepo) findOne(ctx context.Context, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching doctor: %w", err)
	}
	return doc, nil
}

func (r *MongoDoctorRepo) AllRaw(ctx context.Context) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching doctor documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode doctor documents: %w", err)
	}
	return docs, nil
}

func (r *MongoDoctorRepo) SetEmbedding(ctx context.Context, id interface{}, text string, embedding []float32) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"text": text, "embeddings": embedding}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("error updating doctor embedding: %w", err)
	}
	return nil
}

// decodeDoctor maps a raw document onto the normalized model through the field
// aliases.
func decodeDoctor(doc bson.M) *models.Doctor {
	d := &models.Doctor{
		Name:            utils.SafeField(doc, nameAliases...),
		Specialty:       utils.SafeField(doc, "speciality", "specialty", "specialization", "department"),
		Phone:           utils.SafeField(doc, "phone", "phoneNumber", "phone_number", "contact", "mobile"),
		Shift:           utils.SafeField(doc, "shift", "working_hours", "schedule", "timing"),
		HospitalName:    utils.SafeField(doc, "hospital_name", "hospitalName", "hospital", "clinic"),
		HospitalAddress: utils.SafeField(doc, "hospital_address", "hospitalAddress", "address", "location"),
		IsAvailable:     true,
	}
	if id, ok := doc["_id"].(primitive.ObjectID); ok {
		d.ID = id
	}
	if avail, ok := doc["isAvailable"].(bool); ok {
		d.IsAvailable = avail
	}
	return d
}
