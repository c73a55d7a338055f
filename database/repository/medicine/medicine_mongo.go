package medicineRepo

import (
	"context"
	"fmt"
	"time"

	"medassist/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMedicineRepo implements Repository using MongoDB.
type MongoMedicineRepo struct {
	medicineColl *mongo.Collection
	pharmacyColl *mongo.Collection
}

// NewMongoMedicineRepo constructs a repository over the pharmacy collections.
func NewMongoMedicineRepo() Repository {
	db := database.PharmacyDB()
	return &MongoMedicineRepo{
		medicineColl: db.Collection("medicines"),
		pharmacyColl: db.Collection("pharmacies"),
	}
}

func (r *MongoMedicineRepo) AllRaw(ctx context.Context) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.medicineColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching medicine documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode medicine documents: %w", err)
	}
	return docs, nil
}

func (r *MongoMedicineRepo) FindPharmacy(ctx context.Context, id interface{}) (bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc bson.M
	err := r.pharmacyColl.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching pharmacy: %w", err)
	}
	return doc, nil
}

func (r *MongoMedicineRepo) SetEmbedding(ctx context.Context, id interface{}, text string, embedding []float32) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"text": text, "embeddings": embedding}}
	if _, err := r.medicineColl.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("error updating medicine embedding: %w", err)
	}
	return nil
}
