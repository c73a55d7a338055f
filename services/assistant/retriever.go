package assistant

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	HospitalVectorIndex = "hospital_vector_index"
	MedicineVectorIndex = "medicine_vector_index"

	textKey      = "text"
	embeddingKey = "embeddings"
)

// VectorRetriever retrieves document texts by vector similarity using a
// MongoDB Atlas vector search index.
type VectorRetriever struct {
	collection *mongo.Collection
	index      string
	embedder   Embedder
}

func NewVectorRetriever(collection *mongo.Collection, index string, embedder Embedder) *VectorRetriever {
	return &VectorRetriever{collection: collection, index: index, embedder: embedder}
}

func (r *VectorRetriever) Search(ctx context.Context, query string, k int) ([]string, error) {
	if k <= 0 {
		k = 3
	}
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$vectorSearch", Value: bson.M{
			"index":         r.index,
			"path":          embeddingKey,
			"queryVector":   vector,
			"numCandidates": k * 10,
			"limit":         k,
		}}},
		bson.D{{Key: "$project", Value: bson.M{textKey: 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search on %s: %w", r.index, err)
	}
	defer cursor.Close(ctx)

	var texts []string
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode search result: %w", err)
		}
		if text, ok := doc[textKey].(string); ok && text != "" {
			texts = append(texts, text)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("vector search cursor: %w", err)
	}
	return texts, nil
}
