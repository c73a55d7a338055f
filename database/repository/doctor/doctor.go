package doctorRepo

import (
	"context"

	"medassist/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Repository exposes read access to the doctor knowledge collection plus the
// embedding maintenance used by the reindex operation.
type Repository interface {
	// FindByName resolves a doctor by display name: exact match across the known
	// name-field aliases first, then case-insensitive substring match. Returns
	// (nil, nil) when no document matches.
	FindByName(ctx context.Context, name string) (*models.Doctor, error)

	// AllRaw returns every document in the collection in its raw form. Used by the
	// embedding indexer, which must tolerate non-uniform field names.
	AllRaw(ctx context.Context) ([]bson.M, error)

	// SetEmbedding writes the rendered text and its embedding vector back onto a
	// document.
	SetEmbedding(ctx context.Context, id interface{}, text string, embedding []float32) error
}
