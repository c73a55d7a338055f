package medicineRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Repository exposes the pharmacy inventory collections as raw documents. The
// medicines collection references pharmacies loosely (plain id or DBRef-style
// subdocument), so the indexer works on bson.M and resolves the link itself.
type Repository interface {
	// AllRaw returns every medicine document in its raw form.
	AllRaw(ctx context.Context) ([]bson.M, error)

	// FindPharmacy resolves a pharmacy document by its id. Returns (nil, nil) when
	// no document matches.
	FindPharmacy(ctx context.Context, id interface{}) (bson.M, error)

	// SetEmbedding writes the rendered text and its embedding vector back onto a
	// medicine document.
	SetEmbedding(ctx context.Context, id interface{}, text string, embedding []float32) error
}
