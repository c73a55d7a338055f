package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medassist/models"
)

type stubEmbedder struct {
	vector []float32
	err    error
}

func (e *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.vector, nil
}

type indexedWrite struct {
	id        interface{}
	text      string
	embedding []float32
}

type fakeDoctorIndexRepo struct {
	docs   []bson.M
	writes []indexedWrite
}

func (r *fakeDoctorIndexRepo) FindByName(ctx context.Context, name string) (*models.Doctor, error) {
	return nil, nil
}

func (r *fakeDoctorIndexRepo) AllRaw(ctx context.Context) ([]bson.M, error) { return r.docs, nil }

func (r *fakeDoctorIndexRepo) SetEmbedding(ctx context.Context, id interface{}, text string, embedding []float32) error {
	r.writes = append(r.writes, indexedWrite{id: id, text: text, embedding: embedding})
	return nil
}

type fakeMedicineIndexRepo struct {
	docs       []bson.M
	pharmacies map[interface{}]bson.M
	writes     []indexedWrite
}

func (r *fakeMedicineIndexRepo) AllRaw(ctx context.Context) ([]bson.M, error) { return r.docs, nil }

func (r *fakeMedicineIndexRepo) FindPharmacy(ctx context.Context, id interface{}) (bson.M, error) {
	return r.pharmacies[id], nil
}

func (r *fakeMedicineIndexRepo) SetEmbedding(ctx context.Context, id interface{}, text string, embedding []float32) error {
	r.writes = append(r.writes, indexedWrite{id: id, text: text, embedding: embedding})
	return nil
}

func TestRenderDoctorTextResolvesAliases(t *testing.T) {
	text := RenderDoctorText(bson.M{
		"doctorName": "Dr. Sudeep Kumar",
		"department": "Cardiology",
		"contact":    "9800000000",
		"shift":      "morning",
	})

	assert.Contains(t, text, "Doctor: Dr. Sudeep Kumar")
	assert.Contains(t, text, "Speciality: Cardiology")
	assert.Contains(t, text, "Phone: 9800000000")
	assert.Contains(t, text, "Shift: morning")
	assert.Contains(t, text, "Hospital: N/A")
	assert.Contains(t, text, "Available: true")
}

func TestRenderDoctorTextUnavailable(t *testing.T) {
	text := RenderDoctorText(bson.M{"doctor_name": "Dr. Manoj Joshi", "isAvailable": false})
	assert.Contains(t, text, "Available: false")
}

func TestReindexWritesTextAndEmbeddings(t *testing.T) {
	doctors := &fakeDoctorIndexRepo{docs: []bson.M{
		{"_id": "d1", "doctor_name": "Dr. Sudeep Kumar", "speciality": "Cardiology"},
	}}
	medicines := &fakeMedicineIndexRepo{
		docs: []bson.M{
			{"_id": "m1", "name": "Paracetamol", "genericName": "Acetaminophen", "pharmacy": "ph1"},
		},
		pharmacies: map[interface{}]bson.M{
			"ph1": {"name": "City Pharmacy", "contactNumber": "022-1234", "address": "Main Street"},
		},
	}
	ix := &Indexer{Doctors: doctors, Medicines: medicines, Embedder: &stubEmbedder{vector: []float32{0.1, 0.2}}}

	report, err := ix.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.DoctorsIndexed)
	assert.Equal(t, 1, report.MedicinesIndexed)
	assert.Zero(t, report.EmbeddingsFailed)

	require.Len(t, doctors.writes, 1)
	assert.Contains(t, doctors.writes[0].text, "Doctor: Dr. Sudeep Kumar")
	assert.Equal(t, []float32{0.1, 0.2}, doctors.writes[0].embedding)

	require.Len(t, medicines.writes, 1)
	assert.Contains(t, medicines.writes[0].text, "Medicine: Paracetamol")
	assert.Contains(t, medicines.writes[0].text, "Generic Name: Acetaminophen")
	assert.Contains(t, medicines.writes[0].text, "Pharmacy: City Pharmacy")
	assert.Contains(t, medicines.writes[0].text, "Contact: 022-1234")
}

// An embedding failure still writes the text with an empty vector so a later
// run can fill the embedding in.
func TestReindexSurvivesEmbeddingFailure(t *testing.T) {
	doctors := &fakeDoctorIndexRepo{docs: []bson.M{{"_id": "d1", "doctor_name": "Dr. Sudeep Kumar"}}}
	medicines := &fakeMedicineIndexRepo{}
	ix := &Indexer{Doctors: doctors, Medicines: medicines, Embedder: &stubEmbedder{err: errors.New("quota exceeded")}}

	report, err := ix.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.DoctorsIndexed)
	assert.Equal(t, 1, report.EmbeddingsFailed)

	require.Len(t, doctors.writes, 1)
	assert.Contains(t, doctors.writes[0].text, "Doctor: Dr. Sudeep Kumar")
	assert.Empty(t, doctors.writes[0].embedding)
}

// Imports that stored the pharmacy reference as a DBPointer or a DBRef
// subdocument must resolve the same as a plain id.
func TestReindexResolvesPharmacyReferenceShapes(t *testing.T) {
	oid := primitive.NewObjectID()
	medicines := &fakeMedicineIndexRepo{
		docs: []bson.M{
			{"_id": "m1", "name": "Aspirin", "pharmacy": primitive.DBPointer{DB: "pharmacy", Pointer: oid}},
			{"_id": "m2", "name": "Cetirizine", "pharmacy": bson.M{"$ref": "pharmacies", "$id": oid}},
		},
		pharmacies: map[interface{}]bson.M{
			oid: {"name": "City Pharmacy", "contactNumber": "022-1234", "address": "Main Street"},
		},
	}
	ix := &Indexer{Doctors: &fakeDoctorIndexRepo{}, Medicines: medicines, Embedder: &stubEmbedder{vector: []float32{0.5}}}

	report, err := ix.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.MedicinesIndexed)
	require.Len(t, medicines.writes, 2)
	assert.Contains(t, medicines.writes[0].text, "Pharmacy: City Pharmacy")
	assert.Contains(t, medicines.writes[1].text, "Pharmacy: City Pharmacy")
}

func TestReindexSkipsUnresolvablePharmacy(t *testing.T) {
	medicines := &fakeMedicineIndexRepo{
		docs: []bson.M{{"_id": "m1", "name": "Ibuprofen", "pharmacy": "missing"}},
	}
	ix := &Indexer{Doctors: &fakeDoctorIndexRepo{}, Medicines: medicines, Embedder: &stubEmbedder{vector: []float32{0.5}}}

	report, err := ix.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.MedicinesIndexed)
	assert.NotContains(t, medicines.writes[0].text, "Pharmacy: ")
}
