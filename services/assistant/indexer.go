package assistant

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	doctorRepo "medassist/database/repository/doctor"
	medicineRepo "medassist/database/repository/medicine"
	"medassist/utils"
)

// Indexer rebuilds the searchable text and embedding vector on every doctor
// and medicine document. A document whose embedding fails still gets its text
// written with an empty vector so a later pass can fill it in.
type Indexer struct {
	Doctors   doctorRepo.Repository
	Medicines medicineRepo.Repository
	Embedder  Embedder
}

// IndexReport summarizes one reindex run.
type IndexReport struct {
	DoctorsIndexed   int `json:"doctorsIndexed"`
	MedicinesIndexed int `json:"medicinesIndexed"`
	EmbeddingsFailed int `json:"embeddingsFailed"`
}

// Reindex rebuilds both vector indexes and returns counts for the response.
func (ix *Indexer) Reindex(ctx context.Context) (*IndexReport, error) {
	report := &IndexReport{}
	logger := utils.GetLogger()

	docs, err := ix.Doctors.AllRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospital documents: %w", err)
	}
	for _, doc := range docs {
		text := RenderDoctorText(doc)
		embedding, err := ix.Embedder.Embed(ctx, text)
		if err != nil {
			logger.Warn("doctor embedding failed",
				zap.String("doctor", utils.SafeField(doc, "doctor_name", "doctorName", "name", "fullName", "full_name")),
				zap.Error(err))
			report.EmbeddingsFailed++
			embedding = []float32{}
		}
		if err := ix.Doctors.SetEmbedding(ctx, doc["_id"], text, embedding); err != nil {
			return report, fmt.Errorf("update hospital document: %w", err)
		}
		report.DoctorsIndexed++
	}

	meds, err := ix.Medicines.AllRaw(ctx)
	if err != nil {
		return report, fmt.Errorf("list medicine documents: %w", err)
	}
	for _, med := range meds {
		text := ix.renderMedicineText(ctx, med)
		embedding, err := ix.Embedder.Embed(ctx, text)
		if err != nil {
			logger.Warn("medicine embedding failed",
				zap.String("medicine", utils.SafeField(med, "name", "medicine_name", "medicineName", "drug_name")),
				zap.Error(err))
			report.EmbeddingsFailed++
			embedding = []float32{}
		}
		if err := ix.Medicines.SetEmbedding(ctx, med["_id"], text, embedding); err != nil {
			return report, fmt.Errorf("update medicine document: %w", err)
		}
		report.MedicinesIndexed++
	}

	logger.Info("reindex complete",
		zap.Int("doctors", report.DoctorsIndexed),
		zap.Int("medicines", report.MedicinesIndexed),
		zap.Int("embeddingFailures", report.EmbeddingsFailed))
	return report, nil
}

// RenderDoctorText flattens a doctor document into the text that gets
// embedded and retrieved. Field aliases tolerate schema drift across sources.
func RenderDoctorText(doc bson.M) string {
	available := true
	if v, ok := doc["isAvailable"].(bool); ok {
		available = v
	}
	return fmt.Sprintf(`Doctor: %s
Speciality: %s
Phone: %s
Shift: %s
Hospital: %s
Address: %s
Available: %t`,
		utils.SafeField(doc, "doctor_name", "doctorName", "name", "fullName", "full_name"),
		utils.SafeField(doc, "speciality", "specialty", "specialization", "department"),
		utils.SafeField(doc, "phone", "phoneNumber", "phone_number", "contact", "mobile"),
		utils.SafeField(doc, "shift", "working_hours", "schedule", "timing"),
		utils.SafeField(doc, "hospital_name", "hospitalName", "hospital", "clinic"),
		utils.SafeField(doc, "hospital_address", "hospitalAddress", "address", "location"),
		available)
}

func (ix *Indexer) renderMedicineText(ctx context.Context, med bson.M) string {
	text := fmt.Sprintf(`Medicine: %s
Generic Name: %s
Description: %s
Dosage Form: %s
Manufacturer: %s
Quantity: %s
Expiry Date: %s
Prescription Required: %s
%s`,
		utils.SafeField(med, "name", "medicine_name", "medicineName", "drug_name"),
		utils.SafeField(med, "genericName", "generic_name", "generic", "composition"),
		utils.SafeField(med, "description", "details", "info", "about"),
		utils.SafeField(med, "dosageForm", "dosage_form", "form", "type"),
		utils.SafeField(med, "manufacturer", "company", "brand", "mfg"),
		utils.SafeField(med, "quantity", "qty", "stock", "available"),
		utils.SafeField(med, "expiryDate", "expiry_date", "expiry", "exp_date"),
		utils.SafeField(med, "prescriptionRequired", "prescription_required", "prescription"),
		ix.pharmacyText(ctx, med))
	return text
}

// pharmacyText resolves the medicine's pharmacy reference, whether stored as
// a DBRef-style subdocument or a plain ObjectID, and renders its contact
// block. Unresolvable references yield an empty block rather than an error.
func (ix *Indexer) pharmacyText(ctx context.Context, med bson.M) string {
	ref, ok := med["pharmacy"]
	if !ok {
		return ""
	}

	var id interface{}
	switch v := ref.(type) {
	case primitive.DBPointer:
		id = v.Pointer
	case bson.M:
		id = v["$id"]
	case bson.D:
		id = v.Map()["$id"]
	default:
		id = v
	}
	if id == nil {
		return ""
	}

	pharmacy, err := ix.Medicines.FindPharmacy(ctx, id)
	if err != nil || pharmacy == nil {
		return ""
	}
	return fmt.Sprintf("Pharmacy: %s\nContact: %s\nAddress: %s",
		utils.SafeField(pharmacy, "name", "pharmacy_name", "pharmacyName"),
		utils.SafeField(pharmacy, "contactNumber", "contact_number", "phone", "mobile"),
		utils.SafeField(pharmacy, "address", "location", "addr"))
}
