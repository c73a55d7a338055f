package chat

import "strings"

// Keyword sets driving query routing. Classification is multi-label: a query may
// hit both topical sets, or neither.
var (
	bookingKeywords  = []string{"book", "appointment", "schedule", "see a doctor"}
	statusKeywords   = []string{"check", "status", "my appointment"}
	pharmacyKeywords = []string{"medicine", "drug", "pharmacy", "tablet", "capsule", "syrup", "injection", "prescription"}
	hospitalKeywords = []string{"doctor", "physician", "specialist", "cardiologist", "neurologist", "surgeon", "hours", "department", "ward"}
)

// Classification is the multi-label result of keyword matching one utterance.
type Classification struct {
	Booking  bool
	Status   bool
	Pharmacy bool
	Hospital bool
}

// Classify runs case-insensitive substring matching against the keyword sets.
func Classify(query string) Classification {
	lowered := strings.ToLower(query)
	return Classification{
		Booking:  matchesAny(lowered, bookingKeywords),
		Status:   matchesAny(lowered, statusKeywords),
		Pharmacy: matchesAny(lowered, pharmacyKeywords),
		Hospital: matchesAny(lowered, hospitalKeywords),
	}
}

func matchesAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
