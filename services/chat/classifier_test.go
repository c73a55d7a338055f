package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Classification
	}{
		{
			name:  "booking intent",
			query: "I want to book an appointment",
			want:  Classification{Booking: true},
		},
		{
			name:  "status intent",
			query: "check my appointment status",
			want:  Classification{Status: true, Booking: true}, // "appointment" is also a booking keyword
		},
		{
			name:  "pharmacy topic",
			query: "what medicine helps with a headache",
			want:  Classification{Pharmacy: true},
		},
		{
			name:  "hospital topic",
			query: "which cardiologist is available",
			want:  Classification{Hospital: true},
		},
		{
			name:  "both topics",
			query: "which doctor should I see and what tablet should I take",
			want:  Classification{Hospital: true, Pharmacy: true},
		},
		{
			name:  "no keywords",
			query: "hello there",
			want:  Classification{},
		},
		{
			name:  "case insensitive",
			query: "CHECK STATUS of my PRESCRIPTION",
			want:  Classification{Status: true, Pharmacy: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}
