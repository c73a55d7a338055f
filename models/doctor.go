package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a normalized view of a document from the hospital knowledge collection.
// The collection is fed from several upstream imports, so field names are not uniform
// (doctor_name vs doctorName vs name); the repository resolves the known aliases and
// hands out this struct.
type Doctor struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"doctor_name"`
	Specialty       string             `json:"specialty" bson:"speciality"`
	Phone           string             `json:"phone" bson:"phone"`
	Shift           string             `json:"shift,omitempty" bson:"shift,omitempty"`
	HospitalName    string             `json:"hospitalName,omitempty" bson:"hospital_name,omitempty"`
	HospitalAddress string             `json:"hospitalAddress,omitempty" bson:"hospital_address,omitempty"`
	IsAvailable     bool               `json:"isAvailable" bson:"isAvailable"`
}
