package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's appointment request. (Treatment, Date, Patient) is its business key.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Patient       string             `bson:"patient" json:"patient"`                                 // Patient contact email
	PatientName   string             `bson:"patientName" json:"patientName"`                         // Display name used in emails
	Treatment     string             `bson:"treatment" json:"treatment"`                             // Matches Service.Name exactly
	Date          string             `bson:"date" json:"date"`                                       // Free-form calendar day label
	Slot          string             `bson:"slot" json:"slot"`                                       // One of the service's slot labels
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`                 // Treatment price quoted to the patient
	Paid          bool               `bson:"paid" json:"paid"`                                       // Set once a payment is recorded
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"` // Gateway transaction reference
}

// BookingKey is the natural key of a booking.
type BookingKey struct {
	Treatment string
	Date      string
	Patient   string
}

// Key returns the booking's natural key.
func (b Booking) Key() BookingKey {
	return BookingKey{Treatment: b.Treatment, Date: b.Date, Patient: b.Patient}
}
