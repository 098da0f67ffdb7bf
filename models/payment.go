package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentRecord is the body of PATCH /booking/:id.
type PaymentRecord struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
}

// Payment is a recorded payment for a booking.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ReceiptNo     string             `bson:"receiptNo" json:"receiptNo"`
	Appointment   string             `bson:"appointment" json:"appointment"` // Booking ID hex
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency      string             `bson:"currency,omitempty" json:"currency,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
