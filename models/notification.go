package models

// AppointmentEmailPayload is the queued task payload for a booking confirmation.
type AppointmentEmailPayload struct {
	Booking Booking `json:"booking"`
}

// ReceiptEmailPayload is the queued task payload for a payment receipt.
type ReceiptEmailPayload struct {
	Booking Booking `json:"booking"`
	Payment Payment `json:"payment"`
}
