package notification

import (
	"context"

	"doctorsportal/models"
)

// Notifier informs patients about their bookings. Delivery is best effort: implementations log
// failures and never report them to the caller.
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, booking models.Booking)
	PaymentReceived(ctx context.Context, booking models.Booking, payment models.Payment)
}

// Mailer delivers a composed email.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Email is a transport-independent outbound message.
type Email struct {
	From        string
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Attachment is a file attached to an Email.
type Attachment struct {
	Name string
	Data []byte
}

// NoopNotifier drops every notification. Used when outbound email is disabled.
type NoopNotifier struct{}

func (NoopNotifier) AppointmentConfirmed(context.Context, models.Booking)                 {}
func (NoopNotifier) PaymentReceived(context.Context, models.Booking, models.Payment) {}
