package notification

import (
	"context"

	"doctorsportal/models"
)

// EmailSender composes and delivers the patient emails.
type EmailSender struct {
	Mailer        Mailer
	From          string
	ClinicAddress string
}

// SendAppointmentConfirmation emails the booking confirmation to the patient.
func (s *EmailSender) SendAppointmentConfirmation(ctx context.Context, b models.Booking) error {
	return s.Mailer.Send(ctx, ComposeAppointmentEmail(s.From, s.ClinicAddress, b))
}

// SendPaymentReceipt emails the payment acknowledgement with a PDF receipt attached.
func (s *EmailSender) SendPaymentReceipt(ctx context.Context, b models.Booking, p models.Payment) error {
	pdf, err := RenderReceiptPDF(s.ClinicAddress, b, p)
	if err != nil {
		return err
	}
	email := ComposeReceiptEmail(s.From, s.ClinicAddress, b, p)
	email.Attachments = []Attachment{{Name: "receipt-" + p.ReceiptNo + ".pdf", Data: pdf}}
	return s.Mailer.Send(ctx, email)
}
