package notification

import (
	"fmt"
	"html"
	"strings"

	"doctorsportal/models"
)

const unsubscribeURL = "https://web.programming-hero.com"

// ComposeAppointmentEmail builds the confirmation sent after a booking is admitted.
func ComposeAppointmentEmail(from, clinicAddress string, b models.Booking) Email {
	subject := fmt.Sprintf("Your Appointment for %s is on %s at %s is confirmed", b.Treatment, b.Date, b.Slot)

	var body strings.Builder
	fmt.Fprintf(&body, "<p>Hello %s </p>\n", html.EscapeString(b.PatientName))
	fmt.Fprintf(&body, "<div>Your appointment for %s is confirmed.</div>\n", html.EscapeString(b.Treatment))
	fmt.Fprintf(&body, "<p>Looking forward to seeing you on %s at %s</p>\n", html.EscapeString(b.Date), html.EscapeString(b.Slot))
	writeFooter(&body, clinicAddress)

	return Email{
		From:    from,
		To:      b.Patient,
		Subject: subject,
		Text:    subject,
		HTML:    body.String(),
	}
}

// ComposeReceiptEmail builds the payment acknowledgement; the PDF receipt is attached by the caller.
func ComposeReceiptEmail(from, clinicAddress string, b models.Booking, p models.Payment) Email {
	subject := fmt.Sprintf("We have received your payment for your %s appointment on %s at %s", b.Treatment, b.Date, b.Slot)

	var body strings.Builder
	fmt.Fprintf(&body, "<p>Hello %s </p>\n", html.EscapeString(b.PatientName))
	fmt.Fprintf(&body, "<div>Thank you for your payment for %s.</div>\n", html.EscapeString(b.Treatment))
	fmt.Fprintf(&body, "<p>Transaction ID: %s</p>\n", html.EscapeString(p.TransactionID))
	fmt.Fprintf(&body, "<p>Receipt No: %s</p>\n", html.EscapeString(p.ReceiptNo))
	writeFooter(&body, clinicAddress)

	return Email{
		From:    from,
		To:      b.Patient,
		Subject: subject,
		Text:    fmt.Sprintf("%s. Transaction ID: %s", subject, p.TransactionID),
		HTML:    body.String(),
	}
}

func writeFooter(body *strings.Builder, clinicAddress string) {
	body.WriteString("\n<h3>Our Address</h3>\n")
	for _, line := range strings.Split(clinicAddress, ",") {
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintf(body, "<p>%s</p>\n", html.EscapeString(line))
		}
	}
	fmt.Fprintf(body, "<a href=\"%s\">unsubscribe</a>\n", unsubscribeURL)
}
