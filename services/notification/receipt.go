package notification

import (
	"bytes"
	"fmt"
	"strings"

	"doctorsportal/models"

	"github.com/jung-kurt/gofpdf"
)

// RenderReceiptPDF renders a one-page payment receipt.
func RenderReceiptPDF(clinicAddress string, b models.Booking, p models.Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt "+p.ReceiptNo, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Doctors Portal")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, clinicAddress)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Payment Receipt")
	pdf.Ln(12)

	rows := [][2]string{
		{"Receipt No", p.ReceiptNo},
		{"Patient", fmt.Sprintf("%s <%s>", b.PatientName, b.Patient)},
		{"Treatment", b.Treatment},
		{"Appointment", fmt.Sprintf("%s at %s", b.Date, b.Slot)},
		{"Transaction ID", p.TransactionID},
		{"Amount", formatAmount(p.Amount, p.Currency)},
		{"Paid On", p.CreatedAt.Format("Jan 2, 2006 15:04 MST")},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(45, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt %s: %w", p.ReceiptNo, err)
	}
	return buf.Bytes(), nil
}

func formatAmount(amount float64, currency string) string {
	if amount <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f %s", amount, strings.ToUpper(currency))
}
