package reports

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"mandal-ledger-go/internal/ledger"
)

type MemberLine struct {
	Name        string
	Phone       string
	Installment float64
	Pending     float64
	Withdrawal  float64
	Amount      float64
}

type AnnualReport struct {
	MandalName    string
	LocalName     string
	EstablishedOn string
	Hapto         float64
	LatestMonth   string
	MonthCount    int
	Summary       ledger.Summary
	Members       []MemberLine
}

// BuildAnnualPDF renders the mandal's lifetime summary plus the latest
// month's member table.
func BuildAnnualPDF(r *AnnualReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Mandal Annual Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, r.MandalName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Established: %s", r.EstablishedOn))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Months recorded: %d (latest %s)", r.MonthCount, r.LatestMonth))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly installment (hapto): %.2f", r.Hapto))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	summaryLines := []struct {
		label string
		value float64
	}{
		{"Total installments", r.Summary.TotalInstallments},
		{"Total interest", r.Summary.TotalInterest},
		{"Total withdrawals collected", r.Summary.TotalWithdrawals},
		{"Total new withdrawals", r.Summary.TotalNewWithdrawals},
		{"Total collected", r.Summary.TotalCollected},
		{"Closing balance (band silak)", r.Summary.BandSilak},
		{"Per person", r.Summary.PerPerson},
		{"Interest per person", r.Summary.InterestPerPerson},
	}
	for _, line := range summaryLines {
		pdf.Cell(90, 7, line.label)
		pdf.Cell(50, 7, fmt.Sprintf("%.2f", line.value))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Members — %s", r.LatestMonth))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(45, 7, "Name")
	pdf.Cell(35, 7, "Phone")
	pdf.Cell(28, 7, "Installment")
	pdf.Cell(28, 7, "Pending")
	pdf.Cell(28, 7, "Withdrawal")
	pdf.Cell(28, 7, "Amount")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, m := range r.Members {
		pdf.Cell(45, 7, m.Name)
		pdf.Cell(35, 7, m.Phone)
		pdf.Cell(28, 7, fmt.Sprintf("%.2f", m.Installment))
		pdf.Cell(28, 7, fmt.Sprintf("%.2f", m.Pending))
		pdf.Cell(28, 7, fmt.Sprintf("%.2f", m.Withdrawal))
		pdf.Cell(28, 7, fmt.Sprintf("%.2f", m.Amount))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
