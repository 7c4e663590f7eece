package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipLine is one labelled amount on a payslip.
type PayslipLine struct {
	Label  string
	Amount string
}

type Payslip struct {
	Title    string
	Employee string
	Number   string
	Period   string
	Details  []PayslipLine
	Earnings []PayslipLine
	Deduct   []PayslipLine
	Net      string
	Status   string
}

// RenderPayslip lays the payslip out on a single A4 page.
func RenderPayslip(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, p.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", p.Employee, p.Number))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", p.Period))
	pdf.Ln(6)
	for _, d := range p.Details {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %s", d.Label, d.Amount))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section := func(title string, lines []PayslipLine) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.CellFormat(100, 7, l.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, l.Amount, "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}
	section("Earnings", p.Earnings)
	section("Deductions", p.Deduct)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(100, 8, "Net Salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, p.Net, "T", 1, "R", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", p.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
