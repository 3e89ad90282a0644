package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// AdmitCard is the printable content of one exam admit card.
type AdmitCard struct {
	School     string
	Exam       string
	ExamPeriod string
	Student    string
	Class      string
	RollNumber string
	SeatNumber string
	IssuedAt   string
}

// PDFExporter renders admit cards as PDF documents.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// RenderAdmitCard draws a single A5 landscape admit card.
func (e *PDFExporter) RenderAdmitCard(card AdmitCard) ([]byte, error) {
	if card.Student == "" || card.Exam == "" {
		return nil, fmt.Errorf("admit card requires student and exam")
	}
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 9, strings.ToUpper(card.School), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "ADMIT CARD", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, card.Exam, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Student", card.Student},
		{"Class", card.Class},
		{"Roll number", card.RollNumber},
		{"Seat number", card.SeatNumber},
		{"Exam period", card.ExamPeriod},
		{"Issued", card.IssuedAt},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 8, row[0], "1", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 8, row[1], "1", 1, "", false, 0, "")
	}

	pdf.Ln(14)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(90, 6, "Controller of examinations", "T", 0, "C", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
