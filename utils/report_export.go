package utils

import (
	"fmt"
	"time"

	"github.com/Govind-619/BookNook/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

var logSummaryHeaders = []string{"Function", "Total", "Successes", "Errors", "Avg ms", "Max ms"}

// ExportLogSummaryXLSX writes the audit summary to an Excel file at path
func ExportLogSummaryXLSX(path string, summaries []models.LogSummary, generatedAt time.Time) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Audit Log")
	if err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(AppName + " - Audit Log Summary")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + generatedAt.UTC().Format("2006-01-02 15:04"))
	sheet.AddRow()

	headerRow := sheet.AddRow()
	for _, h := range logSummaryHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, s := range summaries {
		row := sheet.AddRow()
		row.AddCell().SetString(s.FunctionName)
		row.AddCell().SetInt(int(s.Total))
		row.AddCell().SetInt(int(s.Successes))
		row.AddCell().SetInt(int(s.Errors))
		row.AddCell().SetFloat(s.AvgExecutionMs)
		row.AddCell().SetInt(int(s.MaxExecutionMs))
	}

	if err := file.Save(path); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// ExportLogSummaryPDF writes the audit summary to a PDF file at path
func ExportLogSummaryPDF(path string, summaries []models.LogSummary, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, AppName+" - Audit Log Summary")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, "Generated: "+generatedAt.UTC().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	colWidths := []float64{50, 25, 25, 25, 30, 30}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range logSummaryHeaders {
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for i, s := range summaries {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colWidths[0], 8, s.FunctionName, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("%d", s.Total), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%d", s.Successes), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%d", s.Errors), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%.1f", s.AvgExecutionMs), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, fmt.Sprintf("%d", s.MaxExecutionMs), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}
