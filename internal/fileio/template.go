package fileio

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"
)

// TemplateColumns are the headers the bulk upload parser expects, in order.
var TemplateColumns = []string{
	"name",
	"therapeutic_category",
	"manufacturing_date",
	"expiring_date",
	"dosage_form",
	"price",
	"stock_quantity",
}

// sampleRows give staff something concrete to overwrite.
var sampleRows = [][]any{
	{"Paracetamol 500mg", "Analgesic", "2024-01-15", "2026-01-15", "Tablet", 5.50, 100},
	{"Amoxicillin 250mg", "Antibiotic", "2024-02-10", "2027-02-10", "Capsule", 8.75, 75},
	{"Ibuprofen 400mg", "Anti-inflammatory", "2024-03-05", "2026-03-05", "Tablet", 6.25, 150},
	{"Cough Syrup 100ml", "Respiratory", "2024-01-20", "2025-01-20", "Syrup", 12.00, 50},
	{"Vitamin C 1000mg", "Supplement", "2024-04-01", "2026-04-01", "Tablet", 15.30, 200},
}

// WriteTemplate saves the upload template with headers and sample data.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]any, len(TemplateColumns))
	for i, c := range TemplateColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("template: write header: %w", err)
	}
	for i, row := range sampleRows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("template: write sample row %d: %w", i+1, err)
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		end, _ := excelize.CoordinatesToCellName(len(TemplateColumns), 1)
		_ = f.SetCellStyle(sheet, "A1", end, style)
	}
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "G", 20)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("template: save %s: %w", path, err)
	}
	return nil
}
