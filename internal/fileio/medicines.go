package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pharmatool/internal/store"
)

const dateLayout = "2006-01-02"

// column aliases accepted when resolving upload headers; the first
// alternative is the canonical template name
var columnAliases = map[string]string{
	"name":                 "name|medicine name|medicine",
	"therapeutic_category": "therapeutic_category|therapeutic category|category",
	"manufacturing_date":   "manufacturing_date|manufacturing date|mfg date",
	"expiring_date":        "expiring_date|expiring date|expiry date|expiry",
	"dosage_form":          "dosage_form|dosage form|form",
	"price":                "price|unit price",
	"stock_quantity":       "stock_quantity|stock quantity|stock|quantity",
}

// RowError ties a validation problem to its spreadsheet row.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

// ReadMedicines parses an upload file into medicine records. Rows that fail
// validation are reported individually so one bad line does not sink the
// whole upload.
func ReadMedicines(path string) ([]store.Medicine, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	maps, err := ReadAnyMaps(f, filepath.Base(path), 1)
	if err != nil {
		return nil, nil, fmt.Errorf("read upload: %w", err)
	}
	meds, rowErrs := ParseMedicines(maps)
	return meds, rowErrs, nil
}

// ParseMedicines validates header-keyed records. Row numbers in errors are
// 1-based spreadsheet rows (header is row 1).
func ParseMedicines(maps []map[string]string) ([]store.Medicine, []RowError) {
	var (
		meds []store.Medicine
		errs []RowError
	)
	for i, rec := range maps {
		row := i + 2
		m, err := parseMedicine(rec)
		if err != nil {
			errs = append(errs, RowError{Row: row, Err: err})
			continue
		}
		meds = append(meds, m)
	}
	return meds, errs
}

func parseMedicine(rec map[string]string) (store.Medicine, error) {
	var m store.Medicine

	m.Name = strings.TrimSpace(field(rec, "name"))
	if m.Name == "" {
		return m, fmt.Errorf("missing medicine name")
	}
	m.Category = strings.TrimSpace(field(rec, "therapeutic_category"))
	m.DosageForm = strings.TrimSpace(field(rec, "dosage_form"))

	var err error
	if m.ManufacturingDate, err = parseDate(field(rec, "manufacturing_date")); err != nil {
		return m, fmt.Errorf("manufacturing_date: %w", err)
	}
	if m.ExpiringDate, err = parseDate(field(rec, "expiring_date")); err != nil {
		return m, fmt.Errorf("expiring_date: %w", err)
	}
	if m.ExpiringDate < m.ManufacturingDate {
		return m, fmt.Errorf("expiring_date %s precedes manufacturing_date %s",
			m.ExpiringDate, m.ManufacturingDate)
	}

	if m.Price, err = parsePrice(field(rec, "price")); err != nil {
		return m, fmt.Errorf("price: %w", err)
	}
	if m.Stock, err = parseStock(field(rec, "stock_quantity")); err != nil {
		return m, fmt.Errorf("stock_quantity: %w", err)
	}
	return m, nil
}

// field resolves a record value through the column aliases, comparing
// normalized header names so "Therapeutic Category" still matches.
func field(rec map[string]string, canonical string) string {
	for _, want := range strings.Split(columnAliases[canonical], "|") {
		if v, ok := rec[want]; ok {
			return v
		}
		for k, v := range rec {
			if normHeader(k) == want {
				return v
			}
		}
	}
	return ""
}

func normHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("required, format %s", dateLayout)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%q is not %s", s, dateLayout)
	}
	return t.Format(dateLayout), nil
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%q is not a non-negative number", s)
	}
	return v, nil
}

func parseStock(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("required")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%q is not a non-negative whole number", s)
	}
	return v, nil
}
