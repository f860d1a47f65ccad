// Package xlsxexport renders the daily sales report as an Excel workbook
// for download from the reports endpoint.
package xlsxexport

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"chayen/internal/domain"
)

const sheetName = "Daily Report"

// Write renders the summary as a one-sheet workbook and writes it to w.
func Write(w io.Writer, summary *domain.DailySummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsxexport.Write: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsxexport.Write: %w", err)
	}

	cells := []struct {
		ref   string
		value interface{}
	}{
		{"A1", "Date"},
		{"B1", summary.Date},
		{"A2", "Total Sales"},
		{"B2", summary.TotalSales},
		{"A3", "Total Orders"},
		{"B3", summary.TotalOrders},
		{"A4", "Total Cups"},
		{"B4", summary.TotalCups},
		{"A6", "Product"},
		{"B6", "Cups"},
		{"C6", "Revenue"},
	}
	for _, cell := range cells {
		if err := f.SetCellValue(sheetName, cell.ref, cell.value); err != nil {
			return fmt.Errorf("xlsxexport.Write: %w", err)
		}
	}

	for i, p := range summary.TopProducts {
		row := 7 + i
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.Name); err != nil {
			return fmt.Errorf("xlsxexport.Write: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Qty); err != nil {
			return fmt.Errorf("xlsxexport.Write: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Revenue); err != nil {
			return fmt.Errorf("xlsxexport.Write: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport.Write: %w", err)
	}
	return nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a shop name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_shop_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(shopName, date string) string {
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(shopName), date)
}
