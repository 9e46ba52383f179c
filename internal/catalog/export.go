package catalog

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"labkart/internal"
	"labkart/internal/util"
)

// ExportRowsToXLSX writes the unified catalog to a spreadsheet for ops
// review: one row per product plus its canonical slug.
func ExportRowsToXLSX(rows []internal.Row, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"supplier", "brand", "name", "pack", "code", "hsn", "cas", "price", "slug"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Supplier)
		set(2, row.Brand)
		set(3, row.Name)
		set(4, row.Pack)
		set(5, row.Code)
		set(6, row.HSN)
		set(7, row.CAS)
		set(8, exportPrice(row.Price))
		set(9, PrimarySlug(row))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func exportPrice(price any) any {
	switch price.(type) {
	case nil:
		return ""
	case float64, int, string:
		return price
	default:
		return util.Stringify(price)
	}
}
