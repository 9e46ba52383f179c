package assets

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"labkart/internal"
	"labkart/internal/util"
)

// recordsFromXLSX reads a flat sheet export: first non-empty row is the
// header, every following row becomes one record keyed by those headers.
// Numeric-looking cells are converted so prices survive as numbers.
func recordsFromXLSX(path string) ([]internal.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := []internal.Record{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}

		var headers []string
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			blank := true
			for _, c := range row {
				c = util.NormalizeSpaces(c)
				if c != "" {
					blank = false
				}
				cells = append(cells, c)
			}
			if blank {
				continue
			}
			if headers == nil {
				headers = cells
				continue
			}

			rec := internal.Record{}
			for i, cell := range cells {
				if i >= len(headers) || headers[i] == "" || cell == "" {
					continue
				}
				rec[headers[i]] = cellValue(cell)
			}
			if len(rec) > 0 {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

func cellValue(cell string) any {
	compact := strings.ReplaceAll(cell, ",", "")
	if parsed, err := strconv.ParseFloat(compact, 64); err == nil {
		return parsed
	}
	return cell
}
