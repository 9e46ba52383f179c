package assets

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"

	"labkart/internal"
	"labkart/internal/util"
)

// recordsFromHTML reads table-based price lists: the first row of each
// table supplies the keys, remaining rows become records. Tables without a
// header row are skipped.
func recordsFromHTML(blob []byte) ([]internal.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}

	out := []internal.Record{}
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return
		}

		headers := []string{}
		rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, util.NormalizeSpaces(cell.Text()))
		})

		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			rec := internal.Record{}
			row.Find("th,td").Each(func(i int, cell *goquery.Selection) {
				if i >= len(headers) || headers[i] == "" {
					return
				}
				if text := util.NormalizeSpaces(cell.Text()); text != "" {
					rec[headers[i]] = cellValue(text)
				}
			})
			if len(rec) > 0 {
				out = append(out, rec)
			}
		})
	})

	return out, nil
}
