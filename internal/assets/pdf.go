package assets

import (
	"regexp"
	"strconv"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"labkart/internal"
	"labkart/internal/util"
)

// PDF price lists are line oriented: "<code> <name...> <price>". Codes mix
// letters and digits or are all digits; the trailing price is numeric or
// the POR sentinel. Anything else on a page is ignored.
var (
	rePDFCode  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-/]{2,}$`)
	rePDFDigit = regexp.MustCompile(`[0-9]`)
)

func recordsFromPDF(path string) ([]internal.Record, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := []internal.Record{}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			if rec, ok := priceListLine(line); ok {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

func priceListLine(line string) (internal.Record, bool) {
	fields := strings.Fields(util.NormalizeSpaces(line))
	if len(fields) < 3 {
		return nil, false
	}

	code := fields[0]
	if !rePDFCode.MatchString(code) || !rePDFDigit.MatchString(code) {
		return nil, false
	}

	last := fields[len(fields)-1]
	var price any
	if strings.EqualFold(last, "POR") {
		price = "POR"
	} else if parsed, err := strconv.ParseFloat(strings.ReplaceAll(last, ",", ""), 64); err == nil {
		price = parsed
	} else {
		return nil, false
	}

	name := strings.Join(fields[1:len(fields)-1], " ")
	if name == "" {
		return nil, false
	}
	return internal.Record{"code": code, "name": name, "price": price}, true
}
