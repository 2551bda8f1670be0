package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Pracuj parses the <div> wrapper produced by the paginated collector.
// Each offer is one immediate <div> child.
type Pracuj struct{}

var salaryNumber = regexp.MustCompile(`\d[\d\s]*`)

func (Pracuj) Parse(html string) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var records []Record
	doc.Find("div").First().ChildrenFiltered("div").Each(func(_ int, block *goquery.Selection) {
		rec := Record{
			Position: CleanPosition(block.Find(`[data-test="offer-title"]`).First().Text()),
			Company:  strings.TrimSpace(block.Find(`[data-test="text-company-name"]`).First().Text()),
		}
		applySalaryText(&rec, strings.TrimSpace(block.Find(`[data-test="offer-salary"]`).First().Text()))
		records = append(records, rec)
	})
	return records, nil
}

// applySalaryText parses a salary line like "12 000–18 000 zł / mies.".
// The first digit run is the minimum, the second (when present) the
// maximum; whatever follows the last number splits on "/" into currency
// and pay period. Offers without a salary line keep empty fields.
func applySalaryText(rec *Record, text string) {
	if text == "" {
		return
	}
	normalized := strings.ReplaceAll(text, "\u00a0", " ")

	spans := salaryNumber.FindAllStringIndex(normalized, -1)
	if len(spans) == 0 {
		return
	}

	rec.Minimum = stripSpaces(normalized[spans[0][0]:spans[0][1]])
	rec.Maximum = rec.Minimum
	if len(spans) > 1 {
		rec.Maximum = stripSpaces(normalized[spans[1][0]:spans[1][1]])
	}

	rest := normalized[spans[len(spans)-1][1]:]
	currency, period, _ := strings.Cut(rest, "/")
	rec.Currency = strings.TrimSpace(currency)
	rec.PayPeriod = strings.TrimSpace(period)
}
