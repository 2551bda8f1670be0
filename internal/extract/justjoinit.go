package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// JustJoinIT parses the <ul> wrapper produced by the scroll collector.
// Each offer is one immediate <li> child.
type JustJoinIT struct{}

const companySelector = "a > div > div > div > div > div > div > p"

func (JustJoinIT) Parse(html string) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var records []Record
	doc.Find("ul").First().ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		rec := Record{
			Position: CleanPosition(li.Find("h3").First().Text()),
			Company:  strings.TrimSpace(li.Find(companySelector).First().Text()),
		}
		applySalarySpans(&rec, li.Find("h6").First())
		records = append(records, rec)
	})
	return records, nil
}

// applySalarySpans reads the salary <h6>. Two spans render a single value
// plus "CUR/period"; three render minimum, maximum, "CUR/period". Anything
// else leaves the salary fields empty.
func applySalarySpans(rec *Record, h6 *goquery.Selection) {
	var spans []string
	h6.Find("span").Each(func(_ int, span *goquery.Selection) {
		spans = append(spans, strings.TrimSpace(span.Text()))
	})

	switch {
	case len(spans) == 2:
		rec.Minimum = stripSpaces(spans[0])
		rec.Maximum = rec.Minimum
		rec.Currency, rec.PayPeriod = splitCurrencyPeriod(spans[1])
	case len(spans) >= 3:
		rec.Minimum = stripSpaces(spans[0])
		rec.Maximum = stripSpaces(spans[1])
		rec.Currency, rec.PayPeriod = splitCurrencyPeriod(spans[2])
	}
}

// splitCurrencyPeriod splits "PLN/month" into its halves. A value without
// exactly one separator is all currency.
func splitCurrencyPeriod(s string) (string, string) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return s, ""
	}
	return parts[0], parts[1]
}
