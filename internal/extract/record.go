// Package extract turns raw collected listing markup into salary records.
// Parsing is best-effort: a field the markup does not carry stays empty,
// it never fails the record.
package extract

import (
	"fmt"

	"go-jobboard-automation/internal/collector"
)

// Fieldnames is the CSV column order shared by every site extractor.
var Fieldnames = []string{"position", "company_name", "minimum", "maximum", "currency", "pay_period"}

// Record is one extracted job offer row.
type Record struct {
	Position  string
	Company   string
	Minimum   string
	Maximum   string
	Currency  string
	PayPeriod string
}

func (r Record) row() []string {
	return []string{r.Position, r.Company, r.Minimum, r.Maximum, r.Currency, r.PayPeriod}
}

// Extractor parses one site's wrapper markup into records.
type Extractor interface {
	Parse(html string) ([]Record, error)
}

// For returns the extractor registered for site.
func For(site collector.Site) (Extractor, error) {
	switch site {
	case collector.SiteJustJoinIT:
		return JustJoinIT{}, nil
	case collector.SitePracujPL:
		return Pracuj{}, nil
	default:
		return nil, fmt.Errorf("no extractor for site %q", site)
	}
}
