package ui

import (
	"log"

	"github.com/pterm/pterm"

	"go-jobboard-automation/internal/extract"
)

// PreviewRecords renders the first few extracted records as a table so
// the operator can eyeball the extraction before opening the CSV.
func PreviewRecords(records []extract.Record, limit int) {
	if len(records) == 0 {
		return
	}
	if limit > len(records) {
		limit = len(records)
	}

	data := pterm.TableData{{"Position", "Company", "Salary"}}
	for _, rec := range records[:limit] {
		data = append(data, []string{rec.Position, rec.Company, FormatSalary(rec)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Printf("⚠️ Could not render preview table: %v", err)
	}
}

// FormatSalary renders the salary fields as one colored cell. Offers
// without a published salary show as undisclosed.
func FormatSalary(rec extract.Record) string {
	if rec.Minimum == "" {
		return pterm.FgGray.Sprint("undisclosed")
	}

	salary := rec.Minimum
	if rec.Maximum != "" && rec.Maximum != rec.Minimum {
		salary += "-" + rec.Maximum
	}
	if rec.Currency != "" {
		salary += " " + rec.Currency
	}
	if rec.PayPeriod != "" {
		salary += "/" + rec.PayPeriod
	}
	return pterm.FgGreen.Sprint(salary)
}
