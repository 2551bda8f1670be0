package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//offer markup as captured by the pagination collector; salary lines use
//non-breaking spaces as thousands separators, like the live site
const pracujFixture = `<div>` +
	`<div><h2 data-test="offer-title">Inżynier Danych</h2>` +
	`<span data-test="text-company-name">DataWorks</span>` +
	`<span data-test="offer-salary">10` + " " + `000–15` + " " + `000 zł / mies.</span></div>` +
	`<div><h2 data-test="offer-title">Administrator Sieci</h2>` +
	`<span data-test="text-company-name">NetOps Polska</span>` +
	`<span data-test="offer-salary">7 500 zł / godz.</span></div>` +
	`<div><h2 data-test="offer-title">Tester Manualny</h2>` +
	`<span data-test="text-company-name">QualityHouse</span></div>` +
	`<div><h2 data-test="offer-title">Konsultant SAP</h2>` +
	`<span data-test="text-company-name">ERP Partners</span>` +
	`<span data-test="offer-salary">od 12 000 zł</span></div>` +
	`</div>`

func TestPracujParse(t *testing.T) {
	records, err := Pracuj{}.Parse(pracujFixture)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, Record{
		Position:  "Inzynier Danych",
		Company:   "DataWorks",
		Minimum:   "10000",
		Maximum:   "15000",
		Currency:  "zł",
		PayPeriod: "mies.",
	}, records[0])

	//a single number doubles as both bounds
	assert.Equal(t, Record{
		Position:  "Administrator Sieci",
		Company:   "NetOps Polska",
		Minimum:   "7500",
		Maximum:   "7500",
		Currency:  "zł",
		PayPeriod: "godz.",
	}, records[1])

	//no salary line keeps the fields empty
	assert.Equal(t, Record{
		Position: "Tester Manualny",
		Company:  "QualityHouse",
	}, records[2])

	//no "/" after the number leaves the pay period empty
	assert.Equal(t, Record{
		Position: "Konsultant SAP",
		Company:  "ERP Partners",
		Minimum:  "12000",
		Maximum:  "12000",
		Currency: "zł",
	}, records[3])
}

func TestPracujParseEmptyWrapper(t *testing.T) {
	records, err := Pracuj{}.Parse("<div></div>")
	require.NoError(t, err)
	assert.Empty(t, records)
}
