package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//offer markup as captured by the scroll collector: company name sits at
//the bottom of the card's div stack, salary spans live in an <h6>
const justjoinitFixture = `<ul>` +
	`<li data-index="0">` +
	`<a href="/job-offer/nordea-qa"><div><div><div><div><div><div><p>Nordea</p></div></div></div></div></div></div></a>` +
	`<h3>Inżynier Jakości (QA)</h3>` +
	`<h6><span>12 000</span><span>18 000</span><span>PLN/month</span></h6>` +
	`</li>` +
	`<li data-index="1">` +
	`<a href="/job-offer/acme-go"><div><div><div><div><div><div><p>Acme Sp. z o.o.</p></div></div></div></div></div></div></a>` +
	`<h3>Go Developer</h3>` +
	`<h6><span>24 000</span><span>PLN/month</span></h6>` +
	`</li>` +
	`<li data-index="2">` +
	`<h3>Stealth Startup Engineer</h3>` +
	`</li>` +
	`</ul>`

func TestJustJoinITParse(t *testing.T) {
	records, err := JustJoinIT{}.Parse(justjoinitFixture)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		Position:  "Inzynier Jakosci (QA)",
		Company:   "Nordea",
		Minimum:   "12000",
		Maximum:   "18000",
		Currency:  "PLN",
		PayPeriod: "month",
	}, records[0])

	//a single salary value doubles as both bounds
	assert.Equal(t, Record{
		Position:  "Go Developer",
		Company:   "Acme Sp. z o.o.",
		Minimum:   "24000",
		Maximum:   "24000",
		Currency:  "PLN",
		PayPeriod: "month",
	}, records[1])

	//undisclosed salary and no company card leave the fields empty
	assert.Equal(t, Record{Position: "Stealth Startup Engineer"}, records[2])
}

func TestJustJoinITParseCurrencyWithoutPeriod(t *testing.T) {
	html := `<ul><li data-index="0"><h3>Analyst</h3>` +
		`<h6><span>9 000</span><span>PLN</span></h6></li></ul>`

	records, err := JustJoinIT{}.Parse(html)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "PLN", records[0].Currency)
	assert.Empty(t, records[0].PayPeriod)
}

func TestJustJoinITParseEmptyWrapper(t *testing.T) {
	records, err := JustJoinIT{}.Parse("<ul></ul>")
	require.NoError(t, err)
	assert.Empty(t, records)
}
