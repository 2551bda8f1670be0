package pracuj

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"go-jobboard-automation/internal/browser"
	"go-jobboard-automation/internal/collector"
	"go-jobboard-automation/internal/config"
)

// Experience codes accepted by the listing URL (the site's et= values).
const (
	ExperienceIntern    = "1"
	ExperienceAssistant = "3"
	ExperienceJunior    = "17"
	ExperienceMid       = "4"
	ExperienceSenior    = "18"
	ExperienceExpert    = "19"
	ExperienceManager   = "20"
	ExperienceDirector  = "20%2C6"
)

const (
	baseURL = "https://it.pracuj.pl/praca"

	cookieButton     = `button[data-test="button-submitCookie"]`
	modalCloseButton = `button[data-test="button-close-modal"]`
	offersCounter    = `span[data-test="text-offers-count"]`
	listContainer    = `div[data-test="section-offers"]`
	itemSelector     = `div[data-test="section-offers"] > div`
	nextButton       = `button[data-test="bottom-pagination-button-next"]`

	//pauses around the next-page click: one to finish the scroll, one for
	//the next page to render
	clickDelay  = 300 * time.Millisecond
	renderDelay = 2 * time.Second
)

// Collector walks the paginated listing page by page, appending each
// page's offer blocks in DOM order, until the next-page control
// disappears. Pages are assumed disjoint, so nothing is deduplicated.
type Collector struct {
	maxRounds   int
	beforeClick time.Duration
	afterClick  time.Duration
}

func New(cfg *config.Config) *Collector {
	c := &Collector{
		maxRounds:   cfg.MaxRounds,
		beforeClick: clickDelay,
		afterClick:  renderDelay,
	}
	if c.maxRounds <= 0 {
		c.maxRounds = collector.DefaultMaxRounds
	}
	return c
}

func (c *Collector) Site() collector.Site {
	return collector.SitePracujPL
}

func buildURL(params collector.SearchParams) string {
	url := fmt.Sprintf("%s/%s;wp?et=%s", baseURL, params.City, params.Experience)
	if params.WithSalary {
		url += "&sal=1"
	}
	return url
}

func (c *Collector) Collect(ctx context.Context, page browser.Page, params collector.SearchParams) (string, error) {
	log.Println("📋 Collecting it.pracuj.pl listings...")

	url := buildURL(params)
	log.Printf("  🔍 Loading %s", url)
	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}

	if page.TryClick(cookieButton) {
		log.Println("  🍪 Cookie banner dismissed")
	}
	if page.TryClick(modalCloseButton) {
		log.Println("  ✅ Promo modal closed")
	}

	//counter is advisory only; termination comes from the pagination control
	if total, err := c.totalOffers(page); err != nil {
		log.Printf("  ⚠️ Could not parse offer counter: %v", err)
	} else {
		log.Printf("  📊 Counter reports %s offers", humanize.Comma(int64(total)))
	}

	blocks := collector.NewSequence()

	lastPage := false
	round := 0
	for ; round < c.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if err := page.WaitFor(listContainer); err != nil {
			return "", fmt.Errorf("offer container never rendered: %w", err)
		}

		fragments, err := page.Snapshot(itemSelector, "")
		if err != nil {
			return "", fmt.Errorf("snapshot offer blocks: %w", err)
		}
		blocks.Append(fragments)
		log.Printf("    📦 Page %d: %d offer blocks (total %s)", round+1, len(fragments), humanize.Comma(int64(blocks.Len())))

		//a missing or hidden next control is the true end of results
		visible, err := page.IsVisible(nextButton)
		if err != nil || !visible {
			lastPage = true
			break
		}

		if err := page.ScrollIntoView(nextButton); err != nil {
			return "", fmt.Errorf("scroll to next-page control: %w", err)
		}
		time.Sleep(c.beforeClick)
		if err := page.Click(nextButton); err != nil {
			return "", fmt.Errorf("click next-page control: %w", err)
		}
		time.Sleep(c.afterClick)
	}

	if lastPage {
		log.Printf("  🏁 Last page reached after %d pages: %s offer blocks collected", round+1, humanize.Comma(int64(blocks.Len())))
	} else {
		log.Printf("  🏁 Round cap reached (%d pages): %s offer blocks collected", c.maxRounds, humanize.Comma(int64(blocks.Len())))
	}

	return blocks.Document(), nil
}

func (c *Collector) totalOffers(page browser.Page) (int, error) {
	text, err := page.Text(offersCounter)
	if err != nil {
		return 0, err
	}
	return collector.ParseOfferCount(text)
}
