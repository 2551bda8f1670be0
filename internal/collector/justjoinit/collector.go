package justjoinit

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

// City codes accepted by the listing URL.
const (
	CityAll        = "all-locations"
	CityGdansk     = "gdansk"
	CityWarszawa   = "warszawa"
	CityTrojmiasto = "trojmiasto"
)

// Experience codes accepted by the listing URL.
const (
	ExperienceJunior = "junior"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
	ExperienceCLevel = "c-level,mid"
)

const (
	baseURL = "https://justjoin.it/job-offers"

	cookieButton = "#cookiescript_accept"
	offersHeader = `h1:has-text("offers")`
	itemSelector = "#up-offers-list ul li[data-index]"
	itemKeyAttr  = "data-index"

	//the list renders lazily; each round scrolls a fixed step and waits a
	//fixed settle delay for new items to attach
	scrollStep  = 1200
	settleDelay = 350 * time.Millisecond
)

// Collector walks the infinite-scroll listing until no round adds items
// or raises the maximum index, then emits the merged markup sorted by
// index.
type Collector struct {
	maxRounds      int
	maxStaleRounds int
	settle         time.Duration
}

func New(cfg *config.Config) *Collector {
	c := &Collector{
		maxRounds:      cfg.MaxRounds,
		maxStaleRounds: cfg.MaxStaleRounds,
		settle:         settleDelay,
	}
	if c.maxRounds <= 0 {
		c.maxRounds = collector.DefaultMaxRounds
	}
	if c.maxStaleRounds <= 0 {
		c.maxStaleRounds = collector.DefaultMaxStaleRounds
	}
	return c
}

func (c *Collector) Site() collector.Site {
	return collector.SiteJustJoinIT
}

func buildURL(params collector.SearchParams) string {
	salary := "no"
	if params.WithSalary {
		salary = "yes"
	}
	return fmt.Sprintf("%s/%s?experience-level=%s&with-salary=%s", baseURL, params.City, params.Experience, salary)
}

func (c *Collector) Collect(ctx context.Context, page browser.Page, params collector.SearchParams) (string, error) {
	log.Println("📋 Collecting justjoin.it listings...")

	url := buildURL(params)
	log.Printf("  🔍 Loading %s", url)
	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}

	if page.TryClick(cookieButton) {
		log.Println("  🍪 Cookie banner dismissed")
	}

	//header count is advisory only; the stopping condition never uses it
	if total, err := c.totalOffers(page); err != nil {
		log.Printf("  ⚠️ Could not parse offer count from header: %v", err)
	} else {
		log.Printf("  📊 Header reports %s offers", humanize.Comma(int64(total)))
	}

	seen := collector.NewKeyedSet()
	fragments, err := page.Snapshot(itemSelector, itemKeyAttr)
	if err != nil {
		return "", fmt.Errorf("snapshot offer items: %w", err)
	}
	seen.Merge(fragments)

	staleRounds := 0
	lastCount := seen.Len()
	lastMax := seen.MaxKey()

	converged := false
	round := 0
	for ; round < c.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		//scrolling can outpace rendering; never snapshot an empty race window
		if err := page.WaitFor(itemSelector); err != nil {
			return "", fmt.Errorf("offer list never rendered: %w", err)
		}

		fragments, err := page.Snapshot(itemSelector, itemKeyAttr)
		if err != nil {
			return "", fmt.Errorf("snapshot offer items: %w", err)
		}
		seen.Merge(fragments)

		count, maxKey := seen.Len(), seen.MaxKey()

		//late low-index items raise the count without raising the max key;
		//virtualized lists that evict low indices raise the max key without
		//raising the count, so either signal counts as progress
		if count > lastCount || maxKey > lastMax {
			staleRounds = 0
			log.Printf("    📦 %s offers observed (max index %d)", humanize.Comma(int64(count)), maxKey)
		} else {
			staleRounds++
		}
		if staleRounds >= c.maxStaleRounds {
			converged = true
			break
		}

		lastCount, lastMax = count, maxKey

		if err := page.ScrollBy(0, scrollStep); err != nil {
			return "", fmt.Errorf("scroll viewport: %w", err)
		}
		time.Sleep(c.settle)
	}

	if converged {
		log.Printf("  🏁 Converged after %d rounds: %s offers collected", round+1, humanize.Comma(int64(seen.Len())))
	} else {
		log.Printf("  🏁 Round cap reached (%d rounds): %s offers collected", c.maxRounds, humanize.Comma(int64(seen.Len())))
	}

	return seen.Document(), nil
}

func (c *Collector) totalOffers(page browser.Page) (int, error) {
	text, err := page.Text(offersHeader)
	if err != nil {
		return 0, err
	}
	return collector.ParseOfferCount(text)
}
