// Define an interface for all site collectors
// Ensure consistency

package collector

import (
	"context"

	"go-jobboard-automation/internal/browser"
)

// Site identifies one supported job board.
type Site string

const (
	SiteJustJoinIT Site = "justjoinit"
	SitePracujPL   Site = "pracujplit"
)

// Round-loop bounds shared by every collector. MaxRounds is the hard cap
// on browser-driving iterations; MaxStaleRounds is how many consecutive
// no-progress rounds the scroll collector tolerates before declaring
// convergence.
const (
	DefaultMaxRounds      = 400
	DefaultMaxStaleRounds = 5
)

// SearchParams fully determine the listing URL for one collection run.
// Immutable per call.
type SearchParams struct {
	City       string
	Experience string
	WithSalary bool
}

// Collector defines the interface all site collectors must implement.
type Collector interface {
	// Collect drives page until the full listing for params has been
	// observed and returns the merged raw markup. An empty result is an
	// empty wrapper element, not an error.
	Collect(ctx context.Context, page browser.Page, params SearchParams) (string, error)

	// Site is the board this collector targets.
	Site() Site
}
