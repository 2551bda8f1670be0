package collector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d[\d\s]*`)

// ParseOfferCount pulls the offer total out of a human-facing header like
// "Praca IT: 2 394 offers". The last digit run wins and grouping spaces
// inside it are dropped. The value is advisory only; callers log parse
// failures and carry on.
func ParseOfferCount(text string) (int, error) {
	normalized := strings.ReplaceAll(text, "\u00a0", " ")
	runs := digitRun.FindAllString(normalized, -1)
	if len(runs) == 0 {
		return 0, fmt.Errorf("no digits in %q", text)
	}

	last := strings.ReplaceAll(strings.TrimSpace(runs[len(runs)-1]), " ", "")
	n, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("offer count %q: %w", last, err)
	}
	return n, nil
}
