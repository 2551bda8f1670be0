// Define the driver surface the collectors consume
// Keep it narrow so collection loops can be tested without a browser

package browser

// Fragment is one snapshotted DOM node: the value of its key attribute
// (empty when no key attribute was requested) and its full outer markup.
type Fragment struct {
	Key  string
	HTML string
}

// Page is the minimal browser surface a collection loop needs.
// Best-effort actions (TryClick) never return an error; everything else
// propagates driver failures to the caller.
type Page interface {
	// Navigate loads url and returns once the DOM is parsed.
	Navigate(url string) error

	// WaitFor blocks until a node matching selector is attached,
	// bounded by the page wait timeout.
	WaitFor(selector string) error

	// Snapshot returns attribute+markup for every node matching selector,
	// in DOM order. keyAttr may be empty when items carry no key.
	Snapshot(selector, keyAttr string) ([]Fragment, error)

	// Text returns the text content of the first match, bounded by the
	// page wait timeout.
	Text(selector string) (string, error)

	// TryClick clicks the first match if possible. Failures are swallowed.
	TryClick(selector string) bool

	// Click clicks the first match; failures propagate.
	Click(selector string) error

	// IsVisible reports whether the first match is displayed right now.
	// An absent element is not displayed, not an error.
	IsVisible(selector string) (bool, error)

	ScrollIntoView(selector string) error
	ScrollBy(dx, dy int) error
}
