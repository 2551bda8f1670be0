package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Manager owns the playwright runtime and the single Chromium instance
// shared by all collection runs of one session.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewManager(headless bool) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}

	return &Manager{pw: pw, browser: browser}, nil
}

// NewPage opens a fresh tab sized for desktop layouts. waitTimeout bounds
// every blocking wait performed through the returned page.
func (m *Manager) NewPage(waitTimeout time.Duration) (*PlaywrightPage, error) {
	page, err := m.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}

	if err := page.SetViewportSize(1920, 1080); err != nil {
		return nil, fmt.Errorf("could not set viewport size: %w", err)
	}

	return &PlaywrightPage{
		page:    page,
		timeout: float64(waitTimeout.Milliseconds()),
	}, nil
}

func (m *Manager) Close() {
	if m.browser != nil {
		m.browser.Close()
	}
	if m.pw != nil {
		m.pw.Stop()
	}
}

// PlaywrightPage adapts one playwright page to the Page contract.
type PlaywrightPage struct {
	page    playwright.Page
	timeout float64 //ms
}

func (p *PlaywrightPage) Navigate(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	})
	return err
}

func (p *PlaywrightPage) WaitFor(selector string) error {
	_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(p.timeout),
	})
	return err
}

// Snapshot runs a single in-page script so attribute and markup come from
// the same render pass.
func (p *PlaywrightPage) Snapshot(selector, keyAttr string) ([]Fragment, error) {
	script := `([selector, keyAttr]) => Array.from(document.querySelectorAll(selector)).map(el => ({
		key: keyAttr ? (el.getAttribute(keyAttr) || "") : "",
		html: el.outerHTML,
	}))`

	raw, err := p.page.Evaluate(script, []string{selector, keyAttr})
	if err != nil {
		return nil, err
	}

	rows, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot result type %T", raw)
	}

	fragments := make([]Fragment, 0, len(rows))
	for _, row := range rows {
		fields, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		var f Fragment
		if key, ok := fields["key"].(string); ok {
			f.Key = key
		}
		if html, ok := fields["html"].(string); ok {
			f.HTML = html
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}

func (p *PlaywrightPage) Text(selector string) (string, error) {
	return p.page.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(p.timeout),
	})
}

func (p *PlaywrightPage) TryClick(selector string) bool {
	err := p.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(p.timeout),
	})
	return err == nil
}

func (p *PlaywrightPage) Click(selector string) error {
	return p.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(p.timeout),
	})
}

func (p *PlaywrightPage) IsVisible(selector string) (bool, error) {
	return p.page.Locator(selector).First().IsVisible()
}

func (p *PlaywrightPage) ScrollIntoView(selector string) error {
	return p.page.Locator(selector).First().ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(p.timeout),
	})
}

func (p *PlaywrightPage) ScrollBy(dx, dy int) error {
	_, err := p.page.Evaluate(fmt.Sprintf("window.scrollBy(%d, %d)", dx, dy))
	return err
}

// Screenshot captures the full page, used for failure diagnostics.
func (p *PlaywrightPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

func (p *PlaywrightPage) Close() error {
	return p.page.Close()
}
