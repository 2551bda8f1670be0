// Package session owns one browser lifecycle for a batch of collection
// runs and dispatches each run to the collector registered for its site.
package session

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go-jobboard-automation/internal/browser"
	"go-jobboard-automation/internal/collector"
	"go-jobboard-automation/internal/collector/justjoinit"
	"go-jobboard-automation/internal/collector/pracuj"
	"go-jobboard-automation/internal/config"
	"go-jobboard-automation/internal/datapath"
	"go-jobboard-automation/utils"
)

type Session struct {
	manager    *browser.Manager
	page       browser.Page
	collectors map[collector.Site]collector.Collector
	rawDir     string
}

// New launches the browser and registers the supported site collectors.
// Callers must Close the session on every exit path.
func New(cfg *config.Config) (*Session, error) {
	manager, err := browser.NewManager(cfg.Headless)
	if err != nil {
		return nil, fmt.Errorf("start browser: %w", err)
	}

	page, err := manager.NewPage(time.Duration(cfg.WaitTimeout) * time.Second)
	if err != nil {
		manager.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	s := newSession(page, registry(cfg), cfg.RawDataDir)
	s.manager = manager
	return s, nil
}

func registry(cfg *config.Config) map[collector.Site]collector.Collector {
	collectors := make(map[collector.Site]collector.Collector)
	for _, c := range []collector.Collector{
		justjoinit.New(cfg),
		pracuj.New(cfg),
	} {
		collectors[c.Site()] = c
	}
	return collectors
}

func newSession(page browser.Page, collectors map[collector.Site]collector.Collector, rawDir string) *Session {
	return &Session{
		page:       page,
		collectors: collectors,
		rawDir:     rawDir,
	}
}

// Run collects one site with the given parameters, persists the merged
// document under the raw data tree, and returns it. Nothing is written
// when collection fails.
func (s *Session) Run(ctx context.Context, site collector.Site, params collector.SearchParams) (string, error) {
	col, ok := s.collectors[site]
	if !ok {
		return "", fmt.Errorf("unsupported site %q", site)
	}

	log.Printf("▶️ Starting collection: %s (city=%s, experience=%s, salary=%t)", site, params.City, params.Experience, params.WithSalary)
	doc, err := col.Collect(ctx, s.page, params)
	if err != nil {
		if shooter, ok := s.page.(utils.Screenshotter); ok {
			utils.NewScreenShotDebugger().CaptureAndLog(shooter, fmt.Sprintf("%s-collect-failed", site), fmt.Sprintf("🚨 %s: collection failed", site))
		}
		return "", fmt.Errorf("collect %s: %w", site, err)
	}

	path, err := datapath.Build(s.rawDir, string(site), params.City, params.Experience, "html")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	log.Printf("✅ Collection saved to %s", path)
	return doc, nil
}

// Close releases the browser. Safe to call after a partial construction
// failure.
func (s *Session) Close() {
	if s.manager != nil {
		s.manager.Close()
	}
}
