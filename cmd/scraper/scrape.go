package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"go-jobboard-automation/internal/collector"
	"go-jobboard-automation/internal/config"
	"go-jobboard-automation/internal/notify"
	"go-jobboard-automation/internal/session"
	"go-jobboard-automation/internal/ui"
)

//one collection run must finish inside this window
const scrapeTimeout = 10 * time.Minute

func newScrapeCmd(root *rootOptions) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Collect raw listing markup for one site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(root.configPath)
			flags.apply(cmd, cfg)
			ui.PrintBanner(root.silence)

			reporter := buildReporter(cfg)
			if err := runScrape(cmd.Context(), cfg, reporter); err != nil {
				return err
			}

			if reporter != nil {
				status := fmt.Sprintf("✅ <b>%s</b> collection finished (%s / %s)", cfg.Site, cfg.City, cfg.Experience)
				if err := reporter.SendMessage(status); err != nil {
					log.Printf("⚠️ Failed to send status to Telegram: %v", err)
				}
			}
			return nil
		},
	}

	addSearchFlags(cmd, flags)
	return cmd
}

func runScrape(ctx context.Context, cfg *config.Config, reporter *notify.Reporter) error {
	ctx, cancel := context.WithTimeout(ctx, scrapeTimeout)
	defer cancel()

	log.Println("🚀 Starting job-board collection...")
	sess, err := session.New(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	params := collector.SearchParams{
		City:       cfg.City,
		Experience: cfg.Experience,
		WithSalary: cfg.WithSalary,
	}
	if _, err := sess.Run(ctx, collector.Site(cfg.Site), params); err != nil {
		if reporter != nil {
			if sendErr := reporter.SendError(err); sendErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
			}
		}
		return err
	}

	log.Println("🏁 Collection finished.")
	return nil
}
