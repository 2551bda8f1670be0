package main

import (
	"log"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"go-jobboard-automation/internal/collector"
	"go-jobboard-automation/internal/config"
	"go-jobboard-automation/internal/extract"
	"go-jobboard-automation/internal/notify"
	"go-jobboard-automation/internal/ui"
)

const previewLimit = 10

func newExtractCmd(root *rootOptions) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract salary fields from the newest raw collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(root.configPath)
			flags.apply(cmd, cfg)
			ui.PrintBanner(root.silence)

			return runExtract(cfg, buildReporter(cfg))
		},
	}

	addSearchFlags(cmd, flags)
	return cmd
}

func runExtract(cfg *config.Config, reporter *notify.Reporter) error {
	csvPath, records, err := extract.Run(
		collector.Site(cfg.Site),
		cfg.RawDataDir,
		cfg.StagingDataDir,
		cfg.City,
		cfg.Experience,
	)
	if err != nil {
		if reporter != nil {
			if sendErr := reporter.SendError(err); sendErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
			}
		}
		return err
	}

	log.Printf("📊 Extracted %s records to %s", humanize.Comma(int64(len(records))), csvPath)
	ui.PreviewRecords(records, previewLimit)

	if reporter != nil {
		if err := reporter.SendRunSummary(cfg.Site, cfg.City, cfg.Experience, len(records), csvPath); err != nil {
			log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
		}
	}
	return nil
}
