package main

import (
	"log"

	"github.com/spf13/cobra"

	"go-jobboard-automation/internal/config"
	"go-jobboard-automation/internal/notify"
)

type rootOptions struct {
	configPath string
	silence    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "scraper",
		Short: "Collect and extract job-board listings",
		Long: "Drives a headless browser to exhaustively collect job-board listing pages,\n" +
			"stores the raw markup under a dated layout, and extracts salary fields\n" +
			"into CSV files.",
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Path to the YAML config")
	cmd.PersistentFlags().BoolVar(&opts.silence, "silence", false, "Suppress the banner")

	cmd.AddCommand(
		newScrapeCmd(opts),
		newExtractCmd(opts),
		newRunCmd(opts),
	)
	return cmd
}

// searchFlags are the per-run overrides of the configured search
// parameters.
type searchFlags struct {
	site       string
	city       string
	experience string
	withSalary bool
}

func addSearchFlags(cmd *cobra.Command, flags *searchFlags) {
	cmd.Flags().StringVar(&flags.site, "site", "", "Site to collect (justjoinit, pracujplit)")
	cmd.Flags().StringVar(&flags.city, "city", "", "City/region code")
	cmd.Flags().StringVar(&flags.experience, "experience", "", "Experience-level code")
	cmd.Flags().BoolVar(&flags.withSalary, "with-salary", true, "Only offers with a published salary")
}

func (f *searchFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if f.site != "" {
		cfg.Site = f.site
	}
	if f.city != "" {
		cfg.City = f.city
	}
	if f.experience != "" {
		cfg.Experience = f.experience
	}
	if cmd.Flags().Changed("with-salary") {
		cfg.WithSalary = f.withSalary
	}
}

func buildReporter(cfg *config.Config) *notify.Reporter {
	reporter, err := notify.NewReporter(cfg)
	if err != nil {
		log.Printf("⚠️ Telegram reporter unavailable: %v", err)
		return nil
	}
	if reporter == nil {
		log.Println("ℹ️ Telegram not configured, skipping notifications.")
		return nil
	}
	log.Println("🤖 Telegram reporter initialized.")
	return reporter
}
