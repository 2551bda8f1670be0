package main

import (
	"github.com/spf13/cobra"

	"go-jobboard-automation/internal/config"
	"go-jobboard-automation/internal/ui"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect and extract in one pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(root.configPath)
			flags.apply(cmd, cfg)
			ui.PrintBanner(root.silence)

			reporter := buildReporter(cfg)
			if err := runScrape(cmd.Context(), cfg, reporter); err != nil {
				return err
			}
			return runExtract(cfg, reporter)
		},
	}

	addSearchFlags(cmd, flags)
	return cmd
}
