package main

import (
	"fmt"

	"github.com/k-yomo/analog-world-clock/pkg/tzdb"
	"github.com/k-yomo/analog-world-clock/tzset"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
)

func newZonesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "Resolve and print the timezone set without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(root.debug)
			if err != nil {
				return fmt.Errorf("initialize zap: %w", err)
			}
			defer logger.Sync()

			config, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			set := tzset.Resolve(tzdb.NewSystem(), config.Timezones, config.BackupTimezones, config.Count, logger)
			printer := pp.New()
			printer.SetOutput(cmd.OutOrStdout())
			printer.SetColoringEnabled(false)
			_, err = printer.Println(set)
			return err
		},
	}
}
