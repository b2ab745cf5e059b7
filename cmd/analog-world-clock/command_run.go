package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/k-yomo/analog-world-clock/clockface"
	"github.com/k-yomo/analog-world-clock/pkg/canvas"
	"github.com/k-yomo/analog-world-clock/pkg/clock"
	"github.com/k-yomo/analog-world-clock/pkg/tzdb"
	"github.com/k-yomo/analog-world-clock/worldclock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const gridPadding = 10

type runOptions struct {
	*rootOptions
	output string
	once   bool
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render the clocks to an SVG file every second",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClocks(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "SVG file to write (overrides the config file)")
	cmd.Flags().BoolVar(&opts.once, "once", false, "render a single tick and exit")
	return cmd
}

func runClocks(cmd *cobra.Command, opts *runOptions) error {
	logger, err := newLogger(opts.debug)
	if err != nil {
		return fmt.Errorf("initialize zap: %w", err)
	}
	defer logger.Sync()

	config, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.output != "" {
		config.Output = opts.output
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := tzdb.NewSystem()
	if err := db.Preload(ctx, append(append([]string{}, config.Timezones...), config.BackupTimezones...)); err != nil {
		return err
	}

	grid := canvas.NewGrid(canvas.GridConfig{
		Columns:    config.Columns,
		CellWidth:  config.Diameter,
		CellHeight: config.Diameter + clockface.LabelHeight,
		Padding:    gridPadding,
		Title:      config.Title,
		Path:       config.Output,
	})
	worldClock, err := worldclock.New(&worldclock.Config{
		Database: db,
		Surface:  grid,
		Logger:   logger,
		Timezones: worldclock.TimezoneConfig{
			Desired: config.Timezones,
			Backups: config.BackupTimezones,
			Count:   config.Count,
		},
		Diameter: config.Diameter,
		Interval: config.Interval,
	})
	if err != nil {
		return fmt.Errorf("initialize world clock: %w", err)
	}

	if opts.once {
		result := worldClock.Tick(clock.NowUTC())
		if result.FlushErr != nil {
			return fmt.Errorf("write %s: %w", config.Output, result.FlushErr)
		}
		logger.Info("rendered clocks",
			zap.String("output", config.Output),
			zap.Int("updated", result.Updated),
			zap.Int("failed", len(result.Failures)),
		)
		return nil
	}
	return worldClock.Run(ctx)
}
