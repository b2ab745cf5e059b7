package worldclock

import (
	"context"
	"fmt"
	"time"

	"github.com/k-yomo/analog-world-clock/pkg/clock"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Run paints the grid once, then ticks every configured interval until ctx is done.
// Ticks never overlap: a slow tick delays the next one instead of skipping it.
func (w *WorldClock) Run(ctx context.Context) error {
	logger := cronLogger{logger: w.logger.Sugar()}
	scheduler := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.DelayIfStillRunning(logger)),
	)
	schedule := fmt.Sprintf("@every %s", w.config.Interval)
	if _, err := scheduler.AddFunc(schedule, func() { w.Tick(clock.NowUTC()) }); err != nil {
		return fmt.Errorf("schedule tick %q: %w", schedule, err)
	}

	w.Tick(clock.NowUTC())
	scheduler.Start()
	w.logger.Info("started clocks", zap.Int("clocks", len(w.clocks)), zap.Duration("interval", w.config.Interval))

	<-ctx.Done()
	<-scheduler.Stop().Done()
	w.logger.Info("stopped clocks")
	return nil
}

// cronLogger adapts zap to cron.Logger. Routine scheduler messages go to debug.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
