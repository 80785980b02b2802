package statistics

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/remindyoursubs/subtrack/pkg/config"
)

// registerSnapshotCron schedules the daily analytics snapshot. This is
// the only timer in the process; reminder dispatch stays event-driven.
func registerSnapshotCron(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, s *Service) error {
	engine := cron.New(cron.WithLocation(time.Local))

	_, err := engine.AddFunc(cfg.Statistics.SnapshotCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.SnapshotDaily(ctx, time.Now()); err != nil {
			log.Errorf("daily snapshot job failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			engine.Start()
			log.Infow("snapshot cron started", "spec", cfg.Statistics.SnapshotCron)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := engine.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(registerSnapshotCron),
)
