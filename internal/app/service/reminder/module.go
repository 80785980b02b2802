package reminder

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/remindyoursubs/subtrack/pkg/types"
)

// registerStartupRun triggers the initial dispatch pass once the app is
// up. This and explicit re-triggers (settings change, manual check) are
// the only ways a run starts.
func registerStartupRun(lc fx.Lifecycle, log *zap.SugaredLogger, s *Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("running startup reminder dispatch")
				s.RunAll(context.Background(), types.ReminderTriggerStartup)
			}()
			return nil
		},
	})
}

var Module = fx.Options(
	fx.Provide(NewService),
	fx.Invoke(registerStartupRun),
)
