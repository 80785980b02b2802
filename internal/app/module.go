package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/remindyoursubs/subtrack/internal/app/api/server"
	"github.com/remindyoursubs/subtrack/internal/app/service/auth"
	"github.com/remindyoursubs/subtrack/internal/app/service/paymentmethod"
	"github.com/remindyoursubs/subtrack/internal/app/service/reminder"
	"github.com/remindyoursubs/subtrack/internal/app/service/settings"
	"github.com/remindyoursubs/subtrack/internal/app/service/statistics"
	"github.com/remindyoursubs/subtrack/internal/app/service/subscription"
	"github.com/remindyoursubs/subtrack/internal/platform/db"
	"github.com/remindyoursubs/subtrack/internal/platform/resend"
	"github.com/remindyoursubs/subtrack/pkg/config"
	"github.com/remindyoursubs/subtrack/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	resend.Module,
	server.Module,
	auth.Module,
	subscription.Module,
	settings.Module,
	reminder.Module,
	paymentmethod.Module,
	statistics.Module,
)
