package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/tool"
)

// Service writes per-user daily snapshots of active subscription spend.
// The snapshots feed the monthly-trend analytics; without them the trend
// can only show the current flat total for every month.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// SnapshotDaily rolls up every user's active subscriptions for the given
// date. Re-running on the same date upserts instead of duplicating, so
// the job is idempotent per user+date.
func (s *Service) SnapshotDaily(ctx context.Context, snapshotDate time.Time) error {
	var subs []*models.Subscription
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&subs).Error; err != nil {
		return fmt.Errorf("failed to load active subscriptions: %w", err)
	}

	date := snapshotDate.Format(time.DateOnly)
	byUser := lo.GroupBy(subs, func(sub *models.Subscription) string { return sub.UserID })

	for userID, userSubs := range byUser {
		snap := &models.SubscriptionDailySnapshot{
			ID:                tool.GenerateUUIDV7(),
			UserID:            userID,
			SnapshotDate:      date,
			TotalExpense:      lo.SumBy(userSubs, func(sub *models.Subscription) int64 { return sub.Price }),
			ActiveCount:       len(userSubs),
			SnapshotCreatedAt: time.Now(),
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "snapshot_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_expense", "active_count", "snapshot_created_at"}),
		}).Create(snap).Error
		if err != nil {
			logctx.FromCtx(ctx, s.log).Errorw("failed to save daily snapshot", "user_id", userID, "err", err)
			continue
		}
	}

	logctx.FromCtx(ctx, s.log).Infow("daily snapshots written", "date", date, "users", len(byUser))
	return nil
}
