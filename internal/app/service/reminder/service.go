package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	subsvc "github.com/remindyoursubs/subtrack/internal/app/service/subscription"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/internal/platform/resend"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/metrics"
	"github.com/remindyoursubs/subtrack/pkg/tool"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

// ErrLogNotFound is returned when a reminder log entry does not exist or
// belongs to another user.
var ErrLogNotFound = errors.New("reminder log entry not found")

// Service owns dispatch runs: it loads state, runs the pass, persists the
// notified batch and records every attempt in the reminder log.
type Service struct {
	db     *gorm.DB
	log    *zap.SugaredLogger
	mailer Mailer
	subSvc *subsvc.Service
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, client *resend.Client, subSvc *subsvc.Service) *Service {
	return &Service{db: db, log: log, mailer: client, subSvc: subSvc}
}

// RunAll runs a dispatch pass for every user with reminder settings.
// Per-user failures are isolated.
func (s *Service) RunAll(ctx context.Context, trigger types.ReminderTrigger) {
	var allSettings []*models.ReminderSettings
	if err := s.db.WithContext(ctx).Find(&allSettings).Error; err != nil {
		logctx.FromCtx(ctx, s.log).Errorf("failed to load reminder settings: %v", err)
		return
	}

	for _, settings := range allSettings {
		if err := s.RunForUser(ctx, trigger, settings.UserID); err != nil {
			logctx.FromCtx(ctx, s.log).Errorw("dispatch run failed", "user_id", settings.UserID, "err", err)
		}
	}
}

// RunForUser runs one dispatch pass for a single user.
func (s *Service) RunForUser(ctx context.Context, trigger types.ReminderTrigger, userID string) error {
	log := logctx.FromCtx(ctx, s.log).With("trigger", string(trigger), "user_id", userID)

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Configured() {
		log.Debugw("reminder settings missing or incomplete, nothing to do")
		return nil
	}

	// Stable input order: oldest first, matching insertion order.
	var subs []*models.Subscription
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&subs).Error; err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", err)
	}

	today := time.Now()
	notified, attempts := CheckAndSend(ctx, log, today, subs, settings, s.mailer)

	for _, attempt := range attempts {
		result := "success"
		errText := ""
		if attempt.Err != nil {
			result = "failure"
			errText = attempt.Err.Error()
		}
		metrics.ReminderSendTotal.WithLabelValues(result, string(trigger)).Inc()

		entry := &models.ReminderLog{
			ID:             tool.GenerateUUIDV7(),
			UserID:         userID,
			SubscriptionID: attempt.Subscription.ID,
			Name:           attempt.Subscription.Name,
			Recipient:      settings.RecipientEmail,
			DaysLeft:       attempt.DaysLeft,
			Success:        attempt.Err == nil,
			Error:          errText,
			SentAt:         today,
		}
		if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
			log.Errorf("failed to save reminder log: %v", err)
		}
	}

	// Persist only the idempotency marker for the notified batch.
	for _, sub := range notified {
		if err := s.db.WithContext(ctx).Model(&models.Subscription{}).
			Where("id = ?", sub.ID).
			Update("last_reminder_sent", *sub.LastReminderSent).Error; err != nil {
			log.Errorw("failed to persist last_reminder_sent", "subscription_id", sub.ID, "err", err)
			continue
		}
		s.subSvc.LogChange(ctx, types.SubscriptionChangeReasonReminderSent, nil, sub, datatypes.JSONMap{"trigger": string(trigger)})
	}

	if len(attempts) > 0 {
		log.Infow("dispatch run finished", "attempts", len(attempts), "notified", len(notified))
	}
	return nil
}

func (s *Service) loadSettings(ctx context.Context, userID string) (*models.ReminderSettings, error) {
	var settings models.ReminderSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder settings: %w", err)
	}
	return &settings, nil
}

// Logs returns the user's most recent reminder attempts. With unreadOnly
// it filters to entries the user has not opened yet.
func (s *Service) Logs(ctx context.Context, userID string, limit int, unreadOnly bool) ([]*models.ReminderLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	tx := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}

	var logs []*models.ReminderLog
	if err := tx.Order("sent_at desc").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminder logs: %w", err)
	}
	return logs, nil
}

// MarkRead flags one log entry as seen. Marking twice is a no-op.
func (s *Service) MarkRead(ctx context.Context, userID, logID string) (*models.ReminderLog, error) {
	var entry models.ReminderLog
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", logID, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder log: %w", err)
	}

	if entry.Read {
		return &entry, nil
	}
	now := time.Now()
	entry.Read = true
	entry.ReadAt = &now
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to mark reminder log read: %w", err)
	}
	return &entry, nil
}
