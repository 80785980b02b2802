package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/remindyoursubs/subtrack/internal/models"
	cfgpkg "github.com/remindyoursubs/subtrack/pkg/config"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/tool"
)

// Service owns per-user reminder settings. Re-triggering a dispatch run
// after an update is the handler's job: the handler calls the reminder
// service explicitly, keeping this package free of a dependency cycle.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	cfg *cfgpkg.Config
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, cfg *cfgpkg.Config) *Service {
	return &Service{db: db, log: log, cfg: cfg}
}

type UpdateSettingsRequest struct {
	RecipientEmail string `json:"recipient_email"`
	LeadTimeDays   int    `json:"lead_time_days"`
	// ResendAPIKey is write-only; empty means "keep the stored key".
	ResendAPIKey string `json:"resend_api_key"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if r.RecipientEmail == "" || !strings.Contains(r.RecipientEmail, "@") {
		return fmt.Errorf("recipient_email must be a valid address")
	}
	if r.LeadTimeDays < 1 || r.LeadTimeDays > 7 {
		return fmt.Errorf("lead_time_days must be in 1-7")
	}
	return nil
}

// Get returns the user's settings, creating a default row on first read
// so the settings form always has something to show.
func (s *Service) Get(ctx context.Context, userID string) (*models.ReminderSettings, error) {
	var settings models.ReminderSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.ReminderSettings{
			ID:           tool.GenerateUUIDV7(),
			UserID:       userID,
			LeadTimeDays: s.cfg.Reminder.DefaultLeadDays,
		}
		if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &settings, nil
}

// Update persists changed settings and returns the new state. Callers
// re-trigger a dispatch run with it.
func (s *Service) Update(ctx context.Context, userID string, req *UpdateSettingsRequest) (*models.ReminderSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.RecipientEmail = req.RecipientEmail
	settings.LeadTimeDays = req.LeadTimeDays
	if req.ResendAPIKey != "" {
		settings.ResendAPIKey = req.ResendAPIKey
	}

	if err := s.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("reminder settings updated", "user_id", userID, "lead_time_days", settings.LeadTimeDays)
	return settings, nil
}
