package paymentmethod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/tool"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

const (
	expiringSoonWindowDays = 30
	// alertDedupWindowDays keeps repeated scans from piling up duplicate
	// alerts of the same type for the same method.
	alertDedupWindowDays = 7
)

// CheckAlerts scans the user's active methods and records an EXPIRED or
// EXPIRING_SOON alert for each one that qualifies, unless an alert of
// the same type fired within the dedup window.
func (s *Service) CheckAlerts(ctx context.Context, userID string) error {
	methods, err := s.loadActive(ctx, userID)
	if err != nil {
		return err
	}

	today := time.Now()
	created := 0
	for _, pm := range methods {
		daysLeft, ok := daysUntilExpiry(pm, today)
		if !ok {
			continue
		}

		var alertType types.PaymentAlertType
		var message string
		switch {
		case daysLeft < 0:
			alertType = types.PaymentAlertTypeExpired
			message = fmt.Sprintf("Your %s card ending in %s has expired", pm.Provider, pm.LastFourDigits)
		case daysLeft < expiringSoonWindowDays:
			alertType = types.PaymentAlertTypeExpiringSoon
			message = fmt.Sprintf("Your %s card ending in %s expires in %d days", pm.Provider, pm.LastFourDigits, daysLeft)
		default:
			continue
		}

		existing, err := s.alertsForMethod(ctx, pm.ID)
		if err != nil {
			return err
		}
		if !needsAlert(existing, alertType, today) {
			continue
		}

		alert := &models.PaymentAlert{
			ID:              tool.GenerateUUIDV7(),
			PaymentMethodID: pm.ID,
			UserID:          userID,
			Type:            alertType,
			Message:         message,
			DaysUntilExpiry: daysLeft,
			TriggeredAt:     today,
		}
		if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
			return fmt.Errorf("failed to create payment alert: %w", err)
		}
		created++
	}

	if created > 0 {
		logctx.FromCtx(ctx, s.log).Infow("payment alerts created", "user_id", userID, "count", created)
	}
	return nil
}

// needsAlert reports whether no alert of the given type fired for the
// method within the dedup window.
func needsAlert(existing []*models.PaymentAlert, alertType types.PaymentAlertType, now time.Time) bool {
	cutoff := now.AddDate(0, 0, -alertDedupWindowDays)
	for _, alert := range existing {
		if alert.Type == alertType && alert.TriggeredAt.After(cutoff) {
			return false
		}
	}
	return true
}

func (s *Service) alertsForMethod(ctx context.Context, paymentMethodID string) ([]*models.PaymentAlert, error) {
	var alerts []*models.PaymentAlert
	err := s.db.WithContext(ctx).Where("payment_method_id = ?", paymentMethodID).Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load payment alerts: %w", err)
	}
	return alerts, nil
}

// Alerts returns the user's alerts, newest first. With unacknowledgedOnly
// it filters to those still awaiting an acknowledge.
func (s *Service) Alerts(ctx context.Context, userID string, unacknowledgedOnly bool) ([]*models.PaymentAlert, error) {
	tx := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if unacknowledgedOnly {
		tx = tx.Where("is_acknowledged = ?", false)
	}

	var alerts []*models.PaymentAlert
	if err := tx.Order("triggered_at desc").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment alerts: %w", err)
	}
	return alerts, nil
}

// Acknowledge marks one alert as handled. Acknowledging twice is a no-op.
func (s *Service) Acknowledge(ctx context.Context, userID, alertID string) (*models.PaymentAlert, error) {
	var alert models.PaymentAlert
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", alertID, userID).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment alert: %w", err)
	}

	if alert.Acknowledged {
		return &alert, nil
	}
	now := time.Now()
	alert.Acknowledged = true
	alert.AcknowledgedAt = &now
	if err := s.db.WithContext(ctx).Save(&alert).Error; err != nil {
		return nil, fmt.Errorf("failed to acknowledge payment alert: %w", err)
	}
	return &alert, nil
}
