package models

import (
	"time"

	"github.com/remindyoursubs/subtrack/pkg/types"
)

// PaymentAlert is a card-expiry warning that stays visible until the
// user acknowledges it. The scan dedups per method and type inside a
// short window so repeated checks do not pile up duplicates.
type PaymentAlert struct {
	ID              string                 `gorm:"column:id;type:uuid;primary_key" json:"id"`
	PaymentMethodID string                 `gorm:"column:payment_method_id;type:uuid;index;not null" json:"payment_method_id"`
	UserID          string                 `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Type            types.PaymentAlertType `gorm:"column:alert_type;type:varchar(32);not null" json:"alert_type"`
	Message         string                 `gorm:"column:message;type:text" json:"message"`
	// DaysUntilExpiry at the time the alert fired; negative once expired.
	DaysUntilExpiry int        `gorm:"column:days_until_expiry" json:"days_until_expiry"`
	TriggeredAt     time.Time  `gorm:"column:triggered_at" json:"triggered_at"`
	Acknowledged    bool       `gorm:"column:is_acknowledged;not null;default:false" json:"is_acknowledged"`
	AcknowledgedAt  *time.Time `gorm:"column:acknowledged_at" json:"acknowledged_at,omitempty"`
}

func (PaymentAlert) TableName() string {
	return "payment_alert"
}
