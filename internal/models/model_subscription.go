package models

import (
	"time"

	"gorm.io/datatypes"
)

// Subscription is a recurring bill tracked for a user. Billing cadence is
// a day-of-month (1-31) that recurs monthly; nothing has to advance it
// after a cycle fires.
type Subscription struct {
	ID     string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Name   string `gorm:"column:name;type:varchar(128);not null" json:"name"`
	// Price in the smallest currency unit (rupiah).
	Price int64 `gorm:"column:price;not null" json:"price"`
	// BillingDay is the recurring day-of-month, 1-31. Days 29-31 overflow
	// into the next month in shorter months (time.Date normalization).
	BillingDay int  `gorm:"column:billing_day;not null" json:"billing_day"`
	IsActive   bool `gorm:"column:is_active;not null;default:true" json:"is_active"`
	// ReminderEnabled gates reminder dispatch for this subscription.
	ReminderEnabled bool `gorm:"column:reminder_enabled;not null;default:true" json:"reminder_enabled"`
	// LastReminderSent is the calendar date (YYYY-MM-DD) of the last
	// successful reminder. It is the at-most-once-per-day idempotency
	// marker and only advances on send success.
	LastReminderSent *string `gorm:"column:last_reminder_sent;type:varchar(10);default:null" json:"last_reminder_sent"`
	// PaymentMethodID links the bill to a stored payment method; nil when
	// none is assigned. Deleting the method clears the link.
	PaymentMethodID *string `gorm:"column:payment_method_id;type:uuid;index;default:null" json:"payment_method_id,omitempty"`
	// Extra stores additional JSON data (for example: category, notes).
	Extra datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	// CreatedAt is managed by GORM and records the creation time.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is managed by GORM and records the update time.
	UpdatedAt time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscription"
}

// ReminderEligible reports whether a dispatch run may consider this
// subscription on the given date (YYYY-MM-DD). The lead-time match is
// checked separately by the dispatcher.
func (s *Subscription) ReminderEligible(today string) bool {
	return s != nil &&
		s.IsActive &&
		s.ReminderEnabled &&
		(s.LastReminderSent == nil || *s.LastReminderSent != today)
}
