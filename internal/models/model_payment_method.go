package models

import (
	"fmt"
	"time"

	"github.com/remindyoursubs/subtrack/pkg/types"
)

// PaymentMethod is a stored card, wallet or bank account a user pays
// subscriptions with. Expiry is month-granular; a method without an
// expiry (wallets, bank accounts) never expires.
type PaymentMethod struct {
	ID     string                  `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID string                  `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Type   types.PaymentMethodType `gorm:"column:type;type:varchar(32);not null" json:"type"`
	// Provider is the issuer or network, e.g. Visa, GoPay, BCA.
	Provider       string `gorm:"column:provider;type:varchar(64)" json:"provider"`
	LastFourDigits string `gorm:"column:last_four_digits;type:varchar(4)" json:"last_four_digits"`
	Nickname       string `gorm:"column:nickname;type:varchar(64)" json:"nickname"`
	ExpiryMonth    *int   `gorm:"column:expiry_month" json:"expiry_month,omitempty"`
	ExpiryYear     *int   `gorm:"column:expiry_year" json:"expiry_year,omitempty"`
	// IsDefault is unique per user; setting it unsets the previous default.
	IsDefault bool      `gorm:"column:is_default;not null;default:false" json:"is_default"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_method"
}

// ExpiryDate returns the last day of the expiry month at midnight, local
// time. The second return is false when the method carries no expiry.
func (m *PaymentMethod) ExpiryDate() (time.Time, bool) {
	if m == nil || m.ExpiryMonth == nil || m.ExpiryYear == nil {
		return time.Time{}, false
	}
	// Day 0 of the following month normalizes to the month's last day.
	return time.Date(*m.ExpiryYear, time.Month(*m.ExpiryMonth)+1, 0, 0, 0, 0, 0, time.Local), true
}

// MaskedNumber renders the card for display, e.g. "**** **** **** 1234".
func (m *PaymentMethod) MaskedNumber() string {
	if m == nil || m.LastFourDigits == "" {
		return "N/A"
	}
	return "**** **** **** " + m.LastFourDigits
}

// FormattedExpiry renders the expiry as "MM/YYYY", or "" without one.
func (m *PaymentMethod) FormattedExpiry() string {
	if m == nil || m.ExpiryMonth == nil || m.ExpiryYear == nil {
		return ""
	}
	return fmt.Sprintf("%02d/%d", *m.ExpiryMonth, *m.ExpiryYear)
}
