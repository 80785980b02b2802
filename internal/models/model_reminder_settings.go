package models

import "time"

// ReminderSettings is the per-user reminder configuration. It is loaded
// at startup and mutable via the settings endpoint; every change
// re-triggers a dispatch run for the user.
type ReminderSettings struct {
	ID     string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	// RecipientEmail receives the reminder messages.
	RecipientEmail string `gorm:"column:recipient_email;type:varchar(255)" json:"recipient_email"`
	// LeadTimeDays is the number of days before the due date at which a
	// reminder fires. The dispatcher requires an exact match. Range 1-7.
	LeadTimeDays int `gorm:"column:lead_time_days;not null;default:3" json:"lead_time_days"`
	// ResendAPIKey is the credential for the outbound email API.
	ResendAPIKey string    `gorm:"column:resend_api_key;type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ReminderSettings) TableName() string {
	return "reminder_settings"
}

// Configured reports whether the settings carry enough data to send.
// A dispatch run is a no-op otherwise.
func (s *ReminderSettings) Configured() bool {
	return s != nil && s.RecipientEmail != "" && s.ResendAPIKey != ""
}
