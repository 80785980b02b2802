package models

import "time"

// ReminderLog records one outbound reminder attempt, success or failure.
// Failures stay visible here even though the dispatcher retries them
// silently on later runs.
type ReminderLog struct {
	ID             string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID         string `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	SubscriptionID string `gorm:"column:subscription_id;type:uuid;index;not null" json:"subscription_id"`
	Name           string `gorm:"column:name;type:varchar(128)" json:"name"`
	Recipient      string `gorm:"column:recipient;type:varchar(255)" json:"recipient"`
	// DaysLeft at the time of the attempt; equals the configured lead time.
	DaysLeft int  `gorm:"column:days_left" json:"days_left"`
	Success  bool `gorm:"column:success;not null" json:"success"`
	// Error is empty on success.
	Error  string    `gorm:"column:error;type:text" json:"error,omitempty"`
	SentAt time.Time `gorm:"column:sent_at" json:"sent_at"`
	// Read tracks whether the user has seen this entry in the log view.
	Read      bool       `gorm:"column:is_read;not null;default:false" json:"is_read"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (ReminderLog) TableName() string {
	return "reminder_log"
}
