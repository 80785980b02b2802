package models

import "time"

// SubscriptionDailySnapshot is a per-user daily rollup of active
// subscription spend, written by the statistics cron job and read by the
// monthly-trend analytics.
type SubscriptionDailySnapshot struct {
	ID     string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_id_snapshot_date,priority:1" json:"user_id"`
	// SnapshotDate is the calendar date (YYYY-MM-DD) the rollup covers.
	SnapshotDate string `gorm:"column:snapshot_date;type:varchar(10);uniqueIndex:idx_user_id_snapshot_date,priority:2" json:"snapshot_date"`
	// TotalExpense is the summed price of active subscriptions that day.
	TotalExpense int64 `gorm:"column:total_expense;not null" json:"total_expense"`
	// ActiveCount is the number of active subscriptions that day.
	ActiveCount       int       `gorm:"column:active_count;not null" json:"active_count"`
	SnapshotCreatedAt time.Time `gorm:"column:snapshot_created_at" json:"snapshot_created_at"`
}

func (SubscriptionDailySnapshot) TableName() string {
	return "subscription_daily_snapshot"
}
