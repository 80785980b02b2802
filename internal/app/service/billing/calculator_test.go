package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntilBilling(t *testing.T) {
	tests := []struct {
		name       string
		today      time.Time
		billingDay int
		want       int
	}{
		{name: "due today", today: date(2024, time.March, 10), billingDay: 10, want: 0},
		{name: "due tomorrow", today: date(2024, time.March, 9), billingDay: 10, want: 1},
		{name: "later this month", today: date(2024, time.March, 1), billingDay: 15, want: 14},
		{name: "passed, rolls to next month", today: date(2024, time.March, 11), billingDay: 10, want: 30},
		{name: "jan 31 vs day 15 rolls to feb", today: date(2024, time.January, 31), billingDay: 15, want: 15},
		{name: "december rolls into january", today: date(2024, time.December, 20), billingDay: 5, want: 16},
		{name: "time of day is stripped", today: time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC), billingDay: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilBilling(tt.today, tt.billingDay))
		})
	}
}

func TestDaysUntilBilling_NeverNegative(t *testing.T) {
	today := date(2024, time.March, 15)
	for day := 1; day <= 31; day++ {
		got := DaysUntilBilling(today, day)
		assert.GreaterOrEqual(t, got, 0, "billing day %d", day)
	}
}

func TestDaysUntilBilling_ShortMonthOverflow(t *testing.T) {
	// Day 31 checked on Feb 1 2024: time.Date(2024, Feb, 31) normalizes
	// to Mar 2, so the count runs to that date.
	got := DaysUntilBilling(date(2024, time.February, 1), 31)
	assert.Equal(t, 30, got)

	// Day 30 on Feb 29 (leap day): 29 < 30, candidate Feb 30 -> Mar 1.
	got = DaysUntilBilling(date(2024, time.February, 29), 30)
	assert.Equal(t, 1, got)
}

func TestDaysUntilDate(t *testing.T) {
	today := date(2024, time.June, 10)

	assert.Equal(t, 0, DaysUntilDate(today, date(2024, time.June, 10)))
	assert.Equal(t, 5, DaysUntilDate(today, date(2024, time.June, 15)))
	// Overdue dates stay negative; nothing advances them.
	assert.Equal(t, -3, DaysUntilDate(today, date(2024, time.June, 7)))
	// Truncation to midnight on both sides.
	assert.Equal(t, 1, DaysUntilDate(
		time.Date(2024, time.June, 10, 22, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 11, 1, 0, 0, 0, time.UTC),
	))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		daysLeft     int
		wantLabel    string
		wantSeverity Severity
	}{
		{-10, "overdue", SeverityUrgent},
		{-1, "overdue", SeverityUrgent},
		{0, "due today", SeverityUrgent},
		{1, "tomorrow", SeverityUrgent},
		{2, "2 days left", SeverityUrgent},
		{3, "3 days left", SeverityUrgent},
		{4, "4 days left", SeverityWarning},
		{7, "7 days left", SeverityWarning},
		{8, "paid this month", SeveritySafe},
		{100, "paid this month", SeveritySafe},
	}

	for _, tt := range tests {
		got := Classify(tt.daysLeft)
		assert.Equal(t, tt.wantLabel, got.Label, "daysLeft=%d", tt.daysLeft)
		assert.Equal(t, tt.wantSeverity, got.Severity, "daysLeft=%d", tt.daysLeft)
	}
}
