package reminder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/remindyoursubs/subtrack/internal/models"
)

// stubMailer records sends and fails for names listed in failFor.
type stubMailer struct {
	sent    []string
	failFor map[string]bool
}

func (m *stubMailer) Send(_ context.Context, _, _, subject, _ string) error {
	m.sent = append(m.sent, subject)
	for name, fail := range m.failFor {
		if fail && strings.Contains(subject, name) {
			return errors.New("send rejected")
		}
	}
	return nil
}

func testSettings(leadDays int) *models.ReminderSettings {
	return &models.ReminderSettings{
		UserID:         "user-1",
		RecipientEmail: "me@example.com",
		LeadTimeDays:   leadDays,
		ResendAPIKey:   "re_test",
	}
}

// testSub builds a subscription whose billing day is daysAhead days from
// today (today is mid-month so no rollover interferes).
func testSub(id, name string, today time.Time, daysAhead int) *models.Subscription {
	return &models.Subscription{
		ID:              id,
		UserID:          "user-1",
		Name:            name,
		Price:           150000,
		BillingDay:      today.Day() + daysAhead,
		IsActive:        true,
		ReminderEnabled: true,
	}
}

var testToday = time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

func TestCheckAndSend_ExactLeadMatchSendsOnce(t *testing.T) {
	mailer := &stubMailer{}
	sub := testSub("sub-1", "Netflix", testToday, 3)

	notified, attempts := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{sub}, testSettings(3), mailer)

	require.Len(t, mailer.sent, 1)
	require.Len(t, attempts, 1)
	require.Len(t, notified, 1)
	require.NotNil(t, notified[0].LastReminderSent)
	assert.Equal(t, "2024-06-10", *notified[0].LastReminderSent)
	assert.Equal(t, "sub-1", notified[0].ID)
}

func TestCheckAndSend_LeadMismatchSkips(t *testing.T) {
	mailer := &stubMailer{}
	// Due in 2 days, lead time 3: exact match required, not "<=".
	sub := testSub("sub-1", "Netflix", testToday, 2)

	notified, attempts := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{sub}, testSettings(3), mailer)

	assert.Empty(t, mailer.sent)
	assert.Empty(t, attempts)
	assert.Empty(t, notified)
}

func TestCheckAndSend_SkipsInactiveAndDisabled(t *testing.T) {
	mailer := &stubMailer{}
	inactive := testSub("sub-1", "Netflix", testToday, 3)
	inactive.IsActive = false
	disabled := testSub("sub-2", "Spotify", testToday, 3)
	disabled.ReminderEnabled = false

	notified, _ := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{inactive, disabled}, testSettings(3), mailer)

	assert.Empty(t, mailer.sent)
	assert.Empty(t, notified)
}

func TestCheckAndSend_IdempotentWithinDay(t *testing.T) {
	mailer := &stubMailer{}
	sub := testSub("sub-1", "Netflix", testToday, 3)
	settings := testSettings(3)

	first, _ := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{sub}, settings, mailer)
	require.Len(t, first, 1)
	require.Len(t, mailer.sent, 1)

	// Second run the same day, feeding the first run's output back in.
	second, attempts := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, first, settings, mailer)
	assert.Empty(t, second)
	assert.Empty(t, attempts)
	assert.Len(t, mailer.sent, 1, "no second send on the same day")
}

func TestCheckAndSend_FailureIsIsolatedAndRetriable(t *testing.T) {
	mailer := &stubMailer{failFor: map[string]bool{"Netflix": true}}
	failing := testSub("sub-1", "Netflix", testToday, 3)
	passing := testSub("sub-2", "Spotify", testToday, 3)

	notified, attempts := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{failing, passing}, testSettings(3), mailer)

	// Both were attempted; only the second made the batch.
	require.Len(t, attempts, 2)
	assert.Error(t, attempts[0].Err)
	assert.NoError(t, attempts[1].Err)
	require.Len(t, notified, 1)
	assert.Equal(t, "sub-2", notified[0].ID)

	// The failed one keeps a nil marker so the next run retries it.
	assert.Nil(t, failing.LastReminderSent)

	mailer.failFor["Netflix"] = false
	retried, _ := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{failing}, testSettings(3), mailer)
	require.Len(t, retried, 1)
	assert.Equal(t, "sub-1", retried[0].ID)
}

func TestCheckAndSend_UnconfiguredSettingsIsNoop(t *testing.T) {
	mailer := &stubMailer{}
	sub := testSub("sub-1", "Netflix", testToday, 3)
	settings := testSettings(3)
	settings.ResendAPIKey = ""

	notified, attempts := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{sub}, settings, mailer)

	assert.Empty(t, mailer.sent)
	assert.Empty(t, notified)
	assert.Empty(t, attempts)
}

func TestCheckAndSend_NextDayFiresAgain(t *testing.T) {
	mailer := &stubMailer{}
	settings := testSettings(0) // remind on the due day itself

	yesterday := "2024-06-09"
	sub := testSub("sub-1", "Netflix", testToday, 0)
	sub.LastReminderSent = &yesterday

	notified, _ := CheckAndSend(context.Background(), zap.NewNop().Sugar(), testToday, []*models.Subscription{sub}, settings, mailer)

	require.Len(t, notified, 1)
	assert.Equal(t, "2024-06-10", *notified[0].LastReminderSent)
}

func TestSubjectAndBody(t *testing.T) {
	sub := &models.Subscription{Name: "Netflix", Price: 1500000, BillingDay: 13}

	assert.Equal(t, "Reminder: Netflix is due in 3 days", subject(sub, 3))
	assert.Equal(t, "Reminder: Netflix is due today", subject(sub, 0))

	html := body(sub)
	assert.Contains(t, html, "Netflix")
	assert.Contains(t, html, "Rp 1.500.000")
	assert.Contains(t, html, "day <strong>13</strong>")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0", formatPrice(0))
	assert.Equal(t, "999", formatPrice(999))
	assert.Equal(t, "1.000", formatPrice(1000))
	assert.Equal(t, "150.000", formatPrice(150000))
	assert.Equal(t, "12.345.678", formatPrice(12345678))
}
