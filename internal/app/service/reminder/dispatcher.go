package reminder

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/remindyoursubs/subtrack/internal/app/service/billing"
	"github.com/remindyoursubs/subtrack/internal/models"
)

// Mailer is the opaque outbound email collaborator. The dispatcher never
// retries or backs off itself; a failed send is simply attempted again on
// the next run because the idempotency marker does not advance.
type Mailer interface {
	Send(ctx context.Context, apiKey, to, subject, htmlBody string) error
}

// Attempt records one send attempt within a dispatch run.
type Attempt struct {
	Subscription *models.Subscription
	DaysLeft     int
	Err          error
}

// CheckAndSend walks subscriptions in input order and emails a reminder
// for each one whose days-until-billing exactly matches the configured
// lead time, unless one was already sent today. Sends are sequential and
// each is awaited before the next starts. On success the subscription's
// LastReminderSent is set to today and it joins the returned batch; the
// caller persists that batch. Failures are logged, recorded in the
// attempts, and isolated: they never stop the pass.
//
// A missing recipient or API key makes the whole run a no-op.
//
// There is no lock around the check-then-send-then-mark sequence; runs
// are event-driven and a double-send when two trigger events genuinely
// overlap is accepted.
func CheckAndSend(ctx context.Context, log *zap.SugaredLogger, today time.Time, subs []*models.Subscription, settings *models.ReminderSettings, mailer Mailer) (notified []*models.Subscription, attempts []Attempt) {
	if !settings.Configured() {
		log.Debugw("reminder settings incomplete, skipping run", "user_id", settings.UserID)
		return nil, nil
	}

	todayStr := today.Format(time.DateOnly)

	for _, sub := range subs {
		// Covers active/enabled and the once-per-calendar-day marker.
		if !sub.ReminderEligible(todayStr) {
			continue
		}

		daysLeft := billing.DaysUntilBilling(today, sub.BillingDay)
		if daysLeft != settings.LeadTimeDays {
			continue
		}

		err := mailer.Send(ctx, settings.ResendAPIKey, settings.RecipientEmail, subject(sub, daysLeft), body(sub))
		attempts = append(attempts, Attempt{Subscription: sub, DaysLeft: daysLeft, Err: err})
		if err != nil {
			// Marker stays put so the next run retries.
			log.Errorw("failed to send reminder", "subscription_id", sub.ID, "name", sub.Name, "err", err)
			continue
		}

		log.Infow("reminder sent", "subscription_id", sub.ID, "name", sub.Name, "days_left", daysLeft)
		sent := todayStr
		sub.LastReminderSent = &sent
		notified = append(notified, sub)
	}

	return notified, attempts
}

func subject(sub *models.Subscription, daysLeft int) string {
	if daysLeft == 0 {
		return fmt.Sprintf("Reminder: %s is due today", sub.Name)
	}
	return fmt.Sprintf("Reminder: %s is due in %d days", sub.Name, daysLeft)
}

func body(sub *models.Subscription) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; color: #333;">
  <h2>Upcoming bill 🔔</h2>
  <p>Hi,</p>
  <p>Your subscription <strong>%s</strong> of <strong>Rp %s</strong> is due on day <strong>%d</strong> of this month.</p>
  <p>Don't forget to make the payment! 💳</p>
  <hr>
  <p style="font-size: 12px; color: #666;">Sent by RemindYourSubs.</p>
</div>`, sub.Name, formatPrice(sub.Price), sub.BillingDay)
}

// formatPrice renders a rupiah amount with dot thousand separators.
func formatPrice(price int64) string {
	s := strconv.FormatInt(price, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return string(out)
}
