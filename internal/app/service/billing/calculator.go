package billing

import "time"

// midnight strips the time-of-day so day counts never drift on fractions.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntilBilling returns the number of whole days from today until the
// next occurrence of billingDay (a recurring day-of-month).
//
// When today's day-of-month equals billingDay the bill is due today and
// the result is 0; only when today is past billingDay does the candidate
// roll to the next month (December rolls into January). The result is
// never negative.
//
// billingDay is expected in 1-31; values 29-31 in shorter months overflow
// into the following month via time.Date normalization, e.g. day 31
// checked in April resolves to May 1. Callers validate the range at the
// input boundary. All arithmetic is local-calendar-day based; no
// timezone conversion happens here.
func DaysUntilBilling(today time.Time, billingDay int) int {
	today = midnight(today)

	month := today.Month()
	year := today.Year()
	if today.Day() > billingDay {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	next := time.Date(year, month, billingDay, 0, 0, 0, 0, today.Location())

	return ceilDays(next.Sub(today))
}

// DaysUntilDate returns the whole-day count from today to an absolute
// billing date, both truncated to midnight. A negative result means the
// date has passed without being advanced; nothing here rolls it forward.
func DaysUntilDate(today, next time.Time) int {
	return ceilDays(midnight(next).Sub(midnight(today)))
}

func ceilDays(d time.Duration) int {
	const day = 24 * time.Hour
	n := d / day
	if d%day > 0 {
		n++
	}
	return int(n)
}
