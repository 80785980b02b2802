package paymentmethod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

func intp(v int) *int { return &v }

func cardExpiring(month, year int) *models.PaymentMethod {
	return &models.PaymentMethod{
		Type:           types.PaymentMethodTypeCreditCard,
		Provider:       "Visa",
		LastFourDigits: "1234",
		ExpiryMonth:    intp(month),
		ExpiryYear:     intp(year),
		IsActive:       true,
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	today := time.Date(2024, 6, 10, 9, 30, 0, 0, time.Local)

	cases := []struct {
		name     string
		pm       *models.PaymentMethod
		want     int
		hasValue bool
	}{
		{name: "this month", pm: cardExpiring(6, 2024), want: 20, hasValue: true},
		{name: "last month", pm: cardExpiring(5, 2024), want: -10, hasValue: true},
		{name: "next month", pm: cardExpiring(7, 2024), want: 51, hasValue: true},
		{name: "no expiry", pm: &models.PaymentMethod{IsActive: true}, hasValue: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := daysUntilExpiry(tc.pm, today)
			require.Equal(t, tc.hasValue, ok)
			if tc.hasValue {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestExpiryState(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	assert.True(t, expired(cardExpiring(5, 2024), today))
	assert.False(t, expired(cardExpiring(6, 2024), today))
	assert.False(t, expired(&models.PaymentMethod{}, today))

	// 20 days to June 30: inside the 30 day window.
	assert.True(t, expiringSoon(cardExpiring(6, 2024), today, 30))
	// Expired cards are never "expiring soon".
	assert.False(t, expiringSoon(cardExpiring(5, 2024), today, 30))
	// 51 days to July 31: outside the window.
	assert.False(t, expiringSoon(cardExpiring(7, 2024), today, 30))
}

func TestExpiringSoonWindowIsExclusive(t *testing.T) {
	// Exactly 30 days from May 31 to June 30 is not yet inside a 30 day
	// window; one day later it is.
	card := cardExpiring(6, 2024)
	assert.False(t, expiringSoon(card, time.Date(2024, 5, 31, 0, 0, 0, 0, time.Local), 30))
	assert.True(t, expiringSoon(card, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), 30))

	// Due on the last day itself still counts.
	assert.True(t, expiringSoon(card, time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local), 30))
}

func TestNeedsAlert(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	recent := &models.PaymentAlert{Type: types.PaymentAlertTypeExpiringSoon, TriggeredAt: now.AddDate(0, 0, -3)}
	stale := &models.PaymentAlert{Type: types.PaymentAlertTypeExpiringSoon, TriggeredAt: now.AddDate(0, 0, -8)}
	otherType := &models.PaymentAlert{Type: types.PaymentAlertTypeExpired, TriggeredAt: now.AddDate(0, 0, -1)}

	assert.False(t, needsAlert([]*models.PaymentAlert{recent}, types.PaymentAlertTypeExpiringSoon, now))
	assert.True(t, needsAlert([]*models.PaymentAlert{stale}, types.PaymentAlertTypeExpiringSoon, now))
	assert.True(t, needsAlert([]*models.PaymentAlert{otherType}, types.PaymentAlertTypeExpiringSoon, now))
	assert.True(t, needsAlert(nil, types.PaymentAlertTypeExpired, now))
}

func TestComputeAnalytics(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	visa := cardExpiring(6, 2024)
	visa.ID = "pm-visa"
	visa.Nickname = "Daily card"

	expiredCard := cardExpiring(5, 2024)
	expiredCard.ID = "pm-expired"

	wallet := &models.PaymentMethod{ID: "pm-wallet", Type: types.PaymentMethodTypeEWallet, Provider: "GoPay", IsActive: true}

	inactive := cardExpiring(6, 2024)
	inactive.ID = "pm-off"
	inactive.IsActive = false

	methods := []*models.PaymentMethod{visa, expiredCard, wallet, inactive}

	visaID := "pm-visa"
	walletID := "pm-wallet"
	subs := []*models.Subscription{
		{ID: "sub-1", Price: 100_000, PaymentMethodID: &visaID},
		{ID: "sub-2", Price: 50_000, PaymentMethodID: &visaID},
		{ID: "sub-3", Price: 30_000, PaymentMethodID: &walletID},
	}

	res := computeAnalytics(methods, subs, today)
	assert.Equal(t, 4, res.TotalMethods)
	assert.Equal(t, 3, res.ActiveMethods)
	assert.Equal(t, 1, res.ExpiringCount)
	assert.Equal(t, 1, res.ExpiredCount)

	require.Len(t, res.SubscriptionsByMethod, 2)
	assert.Equal(t, "pm-visa", res.SubscriptionsByMethod[0].PaymentMethodID)
	assert.Equal(t, "Daily card", res.SubscriptionsByMethod[0].Nickname)
	assert.Equal(t, 2, res.SubscriptionsByMethod[0].SubscriptionCount)
	assert.Equal(t, int64(150_000), res.SubscriptionsByMethod[0].TotalMonthlyAmount)

	// Nickname falls back to the provider.
	assert.Equal(t, "GoPay", res.SubscriptionsByMethod[1].Nickname)
	assert.Equal(t, int64(30_000), res.SubscriptionsByMethod[1].TotalMonthlyAmount)
}

func TestPaymentMethodRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     PaymentMethodRequest
		wantErr bool
	}{
		{name: "card with expiry", req: PaymentMethodRequest{Type: types.PaymentMethodTypeCreditCard, LastFourDigits: "1234", ExpiryMonth: intp(12), ExpiryYear: intp(2026)}},
		{name: "wallet without expiry", req: PaymentMethodRequest{Type: types.PaymentMethodTypeEWallet, Provider: "OVO"}},
		{name: "unknown type", req: PaymentMethodRequest{Type: "crypto"}, wantErr: true},
		{name: "short digits", req: PaymentMethodRequest{Type: types.PaymentMethodTypeDebitCard, LastFourDigits: "12"}, wantErr: true},
		{name: "non-numeric digits", req: PaymentMethodRequest{Type: types.PaymentMethodTypeDebitCard, LastFourDigits: "12ab"}, wantErr: true},
		{name: "month without year", req: PaymentMethodRequest{Type: types.PaymentMethodTypeCreditCard, ExpiryMonth: intp(5)}, wantErr: true},
		{name: "month out of range", req: PaymentMethodRequest{Type: types.PaymentMethodTypeCreditCard, ExpiryMonth: intp(13), ExpiryYear: intp(2026)}, wantErr: true},
		{name: "two digit year", req: PaymentMethodRequest{Type: types.PaymentMethodTypeCreditCard, ExpiryMonth: intp(5), ExpiryYear: intp(26)}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
