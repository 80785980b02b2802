package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/remindyoursubs/subtrack/internal/models"
)

func activeSub(id string, price int64, billingDay int) *models.Subscription {
	return &models.Subscription{ID: id, Name: id, Price: price, BillingDay: billingDay, IsActive: true}
}

func TestComputeUpcomingBills(t *testing.T) {
	today := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	subs := []*models.Subscription{
		activeSub("sub-5", 10_000, 6),   // 5 days
		activeSub("sub-1", 10_000, 2),   // 1 day
		activeSub("sub-29", 10_000, 30), // 29 days
	}
	inactive := activeSub("sub-off", 10_000, 3)
	inactive.IsActive = false
	subs = append(subs, inactive)

	bills := computeUpcomingBills(subs, today)
	require.Len(t, bills, 3)
	assert.Equal(t, "sub-1", bills[0].SubscriptionID)
	assert.Equal(t, 1, bills[0].DaysUntil)
	assert.Equal(t, "sub-5", bills[1].SubscriptionID)
	assert.Equal(t, "sub-29", bills[2].SubscriptionID)
}

func TestComputeUpcomingBillsCapsAtFive(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	var subs []*models.Subscription
	for day := 2; day <= 9; day++ {
		subs = append(subs, activeSub(string(rune('a'+day)), 10_000, day))
	}

	bills := computeUpcomingBills(subs, today)
	require.Len(t, bills, 5)
	// Soonest first, so the cap keeps the five closest days.
	assert.Equal(t, 1, bills[0].DaysUntil)
	assert.Equal(t, 5, bills[4].DaysUntil)
}

func TestComputeDistribution(t *testing.T) {
	subs := []*models.Subscription{
		activeSub("low", 50_000, 1),
		activeSub("low-edge", 99_999, 1),
		activeSub("medium", 100_000, 1),
		activeSub("medium-edge", 250_000, 1),
		activeSub("high", 250_001, 1),
	}
	inactive := activeSub("off", 500_000, 1)
	inactive.IsActive = false
	subs = append(subs, inactive)

	dist := computeDistribution(subs)
	assert.Equal(t, 2, dist.Low)
	assert.Equal(t, 2, dist.Medium)
	assert.Equal(t, 1, dist.High)
}

func TestSubscriptionRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     SubscriptionRequest
		wantErr bool
	}{
		{name: "valid", req: SubscriptionRequest{Name: "Netflix", Price: 186_000, BillingDay: 15}},
		{name: "free is valid", req: SubscriptionRequest{Name: "Trial", Price: 0, BillingDay: 1}},
		{name: "missing name", req: SubscriptionRequest{Price: 10_000, BillingDay: 15}, wantErr: true},
		{name: "negative price", req: SubscriptionRequest{Name: "X", Price: -1, BillingDay: 15}, wantErr: true},
		{name: "day zero", req: SubscriptionRequest{Name: "X", Price: 10_000, BillingDay: 0}, wantErr: true},
		{name: "day 32", req: SubscriptionRequest{Name: "X", Price: 10_000, BillingDay: 32}, wantErr: true},
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

func TestImportSchema(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "valid batch",
			payload: `{"subscriptions":[{"name":"Netflix","price":186000,"billing_day":15},{"name":"Spotify","price":54990,"billing_day":1,"is_active":false}]}`,
			valid:   true,
		},
		{name: "empty array", payload: `{"subscriptions":[]}`, valid: false},
		{name: "missing subscriptions key", payload: `{"items":[]}`, valid: false},
		{name: "missing billing_day", payload: `{"subscriptions":[{"name":"Netflix","price":186000}]}`, valid: false},
		{name: "billing_day out of range", payload: `{"subscriptions":[{"name":"Netflix","price":186000,"billing_day":32}]}`, valid: false},
		{name: "negative price", payload: `{"subscriptions":[{"name":"Netflix","price":-1,"billing_day":15}]}`, valid: false},
		{name: "empty name", payload: `{"subscriptions":[{"name":"","price":186000,"billing_day":15}]}`, valid: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := gojsonschema.Validate(importSchemaLoader, gojsonschema.NewStringLoader(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.valid, result.Valid())
		})
	}
}
