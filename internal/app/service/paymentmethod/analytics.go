package paymentmethod

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/remindyoursubs/subtrack/internal/models"
)

type MethodDistribution struct {
	PaymentMethodID    string `json:"payment_method_id"`
	Nickname           string `json:"nickname"`
	MaskedNumber       string `json:"masked_number"`
	SubscriptionCount  int    `json:"subscription_count"`
	TotalMonthlyAmount int64  `json:"total_monthly_amount"`
}

type AnalyticsResult struct {
	TotalMethods          int                  `json:"total_methods"`
	ActiveMethods         int                  `json:"active_methods"`
	ExpiringCount         int                  `json:"expiring_count"`
	ExpiredCount          int                  `json:"expired_count"`
	SubscriptionsByMethod []MethodDistribution `json:"subscriptions_by_method"`
}

// Analytics summarizes the user's payment methods: expiry counts over
// active methods and the subscription spend billed to each one.
func (s *Service) Analytics(ctx context.Context, userID string) (*AnalyticsResult, error) {
	methods, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	var subs []*models.Subscription
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND payment_method_id IS NOT NULL", userID).
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load linked subscriptions: %w", err)
	}

	res := computeAnalytics(methods, subs, time.Now())
	return &res, nil
}

// computeAnalytics is the pure rollup. Methods with no linked
// subscription are counted in the totals but omitted from the
// distribution.
func computeAnalytics(methods []*models.PaymentMethod, subs []*models.Subscription, today time.Time) AnalyticsResult {
	active := lo.Filter(methods, func(pm *models.PaymentMethod, _ int) bool { return pm.IsActive })

	byMethod := lo.GroupBy(
		lo.Filter(subs, func(sub *models.Subscription, _ int) bool { return sub.PaymentMethodID != nil }),
		func(sub *models.Subscription) string { return *sub.PaymentMethodID },
	)

	res := AnalyticsResult{
		TotalMethods:          len(methods),
		ActiveMethods:         len(active),
		SubscriptionsByMethod: make([]MethodDistribution, 0),
	}
	for _, pm := range active {
		if expired(pm, today) {
			res.ExpiredCount++
		} else if expiringSoon(pm, today, expiringSoonWindowDays) {
			res.ExpiringCount++
		}

		linked := byMethod[pm.ID]
		if len(linked) == 0 {
			continue
		}
		nickname := pm.Nickname
		if nickname == "" {
			nickname = pm.Provider
		}
		res.SubscriptionsByMethod = append(res.SubscriptionsByMethod, MethodDistribution{
			PaymentMethodID:    pm.ID,
			Nickname:           nickname,
			MaskedNumber:       pm.MaskedNumber(),
			SubscriptionCount:  len(linked),
			TotalMonthlyAmount: lo.SumBy(linked, func(sub *models.Subscription) int64 { return sub.Price }),
		})
	}
	return res
}
