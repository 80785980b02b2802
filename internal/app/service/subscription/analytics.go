package subscription

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/remindyoursubs/subtrack/internal/app/service/billing"
	"github.com/remindyoursubs/subtrack/internal/models"
)

// Price distribution buckets (rupiah).
const (
	distributionLowMax    = 100_000
	distributionMediumMax = 250_000
)

const (
	trendMonths        = 6
	upcomingWindowDays = 30
	upcomingBillsLimit = 5
)

type MonthlyExpenseResult struct {
	UserID                   string `json:"user_id"`
	TotalExpense             int64  `json:"total_expense"`
	TotalActiveSubscriptions int    `json:"total_active_subscriptions"`
}

type MonthlyTrendItem struct {
	Month             string `json:"month"` // e.g. "Jan 2026"
	TotalExpense      int64  `json:"total_expense"`
	SubscriptionCount int    `json:"subscription_count"`
}

type UpcomingBill struct {
	SubscriptionID string         `json:"subscription_id"`
	Name           string         `json:"name"`
	Price          int64          `json:"price"`
	BillingDay     int            `json:"billing_day"`
	DaysUntil      int            `json:"days_until"`
	Status         billing.Status `json:"status"`
}

type PriceDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type AnalyticsResult struct {
	MonthlyTrend  []MonthlyTrendItem `json:"monthly_trend"`
	UpcomingBills []UpcomingBill     `json:"upcoming_bills"`
	Distribution  PriceDistribution  `json:"distribution"`
}

// MonthlyExpense sums active subscriptions for the user.
func (s *Service) MonthlyExpense(ctx context.Context, userID string) (*MonthlyExpenseResult, error) {
	subs, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := lo.Filter(subs, func(sub *models.Subscription, _ int) bool { return sub.IsActive })
	return &MonthlyExpenseResult{
		UserID:                   userID,
		TotalExpense:             lo.SumBy(active, func(sub *models.Subscription) int64 { return sub.Price }),
		TotalActiveSubscriptions: len(active),
	}, nil
}

// Analytics builds the dashboard payload: six-month trend, the next
// upcoming bills, and a price distribution over active subscriptions.
func (s *Service) Analytics(ctx context.Context, userID string) (*AnalyticsResult, error) {
	subs, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	trend, err := s.monthlyTrend(ctx, userID, subs, today)
	if err != nil {
		return nil, err
	}

	return &AnalyticsResult{
		MonthlyTrend:  trend,
		UpcomingBills: computeUpcomingBills(subs, today),
		Distribution:  computeDistribution(subs),
	}, nil
}

// monthlyTrend covers the last six months. Months with a daily snapshot
// use the last snapshot of that month; months without history fall back
// to the current flat total.
func (s *Service) monthlyTrend(ctx context.Context, userID string, subs []*models.Subscription, today time.Time) ([]MonthlyTrendItem, error) {
	active := lo.Filter(subs, func(sub *models.Subscription, _ int) bool { return sub.IsActive })
	flatTotal := lo.SumBy(active, func(sub *models.Subscription) int64 { return sub.Price })

	trend := make([]MonthlyTrendItem, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		month := today.AddDate(0, -i, 0)
		item := MonthlyTrendItem{
			Month:             month.Format("Jan 2006"),
			TotalExpense:      flatTotal,
			SubscriptionCount: len(active),
		}

		var snap models.SubscriptionDailySnapshot
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND snapshot_date LIKE ?", userID, month.Format("2006-01")+"%").
			Order("snapshot_date desc").
			First(&snap).Error
		if err == nil {
			item.TotalExpense = snap.TotalExpense
			item.SubscriptionCount = snap.ActiveCount
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load snapshot for trend: %w", err)
		}

		trend = append(trend, item)
	}
	return trend, nil
}

// computeUpcomingBills lists active subscriptions due within the window,
// soonest first, capped at upcomingBillsLimit.
func computeUpcomingBills(subs []*models.Subscription, today time.Time) []UpcomingBill {
	bills := make([]UpcomingBill, 0, len(subs))
	for _, sub := range subs {
		if !sub.IsActive {
			continue
		}
		daysUntil := billing.DaysUntilBilling(today, sub.BillingDay)
		if daysUntil > upcomingWindowDays {
			continue
		}
		bills = append(bills, UpcomingBill{
			SubscriptionID: sub.ID,
			Name:           sub.Name,
			Price:          sub.Price,
			BillingDay:     sub.BillingDay,
			DaysUntil:      daysUntil,
			Status:         billing.Classify(daysUntil),
		})
	}

	sort.SliceStable(bills, func(i, j int) bool { return bills[i].DaysUntil < bills[j].DaysUntil })
	if len(bills) > upcomingBillsLimit {
		bills = bills[:upcomingBillsLimit]
	}
	return bills
}

func computeDistribution(subs []*models.Subscription) PriceDistribution {
	var dist PriceDistribution
	for _, sub := range subs {
		if !sub.IsActive {
			continue
		}
		switch {
		case sub.Price < distributionLowMax:
			dist.Low++
		case sub.Price <= distributionMediumMax:
			dist.Medium++
		default:
			dist.High++
		}
	}
	return dist
}
