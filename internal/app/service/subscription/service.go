package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/remindyoursubs/subtrack/internal/app/service/billing"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/tool"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

var ErrNotFound = errors.New("subscription not found")

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// SubscriptionRequest is the create/update payload. Pointer booleans
// distinguish "absent" from "false"; absent defaults to true on create.
type SubscriptionRequest struct {
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	BillingDay      int    `json:"billing_day"`
	IsActive        *bool  `json:"is_active"`
	ReminderEnabled *bool  `json:"reminder_enabled"`
	// PaymentMethodID is replaced on every update; nil clears the link.
	PaymentMethodID *string `json:"payment_method_id"`
}

// Validate rejects out-of-domain input at the boundary; the billing
// calculator itself assumes 1-31.
func (r *SubscriptionRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if r.BillingDay < 1 || r.BillingDay > 31 {
		return fmt.Errorf("billing_day must be in 1-31")
	}
	return nil
}

// SubscriptionItem is the API view of a subscription with its computed
// due-date state.
type SubscriptionItem struct {
	*models.Subscription
	DaysLeft int            `json:"days_left"`
	Status   billing.Status `json:"status"`
}

func toItem(sub *models.Subscription, today time.Time) *SubscriptionItem {
	daysLeft := billing.DaysUntilBilling(today, sub.BillingDay)
	return &SubscriptionItem{
		Subscription: sub,
		DaysLeft:     daysLeft,
		Status:       billing.Classify(daysLeft),
	}
}

func (s *Service) Create(ctx context.Context, userID string, req *SubscriptionRequest) (*models.Subscription, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		ID:              tool.GenerateUUIDV7(),
		UserID:          userID,
		Name:            req.Name,
		Price:           req.Price,
		BillingDay:      req.BillingDay,
		IsActive:        req.IsActive == nil || *req.IsActive,
		ReminderEnabled: req.ReminderEnabled == nil || *req.ReminderEnabled,
		PaymentMethodID: req.PaymentMethodID,
	}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.LogChange(ctx, types.SubscriptionChangeReasonCreate, nil, sub, nil)
	return sub, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}

// List returns the user's subscriptions as API items, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*SubscriptionItem, error) {
	subs, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	items := make([]*SubscriptionItem, 0, len(subs))
	for _, sub := range subs {
		items = append(items, toItem(sub, today))
	}
	return items, nil
}

func (s *Service) loadAll(ctx context.Context, userID string) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req *SubscriptionRequest) (*models.Subscription, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	before := *sub

	sub.Name = req.Name
	sub.Price = req.Price
	sub.BillingDay = req.BillingDay
	sub.PaymentMethodID = req.PaymentMethodID
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if req.ReminderEnabled != nil {
		sub.ReminderEnabled = *req.ReminderEnabled
	}

	if err := s.db.WithContext(ctx).Save(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	s.LogChange(ctx, types.SubscriptionChangeReasonUpdate, &before, sub, nil)
	return sub, nil
}

// ToggleReminder flips the reminder flag and returns the updated record.
func (s *Service) ToggleReminder(ctx context.Context, userID, id string) (*models.Subscription, error) {
	sub, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	before := *sub

	sub.ReminderEnabled = !sub.ReminderEnabled
	if err := s.db.WithContext(ctx).Save(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle reminder: %w", err)
	}

	s.LogChange(ctx, types.SubscriptionChangeReasonToggleReminder, &before, sub, nil)
	return sub, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	sub, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Subscription{}, "id = ?", sub.ID).Error; err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	s.LogChange(ctx, types.SubscriptionChangeReasonDelete, sub, nil, nil)
	return nil
}

// LogChange asynchronously persists a change-log entry; errors are logged
// but never surfaced to the mutation that triggered them.
func (s *Service) LogChange(ctx context.Context, reason types.SubscriptionChangeReason, before, after *models.Subscription, extra datatypes.JSONMap) {
	userID := ""
	if after != nil {
		userID = after.UserID
	} else if before != nil {
		userID = before.UserID
	}
	if extra == nil {
		extra = datatypes.JSONMap{}
	}

	go func() {
		entry := &models.SubscriptionChangeLog{
			ID:     tool.GenerateUUIDV7(),
			UserID: userID,
			Reason: reason,
			Before: datatypes.NewJSONType(before),
			After:  datatypes.NewJSONType(after),
			Extra:  extra,
		}
		if err := s.db.Save(entry).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save subscription change log: %v", err)
		}
	}()
}

// Scan request/response for the admin listing endpoint.
type ScanSubscriptionsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanSubscriptionsResponse struct {
	Items []*models.Subscription `json:"items"`
	Total int64                  `json:"total"`
}

// Scan implements paginated admin listing with filters across all users.
func (s *Service) Scan(ctx context.Context, req *ScanSubscriptionsRequest) (*ScanSubscriptionsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Subscription{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{types.FiltersAnd{Filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}

	var rows []*models.Subscription
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &ScanSubscriptionsResponse{Items: rows, Total: total}, nil
}
