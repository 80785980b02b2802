package paymentmethod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/remindyoursubs/subtrack/internal/app/service/billing"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/tool"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

var (
	ErrNotFound      = errors.New("payment method not found")
	ErrAlertNotFound = errors.New("payment alert not found")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

var validMethodTypes = map[types.PaymentMethodType]bool{
	types.PaymentMethodTypeCreditCard:  true,
	types.PaymentMethodTypeDebitCard:   true,
	types.PaymentMethodTypeEWallet:     true,
	types.PaymentMethodTypeBankAccount: true,
}

type PaymentMethodRequest struct {
	Type           types.PaymentMethodType `json:"type"`
	Provider       string                  `json:"provider"`
	LastFourDigits string                  `json:"last_four_digits"`
	Nickname       string                  `json:"nickname"`
	ExpiryMonth    *int                    `json:"expiry_month"`
	ExpiryYear     *int                    `json:"expiry_year"`
	IsDefault      *bool                   `json:"is_default"`
}

func (r *PaymentMethodRequest) Validate() error {
	if !validMethodTypes[r.Type] {
		return fmt.Errorf("type must be one of credit_card, debit_card, e_wallet, bank_account")
	}
	if r.LastFourDigits != "" {
		if len(r.LastFourDigits) != 4 {
			return fmt.Errorf("last_four_digits must be 4 digits")
		}
		for _, c := range r.LastFourDigits {
			if c < '0' || c > '9' {
				return fmt.Errorf("last_four_digits must be 4 digits")
			}
		}
	}
	if (r.ExpiryMonth == nil) != (r.ExpiryYear == nil) {
		return fmt.Errorf("expiry_month and expiry_year must be set together")
	}
	if r.ExpiryMonth != nil && (*r.ExpiryMonth < 1 || *r.ExpiryMonth > 12) {
		return fmt.Errorf("expiry_month must be in 1-12")
	}
	if r.ExpiryYear != nil && *r.ExpiryYear < 2000 {
		return fmt.Errorf("expiry_year must be a full year")
	}
	return nil
}

// PaymentMethodItem is the API view of a method with its computed expiry
// state and the number of subscriptions billed to it.
type PaymentMethodItem struct {
	*models.PaymentMethod
	MaskedNumber      string `json:"masked_number"`
	ExpiryDate        string `json:"expiry_date,omitempty"`
	Expired           bool   `json:"is_expired"`
	ExpiringSoon      bool   `json:"is_expiring_soon"`
	DaysUntilExpiry   *int   `json:"days_until_expiry,omitempty"`
	SubscriptionCount int    `json:"subscription_count"`
}

func toItem(pm *models.PaymentMethod, today time.Time, subCount int) *PaymentMethodItem {
	item := &PaymentMethodItem{
		PaymentMethod:     pm,
		MaskedNumber:      pm.MaskedNumber(),
		ExpiryDate:        pm.FormattedExpiry(),
		SubscriptionCount: subCount,
	}
	if daysLeft, ok := daysUntilExpiry(pm, today); ok {
		d := daysLeft
		item.DaysUntilExpiry = &d
		item.Expired = daysLeft < 0
		item.ExpiringSoon = expiringSoon(pm, today, expiringSoonWindowDays)
	}
	return item
}

// List returns the user's payment methods with computed expiry state.
func (s *Service) List(ctx context.Context, userID string) ([]*PaymentMethodItem, error) {
	methods, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.subscriptionCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	items := make([]*PaymentMethodItem, 0, len(methods))
	for _, pm := range methods {
		items = append(items, toItem(pm, today, counts[pm.ID]))
	}
	return items, nil
}

func (s *Service) loadAll(ctx context.Context, userID string) ([]*models.PaymentMethod, error) {
	var methods []*models.PaymentMethod
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

func (s *Service) get(ctx context.Context, userID, id string) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&pm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	return &pm, nil
}

// Get returns one method as an API item.
func (s *Service) Get(ctx context.Context, userID, id string) (*PaymentMethodItem, error) {
	pm, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	count, err := s.subscriptionCount(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toItem(pm, time.Now(), count), nil
}

func (s *Service) Create(ctx context.Context, userID string, req *PaymentMethodRequest) (*PaymentMethodItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	isDefault := req.IsDefault != nil && *req.IsDefault
	if isDefault {
		if err := s.unsetOtherDefaults(ctx, userID, ""); err != nil {
			return nil, err
		}
	}

	pm := &models.PaymentMethod{
		ID:             tool.GenerateUUIDV7(),
		UserID:         userID,
		Type:           req.Type,
		Provider:       req.Provider,
		LastFourDigits: req.LastFourDigits,
		Nickname:       req.Nickname,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		IsDefault:      isDefault,
		IsActive:       true,
	}
	if err := s.db.WithContext(ctx).Create(pm).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("payment method created", "payment_method_id", pm.ID, "user_id", userID)
	return toItem(pm, time.Now(), 0), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req *PaymentMethodRequest) (*PaymentMethodItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pm, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.IsDefault != nil && *req.IsDefault && !pm.IsDefault {
		if err := s.unsetOtherDefaults(ctx, userID, id); err != nil {
			return nil, err
		}
	}

	pm.Type = req.Type
	pm.Provider = req.Provider
	pm.LastFourDigits = req.LastFourDigits
	pm.Nickname = req.Nickname
	pm.ExpiryMonth = req.ExpiryMonth
	pm.ExpiryYear = req.ExpiryYear
	if req.IsDefault != nil {
		pm.IsDefault = *req.IsDefault
	}

	if err := s.db.WithContext(ctx).Save(pm).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}

	count, err := s.subscriptionCount(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toItem(pm, time.Now(), count), nil
}

// Delete removes a method, its alerts, and clears subscription links.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	pm, err := s.get(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Subscription{}).
			Where("payment_method_id = ?", pm.ID).
			Update("payment_method_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unlink subscriptions: %w", err)
		}
		if err := tx.Delete(&models.PaymentAlert{}, "payment_method_id = ?", pm.ID).Error; err != nil {
			return fmt.Errorf("failed to delete payment alerts: %w", err)
		}
		if err := tx.Delete(&models.PaymentMethod{}, "id = ?", pm.ID).Error; err != nil {
			return fmt.Errorf("failed to delete payment method: %w", err)
		}
		return nil
	})
}

// SetDefault marks one method as default and unsets the previous one.
func (s *Service) SetDefault(ctx context.Context, userID, id string) (*PaymentMethodItem, error) {
	pm, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.unsetOtherDefaults(ctx, userID, id); err != nil {
		return nil, err
	}
	pm.IsDefault = true
	if err := s.db.WithContext(ctx).Save(pm).Error; err != nil {
		return nil, fmt.Errorf("failed to set default payment method: %w", err)
	}

	count, err := s.subscriptionCount(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toItem(pm, time.Now(), count), nil
}

func (s *Service) unsetOtherDefaults(ctx context.Context, userID, excludeID string) error {
	tx := s.db.WithContext(ctx).Model(&models.PaymentMethod{}).
		Where("user_id = ? AND is_default = ?", userID, true)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Update("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to unset default payment methods: %w", err)
	}
	return nil
}

// Expiring lists active methods expiring within the given day window.
func (s *Service) Expiring(ctx context.Context, userID string, windowDays int) ([]*PaymentMethodItem, error) {
	if windowDays <= 0 {
		windowDays = expiringSoonWindowDays
	}

	methods, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.subscriptionCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	items := make([]*PaymentMethodItem, 0)
	for _, pm := range methods {
		if expiringSoon(pm, today, windowDays) {
			items = append(items, toItem(pm, today, counts[pm.ID]))
		}
	}
	return items, nil
}

func (s *Service) loadActive(ctx context.Context, userID string) ([]*models.PaymentMethod, error) {
	var methods []*models.PaymentMethod
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at desc").
		Find(&methods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active payment methods: %w", err)
	}
	return methods, nil
}

func (s *Service) subscriptionCount(ctx context.Context, userID, paymentMethodID string) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("user_id = ? AND payment_method_id = ?", userID, paymentMethodID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count linked subscriptions: %w", err)
	}
	return int(count), nil
}

func (s *Service) subscriptionCounts(ctx context.Context, userID string) (map[string]int, error) {
	var rows []struct {
		PaymentMethodID string
		N               int
	}
	err := s.db.WithContext(ctx).Model(&models.Subscription{}).
		Select("payment_method_id, count(*) as n").
		Where("user_id = ? AND payment_method_id IS NOT NULL", userID).
		Group("payment_method_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count linked subscriptions: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.PaymentMethodID] = row.N
	}
	return counts, nil
}

// daysUntilExpiry returns the signed day distance to the method's expiry
// (negative once past). ok is false when the method has no expiry.
func daysUntilExpiry(pm *models.PaymentMethod, today time.Time) (daysLeft int, ok bool) {
	expiry, ok := pm.ExpiryDate()
	if !ok {
		return 0, false
	}
	return billing.DaysUntilDate(today, expiry), true
}

func expired(pm *models.PaymentMethod, today time.Time) bool {
	daysLeft, ok := daysUntilExpiry(pm, today)
	return ok && daysLeft < 0
}

// expiringSoon reports whether the expiry falls inside [0, windowDays).
// The window is exclusive at the top, so a card exactly windowDays away
// is not yet flagged.
func expiringSoon(pm *models.PaymentMethod, today time.Time, windowDays int) bool {
	daysLeft, ok := daysUntilExpiry(pm, today)
	return ok && daysLeft >= 0 && daysLeft < windowDays
}
