package handlers

import (
	"github.com/remindyoursubs/subtrack/internal/app/service/auth"
	"github.com/remindyoursubs/subtrack/internal/app/service/paymentmethod"
	"github.com/remindyoursubs/subtrack/internal/app/service/subscription"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespAuth wraps an auth result (token + user) in the standard envelope.
type RespAuth struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    auth.AuthResult          `json:"data"`
}

// RespSubscription wraps a single subscription in the standard envelope.
type RespSubscription struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Subscription      `json:"data"`
}

// RespSubscriptionList wraps the list view with computed due-date state.
type RespSubscriptionList struct {
	Code    response.APIResponseCode        `json:"code"`
	Message string                          `json:"message"`
	Data    []subscription.SubscriptionItem `json:"data"`
}

// RespSubscriptionImport wraps the imported batch.
type RespSubscriptionImport struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Subscription    `json:"data"`
}

// RespMonthlyExpense wraps MonthlyExpenseResult in the standard envelope.
type RespMonthlyExpense struct {
	Code    response.APIResponseCode          `json:"code"`
	Message string                            `json:"message"`
	Data    subscription.MonthlyExpenseResult `json:"data"`
}

// RespAnalytics wraps AnalyticsResult in the standard envelope.
type RespAnalytics struct {
	Code    response.APIResponseCode     `json:"code"`
	Message string                       `json:"message"`
	Data    subscription.AnalyticsResult `json:"data"`
}

// RespReminderSettings wraps the user's reminder settings.
type RespReminderSettings struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.ReminderSettings  `json:"data"`
}

// RespReminderLogs wraps a list of reminder attempts.
type RespReminderLogs struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.ReminderLog     `json:"data"`
}

// RespReminderLog wraps a single reminder log entry.
type RespReminderLog struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.ReminderLog       `json:"data"`
}

// RespPaymentMethod wraps a single payment method with expiry state.
type RespPaymentMethod struct {
	Code    response.APIResponseCode        `json:"code"`
	Message string                          `json:"message"`
	Data    paymentmethod.PaymentMethodItem `json:"data"`
}

// RespPaymentMethodList wraps the payment method list view.
type RespPaymentMethodList struct {
	Code    response.APIResponseCode          `json:"code"`
	Message string                            `json:"message"`
	Data    []paymentmethod.PaymentMethodItem `json:"data"`
}

// RespPaymentMethodAnalytics wraps the per-method spend rollup.
type RespPaymentMethodAnalytics struct {
	Code    response.APIResponseCode      `json:"code"`
	Message string                        `json:"message"`
	Data    paymentmethod.AnalyticsResult `json:"data"`
}

// RespPaymentAlert wraps a single expiry alert.
type RespPaymentAlert struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.PaymentAlert      `json:"data"`
}

// RespPaymentAlerts wraps a list of expiry alerts.
type RespPaymentAlerts struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.PaymentAlert    `json:"data"`
}

// RespScanSubscriptions wraps the admin scan result.
type RespScanSubscriptions struct {
	Code    response.APIResponseCode               `json:"code"`
	Message string                                 `json:"message"`
	Data    subscription.ScanSubscriptionsResponse `json:"data"`
}
