package types

type SubscriptionChangeReason string

const (
	SubscriptionChangeReasonCreate         SubscriptionChangeReason = "create"
	SubscriptionChangeReasonUpdate         SubscriptionChangeReason = "update"
	SubscriptionChangeReasonToggleReminder SubscriptionChangeReason = "toggleReminder"
	SubscriptionChangeReasonDelete         SubscriptionChangeReason = "delete"
	SubscriptionChangeReasonImport         SubscriptionChangeReason = "import"
	SubscriptionChangeReasonReminderSent   SubscriptionChangeReason = "reminderSent"
)

type PaymentMethodType string

const (
	PaymentMethodTypeCreditCard  PaymentMethodType = "credit_card"
	PaymentMethodTypeDebitCard   PaymentMethodType = "debit_card"
	PaymentMethodTypeEWallet     PaymentMethodType = "e_wallet"
	PaymentMethodTypeBankAccount PaymentMethodType = "bank_account"
)

type PaymentAlertType string

const (
	PaymentAlertTypeExpiringSoon PaymentAlertType = "EXPIRING_SOON"
	PaymentAlertTypeExpired      PaymentAlertType = "EXPIRED"
)

// ReminderTrigger identifies what caused a dispatch run. Dispatch is
// event-driven only; there is no recurring timer trigger.
type ReminderTrigger string

const (
	ReminderTriggerStartup        ReminderTrigger = "startup"
	ReminderTriggerSettingsChange ReminderTrigger = "settings_change"
	ReminderTriggerManual         ReminderTrigger = "manual"
)
