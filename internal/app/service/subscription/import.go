package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/tool"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

// importSchema validates bulk-import payloads (the export format of the
// local-storage variant of the app) before anything touches the database.
const importSchema = `{
  "type": "object",
  "required": ["subscriptions"],
  "properties": {
    "subscriptions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "price", "billing_day"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "price": {"type": "integer", "minimum": 0},
          "billing_day": {"type": "integer", "minimum": 1, "maximum": 31},
          "is_active": {"type": "boolean"},
          "reminder_enabled": {"type": "boolean"}
        }
      }
    }
  }
}`

var importSchemaLoader = gojsonschema.NewStringLoader(importSchema)

type importPayload struct {
	Subscriptions []struct {
		Name            string `json:"name"`
		Price           int64  `json:"price"`
		BillingDay      int    `json:"billing_day"`
		IsActive        *bool  `json:"is_active"`
		ReminderEnabled *bool  `json:"reminder_enabled"`
	} `json:"subscriptions"`
}

// Import validates and inserts a batch of subscriptions for the user.
// The whole batch is rejected when the schema does not match; insertion
// is all-or-nothing inside one transaction.
func (s *Service) Import(ctx context.Context, userID string, payload []byte) ([]*models.Subscription, error) {
	result, err := gojsonschema.Validate(importSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to validate import payload: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid import payload: %s", strings.Join(msgs, "; "))
	}

	var parsed importPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode import payload: %w", err)
	}

	subs := make([]*models.Subscription, 0, len(parsed.Subscriptions))
	for _, item := range parsed.Subscriptions {
		subs = append(subs, &models.Subscription{
			ID:              tool.GenerateUUIDV7(),
			UserID:          userID,
			Name:            item.Name,
			Price:           item.Price,
			BillingDay:      item.BillingDay,
			IsActive:        item.IsActive == nil || *item.IsActive,
			ReminderEnabled: item.ReminderEnabled == nil || *item.ReminderEnabled,
		})
	}

	if err := s.db.WithContext(ctx).Create(subs).Error; err != nil {
		return nil, fmt.Errorf("failed to import subscriptions: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("imported subscriptions", "user_id", userID, "count", len(subs))
	for _, sub := range subs {
		s.LogChange(ctx, types.SubscriptionChangeReasonImport, nil, sub, nil)
	}
	return subs, nil
}
