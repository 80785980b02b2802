package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindyoursubs/subtrack/internal/app/service/settings"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

type stubSettingsManager struct {
	updates int
}

func (s *stubSettingsManager) Get(_ context.Context, userID string) (*models.ReminderSettings, error) {
	return &models.ReminderSettings{UserID: userID, LeadTimeDays: 3}, nil
}

func (s *stubSettingsManager) Update(_ context.Context, userID string, req *settings.UpdateSettingsRequest) (*models.ReminderSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.updates++
	return &models.ReminderSettings{
		UserID:         userID,
		RecipientEmail: req.RecipientEmail,
		LeadTimeDays:   req.LeadTimeDays,
	}, nil
}

type stubDispatcher struct {
	runs []types.ReminderTrigger
}

func (d *stubDispatcher) RunForUser(_ context.Context, trigger types.ReminderTrigger, _ string) error {
	d.runs = append(d.runs, trigger)
	return nil
}

func (d *stubDispatcher) Logs(context.Context, string, int, bool) ([]*models.ReminderLog, error) {
	return nil, nil
}

func (d *stubDispatcher) MarkRead(context.Context, string, string) (*models.ReminderLog, error) {
	return nil, nil
}

func settingsRouter(svc *stubSettingsManager, dispatcher *stubDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) { c.Set("userID", "user-1") })
	RegisterSettingsRoutes(api, svc, dispatcher)
	return r
}

func TestUpdateSettingsTriggersDispatchRun(t *testing.T) {
	svc := &stubSettingsManager{}
	dispatcher := &stubDispatcher{}
	r := settingsRouter(svc, dispatcher)

	body := `{"recipient_email":"me@example.com","lead_time_days":3}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/reminders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":0`)
	assert.Equal(t, 1, svc.updates)

	// A saved update re-runs dispatch for this user exactly once.
	require.Len(t, dispatcher.runs, 1)
	assert.Equal(t, types.ReminderTriggerSettingsChange, dispatcher.runs[0])
}

func TestUpdateSettingsRejectedWithoutDispatchRun(t *testing.T) {
	svc := &stubSettingsManager{}
	dispatcher := &stubDispatcher{}
	r := settingsRouter(svc, dispatcher)

	// Lead time above the accepted range fails validation.
	body := `{"recipient_email":"me@example.com","lead_time_days":9}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/reminders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":40000`)
	assert.Zero(t, svc.updates)
	assert.Empty(t, dispatcher.runs)
}

func TestGetSettings(t *testing.T) {
	svc := &stubSettingsManager{}
	dispatcher := &stubDispatcher{}
	r := settingsRouter(svc, dispatcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings/reminders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lead_time_days":3`)
	assert.Empty(t, dispatcher.runs)
}
