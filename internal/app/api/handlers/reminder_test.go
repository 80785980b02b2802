package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindyoursubs/subtrack/internal/app/service/reminder"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

type recordingDispatcher struct {
	runs       []types.ReminderTrigger
	lastUnread bool
	readIDs    []string
}

func (d *recordingDispatcher) RunForUser(_ context.Context, trigger types.ReminderTrigger, _ string) error {
	d.runs = append(d.runs, trigger)
	return nil
}

func (d *recordingDispatcher) Logs(_ context.Context, _ string, _ int, unreadOnly bool) ([]*models.ReminderLog, error) {
	d.lastUnread = unreadOnly
	return []*models.ReminderLog{{ID: "log-1", Name: "Netflix", Read: !unreadOnly}}, nil
}

func (d *recordingDispatcher) MarkRead(_ context.Context, _ string, logID string) (*models.ReminderLog, error) {
	if logID == "missing" {
		return nil, reminder.ErrLogNotFound
	}
	d.readIDs = append(d.readIDs, logID)
	now := time.Now()
	return &models.ReminderLog{ID: logID, Read: true, ReadAt: &now}, nil
}

func reminderRouter(d *recordingDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1", func(c *gin.Context) { c.Set("userID", "user-1") })
	RegisterReminderRoutes(api, d)
	return r
}

func TestCheckRemindersUsesManualTrigger(t *testing.T) {
	d := &recordingDispatcher{}
	r := reminderRouter(d)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/check", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, d.runs, 1)
	assert.Equal(t, types.ReminderTriggerManual, d.runs[0])
}

func TestListReminderLogsUnreadFilter(t *testing.T) {
	d := &recordingDispatcher{}
	r := reminderRouter(d)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/log?unread=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, d.lastUnread)
	assert.Contains(t, w.Body.String(), `"is_read":false`)
}

func TestMarkReminderLogRead(t *testing.T) {
	d := &recordingDispatcher{}
	r := reminderRouter(d)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/reminders/log/log-1/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"log-1"}, d.readIDs)
	assert.Contains(t, w.Body.String(), `"is_read":true`)
}

func TestMarkReminderLogReadNotFound(t *testing.T) {
	d := &recordingDispatcher{}
	r := reminderRouter(d)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/reminders/log/missing/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":40400`)
	assert.Empty(t, d.readIDs)
}
