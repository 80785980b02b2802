package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/remindyoursubs/subtrack/internal/app/service/reminder"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/response"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

// DispatchManager is the slice of the reminder service the handlers use.
type DispatchManager interface {
	RunForUser(ctx context.Context, trigger types.ReminderTrigger, userID string) error
	Logs(ctx context.Context, userID string, limit int, unreadOnly bool) ([]*models.ReminderLog, error)
	MarkRead(ctx context.Context, userID, logID string) (*models.ReminderLog, error)
}

// @Summary      Run Reminder Check
// @Description  Manually triggers a dispatch pass for the authenticated user.
// @Tags         Reminder
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/reminders/check [post]
func ApiCheckReminders(svc DispatchManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.RunForUser(c.Request.Context(), types.ReminderTriggerManual, c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      List Reminder Log
// @Description  Returns the user's most recent reminder attempts, newest first.
// @Tags         Reminder
// @Produce      json
// @Param        limit query int false "Max entries (default 50, cap 200)"
// @Param        unread query bool false "Only entries not yet opened"
// @Success      200  {object}  handlers.RespReminderLogs
// @Router       /api/v1/reminders/log [get]
func ApiListReminderLogs(svc DispatchManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid limit"))
				return
			}
			limit = n
		}

		logs, err := svc.Logs(c.Request.Context(), c.GetString("userID"), limit, c.Query("unread") == "true")
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(logs))
	}
}

// @Summary      Mark Reminder Log Read
// @Tags         Reminder
// @Produce      json
// @Param        id path string true "Log entry ID"
// @Success      200  {object}  handlers.RespReminderLog
// @Router       /api/v1/reminders/log/{id}/read [put]
func ApiMarkReminderLogRead(svc DispatchManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := svc.MarkRead(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, reminder.ErrLogNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(entry))
	}
}

func RegisterReminderRoutes(r gin.IRouter, svc DispatchManager) {
	r.POST("/reminders/check", ApiCheckReminders(svc))
	r.GET("/reminders/log", ApiListReminderLogs(svc))
	r.PUT("/reminders/log/:id/read", ApiMarkReminderLogRead(svc))
}
