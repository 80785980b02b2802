package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remindyoursubs/subtrack/internal/app/service/settings"
	"github.com/remindyoursubs/subtrack/internal/models"
	"github.com/remindyoursubs/subtrack/pkg/response"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

// SettingsManager is the slice of the settings service the handlers use.
type SettingsManager interface {
	Get(ctx context.Context, userID string) (*models.ReminderSettings, error)
	Update(ctx context.Context, userID string, req *settings.UpdateSettingsRequest) (*models.ReminderSettings, error)
}

// @Summary      Get Reminder Settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  handlers.RespReminderSettings
// @Router       /api/v1/settings/reminders [get]
func ApiGetReminderSettings(svc SettingsManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Get(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Update Reminder Settings
// @Description  Saves recipient, lead time and API key, then immediately re-runs a dispatch pass so a corrected configuration takes effect without waiting.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body settings.UpdateSettingsRequest true "Settings payload"
// @Success      200  {object}  handlers.RespReminderSettings
// @Router       /api/v1/settings/reminders [put]
func ApiUpdateReminderSettings(svc SettingsManager, dispatcher DispatchManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req settings.UpdateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		userID := c.GetString("userID")
		res, err := svc.Update(c.Request.Context(), userID, &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		// Settings change triggers a fresh dispatch pass for this user.
		if err := dispatcher.RunForUser(c.Request.Context(), types.ReminderTriggerSettingsChange, userID); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterSettingsRoutes(r gin.IRouter, svc SettingsManager, dispatcher DispatchManager) {
	r.GET("/settings/reminders", ApiGetReminderSettings(svc))
	r.PUT("/settings/reminders", ApiUpdateReminderSettings(svc, dispatcher))
}
