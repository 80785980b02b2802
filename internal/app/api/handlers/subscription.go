package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	subsvc "github.com/remindyoursubs/subtrack/internal/app/service/subscription"
	"github.com/remindyoursubs/subtrack/pkg/response"
)

// @Summary      List Subscriptions
// @Description  Returns the user's subscriptions with computed days-left and status, newest first.
// @Tags         Subscription
// @Produce      json
// @Success      200  {object}  handlers.RespSubscriptionList
// @Router       /api/v1/subscriptions [get]
func ApiListSubscriptions(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Create Subscription
// @Description  Creates a recurring subscription for the authenticated user.
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        request body subscription.SubscriptionRequest true "Subscription payload"
// @Success      200  {object}  handlers.RespSubscription
// @Router       /api/v1/subscriptions [post]
func ApiCreateSubscription(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subsvc.SubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		sub, err := svc.Create(c.Request.Context(), c.GetString("userID"), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Get Subscription
// @Tags         Subscription
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Success      200  {object}  handlers.RespSubscription
// @Router       /api/v1/subscriptions/{id} [get]
func ApiGetSubscription(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := svc.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, subsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Update Subscription
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.SubscriptionRequest true "Subscription payload"
// @Success      200  {object}  handlers.RespSubscription
// @Router       /api/v1/subscriptions/{id} [put]
func ApiUpdateSubscription(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subsvc.SubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		sub, err := svc.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
		if err != nil {
			if errors.Is(err, subsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Toggle Reminder
// @Description  Flips the reminder flag for one subscription.
// @Tags         Subscription
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Success      200  {object}  handlers.RespSubscription
// @Router       /api/v1/subscriptions/{id}/toggle-reminder [put]
func ApiToggleReminder(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := svc.ToggleReminder(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, subsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Delete Subscription
// @Tags         Subscription
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/subscriptions/{id} [delete]
func ApiDeleteSubscription(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, subsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Import Subscriptions
// @Description  Bulk-imports subscriptions from an exported JSON document. All-or-nothing.
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Success      200  {object}  handlers.RespSubscriptionImport
// @Router       /api/v1/subscriptions/import [post]
func ApiImportSubscriptions(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		subs, err := svc.Import(c.Request.Context(), c.GetString("userID"), payload)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(subs))
	}
}

func RegisterSubscriptionRoutes(r gin.IRouter, svc *subsvc.Service) {
	r.GET("/subscriptions", ApiListSubscriptions(svc))
	r.POST("/subscriptions", ApiCreateSubscription(svc))
	r.POST("/subscriptions/import", ApiImportSubscriptions(svc))
	r.GET("/subscriptions/:id", ApiGetSubscription(svc))
	r.PUT("/subscriptions/:id", ApiUpdateSubscription(svc))
	r.DELETE("/subscriptions/:id", ApiDeleteSubscription(svc))
	r.PUT("/subscriptions/:id/toggle-reminder", ApiToggleReminder(svc))
}
