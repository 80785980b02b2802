package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subsvc "github.com/remindyoursubs/subtrack/internal/app/service/subscription"
	"github.com/remindyoursubs/subtrack/pkg/response"
)

// @Summary      Monthly Expense
// @Description  Sums the user's active subscriptions for the current month.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  handlers.RespMonthlyExpense
// @Router       /api/v1/expense/monthly [get]
func ApiMonthlyExpense(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.MonthlyExpense(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Analytics Dashboard
// @Description  Six-month trend, upcoming bills and price distribution.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  handlers.RespAnalytics
// @Router       /api/v1/analytics [get]
func ApiAnalytics(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Analytics(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAnalyticsRoutes(r gin.IRouter, svc *subsvc.Service) {
	r.GET("/expense/monthly", ApiMonthlyExpense(svc))
	r.GET("/analytics", ApiAnalytics(svc))
}
