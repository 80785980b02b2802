package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pmsvc "github.com/remindyoursubs/subtrack/internal/app/service/paymentmethod"
	"github.com/remindyoursubs/subtrack/pkg/response"
)

// @Summary      List Payment Methods
// @Description  Returns the user's payment methods with computed expiry state.
// @Tags         PaymentMethod
// @Produce      json
// @Success      200  {object}  handlers.RespPaymentMethodList
// @Router       /api/v1/payment-methods [get]
func ApiListPaymentMethods(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Create Payment Method
// @Tags         PaymentMethod
// @Accept       json
// @Produce      json
// @Param        request body paymentmethod.PaymentMethodRequest true "Payment method payload"
// @Success      200  {object}  handlers.RespPaymentMethod
// @Router       /api/v1/payment-methods [post]
func ApiCreatePaymentMethod(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req pmsvc.PaymentMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		item, err := svc.Create(c.Request.Context(), c.GetString("userID"), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Get Payment Method
// @Tags         PaymentMethod
// @Produce      json
// @Param        id path string true "Payment method ID"
// @Success      200  {object}  handlers.RespPaymentMethod
// @Router       /api/v1/payment-methods/{id} [get]
func ApiGetPaymentMethod(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, pmsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Update Payment Method
// @Tags         PaymentMethod
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment method ID"
// @Param        request body paymentmethod.PaymentMethodRequest true "Payment method payload"
// @Success      200  {object}  handlers.RespPaymentMethod
// @Router       /api/v1/payment-methods/{id} [put]
func ApiUpdatePaymentMethod(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req pmsvc.PaymentMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		item, err := svc.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
		if err != nil {
			if errors.Is(err, pmsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      Delete Payment Method
// @Description  Removes the method, its alerts, and unlinks any subscriptions billed to it.
// @Tags         PaymentMethod
// @Produce      json
// @Param        id path string true "Payment method ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/payment-methods/{id} [delete]
func ApiDeletePaymentMethod(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, pmsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Set Default Payment Method
// @Tags         PaymentMethod
// @Produce      json
// @Param        id path string true "Payment method ID"
// @Success      200  {object}  handlers.RespPaymentMethod
// @Router       /api/v1/payment-methods/{id}/set-default [put]
func ApiSetDefaultPaymentMethod(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.SetDefault(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, pmsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(item))
	}
}

// @Summary      List Expiring Payment Methods
// @Tags         PaymentMethod
// @Produce      json
// @Param        days query int false "Window in days (default 30)"
// @Success      200  {object}  handlers.RespPaymentMethodList
// @Router       /api/v1/payment-methods/expiring [get]
func ApiExpiringPaymentMethods(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := 0
		if v := c.Query("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid days"))
				return
			}
			days = n
		}

		items, err := svc.Expiring(c.Request.Context(), c.GetString("userID"), days)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Payment Method Analytics
// @Description  Expiry counts and the subscription spend billed to each method.
// @Tags         PaymentMethod
// @Produce      json
// @Success      200  {object}  handlers.RespPaymentMethodAnalytics
// @Router       /api/v1/payment-methods/analytics [get]
func ApiPaymentMethodAnalytics(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Analytics(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Check Expiry Alerts
// @Description  Scans the user's methods and records expiry alerts where due.
// @Tags         PaymentMethod
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/payment-methods/check-alerts [post]
func ApiCheckPaymentAlerts(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CheckAlerts(c.Request.Context(), c.GetString("userID")); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      List Payment Alerts
// @Tags         PaymentMethod
// @Produce      json
// @Param        unacknowledged query bool false "Only alerts awaiting acknowledge"
// @Success      200  {object}  handlers.RespPaymentAlerts
// @Router       /api/v1/payment-methods/alerts [get]
func ApiListPaymentAlerts(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		alerts, err := svc.Alerts(c.Request.Context(), c.GetString("userID"), c.Query("unacknowledged") == "true")
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(alerts))
	}
}

// @Summary      Acknowledge Payment Alert
// @Tags         PaymentMethod
// @Produce      json
// @Param        id path string true "Alert ID"
// @Success      200  {object}  handlers.RespPaymentAlert
// @Router       /api/v1/payment-methods/alerts/{id}/acknowledge [put]
func ApiAcknowledgePaymentAlert(svc *pmsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		alert, err := svc.Acknowledge(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			if errors.Is(err, pmsvc.ErrAlertNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(alert))
	}
}

func RegisterPaymentMethodRoutes(r gin.IRouter, svc *pmsvc.Service) {
	r.GET("/payment-methods", ApiListPaymentMethods(svc))
	r.POST("/payment-methods", ApiCreatePaymentMethod(svc))
	r.GET("/payment-methods/expiring", ApiExpiringPaymentMethods(svc))
	r.GET("/payment-methods/analytics", ApiPaymentMethodAnalytics(svc))
	r.POST("/payment-methods/check-alerts", ApiCheckPaymentAlerts(svc))
	r.GET("/payment-methods/alerts", ApiListPaymentAlerts(svc))
	r.PUT("/payment-methods/alerts/:id/acknowledge", ApiAcknowledgePaymentAlert(svc))
	r.GET("/payment-methods/:id", ApiGetPaymentMethod(svc))
	r.PUT("/payment-methods/:id", ApiUpdatePaymentMethod(svc))
	r.DELETE("/payment-methods/:id", ApiDeletePaymentMethod(svc))
	r.PUT("/payment-methods/:id/set-default", ApiSetDefaultPaymentMethod(svc))
}
