package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subsvc "github.com/remindyoursubs/subtrack/internal/app/service/subscription"
	"github.com/remindyoursubs/subtrack/pkg/response"
	"github.com/remindyoursubs/subtrack/pkg/types"
)

type ScanSubscriptionsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

// @Summary      Scan Subscriptions (Admin)
// @Description  Retrieves a paginated and filterable list of subscriptions across all users.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.ScanSubscriptionsRequest true "Scan request with filters, pagination, and sorting"
// @Success      200  {object}  handlers.RespScanSubscriptions
// @Router       /api/v1/admin/subscriptions/scan [post]
func ApiScanSubscriptions(svc *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScanSubscriptionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		scanReq := &subsvc.ScanSubscriptionsRequest{Filters: req.Filters, From: req.From, Size: req.Size, SortBy: req.SortBy, SortOrder: req.SortOrder}
		res, err := svc.Scan(c.Request.Context(), scanReq)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, svc *subsvc.Service) {
	r.POST("/subscriptions/scan", ApiScanSubscriptions(svc))
}
