package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/remindyoursubs/subtrack/internal/app/service/auth"
	"github.com/remindyoursubs/subtrack/pkg/logctx"
	"github.com/remindyoursubs/subtrack/pkg/response"
)

// AuthRequired validates the Bearer token and stores the authenticated
// user id in gin.Context (key: "userID") and the request's context.Context.
func AuthRequired(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing bearer token"))
			return
		}

		userID, err := authSvc.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set("userID", userID)
		ctx := context.WithValue(c.Request.Context(), logctx.KeyUserID, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
