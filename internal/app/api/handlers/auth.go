package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remindyoursubs/subtrack/internal/app/service/auth"
	"github.com/remindyoursubs/subtrack/pkg/response"
)

// @Summary      Register
// @Description  Creates an account and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body auth.Credentials true "Email and password"
// @Success      200  {object}  handlers.RespAuth
// @Router       /auth/register [post]
func ApiRegister(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds auth.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		res, err := svc.Register(c.Request.Context(), &creds)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Login
// @Description  Exchanges credentials for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body auth.Credentials true "Email and password"
// @Success      200  {object}  handlers.RespAuth
// @Router       /auth/login [post]
func ApiLogin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds auth.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		res, err := svc.Login(c.Request.Context(), &creds)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAuthRoutes(r gin.IRouter, svc *auth.Service) {
	r.POST("/register", ApiRegister(svc))
	r.POST("/login", ApiLogin(svc))
}
