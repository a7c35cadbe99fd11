package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/pkg/helpers"
	"github.com/oksasatya/usuarios-api/pkg/response"
)

const (
	CtxLoginKey = "login"
	CtxRoleKey  = "role"
)

// Auth validates the bearer token in the Authorization header.
// It sets login and role in the Gin context on success.
func Auth(jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := helpers.BearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var claims *helpers.Claims
			claims, err = jwt.Verify(token)
			if err == nil {
				c.Set(CtxLoginKey, claims.Login)
				c.Set(CtxRoleKey, claims.Role)
				c.Next()
				return
			}
		}

		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(CtxRequestIDKey),
			}).Debug("bearer token rejected")
		}
		switch {
		case errors.Is(err, helpers.ErrTokenMissing):
			response.Error(c, http.StatusUnauthorized, "Token não fornecido.", nil)
		case errors.Is(err, helpers.ErrTokenExpired):
			response.Error(c, http.StatusUnauthorized, "Token expirado.", nil)
		default:
			response.Error(c, http.StatusUnauthorized, "Token inválido.", nil)
		}
	}
}
