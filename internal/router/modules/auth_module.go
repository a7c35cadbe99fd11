package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/usuarios-api/internal/interface/http"
)

// AuthModule exposes the public login route.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Limiter gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, limiter gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Limiter: limiter}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	chain := []gin.HandlerFunc{}
	if m.Limiter != nil {
		chain = append(chain, m.Limiter)
	}
	chain = append(chain, m.Handler.Login)
	rg.POST("/usuarios/login", chain...)
}
