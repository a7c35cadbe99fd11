package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/usuarios-api/internal/interface/http"
)

// UsuarioModule wires usuario and observacao handlers behind bearer auth.
// Protected: everything under /usuarios except the login route.
type UsuarioModule struct {
	Usuarios    *handlers.UsuarioHandler
	Observacoes *handlers.ObservacaoHandler
	Auth        gin.HandlerFunc
}

func NewUsuarioModule(u *handlers.UsuarioHandler, o *handlers.ObservacaoHandler, auth gin.HandlerFunc) *UsuarioModule {
	return &UsuarioModule{Usuarios: u, Observacoes: o, Auth: auth}
}

func (m *UsuarioModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/usuarios", m.Auth)
	{
		g.GET("", m.Usuarios.List)
		g.POST("", m.Usuarios.Create)
		g.GET("/cpf/:cpf", m.Usuarios.Get)
		g.PUT("/cpf/:cpf", m.Usuarios.Update)
		g.DELETE("/cpf/:cpf", m.Usuarios.Delete)

		g.POST("/cpf/:cpf/observacoes", m.Observacoes.Create)
		g.GET("/cpf/:cpf/observacoes", m.Observacoes.List)
		g.DELETE("/cpf/:cpf/observacoes/:id", m.Observacoes.Delete)

		g.PUT("/:cpf/relatorio", m.Usuarios.UpdateRelatorio)
	}
}
