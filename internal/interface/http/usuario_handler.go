package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/internal/application"
	"github.com/oksasatya/usuarios-api/internal/domain/entity"
	"github.com/oksasatya/usuarios-api/pkg/response"
	"github.com/oksasatya/usuarios-api/pkg/validation"
)

type UsuarioHandler struct {
	Svc    *application.UsuarioService
	Logger *logrus.Logger
}

func NewUsuarioHandler(svc *application.UsuarioService, logger *logrus.Logger) *UsuarioHandler {
	return &UsuarioHandler{Svc: svc, Logger: logger}
}

type createUsuarioRequest struct {
	Nome string `json:"nome" binding:"required,notblank"`
	CPF  string `json:"cpf" binding:"required,notblank"`
}

type updateUsuarioRequest struct {
	Nome *string `json:"nome" binding:"omitempty,notblank"`
	CPF  *string `json:"cpf" binding:"omitempty,notblank"`
}

type relatorioRequest struct {
	Relatorio *string `json:"relatorio" binding:"required"`
}

// List GET /usuarios
func (h *UsuarioHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toUsuarioList(list))
}

// Create POST /usuarios
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req createUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), req.Nome, req.CPF)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, toUsuarioResponse(u))
}

// Get GET /usuarios/cpf/:cpf
func (h *UsuarioHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toUsuarioResponse(u))
}

// Update PUT /usuarios/cpf/:cpf
func (h *UsuarioHandler) Update(c *gin.Context) {
	var req updateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return
	}
	patch := entity.UsuarioPatch{Nome: req.Nome, CPF: req.CPF}
	if patch.Empty() {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, map[string]string{"payload": "nome or cpf is required"})
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), c.Param("cpf"), patch)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toUsuarioResponse(u))
}

// Delete DELETE /usuarios/cpf/:cpf
func (h *UsuarioHandler) Delete(c *gin.Context) {
	if _, err := h.Svc.Delete(c.Request.Context(), c.Param("cpf")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Usuário e observações deletados com sucesso")
}

// UpdateRelatorio PUT /usuarios/:cpf/relatorio
func (h *UsuarioHandler) UpdateRelatorio(c *gin.Context) {
	var req relatorioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateRelatorio(c.Request.Context(), c.Param("cpf"), *req.Relatorio)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toUsuarioResponse(u))
}
