package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/internal/application"
	"github.com/oksasatya/usuarios-api/internal/interface/middleware"
	"github.com/oksasatya/usuarios-api/pkg/response"
	"github.com/oksasatya/usuarios-api/pkg/validation"
)

type ObservacaoHandler struct {
	Svc    *application.ObservacaoService
	Logger *logrus.Logger
}

func NewObservacaoHandler(svc *application.ObservacaoService, logger *logrus.Logger) *ObservacaoHandler {
	return &ObservacaoHandler{Svc: svc, Logger: logger}
}

type createObservacaoRequest struct {
	Texto       string     `json:"texto" binding:"required,notblank"`
	Data        *time.Time `json:"data"`
	Complemento *string    `json:"complemento"`
}

// Create POST /usuarios/cpf/:cpf/observacoes
func (h *ObservacaoHandler) Create(c *gin.Context) {
	var req createObservacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return
	}
	in := application.NovaObservacao{Texto: req.Texto, Data: req.Data, Complemento: req.Complemento}
	o, err := h.Svc.Add(c.Request.Context(), c.Param("cpf"), in, c.GetString(middleware.CtxLoginKey))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, toObservacaoResponse(o))
}

// List GET /usuarios/cpf/:cpf/observacoes
func (h *ObservacaoHandler) List(c *gin.Context) {
	list, err := h.Svc.ListByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toObservacaoList(list))
}

// Delete DELETE /usuarios/cpf/:cpf/observacoes/:id
// The note is looked up by id alone.
func (h *ObservacaoHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Observação deletada com sucesso")
}
