package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/internal/application"
	"github.com/oksasatya/usuarios-api/pkg/helpers"
	"github.com/oksasatya/usuarios-api/pkg/response"
)

const (
	msgUsuarioNotFound    = "Usuário não encontrado"
	msgObservacaoNotFound = "Observação não encontrada"
	msgCPFInUse           = "CPF já está em uso"
	msgInvalidPayload     = "Dados inválidos"
)

// fail maps service errors to a status code. Anything unrecognised is a 500
// whose message is the underlying error text.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrUsuarioNotFound):
		response.Error(c, http.StatusNotFound, msgUsuarioNotFound, nil)
	case errors.Is(err, application.ErrObservacaoNotFound):
		response.Error(c, http.StatusNotFound, msgObservacaoNotFound, nil)
	case errors.Is(err, application.ErrCPFInUse):
		response.Error(c, http.StatusBadRequest, msgCPFInUse, nil)
	default:
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		})
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
	}
}
