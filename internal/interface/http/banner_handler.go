package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Banner = "API de Usuários e Observações"

// Index GET /
func Index(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}
