package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/internal/application"
	"github.com/oksasatya/usuarios-api/pkg/response"
	"github.com/oksasatya/usuarios-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Login string `json:"login" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login POST /usuarios/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Login e senha são obrigatórios e devem ser strings.", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Login, req.Senha)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		if h.Logger != nil {
			h.Logger.WithField("login", req.Login).Warn("login rejected")
		}
		response.Error(c, http.StatusUnauthorized, "Credenciais inválidas.", nil)
		return
	case errors.Is(err, application.ErrAuthNotConfigured):
		if h.Logger != nil {
			h.Logger.Error("login requested but no credentials or JWT secret are configured")
		}
		response.Error(c, http.StatusInternalServerError, "Erro interno no servidor.", nil)
		return
	case err != nil:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error(c, http.StatusInternalServerError, "Erro interno no servidor.", nil)
		return
	}
	response.JSON(c, http.StatusOK, loginResponse{Token: res.Token})
}
