package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/config"
	"github.com/oksasatya/usuarios-api/pkg/helpers"
	"github.com/oksasatya/usuarios-api/pkg/metrics"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthNotConfigured  = errors.New("login table not configured")
)

// AuthService checks credentials against the injected login table and issues tokens.
type AuthService struct {
	Users  map[string]config.Credential
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users map[string]config.Credential, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Role      string
}

func (s *AuthService) Login(ctx context.Context, login, senha string) (*LoginResult, error) {
	if len(s.Users) == 0 || s.JWT == nil || len(s.JWT.Secret) == 0 {
		return nil, ErrAuthNotConfigured
	}
	cred, ok := s.Users[login]
	if !ok || !helpers.MatchPassword(cred.Senha, senha) {
		metrics.ObserveLogin("rejected")
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Issue(login, cred.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("login", login).Error("generate token failed")
		}
		metrics.ObserveLogin("error")
		return nil, err
	}
	metrics.ObserveLogin("ok")
	return &LoginResult{Token: token, ExpiresAt: exp, Role: cred.Role}, nil
}
