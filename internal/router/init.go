package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/config"
	"github.com/oksasatya/usuarios-api/internal/application"
	"github.com/oksasatya/usuarios-api/internal/container"
	repo "github.com/oksasatya/usuarios-api/internal/domain/repository"
	handlers "github.com/oksasatya/usuarios-api/internal/interface/http"
	"github.com/oksasatya/usuarios-api/internal/interface/middleware"
	"github.com/oksasatya/usuarios-api/internal/router/modules"
	"github.com/oksasatya/usuarios-api/pkg/helpers"
)

// Deps is everything the modules need. Redis and Events are optional.
type Deps struct {
	Config      *config.Config
	Logger      *logrus.Logger
	JWT         *helpers.JWTManager
	Redis       *redis.Client
	Usuarios    repo.UsuarioRepository
	Observacoes repo.ObservacaoRepository
	Events      application.EventPublisher
}

// DepsFromContainer collects the singletons registered at startup.
func DepsFromContainer() Deps {
	d := Deps{
		Config:      container.GetConfig(),
		Logger:      container.GetLogger(),
		JWT:         container.GetJWT(),
		Redis:       container.GetRedis(),
		Usuarios:    container.GetUsuarioRepo(),
		Observacoes: container.GetObservacaoRepo(),
	}
	// avoid a typed-nil interface when events are disabled
	if pub := container.GetEventPublisher(); pub != nil {
		d.Events = pub
	}
	return d
}

// InitModules builds services and handlers and registers every module with the registry.
func InitModules(r *Registry, d Deps) {
	cfg := d.Config

	authSvc := application.NewAuthService(cfg.AuthUsers, d.JWT, d.Logger)
	usuarioSvc := application.NewUsuarioService(d.Usuarios, d.Events, d.Logger)
	observacaoSvc := application.NewObservacaoService(d.Usuarios, d.Observacoes, d.Events, d.Logger)

	var loginLimiter gin.HandlerFunc
	if cfg.RateLimitEnabled && d.Redis != nil {
		var allow middleware.AllowFunc
		if cfg.RateLimitSkipPrivate {
			allow = middleware.AllowPrivateIP()
		}
		loginLimiter = middleware.RateLimit(d.Redis, cfg.LoginRateLimit, cfg.LoginRateWindow, middleware.KeyByIPAndPath(), allow, d.Logger)
	}

	r.Add(modules.NewSystemModule(cfg.MetricsEnabled))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, d.Logger), loginLimiter))
	r.Add(modules.NewUsuarioModule(
		handlers.NewUsuarioHandler(usuarioSvc, d.Logger),
		handlers.NewObservacaoHandler(observacaoSvc, d.Logger),
		middleware.Auth(d.JWT, d.Logger),
	))
}

// NewEngine returns a gin engine with global middleware and all modules registered.
func NewEngine(d Deps) *gin.Engine {
	cfg := d.Config

	r := gin.New()
	if err := middleware.ConfigureClientIP(r, cfg.TrustedProxyList()); err != nil {
		helpers.LogError(d.Logger, "invalid TRUSTED_PROXIES, trusting no proxy", err, nil)
		_ = middleware.ConfigureClientIP(r, nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
	}
	if cfg.HTTPLogEnabled {
		r.Use(middleware.RequestLogger(d.Logger))
	}
	r.Use(cors.New(corsConfig(cfg.CORSOrigins())))

	reg := NewRegistry(r, "")
	InitModules(reg, d)
	reg.RegisterAll()
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
