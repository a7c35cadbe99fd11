package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/usuarios-api/config"
	"github.com/oksasatya/usuarios-api/internal/container"
	"github.com/oksasatya/usuarios-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/usuarios-api/internal/infrastructure/postgres"
	"github.com/oksasatya/usuarios-api/internal/router"
	"github.com/oksasatya/usuarios-api/pkg/helpers"
	"github.com/oksasatya/usuarios-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	switch cfg.DBDriver {
	case "memory":
		store := memory.NewStore()
		container.SetRepositories(store.Usuarios(), store.Observacoes())
		logger.Warn("using in-memory storage; data is lost on restart")
	default:
		if cfg.MigrationsEnabled {
			if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
				log.Fatalf("migration failed: %v", err)
			}
		}
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		container.SetRepositories(pginfra.NewUsuarioRepository(pool), pginfra.NewObservacaoRepository(pool))
	}

	// Redis backs the login rate limiter only
	if cfg.RateLimitEnabled {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			logger.WithError(err).Warn("redis unreachable, login limiter fails open until it recovers")
		}
		defer func() { _ = rdb.Close() }()
		container.SetRedis(rdb)
	}

	if cfg.EventsEnabled {
		pub, err := helpers.NewEventPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue, cfg.AppName)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, lifecycle events disabled")
		} else {
			defer pub.Close()
			container.SetEventPublisher(pub)
		}
	}

	if cfg.JWTSecret == "" || len(cfg.AuthUsers) == 0 {
		logger.Warn("JWT_SECRET or USUARIOS_AUTENTICACAO not set; login will answer 500")
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetJWT(helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL, cfg.AppName))

	r := router.NewEngine(router.DepsFromContainer())

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
