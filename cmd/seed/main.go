package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/usuarios-api/config"
	"github.com/oksasatya/usuarios-api/internal/application"
	pginfra "github.com/oksasatya/usuarios-api/internal/infrastructure/postgres"
	"github.com/oksasatya/usuarios-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, 0)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	usuarios := application.NewUsuarioService(pginfra.NewUsuarioRepository(pool), nil, logger)
	observacoes := application.NewObservacaoService(pginfra.NewUsuarioRepository(pool), pginfra.NewObservacaoRepository(pool), nil, logger)

	nome, cpf := "Usuária Demo", "00000000191"
	u, err := usuarios.Create(ctx, nome, cpf)
	if errors.Is(err, application.ErrCPFInUse) {
		logger.WithField("cpf", cpf).Info("demo usuario already seeded")
		return
	}
	if err != nil {
		log.Fatalf("failed to seed usuario: %v", err)
	}

	complemento := "criada pelo seed"
	o, err := observacoes.Add(ctx, cpf, application.NovaObservacao{Texto: "Primeira observação", Complemento: &complemento}, "seed")
	if err != nil {
		log.Fatalf("failed to seed observacao: %v", err)
	}
	logger.WithField("usuario_id", u.ID).WithField("observacao_id", o.ID).Info("seeded demo usuario with one observacao")
}
