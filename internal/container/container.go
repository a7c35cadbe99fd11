package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/config"
	repo "github.com/oksasatya/usuarios-api/internal/domain/repository"
	"github.com/oksasatya/usuarios-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router wires its modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	eventPub   *helpers.EventPublisher

	usuarioRepo    repo.UsuarioRepository
	observacaoRepo repo.ObservacaoRepository
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetEventPublisher(p *helpers.EventPublisher) { eventPub = p }
func GetEventPublisher() *helpers.EventPublisher  { return eventPub }

func SetRepositories(u repo.UsuarioRepository, o repo.ObservacaoRepository) {
	usuarioRepo, observacaoRepo = u, o
}
func GetUsuarioRepo() repo.UsuarioRepository       { return usuarioRepo }
func GetObservacaoRepo() repo.ObservacaoRepository { return observacaoRepo }
