package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
	repo "github.com/oksasatya/usuarios-api/internal/domain/repository"
)

var (
	ErrUsuarioNotFound = errors.New("usuario not found")
	ErrCPFInUse        = errors.New("cpf already in use")
)

type UsuarioService struct {
	Repo   repo.UsuarioRepository
	Events EventPublisher
	Logger *logrus.Logger
}

func NewUsuarioService(r repo.UsuarioRepository, events EventPublisher, logger *logrus.Logger) *UsuarioService {
	return &UsuarioService{Repo: r, Events: events, Logger: logger}
}

func (s *UsuarioService) List(ctx context.Context) ([]entity.Usuario, error) {
	return s.Repo.List(ctx)
}

func (s *UsuarioService) Create(ctx context.Context, nome, cpf string) (*entity.Usuario, error) {
	u := &entity.Usuario{Nome: nome, CPF: cpf}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateCPF) {
			return nil, ErrCPFInUse
		}
		return nil, err
	}
	publish(ctx, s.Events, s.Logger, EventUsuarioCriado, UsuarioEvent{ID: u.ID, CPF: u.CPF, Nome: u.Nome})
	return u, nil
}

func (s *UsuarioService) GetByCPF(ctx context.Context, cpf string) (*entity.Usuario, error) {
	u, err := s.Repo.GetByCPF(ctx, cpf)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUsuarioNotFound
	}
	return u, err
}

// Update rejects a new CPF owned by a different usuario before writing.
// Re-sending the usuario's own CPF is allowed.
func (s *UsuarioService) Update(ctx context.Context, cpf string, patch entity.UsuarioPatch) (*entity.Usuario, error) {
	if patch.CPF != nil && *patch.CPF != cpf {
		_, err := s.Repo.GetByCPF(ctx, *patch.CPF)
		switch {
		case err == nil:
			return nil, ErrCPFInUse
		case !errors.Is(err, repo.ErrNotFound):
			return nil, err
		}
	}
	u, err := s.Repo.UpdateByCPF(ctx, cpf, patch)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil, ErrUsuarioNotFound
	case errors.Is(err, repo.ErrDuplicateCPF):
		return nil, ErrCPFInUse
	case err != nil:
		return nil, err
	}
	publish(ctx, s.Events, s.Logger, EventUsuarioAtualizado, UsuarioEvent{ID: u.ID, CPF: u.CPF, Nome: u.Nome})
	return u, nil
}

func (s *UsuarioService) UpdateRelatorio(ctx context.Context, cpf, relatorio string) (*entity.Usuario, error) {
	u, err := s.Repo.UpdateRelatorio(ctx, cpf, relatorio)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUsuarioNotFound
	}
	return u, err
}

// Delete removes the usuario and, through the repository, all of its observacoes.
func (s *UsuarioService) Delete(ctx context.Context, cpf string) (*entity.Usuario, error) {
	u, err := s.Repo.DeleteByCPF(ctx, cpf)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUsuarioNotFound
	}
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, s.Logger, EventUsuarioRemovido, UsuarioEvent{ID: u.ID, CPF: u.CPF, Nome: u.Nome})
	return u, nil
}
