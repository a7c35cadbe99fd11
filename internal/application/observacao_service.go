package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
	repo "github.com/oksasatya/usuarios-api/internal/domain/repository"
)

var ErrObservacaoNotFound = errors.New("observacao not found")

type ObservacaoService struct {
	Usuarios    repo.UsuarioRepository
	Observacoes repo.ObservacaoRepository
	Events      EventPublisher
	Logger      *logrus.Logger
	Now         func() time.Time
}

func NewObservacaoService(usuarios repo.UsuarioRepository, observacoes repo.ObservacaoRepository, events EventPublisher, logger *logrus.Logger) *ObservacaoService {
	return &ObservacaoService{Usuarios: usuarios, Observacoes: observacoes, Events: events, Logger: logger, Now: time.Now}
}

// NovaObservacao is the caller-supplied part of a note. A nil Data means "now";
// any supplied value is stored as-is.
type NovaObservacao struct {
	Texto       string
	Data        *time.Time
	Complemento *string
}

func (s *ObservacaoService) owner(ctx context.Context, cpf string) (*entity.Usuario, error) {
	u, err := s.Usuarios.GetByCPF(ctx, cpf)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUsuarioNotFound
	}
	return u, err
}

// Add creates a note for the usuario identified by cpf. criadoPor is the
// caller's login claim and may be empty.
func (s *ObservacaoService) Add(ctx context.Context, cpf string, in NovaObservacao, criadoPor string) (*entity.Observacao, error) {
	u, err := s.owner(ctx, cpf)
	if err != nil {
		return nil, err
	}
	o := &entity.Observacao{
		Texto:       in.Texto,
		Complemento: in.Complemento,
		UsuarioID:   u.ID,
	}
	if in.Data != nil {
		o.Data = *in.Data
	} else {
		o.Data = s.Now()
	}
	if criadoPor != "" {
		o.CriadoPor = &criadoPor
	}
	if err := s.Observacoes.Create(ctx, o); err != nil {
		// owner removed between lookup and insert
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	publish(ctx, s.Events, s.Logger, EventObservacaoCriada, ObservacaoEvent{ID: o.ID, UsuarioID: o.UsuarioID, CriadoPor: criadoPor})
	return o, nil
}

func (s *ObservacaoService) ListByCPF(ctx context.Context, cpf string) ([]entity.Observacao, error) {
	u, err := s.owner(ctx, cpf)
	if err != nil {
		return nil, err
	}
	return s.Observacoes.ListByOwner(ctx, u.ID)
}

func (s *ObservacaoService) Delete(ctx context.Context, id string) error {
	o, err := s.Observacoes.DeleteByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrObservacaoNotFound
	}
	if err != nil {
		return err
	}
	ev := ObservacaoEvent{ID: o.ID, UsuarioID: o.UsuarioID}
	if o.CriadoPor != nil {
		ev.CriadoPor = *o.CriadoPor
	}
	publish(ctx, s.Events, s.Logger, EventObservacaoRemovida, ev)
	return nil
}
