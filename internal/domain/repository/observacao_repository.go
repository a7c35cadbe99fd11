package repository

import (
	"context"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
)

// ObservacaoRepository defines the persistence operations for notes.
// Create and DeleteByID also keep the owner's Observacoes list in sync.
type ObservacaoRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Observacao, error)
	Create(ctx context.Context, o *entity.Observacao) error
	GetByID(ctx context.Context, id string) (*entity.Observacao, error)
	DeleteByID(ctx context.Context, id string) (*entity.Observacao, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)
}
