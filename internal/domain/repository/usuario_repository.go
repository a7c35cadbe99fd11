package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateCPF = errors.New("duplicate cpf")
)

// UsuarioRepository defines the persistence operations for usuarios.
type UsuarioRepository interface {
	List(ctx context.Context) ([]entity.Usuario, error)
	Create(ctx context.Context, u *entity.Usuario) error
	GetByCPF(ctx context.Context, cpf string) (*entity.Usuario, error)
	UpdateByCPF(ctx context.Context, cpf string, patch entity.UsuarioPatch) (*entity.Usuario, error)
	UpdateRelatorio(ctx context.Context, cpf, relatorio string) (*entity.Usuario, error)
	// DeleteByCPF removes the usuario together with every observacao it owns.
	DeleteByCPF(ctx context.Context, cpf string) (*entity.Usuario, error)
}
