package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
	"github.com/oksasatya/usuarios-api/internal/domain/repository"
)

const usuarioColumns = `id, nome, cpf, observacoes, relatorio, created_at, updated_at`

type UsuarioRepository struct {
	pool *pgxpool.Pool
}

func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{pool: pool}
}

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	u := &entity.Usuario{}
	if err := row.Scan(&u.ID, &u.Nome, &u.CPF, &u.Observacoes, &u.Relatorio, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if u.Observacoes == nil {
		u.Observacoes = []string{}
	}
	return u, nil
}

func (r *UsuarioRepository) List(ctx context.Context) ([]entity.Usuario, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+usuarioColumns+` FROM usuarios ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Usuario{}
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Observacoes = []string{}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (id, nome, cpf, relatorio)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, u.ID, u.Nome, u.CPF, u.Relatorio)

	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateCPF
		}
		return err
	}
	return nil
}

func (r *UsuarioRepository) GetByCPF(ctx context.Context, cpf string) (*entity.Usuario, error) {
	return scanUsuario(r.pool.QueryRow(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE cpf = $1`, cpf))
}

func (r *UsuarioRepository) UpdateByCPF(ctx context.Context, cpf string, patch entity.UsuarioPatch) (*entity.Usuario, error) {
	u, err := scanUsuario(r.pool.QueryRow(ctx, `
		UPDATE usuarios
		SET nome = COALESCE($2, nome), cpf = COALESCE($3, cpf), updated_at = $4
		WHERE cpf = $1
		RETURNING `+usuarioColumns,
		cpf, patch.Nome, patch.CPF, time.Now()))
	if err != nil && isUniqueViolation(err) {
		return nil, repository.ErrDuplicateCPF
	}
	return u, err
}

func (r *UsuarioRepository) UpdateRelatorio(ctx context.Context, cpf, relatorio string) (*entity.Usuario, error) {
	return scanUsuario(r.pool.QueryRow(ctx, `
		UPDATE usuarios
		SET relatorio = $2, updated_at = $3
		WHERE cpf = $1
		RETURNING `+usuarioColumns,
		cpf, relatorio, time.Now()))
}

// DeleteByCPF locks the usuario row, removes its observacoes and then the usuario, in one transaction.
func (r *UsuarioRepository) DeleteByCPF(ctx context.Context, cpf string) (*entity.Usuario, error) {
	var deleted *entity.Usuario
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		u, err := scanUsuario(tx.QueryRow(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE cpf = $1 FOR UPDATE`, cpf))
		if err != nil {
			return err
		}
		if _, err := deleteObservacoesByOwner(ctx, tx, u.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, u.ID); err != nil {
			return err
		}
		deleted = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)
