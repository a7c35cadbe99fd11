package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
	"github.com/oksasatya/usuarios-api/internal/domain/repository"
)

const observacaoColumns = `id, texto, data, complemento, usuario_id, criado_por`

type ObservacaoRepository struct {
	pool *pgxpool.Pool
}

func NewObservacaoRepository(pool *pgxpool.Pool) *ObservacaoRepository {
	return &ObservacaoRepository{pool: pool}
}

func scanObservacao(row pgx.Row) (*entity.Observacao, error) {
	o := &entity.Observacao{}
	if err := row.Scan(&o.ID, &o.Texto, &o.Data, &o.Complemento, &o.UsuarioID, &o.CriadoPor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *ObservacaoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Observacao, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+observacaoColumns+` FROM observacoes WHERE usuario_id = $1 ORDER BY seq`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Observacao{}
	for rows.Next() {
		o, err := scanObservacao(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Create appends the new id to the owner's list first, so the owner row stays
// locked until the insert commits. A missing owner yields ErrNotFound.
func (r *ObservacaoRepository) Create(ctx context.Context, o *entity.Observacao) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE usuarios
			SET observacoes = array_append(observacoes, $2), updated_at = now()
			WHERE id = $1
		`, o.UsuarioID, o.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO observacoes (id, texto, data, complemento, usuario_id, criado_por)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, o.ID, o.Texto, o.Data, o.Complemento, o.UsuarioID, o.CriadoPor)
		return err
	})
}

func (r *ObservacaoRepository) GetByID(ctx context.Context, id string) (*entity.Observacao, error) {
	return scanObservacao(r.pool.QueryRow(ctx, `SELECT `+observacaoColumns+` FROM observacoes WHERE id = $1`, id))
}

// DeleteByID removes the note and pulls its id from the owner. An owner that
// no longer exists is not an error.
func (r *ObservacaoRepository) DeleteByID(ctx context.Context, id string) (*entity.Observacao, error) {
	var deleted *entity.Observacao
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		o, err := scanObservacao(tx.QueryRow(ctx, `DELETE FROM observacoes WHERE id = $1 RETURNING `+observacaoColumns, id))
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE usuarios
			SET observacoes = array_remove(observacoes, $2), updated_at = now()
			WHERE id = $1
		`, o.UsuarioID, o.ID); err != nil {
			return err
		}
		deleted = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *ObservacaoRepository) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return deleteObservacoesByOwner(ctx, r.pool, ownerID)
}

func deleteObservacoesByOwner(ctx context.Context, q querier, ownerID string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM observacoes WHERE usuario_id = $1`, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

var _ repository.ObservacaoRepository = (*ObservacaoRepository)(nil)
