package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
	"github.com/oksasatya/usuarios-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func TestUsuarioRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	usuarios := store.Usuarios()

	ana := &entity.Usuario{Nome: "Ana", CPF: "111"}
	require.NoError(t, usuarios.Create(ctx, ana))
	assert.NotEmpty(t, ana.ID)
	assert.Equal(t, []string{}, ana.Observacoes)

	err := usuarios.Create(ctx, &entity.Usuario{Nome: "Copia", CPF: "111"})
	assert.ErrorIs(t, err, repository.ErrDuplicateCPF)

	require.NoError(t, usuarios.Create(ctx, &entity.Usuario{Nome: "Bia", CPF: "222"}))

	t.Run("returned values are copies", func(t *testing.T) {
		got, err := usuarios.GetByCPF(ctx, "111")
		require.NoError(t, err)
		got.Nome = "mutated"
		again, _ := usuarios.GetByCPF(ctx, "111")
		assert.Equal(t, "Ana", again.Nome)
	})

	t.Run("update", func(t *testing.T) {
		_, err := usuarios.UpdateByCPF(ctx, "222", entity.UsuarioPatch{CPF: strPtr("111")})
		assert.ErrorIs(t, err, repository.ErrDuplicateCPF)

		got, err := usuarios.UpdateByCPF(ctx, "222", entity.UsuarioPatch{CPF: strPtr("222"), Nome: strPtr("Beatriz")})
		require.NoError(t, err)
		assert.Equal(t, "Beatriz", got.Nome)

		_, err = usuarios.UpdateByCPF(ctx, "333", entity.UsuarioPatch{Nome: strPtr("x")})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("relatorio", func(t *testing.T) {
		got, err := usuarios.UpdateRelatorio(ctx, "111", "ok")
		require.NoError(t, err)
		assert.Equal(t, "ok", got.Relatorio)

		_, err = usuarios.UpdateRelatorio(ctx, "404", "x")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		all, err := usuarios.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "111", all[0].CPF)
		assert.Equal(t, "222", all[1].CPF)
	})
}

func TestObservacaoRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	usuarios := store.Usuarios()
	observacoes := store.Observacoes()

	ana := &entity.Usuario{Nome: "Ana", CPF: "111"}
	require.NoError(t, usuarios.Create(ctx, ana))
	bia := &entity.Usuario{Nome: "Bia", CPF: "222"}
	require.NoError(t, usuarios.Create(ctx, bia))

	n1 := &entity.Observacao{Texto: "um", Data: time.Now(), UsuarioID: ana.ID}
	n2 := &entity.Observacao{Texto: "dois", Data: time.Now(), UsuarioID: ana.ID}
	n3 := &entity.Observacao{Texto: "tres", Data: time.Now(), UsuarioID: bia.ID}
	for _, n := range []*entity.Observacao{n1, n2, n3} {
		require.NoError(t, observacoes.Create(ctx, n))
	}

	err := observacoes.Create(ctx, &entity.Observacao{Texto: "x", UsuarioID: "ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, _ := usuarios.GetByCPF(ctx, "111")
	assert.Equal(t, []string{n1.ID, n2.ID}, got.Observacoes)

	list, err := observacoes.ListByOwner(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "um", list[0].Texto)

	t.Run("delete pulls id from owner only", func(t *testing.T) {
		_, err := observacoes.DeleteByID(ctx, n1.ID)
		require.NoError(t, err)
		got, _ := usuarios.GetByCPF(ctx, "111")
		assert.Equal(t, []string{n2.ID}, got.Observacoes)

		_, err = observacoes.GetByID(ctx, n1.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = observacoes.GetByID(ctx, n3.ID)
		assert.NoError(t, err)

		_, err = observacoes.DeleteByID(ctx, n1.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("usuario delete cascades", func(t *testing.T) {
		_, err := usuarios.DeleteByCPF(ctx, "111")
		require.NoError(t, err)
		_, err = observacoes.GetByID(ctx, n2.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		left, _ := observacoes.ListByOwner(ctx, bia.ID)
		assert.Len(t, left, 1)

		_, err = usuarios.DeleteByCPF(ctx, "111")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete all by owner", func(t *testing.T) {
		n, err := observacoes.DeleteAllByOwner(ctx, bia.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
