// Package memory keeps usuarios and observacoes in process memory. It backs
// DB_DRIVER=memory and the handler tests; data is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
	"github.com/oksasatya/usuarios-api/internal/domain/repository"
)

// Store is shared by both repositories so that compound writes happen under one lock.
type Store struct {
	mu          sync.RWMutex
	usuarios    []*entity.Usuario // insertion order
	observacoes []*entity.Observacao
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Usuarios() *UsuarioRepository       { return &UsuarioRepository{s: s} }
func (s *Store) Observacoes() *ObservacaoRepository { return &ObservacaoRepository{s: s} }

func (s *Store) usuarioByCPF(cpf string) (int, *entity.Usuario) {
	for i, u := range s.usuarios {
		if u.CPF == cpf {
			return i, u
		}
	}
	return -1, nil
}

func (s *Store) usuarioByID(id string) *entity.Usuario {
	for _, u := range s.usuarios {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func cloneUsuario(u *entity.Usuario) *entity.Usuario {
	c := *u
	c.Observacoes = append([]string{}, u.Observacoes...)
	return &c
}

func cloneObservacao(o *entity.Observacao) *entity.Observacao {
	c := *o
	if o.Complemento != nil {
		v := *o.Complemento
		c.Complemento = &v
	}
	if o.CriadoPor != nil {
		v := *o.CriadoPor
		c.CriadoPor = &v
	}
	return &c
}

type UsuarioRepository struct {
	s *Store
}

func (r *UsuarioRepository) List(_ context.Context) ([]entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Usuario, 0, len(r.s.usuarios))
	for _, u := range r.s.usuarios {
		out = append(out, *cloneUsuario(u))
	}
	return out, nil
}

func (r *UsuarioRepository) Create(_ context.Context, u *entity.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, existing := r.s.usuarioByCPF(u.CPF); existing != nil {
		return repository.ErrDuplicateCPF
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Observacoes = []string{}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.usuarios = append(r.s.usuarios, cloneUsuario(u))
	return nil
}

func (r *UsuarioRepository) GetByCPF(_ context.Context, cpf string) (*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if _, u := r.s.usuarioByCPF(cpf); u != nil {
		return cloneUsuario(u), nil
	}
	return nil, repository.ErrNotFound
}

func (r *UsuarioRepository) UpdateByCPF(_ context.Context, cpf string, patch entity.UsuarioPatch) (*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, u := r.s.usuarioByCPF(cpf)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	if patch.CPF != nil && *patch.CPF != u.CPF {
		if _, other := r.s.usuarioByCPF(*patch.CPF); other != nil {
			return nil, repository.ErrDuplicateCPF
		}
		u.CPF = *patch.CPF
	}
	if patch.Nome != nil {
		u.Nome = *patch.Nome
	}
	u.UpdatedAt = time.Now()
	return cloneUsuario(u), nil
}

func (r *UsuarioRepository) UpdateRelatorio(_ context.Context, cpf, relatorio string) (*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, u := r.s.usuarioByCPF(cpf)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	u.Relatorio = relatorio
	u.UpdatedAt = time.Now()
	return cloneUsuario(u), nil
}

func (r *UsuarioRepository) DeleteByCPF(_ context.Context, cpf string) (*entity.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, u := r.s.usuarioByCPF(cpf)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	r.s.deleteObservacoesByOwner(u.ID)
	r.s.usuarios = append(r.s.usuarios[:i], r.s.usuarios[i+1:]...)
	return u, nil
}

type ObservacaoRepository struct {
	s *Store
}

func (r *ObservacaoRepository) ListByOwner(_ context.Context, ownerID string) ([]entity.Observacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Observacao{}
	for _, o := range r.s.observacoes {
		if o.UsuarioID == ownerID {
			out = append(out, *cloneObservacao(o))
		}
	}
	return out, nil
}

func (r *ObservacaoRepository) Create(_ context.Context, o *entity.Observacao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	owner := r.s.usuarioByID(o.UsuarioID)
	if owner == nil {
		return repository.ErrNotFound
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	r.s.observacoes = append(r.s.observacoes, cloneObservacao(o))
	owner.Observacoes = append(owner.Observacoes, o.ID)
	owner.UpdatedAt = time.Now()
	return nil
}

func (r *ObservacaoRepository) GetByID(_ context.Context, id string) (*entity.Observacao, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.observacoes {
		if o.ID == id {
			return cloneObservacao(o), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ObservacaoRepository) DeleteByID(_ context.Context, id string) (*entity.Observacao, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, o := range r.s.observacoes {
		if o.ID != id {
			continue
		}
		r.s.observacoes = append(r.s.observacoes[:i], r.s.observacoes[i+1:]...)
		if owner := r.s.usuarioByID(o.UsuarioID); owner != nil {
			owner.Observacoes = removeID(owner.Observacoes, id)
			owner.UpdatedAt = time.Now()
		}
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (r *ObservacaoRepository) DeleteAllByOwner(_ context.Context, ownerID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.deleteObservacoesByOwner(ownerID), nil
}

// deleteObservacoesByOwner expects s.mu to be held for writing.
func (s *Store) deleteObservacoesByOwner(ownerID string) int64 {
	kept := s.observacoes[:0]
	var n int64
	for _, o := range s.observacoes {
		if o.UsuarioID == ownerID {
			n++
			continue
		}
		kept = append(kept, o)
	}
	s.observacoes = kept
	return n
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

var (
	_ repository.UsuarioRepository    = (*UsuarioRepository)(nil)
	_ repository.ObservacaoRepository = (*ObservacaoRepository)(nil)
)
